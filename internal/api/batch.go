package api

// maxBatchIDs is the API's cap on identifiers per detail-list call.
const maxBatchIDs = 50

// fetchByID fetches detail records for an arbitrary number of ids in
// consecutive chunks of at most maxBatchIDs, merging the responses into a
// single map keyed by key(item).
//
// Ids the remote system does not return (deleted entities, for instance) are
// simply absent from the result; callers treat a missing key as "not found",
// not as an error.
func fetchByID[T any](ids []string, fetch func(chunk []string) ([]T, error), key func(T) string) (map[string]T, error) {
	out := make(map[string]T, len(ids))
	for start := 0; start < len(ids); start += maxBatchIDs {
		end := start + maxBatchIDs
		if end > len(ids) {
			end = len(ids)
		}

		items, err := fetch(ids[start:end])
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			out[key(item)] = item
		}
	}
	return out, nil
}
