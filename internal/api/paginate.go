package api

// Paginate drives a cursor-paginated list operation to completion, or until
// limit items have been collected. fetch is called with the previous page's
// cursor (empty on the first call) and returns one page of items plus the
// next cursor; an empty next cursor signals the end of results.
//
// Items are appended in arrival order. A page may be over-fetched: truncation
// to limit happens after the last fetched page, never mid-page. limit <= 0
// means paginate to exhaustion.
//
// Any error from fetch propagates immediately and discards items collected so
// far; the call is all-or-nothing from the caller's perspective.
func Paginate[T any](fetch func(pageToken string) ([]T, string, error), limit int64) ([]T, error) {
	var collected []T
	token := ""
	for {
		items, next, err := fetch(token)
		if err != nil {
			return nil, err
		}
		collected = append(collected, items...)

		token = next
		if token == "" || (limit > 0 && int64(len(collected)) >= limit) {
			break
		}
	}

	if limit > 0 && int64(len(collected)) > limit {
		collected = collected[:limit]
	}
	return collected, nil
}
