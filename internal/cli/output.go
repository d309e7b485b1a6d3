package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printJSON pretty-prints a raw API payload. List commands in JSON mode
// emit the unmodified items rather than the condensed table rows.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// clip cuts s to at most n runes.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// dateOnly reduces an RFC3339 timestamp to its date part.
func dateOnly(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

// flatten replaces newlines with spaces for single-line display.
func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func formatCount(n uint64) string {
	return strconv.FormatUint(n, 10)
}
