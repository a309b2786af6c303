package internal

import (
	"net/http"
	"strconv"
	"strings"
)

// listParams holds common query parameters for list endpoints
type listParams struct {
	limit  int
	offset int
	q      string
}

// parseListParams parses limit, offset, and q from the request.
// Defaults: limit=0 (no limit, the whole list), offset=0. An explicit
// limit is capped at 200.
func parseListParams(r *http.Request) listParams {
	values := r.URL.Query()

	limit := 0
	if s := strings.TrimSpace(values.Get("limit")); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			if v > 200 {
				v = 200
			}
			limit = v
		}
	}

	offset := 0
	if s := strings.TrimSpace(values.Get("offset")); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}

	return listParams{
		limit:  limit,
		offset: offset,
		q:      strings.TrimSpace(values.Get("q")),
	}
}

// paginate applies offset and limit to an in-memory list. Records are
// already in id order in the slot, so there is no sort to apply.
func paginate[T any](items []T, p listParams) []T {
	if p.offset >= len(items) {
		return []T{}
	}
	items = items[p.offset:]
	if p.limit > 0 && p.limit < len(items) {
		items = items[:p.limit]
	}
	return items
}
