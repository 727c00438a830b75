package centra

import "context"

// PageCursor walks 1-based page indexes for a fixed page size. The
// termination rule lives here so it can be tested without any network code:
// a page with fewer items than the limit (or none at all) is the last one.
type PageCursor struct {
	limit int
	page  int
}

// NewPageCursor returns a cursor positioned on page 1.
func NewPageCursor(limit int) *PageCursor {
	if limit < 1 {
		limit = 1
	}
	return &PageCursor{limit: limit, page: 1}
}

// Page returns the current 1-based page index.
func (c *PageCursor) Page() int { return c.page }

// Limit returns the page size the cursor was built with.
func (c *PageCursor) Limit() int { return c.limit }

// Advance records the size of the page just fetched and reports whether
// another page should be requested.
func (c *PageCursor) Advance(lastPageSize int) bool {
	if lastPageSize < c.limit {
		return false
	}
	c.page++
	return true
}

// ForEachPage drives fn with incrementing page indexes until fn reports a
// short page or fails. Any error from fn aborts the walk and is wrapped in a
// FetchError carrying the stage name and the failing page; results gathered
// on earlier pages must be discarded by the caller.
func ForEachPage(ctx context.Context, stage string, limit int, fn func(ctx context.Context, page int) (count int, err error)) error {
	cursor := NewPageCursor(limit)
	for {
		if err := ctx.Err(); err != nil {
			return &FetchError{Stage: stage, Page: cursor.Page(), Err: err}
		}
		count, err := fn(ctx, cursor.Page())
		if err != nil {
			return &FetchError{Stage: stage, Page: cursor.Page(), Err: err}
		}
		if !cursor.Advance(count) {
			return nil
		}
	}
}
