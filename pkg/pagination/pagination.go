// Package pagination holds the window arithmetic shared by the remote
// query path and the in-memory sample listing.
package pagination

// Window computes the inclusive row window [from, to] for a page.
// Pages are 1-based; page 1 with limit 10 covers rows 0..9.
func Window(page, limit int) (from, to int) {
	from = (page - 1) * limit
	to = from + limit - 1
	return from, to
}

// Offset returns the number of rows to skip for a page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// TotalPages returns ceil(total/limit). An empty result set has zero
// pages, not one.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
