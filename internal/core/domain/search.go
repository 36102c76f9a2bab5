package domain

// Pagination is the validated page/perPage pair of a search request. Both
// values are guaranteed non-negative by the REST boundary.
type Pagination struct {
	Page    int64
	PerPage int64
}

// Limit returns the LIMIT value for the page query.
func (p Pagination) Limit() int64 {
	return p.PerPage
}

// Offset returns the OFFSET value for the page query.
func (p Pagination) Offset() int64 {
	return p.PerPage * p.Page
}
