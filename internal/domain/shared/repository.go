package shared

// Filter holds common list-query parameters shared by all repositories
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// Normalize applies sane defaults and bounds to pagination parameters
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 200 {
		f.PageSize = 200
	}
	if f.OrderDir != "asc" && f.OrderDir != "desc" {
		f.OrderDir = "desc"
	}
}

// Offset returns the row offset for the current page
func (f *Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
