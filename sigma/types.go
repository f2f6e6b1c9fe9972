package sigma

// Entry is one stored (column, value) pair within a row.
type Entry struct {
	Col int
	Val int64
}

// Matrix is a sparse, square, n×n integer matrix with an implicit "absent"
// default for every cell that was never inserted. Zero value is not
// meaningful; use New.
type Matrix struct {
	n    int
	rows [][]Entry // rows[i] sorted ascending by Col; only stored entries
}
