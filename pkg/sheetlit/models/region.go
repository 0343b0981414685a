package models

// Region represents the cell bounds converted from a sheet.
type Region struct {
	// R1 is the start row (1-based).
	R1 int
	// C1 is the start column (1-based).
	C1 int
	// R2 is the end row (1-based, inclusive).
	R2 int
	// C2 is the end column (1-based, inclusive).
	C2 int
}

// Rows returns the number of rows spanned.
func (r Region) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns spanned.
func (r Region) Cols() int { return r.C2 - r.C1 + 1 }

// Normalize swaps corners so that R1 <= R2 and C1 <= C2.
func (r Region) Normalize() Region {
	if r.R1 > r.R2 {
		r.R1, r.R2 = r.R2, r.R1
	}
	if r.C1 > r.C2 {
		r.C1, r.C2 = r.C2, r.C1
	}
	return r
}
