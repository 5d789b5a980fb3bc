package plot

import "github.com/san-kum/tikzgen/internal/expr"

// Domain is the inclusive range over which a function is sampled.
type Domain struct {
	Low  float64
	High float64
}

// Point is one (x, y) coordinate.
type Point struct {
	X float64
	Y float64
}

// Function is a plot defined by a formula in x over a domain.
type Function struct {
	// Source is the expression as the user typed it.
	Source string
	// Tree is the parsed form; PGF emission and previewing both read it.
	Tree   expr.Node
	Domain Domain
}

// Coordinates is a plot defined by an explicit, ordered point list.
// Order is path order; duplicates are allowed.
type Coordinates struct {
	Points []Point
}

// Request is the tagged union of the two plot kinds; exactly one field is
// non-nil.
type Request struct {
	Function    *Function
	Coordinates *Coordinates
}

// Options carries the presentational settings applied to either plot kind.
// Labels and color are stored verbatim and escaped only at synthesis time.
type Options struct {
	XLabel  string
	YLabel  string
	Color   string
	Grid    bool
	Samples int
	Smooth  bool
}
