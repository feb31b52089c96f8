package geom

// Metric selects which norm/distance family a computation uses.
type Metric int

const (
	// L1 is the Manhattan / octahedral norm (sum of absolute coordinates).
	L1 Metric = iota
	// L2 is the Euclidean norm.
	L2
	// LInf is the Chebyshev / cubic norm (max absolute coordinate).
	LInf
)

func (m Metric) String() string {
	switch m {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case LInf:
		return "LInf"
	default:
		return "unknown"
	}
}
