package path

// Point is one sample of the trajectory: the process takes Value at Time.
type Point struct {
	Time  float64 `json:"time"`
	Value float64 `json:"value"`
}

// Bridger proposes a diffusion bridge over a fixed time grid.
//
// Bridge must return len(times) values with values[0] == x0 at t0 == times[0]
// and values[len-1] == xt at t1 == times[len-1]. The returned slice is owned
// by the caller.
type Bridger interface {
	Bridge(x0, xt, t0, t1 float64, times []float64) ([]float64, error)
}

// MutationKind tags the pending mutation held by a Path.
type MutationKind int

const (
	// NoMutation means there is nothing to undo.
	NoMutation MutationKind = iota

	// InteriorReplace means Modify overwrote [Index, Index+len(Saved)).
	InteriorReplace

	// PrefixReplace means ReplacePrefix swapped the leading points: Saved is
	// the old prefix and PrefixLen the length of the prefix put in its place.
	PrefixReplace
)

// String implements fmt.Stringer.
func (k MutationKind) String() string {
	switch k {
	case NoMutation:
		return "none"
	case InteriorReplace:
		return "interior"
	case PrefixReplace:
		return "prefix"
	default:
		return "unknown"
	}
}

// Mutation is the single undo slot of a Path.
type Mutation struct {
	Kind      MutationKind
	Index     int
	Saved     []Point
	PrefixLen int
}
