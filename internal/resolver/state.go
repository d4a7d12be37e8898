package resolver

// State is a step of the resolution state machine.
type State string

const (
	// StateUnresolved is the initial state of every analysis.
	StateUnresolved State = "UNRESOLVED"
	// StateResolvedUnique means the hint resolved to exactly one element.
	StateResolvedUnique State = "RESOLVED_UNIQUE"
	// StateResolvedAmbiguous means the hint resolved to several elements and the first was used.
	StateResolvedAmbiguous State = "RESOLVED_AMBIGUOUS"
	// StateNotFound means nothing resolved. It is terminal.
	StateNotFound State = "NOT_FOUND"
)

// Terminal reports whether no further transition can leave s.
func (s State) Terminal() bool {
	return s != StateUnresolved
}

// ResolvedBy names the part of the hint that located the element.
type ResolvedBy string

const (
	ResolvedByPrimary     ResolvedBy = "primary_selector"
	ResolvedByAlternative ResolvedBy = "alternative_selector"
	ResolvedByText        ResolvedBy = "text"
)
