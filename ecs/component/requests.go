package component

// SwitchKind selects which switcher entry point a SwitchRequest uses.
type SwitchKind int

const (
	SwitchNext SwitchKind = iota
	SwitchPrevious
	SwitchTo
	SwitchToName
)

func (k SwitchKind) String() string {
	switch k {
	case SwitchNext:
		return "next"
	case SwitchPrevious:
		return "previous"
	case SwitchTo:
		return "to"
	case SwitchToName:
		return "to_name"
	default:
		return "unknown"
	}
}

// SwitchRequest asks the group switch system to change the active group.
// Index is used by SwitchTo and Name by SwitchToName.
type SwitchRequest struct {
	Kind  SwitchKind
	Index int
	Name  string
}

var SwitchRequestComponent = NewComponent[SwitchRequest]()

// ProgressRequest overrides a follower's progress. Waypoint requests use
// Index and Fraction; normalized ones use T.
type ProgressRequest struct {
	Waypoint bool
	Index    float64
	Fraction float64
	T        float64
}

var ProgressRequestComponent = NewComponent[ProgressRequest]()

// EnableRequest pauses or resumes a follower.
type EnableRequest struct {
	Enabled bool
}

var EnableRequestComponent = NewComponent[EnableRequest]()
