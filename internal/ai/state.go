package ai

// StateKind identifies a chaser behavior state.
type StateKind int32

const (
	// StatePatrol - walking the route or waiting at a waypoint
	StatePatrol StateKind = iota
	// StateAlerting - target detected, hesitating before the chase
	StateAlerting
	// StateChasing - pursuing the live target position
	StateChasing
	// StateCapturing - jumpscare in progress, exclusive
	StateCapturing
)

// String returns human-readable state name
func (k StateKind) String() string {
	switch k {
	case StatePatrol:
		return "PATROL"
	case StateAlerting:
		return "ALERTING"
	case StateChasing:
		return "CHASING"
	case StateCapturing:
		return "CAPTURING"
	default:
		return "UNKNOWN"
	}
}

// State is the active chaser state together with its payload.
// Implemented only by *Patrol, *Alerting, *Chasing and *Capturing.
type State interface {
	Kind() StateKind
	isState()
}

// Patrol walks between random waypoints.
type Patrol struct {
	WaypointIndex int     // route index currently targeted, -1 before the first pick
	Waiting       bool    // standing at a reached waypoint
	WaitRemaining float64 // seconds left to stand
}

// Alerting holds the hesitation before a chase.
type Alerting struct {
	Elapsed float64
}

// Chasing re-targets the live target position every tick.
type Chasing struct{}

// Capturing runs the jumpscare hold.
type Capturing struct {
	Elapsed float64
}

func (*Patrol) Kind() StateKind    { return StatePatrol }
func (*Alerting) Kind() StateKind  { return StateAlerting }
func (*Chasing) Kind() StateKind   { return StateChasing }
func (*Capturing) Kind() StateKind { return StateCapturing }

func (*Patrol) isState()    {}
func (*Alerting) isState()  {}
func (*Chasing) isState()   {}
func (*Capturing) isState() {}
