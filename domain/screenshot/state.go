package screenshot

// CaptureState is the lifecycle of the single capture slot.
type CaptureState int32

const (
	StateIdle CaptureState = iota
	StateInFlight
	StateCompleted
)

func (s CaptureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in-flight"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Accepting reports whether a new capture may be admitted.
func (s CaptureState) Accepting() bool { return s != StateInFlight }
