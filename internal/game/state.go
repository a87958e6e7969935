// Package game runs a party through successive dungeon floors until it falls
// or clears the floor cap.
package game

// Status is the terminal state of a dungeon run.
type Status int

const (
	// StatusRunning - run not finished
	StatusRunning Status = iota
	// StatusDefeated - party wiped
	StatusDefeated
	// StatusTimedOut - a floor hit the combat turn cap
	StatusTimedOut
	// StatusCompleted - every floor up to the cap cleared
	StatusCompleted
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusDefeated:
		return "defeated"
	case StatusTimedOut:
		return "timed_out"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
