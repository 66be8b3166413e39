package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the dashboard's lifecycle: a request is confirmed
// by a concierge, then marked completed after the visit.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusCompleted
	default:
		return false
	}
}
