package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether a booking in this status no longer occupies its slot.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusNoShow
}

func TerminalStatuses() []Status {
	return []Status{StatusCancelled, StatusNoShow}
}
