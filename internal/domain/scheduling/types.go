package scheduling

type Kind string

const (
	KindProfessionalBusy          Kind = "PROFESSIONAL_BUSY"
	KindClientBusy                Kind = "CLIENT_BUSY"
	KindBlockedTime               Kind = "BLOCKED_TIME"
	KindOutsideWorkingHours       Kind = "OUTSIDE_WORKING_HOURS"
	KindResourceUnavailable       Kind = "RESOURCE_UNAVAILABLE"
	KindInsufficientAdvanceNotice Kind = "INSUFFICIENT_ADVANCE_NOTICE"
	KindExceedsMaxAdvance         Kind = "EXCEEDS_MAX_ADVANCE"
)

func (k Kind) String() string {
	return string(k)
}

// IsOverridable reports whether an ERROR of this kind may be forced through by
// a privileged caller. Double bookings and resource clashes never are.
func (k Kind) IsOverridable() bool {
	switch k {
	case KindProfessionalBusy, KindClientBusy, KindResourceUnavailable:
		return false
	default:
		return true
	}
}

type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	return s == SeverityError || s == SeverityWarning
}
