package models

// Status values a VSR can hold. The order here is the display order used by
// the dashboard; any status may transition to any other status, so staff can
// freely correct mistakes.
const (
	StatusReceived             = "Received"
	StatusApproved             = "Approved"
	StatusAppointmentScheduled = "Appointment Scheduled"
	StatusComplete             = "Complete"
	StatusNoShowIncomplete     = "No-show / Incomplete"
	StatusArchived             = "Archived"
)

var StatusOptions = []string{
	StatusReceived,
	StatusApproved,
	StatusAppointmentScheduled,
	StatusComplete,
	StatusNoShowIncomplete,
	StatusArchived,
}

func IsValidStatus(status string) bool {
	for _, option := range StatusOptions {
		if status == option {
			return true
		}
	}
	return false
}

// Income bracket keys as stored on VSR records. Callers filter by key, not by
// the human-readable label.
const (
	IncomeBracketKeyOver50k  = "50000"
	IncomeBracketKey25kTo50k = "25000"
	IncomeBracketKey12kTo25k = "12500"
	IncomeBracketKeyUnder12k = "0"
)

// IncomeLabelToKey maps the labels shown on the intake form and dashboard to
// the stored bracket keys. This is the single source of the mapping; callers
// must not re-derive it.
var IncomeLabelToKey = map[string]string{
	"$50,001 and over":    IncomeBracketKeyOver50k,
	"$25,001 - $50,000":   IncomeBracketKey25kTo50k,
	"$12,501 - $25,000":   IncomeBracketKey12kTo25k,
	"$12,500 and under":   IncomeBracketKeyUnder12k,
}
