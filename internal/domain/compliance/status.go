package compliance

// Status of a single checklist item.
type Status string

const (
	StatusNotStarted    Status = "not_started"
	StatusInProgress    Status = "in_progress"
	StatusCompleted     Status = "completed"
	StatusNotApplicable Status = "not_applicable"
)

// Valid reports whether s is a defined status value.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusNotApplicable:
		return true
	}
	return false
}

// Record holds the tracked state of one item. Absent records read as
// the zero default {not_started, 0}.
type Record struct {
	Status   Status `json:"status"`
	Progress int    `json:"progress"`
}

// DefaultRecord is what an item reads as before any explicit change.
var DefaultRecord = Record{Status: StatusNotStarted, Progress: 0}

// Apply computes the record after a status transition. completed
// forces progress to 100, not_started forces it to 0, every other
// transition carries the previous progress forward (including moves
// to and from not_applicable). Setting the same status twice yields
// the same record.
func Apply(prev Record, next Status) Record {
	switch next {
	case StatusCompleted:
		return Record{Status: next, Progress: 100}
	case StatusNotStarted:
		return Record{Status: next, Progress: 0}
	default:
		return Record{Status: next, Progress: prev.Progress}
	}
}
