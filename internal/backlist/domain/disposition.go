package domain

import "fmt"

// Disposition is the verdict for a single submission.
// The zero value is NoOpinion: the platform applies its default moderation.
type Disposition uint8

const (
	NoOpinion Disposition = iota
	AutoApprove
	Approve
	Reject
)

// String returns a stable name for logs and metric labels.
func (d Disposition) String() string {
	switch d {
	case NoOpinion:
		return "no_opinion"
	case AutoApprove:
		return "auto_approve"
	case Approve:
		return "approve"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("Disposition(%d)", d)
	}
}

// Approves reports whether the disposition marks the comment approved.
func (d Disposition) Approves() bool {
	return d == AutoApprove || d == Approve
}

// Dispositions lists every defined disposition, in evaluation-priority order.
func Dispositions() []Disposition {
	return []Disposition{AutoApprove, Approve, Reject, NoOpinion}
}
