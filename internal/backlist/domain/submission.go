package domain

import (
	"fmt"
	"strings"
)

// SubmissionType is the comment_type reported by the host platform.
type SubmissionType uint8

const (
	SubmissionUnknown SubmissionType = iota
	SubmissionComment
	SubmissionPingback
	SubmissionTrackback
)

// String returns the platform spelling of the type.
func (t SubmissionType) String() string {
	switch t {
	case SubmissionComment:
		return "comment"
	case SubmissionPingback:
		return "pingback"
	case SubmissionTrackback:
		return "trackback"
	case SubmissionUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("SubmissionType(%d)", t)
	}
}

// ParseSubmissionType maps a platform comment_type to a SubmissionType.
// The platform stores plain comments with an empty type, so "" is a comment.
// Anything unrecognized is SubmissionUnknown, which is never filtered.
func ParseSubmissionType(s string) SubmissionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "comment":
		return SubmissionComment
	case "pingback":
		return SubmissionPingback
	case "trackback":
		return SubmissionTrackback
	default:
		return SubmissionUnknown
	}
}

// IsBacklink reports whether the type is a pingback or trackback.
func (t SubmissionType) IsBacklink() bool {
	return t == SubmissionPingback || t == SubmissionTrackback
}

// Submission is an incoming comment as seen by the filter. It is read-only input.
type Submission struct {
	Type      SubmissionType
	AuthorURL string
	AuthorIP  string
}

// ApprovalStatus is the mutable moderation state the platform keeps per comment.
type ApprovalStatus uint8

const (
	StatusPending ApprovalStatus = iota
	StatusApproved
)

func (s ApprovalStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	default:
		return fmt.Sprintf("ApprovalStatus(%d)", s)
	}
}

// Comment couples a submission with its platform identity and approval state.
type Comment struct {
	ID uint64
	Submission
	Status ApprovalStatus
}
