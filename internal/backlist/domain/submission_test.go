package domain

import "testing"

func TestParseSubmissionType(t *testing.T) {
	tests := []struct {
		in   string
		want SubmissionType
	}{
		{"", SubmissionComment},
		{"comment", SubmissionComment},
		{"pingback", SubmissionPingback},
		{" Trackback ", SubmissionTrackback},
		{"PINGBACK", SubmissionPingback},
		{"webmention", SubmissionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseSubmissionType(tt.in); got != tt.want {
				t.Errorf("ParseSubmissionType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubmissionType_IsBacklink(t *testing.T) {
	tests := []struct {
		typ  SubmissionType
		want bool
	}{
		{SubmissionUnknown, false},
		{SubmissionComment, false},
		{SubmissionPingback, true},
		{SubmissionTrackback, true},
	}
	for _, tt := range tests {
		if got := tt.typ.IsBacklink(); got != tt.want {
			t.Errorf("%v.IsBacklink() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestSubmissionType_String(t *testing.T) {
	if got := SubmissionTrackback.String(); got != "trackback" {
		t.Errorf("String() = %q, want trackback", got)
	}
	if got := SubmissionType(42).String(); got != "SubmissionType(42)" {
		t.Errorf("String() = %q, want SubmissionType(42)", got)
	}
}

func TestApprovalStatus_String(t *testing.T) {
	if StatusPending.String() != "pending" || StatusApproved.String() != "approved" {
		t.Errorf("unexpected status strings: %q %q", StatusPending, StatusApproved)
	}
	if got := ApprovalStatus(9).String(); got != "ApprovalStatus(9)" {
		t.Errorf("String() = %q", got)
	}
}
