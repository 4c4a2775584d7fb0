package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a persisted piece of user feedback. Text and FilteredText are
// fixed at submission; only IsVerified changes afterwards.
type Feedback struct {
	ID           uuid.UUID
	UserID       string
	Text         string
	FilteredText string
	IsVerified   bool
	CreatedAt    time.Time
}

// IsProfane reports whether the censor masked anything in the text.
func (f Feedback) IsProfane() bool {
	return f.FilteredText != f.Text
}

// NewFeedback carries the fields supplied to the store on insert. ID and
// CreatedAt are assigned by the store.
type NewFeedback struct {
	UserID       string
	Text         string
	FilteredText string
}

// FeedbackFilter contains filtering/pagination parameters for feedback listings.
type FeedbackFilter struct {
	Verified      *bool
	Profane       *bool
	UserID        *string
	Search        *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
	Offset        int
}

// FeedbackStats aggregates the review queue.
type FeedbackStats struct {
	Total             int
	Verified          int
	Unverified        int
	Profane           int
	ProfaneVerified   int
	ProfaneUnverified int
}

// CensorWord is a forbidden word or phrase managed in the database.
type CensorWord struct {
	ID        uuid.UUID
	Word      string
	IsActive  bool
	CreatedAt time.Time
}

// SubmissionStage is the lifecycle position of a submission.
type SubmissionStage string

const (
	StageReceived     SubmissionStage = "received"
	StageValidated    SubmissionStage = "validated"
	StageCensored     SubmissionStage = "censored"
	StagePersisted    SubmissionStage = "persisted"
	StageAcknowledged SubmissionStage = "acknowledged"
	StageRejected     SubmissionStage = "rejected"
	StageFailed       SubmissionStage = "failed"
)

func (s SubmissionStage) String() string { return string(s) }

// IsTerminal reports whether no further transition is possible.
func (s SubmissionStage) IsTerminal() bool {
	switch s {
	case StageAcknowledged, StageRejected, StageFailed:
		return true
	}
	return false
}
