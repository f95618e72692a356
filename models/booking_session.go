package models

import "time"

// Submission states of a booking session.
const (
	SubmissionIdle       = "idle"
	SubmissionSubmitting = "submitting"
	SubmissionSucceeded  = "succeeded"
	SubmissionFailed     = "failed"
)

// BookingSession holds one user's in-progress reservation selection for
// one activity: the picked date, the picked schedule and the head count,
// plus the submission state. It lives in the session store for the
// lifetime of the booking panel and is discarded when the panel closes.
//
// The schedule list and unit price are snapshotted when the session
// opens, so every derived view is a pure function of the session itself.
type BookingSession struct {
	SessionID  string     `json:"sessionId"`
	UserID     string     `json:"userId"`
	ActivityID string     `json:"activityId"`
	UnitPrice  int        `json:"unitPrice"`
	Schedules  []Schedule `json:"schedules"`

	SelectedDate       string `json:"selectedDate,omitempty"`
	SelectedScheduleID string `json:"selectedScheduleId,omitempty"`
	HeadCount          int    `json:"headCount"`

	Submission      string    `json:"submission"`
	SubmissionError string    `json:"submissionError,omitempty"`
	ReservationID   string    `json:"reservationId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SetDate selects a calendar date and unconditionally clears the schedule
// selection, even when the date did not change.
func (s *BookingSession) SetDate(date string) {
	s.SelectedDate = date
	s.SelectedScheduleID = ""
}

// SetScheduleID selects a schedule by ID. No validation against the
// selected date happens here; a stale ID simply renders as no highlighted
// selection on the client.
func (s *BookingSession) SetScheduleID(id string) {
	s.SelectedScheduleID = id
}

// IncreaseHeadCount adds one participant.
func (s *BookingSession) IncreaseHeadCount() {
	s.HeadCount++
}

// DecreaseHeadCount removes one participant, floored at 1.
func (s *BookingSession) DecreaseHeadCount() {
	if s.HeadCount > 1 {
		s.HeadCount--
	}
}

// IsReadyToReserve reports whether the session can be submitted: a date
// and a schedule are picked, at least one participant, and no submission
// currently in flight.
func (s *BookingSession) IsReadyToReserve() bool {
	return s.SelectedDate != "" &&
		s.SelectedScheduleID != "" &&
		s.HeadCount >= 1 &&
		s.Submission != SubmissionSubmitting
}

// IsSubmitting reports whether a submission is in flight.
func (s *BookingSession) IsSubmitting() bool {
	return s.Submission == SubmissionSubmitting
}
