package booking

import (
	activityRepo "whattoday/database/repository/activity"
	"whattoday/models"
)

// ReservationCreator is the reservation-creation operation the submission
// flow calls on confirm. Implemented by the reservation service.
type ReservationCreator interface {
	Create(activityID, userID string, req models.ReservationCreateRequest) (*models.Reservation, error)
}

// SessionService manages one booking panel's selection state: picking a
// date, picking a time slot, adjusting the head count, and submitting the
// reservation.
type SessionService interface {
	OpenSession(activityID, userID string) (*SessionView, error)
	GetSession(sessionID, userID string) (*SessionView, error)
	SetDate(sessionID, userID, date string) (*SessionView, error)
	SetScheduleID(sessionID, userID, scheduleID string) (*SessionView, error)
	IncreaseHeadCount(sessionID, userID string) (*SessionView, error)
	DecreaseHeadCount(sessionID, userID string) (*SessionView, error)
	Submit(sessionID, userID string) (*SessionView, error)
	CloseSession(sessionID, userID string) error
}

// SessionView is the session plus every derived value the presentation
// layer binds to. Derived fields are recomputed on every read and never
// stored.
type SessionView struct {
	SessionID          string                `json:"sessionId"`
	ActivityID         string                `json:"activityId"`
	SelectedDate       string                `json:"selectedDate,omitempty"`
	SelectedScheduleID string                `json:"selectedScheduleId,omitempty"`
	HeadCount          int                   `json:"headCount"`
	UnitPrice          int                   `json:"unitPrice"`
	TotalPrice         int                   `json:"totalPrice"`
	ReservableDates    []string              `json:"reservableDates"`
	AvailableTimes     []models.ScheduleTime `json:"availableTimes"`
	IsReadyToReserve   bool                  `json:"isReadyToReserve"`
	IsSubmitting       bool                  `json:"isSubmitting"`
	Submission         string                `json:"submission"`
	SubmissionError    string                `json:"submissionError,omitempty"`
	ReservationID      string                `json:"reservationId,omitempty"`
}

// DefaultBookingSessionService implements SessionService on top of an
// injected session store.
type DefaultBookingSessionService struct {
	Store        SessionStore
	ActivityRepo activityRepo.ActivityRepository
	Reservations ReservationCreator
	Notifier     Notifier
}

// NewSessionView derives the full client view from a session.
func NewSessionView(s models.BookingSession) *SessionView {
	return &SessionView{
		SessionID:          s.SessionID,
		ActivityID:         s.ActivityID,
		SelectedDate:       s.SelectedDate,
		SelectedScheduleID: s.SelectedScheduleID,
		HeadCount:          s.HeadCount,
		UnitPrice:          s.UnitPrice,
		TotalPrice:         ComputeTotal(s.UnitPrice, s.HeadCount),
		ReservableDates:    ReservableDates(s.Schedules),
		AvailableTimes:     TimesFor(s.Schedules, s.SelectedDate),
		IsReadyToReserve:   s.IsReadyToReserve(),
		IsSubmitting:       s.IsSubmitting(),
		Submission:         s.Submission,
		SubmissionError:    s.SubmissionError,
		ReservationID:      s.ReservationID,
	}
}
