package booking

import (
	"fmt"
	"time"

	"whattoday/models"

	"github.com/google/uuid"
)

// OpenSession snapshots the activity's schedules and price into a fresh
// session with an empty selection and stores it under a new session ID.
func (s *DefaultBookingSessionService) OpenSession(activityID, userID string) (*SessionView, error) {
	activity, err := s.ActivityRepo.GetByID(activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	session := models.BookingSession{
		SessionID:  uuid.New().String(),
		UserID:     userID,
		ActivityID: activityID,
		UnitPrice:  activity.Price,
		Schedules:  activity.Schedules,
		HeadCount:  1,
		Submission: models.SubmissionIdle,
		CreatedAt:  time.Now(),
	}

	if err := s.Store.Save(session.SessionID, session); err != nil {
		return nil, err
	}
	return NewSessionView(session), nil
}

// GetSession returns the current view of a session.
func (s *DefaultBookingSessionService) GetSession(sessionID, userID string) (*SessionView, error) {
	session, err := s.load(sessionID, userID)
	if err != nil {
		return nil, err
	}
	return NewSessionView(*session), nil
}

// SetDate picks a calendar date. The schedule selection is cleared
// unconditionally, even when the date is unchanged.
func (s *DefaultBookingSessionService) SetDate(sessionID, userID, date string) (*SessionView, error) {
	return s.mutate(sessionID, userID, func(session *models.BookingSession) {
		session.SetDate(date)
	})
}

// SetScheduleID picks a time slot. An empty ID clears the selection.
func (s *DefaultBookingSessionService) SetScheduleID(sessionID, userID, scheduleID string) (*SessionView, error) {
	return s.mutate(sessionID, userID, func(session *models.BookingSession) {
		session.SetScheduleID(scheduleID)
	})
}

// IncreaseHeadCount adds one participant.
func (s *DefaultBookingSessionService) IncreaseHeadCount(sessionID, userID string) (*SessionView, error) {
	return s.mutate(sessionID, userID, func(session *models.BookingSession) {
		session.IncreaseHeadCount()
	})
}

// DecreaseHeadCount removes one participant, floored at 1.
func (s *DefaultBookingSessionService) DecreaseHeadCount(sessionID, userID string) (*SessionView, error) {
	return s.mutate(sessionID, userID, func(session *models.BookingSession) {
		session.DecreaseHeadCount()
	})
}

// Submit runs the reservation-creation state machine:
// idle → submitting → succeeded | failed.
//
// When the session is not ready to reserve, or a submission is already in
// flight, Submit is a no-op and the unchanged view is returned; the
// client's controls are expected to be disabled in both cases. The
// submitting status is persisted before the reservation call, so a rapid
// second request observes it and backs off. A failed submission stays
// retriable; a successful one keeps the session until the panel closes
// it. If the session was closed while the call was in flight, the late
// result is dropped.
func (s *DefaultBookingSessionService) Submit(sessionID, userID string) (*SessionView, error) {
	session, err := s.load(sessionID, userID)
	if err != nil {
		return nil, err
	}

	if !session.IsReadyToReserve() {
		return NewSessionView(*session), nil
	}

	session.Submission = models.SubmissionSubmitting
	session.SubmissionError = ""
	if err := s.Store.Save(sessionID, *session); err != nil {
		return nil, err
	}

	reservation, createErr := s.Reservations.Create(session.ActivityID, session.UserID, models.ReservationCreateRequest{
		ScheduleID: session.SelectedScheduleID,
		HeadCount:  session.HeadCount,
	})

	if createErr != nil {
		session.Submission = models.SubmissionFailed
		session.SubmissionError = createErr.Error()
		if session.SubmissionError == "" {
			session.SubmissionError = genericSubmitFailure
		}
		s.notifyFailed(*session, createErr)
	} else {
		session.Submission = models.SubmissionSucceeded
		session.ReservationID = reservation.ID
		s.notifyCreated(*session, *reservation)
	}

	// Drop the result if the session was closed mid-flight.
	if _, err := s.Store.Get(sessionID); err == ErrSessionNotFound {
		return NewSessionView(*session), nil
	}
	if err := s.Store.Save(sessionID, *session); err != nil {
		return nil, err
	}
	return NewSessionView(*session), nil
}

// CloseSession discards the session. The selection is not reusable
// afterwards; reopening the panel starts a fresh session.
func (s *DefaultBookingSessionService) CloseSession(sessionID, userID string) error {
	if _, err := s.load(sessionID, userID); err != nil {
		return err
	}
	return s.Store.Delete(sessionID)
}

func (s *DefaultBookingSessionService) load(sessionID, userID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionForbidden
	}
	return session, nil
}

func (s *DefaultBookingSessionService) mutate(sessionID, userID string, fn func(*models.BookingSession)) (*SessionView, error) {
	session, err := s.load(sessionID, userID)
	if err != nil {
		return nil, err
	}
	fn(session)
	if err := s.Store.Save(sessionID, *session); err != nil {
		return nil, err
	}
	return NewSessionView(*session), nil
}

func (s *DefaultBookingSessionService) notifyCreated(session models.BookingSession, reservation models.Reservation) {
	if s.Notifier != nil {
		s.Notifier.ReservationCreated(session, reservation)
	}
}

func (s *DefaultBookingSessionService) notifyFailed(session models.BookingSession, err error) {
	if s.Notifier != nil {
		s.Notifier.ReservationFailed(session, err)
	}
}
