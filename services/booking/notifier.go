package booking

import (
	"whattoday/models"
	"whattoday/utils"

	"go.uber.org/zap"
)

// Notifier receives the outcome of a reservation submission. Callers use
// it to close the booking panel and refresh calendar views on success,
// or to surface a toast on failure.
type Notifier interface {
	ReservationCreated(session models.BookingSession, reservation models.Reservation)
	ReservationFailed(session models.BookingSession, err error)
}

// LogNotifier is the default Notifier; it only logs.
type LogNotifier struct{}

func (LogNotifier) ReservationCreated(session models.BookingSession, reservation models.Reservation) {
	utils.GetLogger().Info("reservation created",
		zap.String("sessionId", session.SessionID),
		zap.String("reservationId", reservation.ID),
		zap.String("activityId", reservation.ActivityID),
		zap.Int("headCount", reservation.HeadCount),
	)
}

func (LogNotifier) ReservationFailed(session models.BookingSession, err error) {
	utils.GetLogger().Warn("reservation submission failed",
		zap.String("sessionId", session.SessionID),
		zap.String("activityId", session.ActivityID),
		zap.Error(err),
	)
}
