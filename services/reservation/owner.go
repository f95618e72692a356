package reservation

import (
	"fmt"
	"time"

	"whattoday/models"

	"go.mongodb.org/mongo-driver/bson"
)

// requireOwner loads the activity and verifies ownerID owns it.
func (s *DefaultReservationService) requireOwner(activityID, ownerID string) error {
	activity, err := s.ActivityRepo.GetByID(activityID)
	if err != nil {
		return err
	}
	if activity == nil {
		return fmt.Errorf("activity with id %s not found", activityID)
	}
	if activity.UserID != ownerID {
		return fmt.Errorf("activity belongs to another user")
	}
	return nil
}

// Dashboard returns per-date reservation counts for one month of the
// host's activity calendar.
func (s *DefaultReservationService) Dashboard(activityID, ownerID string, year, month int) ([]models.ReservationDashboardDay, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if err := s.requireOwner(activityID, ownerID); err != nil {
		return nil, err
	}
	monthPrefix := fmt.Sprintf("%04d-%02d", year, month)
	return s.Repo.DashboardForMonth(activityID, monthPrefix)
}

// ReservedSchedule returns per-schedule reservation counts for one date
// of the host's activity.
func (s *DefaultReservationService) ReservedSchedule(activityID, ownerID, date string) ([]models.ReservedScheduleSummary, error) {
	if err := s.requireOwner(activityID, ownerID); err != nil {
		return nil, err
	}
	return s.Repo.ReservedSchedulesForDate(activityID, date)
}

// ListForSchedule returns the reservations behind one status tab of the
// host's reservation panel.
func (s *DefaultReservationService) ListForSchedule(activityID, ownerID, scheduleID, status string) ([]models.Reservation, error) {
	if err := s.requireOwner(activityID, ownerID); err != nil {
		return nil, err
	}
	reservations, err := s.Repo.ListBySchedule(activityID, scheduleID, status)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range reservations {
		reservations[i].Status = reservations[i].EffectiveStatus(now)
	}
	return reservations, nil
}

// UpdateStatus approves or declines one pending reservation. Each
// reservation is acted on individually; approving one never implicitly
// declines the others on the same schedule.
func (s *DefaultReservationService) UpdateStatus(activityID, ownerID, reservationID, status string) (*models.Reservation, error) {
	if status != models.ReservationConfirmed && status != models.ReservationDeclined {
		return nil, fmt.Errorf("status must be %q or %q", models.ReservationConfirmed, models.ReservationDeclined)
	}
	if err := s.requireOwner(activityID, ownerID); err != nil {
		return nil, err
	}

	reservation, err := s.Repo.GetByID(reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation with id %s not found", reservationID)
	}
	if reservation.ActivityID != activityID {
		return nil, fmt.Errorf("reservation %s does not belong to activity %s", reservationID, activityID)
	}
	if reservation.Status != models.ReservationPending {
		return nil, fmt.Errorf("only pending reservations can be approved or declined")
	}

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(reservationID, update); err != nil {
		return nil, err
	}
	reservation.Status = status
	return reservation, nil
}
