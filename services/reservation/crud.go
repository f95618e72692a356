package reservation

import (
	"fmt"
	"time"

	"whattoday/models"
	"whattoday/services/booking"
	"whattoday/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Create books a schedule of an activity for the given user. The
// schedule must belong to the activity and must not lie in the past; the
// total price is derived from the activity's per-head price. New
// reservations start as pending until the host approves them.
func (s *DefaultReservationService) Create(activityID, userID string, req models.ReservationCreateRequest) (*models.Reservation, error) {
	if req.HeadCount < 1 {
		return nil, fmt.Errorf("head count must be at least 1")
	}

	activity, err := s.ActivityRepo.GetByID(activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, fmt.Errorf("activity with id %s not found", activityID)
	}

	schedule := booking.ScheduleByID(activity.Schedules, req.ScheduleID)
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s does not belong to activity %s", req.ScheduleID, activityID)
	}
	if schedule.EndsBefore(time.Now()) {
		return nil, fmt.Errorf("schedule %s has already ended", req.ScheduleID)
	}

	reservation := &models.Reservation{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		ScheduleID: schedule.ID,
		UserID:     userID,
		OwnerID:    activity.UserID,
		Status:     models.ReservationPending,
		HeadCount:  req.HeadCount,
		TotalPrice: booking.ComputeTotal(activity.Price, req.HeadCount),
		Date:       schedule.Date,
		StartTime:  schedule.StartTime,
		EndTime:    schedule.EndTime,
	}

	if err := s.Repo.Create(reservation); err != nil {
		utils.GetLogger().Error("Create reservation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create reservation, please try again")
	}
	return reservation, nil
}

// ListMine returns a page of the user's reservations. Statuses are
// reported with the completed rollover applied.
func (s *DefaultReservationService) ListMine(userID, status string, page, size int) ([]models.Reservation, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 50 {
		size = 20
	}

	// "completed" is derived, not stored; query confirmed rows and filter.
	storedStatus := status
	if status == models.ReservationCompleted {
		storedStatus = models.ReservationConfirmed
	}

	reservations, total, err := s.Repo.ListByUser(userID, storedStatus, page, size)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	result := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		r.Status = r.EffectiveStatus(now)
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, r)
	}
	return result, total, nil
}

// Cancel withdraws one of the user's reservations. Only pending
// reservations can be canceled; approved ones need the host.
func (s *DefaultReservationService) Cancel(reservationID, userID string) (*models.Reservation, error) {
	reservation, err := s.Repo.GetByID(reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation with id %s not found", reservationID)
	}
	if reservation.UserID != userID {
		return nil, fmt.Errorf("reservation belongs to another user")
	}
	if reservation.Status != models.ReservationPending {
		return nil, fmt.Errorf("only pending reservations can be canceled")
	}

	update := bson.M{"$set": bson.M{
		"status":     models.ReservationCanceled,
		"updated_at": time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(reservationID, update); err != nil {
		return nil, err
	}
	reservation.Status = models.ReservationCanceled
	return reservation, nil
}
