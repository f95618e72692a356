package reservation

import (
	activityRepo "whattoday/database/repository/activity"
	reservationRepo "whattoday/database/repository/reservation"
	"whattoday/models"
)

// ReservationService defines booking-side and host-side reservation
// operations.
type ReservationService interface {
	Create(activityID, userID string, req models.ReservationCreateRequest) (*models.Reservation, error)
	ListMine(userID, status string, page, size int) ([]models.Reservation, int64, error)
	Cancel(reservationID, userID string) (*models.Reservation, error)

	// Host-side operations; ownerID must own the activity.
	Dashboard(activityID, ownerID string, year, month int) ([]models.ReservationDashboardDay, error)
	ReservedSchedule(activityID, ownerID, date string) ([]models.ReservedScheduleSummary, error)
	ListForSchedule(activityID, ownerID, scheduleID, status string) ([]models.Reservation, error)
	UpdateStatus(activityID, ownerID, reservationID, status string) (*models.Reservation, error)
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Repo         reservationRepo.ReservationRepository
	ActivityRepo activityRepo.ActivityRepository
}
