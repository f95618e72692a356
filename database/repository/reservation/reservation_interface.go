package reservationRepo

import (
	"whattoday/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(reservation *models.Reservation) error
	GetByID(id string) (*models.Reservation, error)
	UpdateWithDocument(id string, updateDoc bson.M) error
	ListByUser(userID, status string, page, size int) ([]models.Reservation, int64, error)
	ListBySchedule(activityID, scheduleID, status string) ([]models.Reservation, error)
	CountByActivity(activityID string) (int64, error)
	DashboardForMonth(activityID, monthPrefix string) ([]models.ReservationDashboardDay, error)
	ReservedSchedulesForDate(activityID, date string) ([]models.ReservedScheduleSummary, error)
}
