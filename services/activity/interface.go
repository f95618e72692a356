package activity

import (
	activityRepo "whattoday/database/repository/activity"
	reservationRepo "whattoday/database/repository/reservation"
	"whattoday/models"
)

// AvailableSchedule is the month view of an activity's bookable dates.
type AvailableSchedule struct {
	Date  string                `json:"date"`
	Times []models.ScheduleTime `json:"times"`
}

// ActivityService defines catalog operations for activities.
type ActivityService interface {
	List(query models.ActivityQuery) ([]models.ActivitySummary, int64, error)
	GetByID(id string) (*models.Activity, error)
	AvailableScheduleForMonth(activityID string, year, month int) ([]AvailableSchedule, error)
	Create(userID string, req models.ActivityCreateRequest) (*models.Activity, error)
	Update(activityID, userID string, req models.ActivityUpdateRequest) (*models.Activity, error)
	Delete(activityID, userID string) error
	ListMine(userID string, page, size int) ([]models.ActivitySummary, int64, error)
}

// DefaultActivityService is the production implementation.
type DefaultActivityService struct {
	Repo            activityRepo.ActivityRepository
	ReservationRepo reservationRepo.ReservationRepository
}
