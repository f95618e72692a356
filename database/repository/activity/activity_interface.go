package activityRepo

import (
	"whattoday/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ActivityRepository defines persistence operations for activities.
type ActivityRepository interface {
	Create(activity *models.Activity) error
	Update(activity *models.Activity) error
	UpdateWithDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Activity, error)
	List(query models.ActivityQuery) ([]models.ActivitySummary, int64, error)
	ListByUser(userID string, page, size int) ([]models.ActivitySummary, int64, error)
}
