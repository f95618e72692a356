package activityRepo

import (
	"context"
	"time"

	"whattoday/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoActivityRepo is the MongoDB implementation of ActivityRepository.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo returns a repository bound to the "activities"
// collection.
func NewMongoActivityRepo() *MongoActivityRepo {
	return &MongoActivityRepo{coll: database.Collection("activities")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
