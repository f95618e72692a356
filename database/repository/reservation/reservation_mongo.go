package reservationRepo

import (
	"context"
	"time"

	"whattoday/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReservationRepo is the MongoDB implementation of ReservationRepository.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a repository bound to the
// "reservations" collection.
func NewMongoReservationRepo() *MongoReservationRepo {
	return &MongoReservationRepo{coll: database.Collection("reservations")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
