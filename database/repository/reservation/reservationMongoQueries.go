package reservationRepo

import (
	"fmt"
	"time"

	"whattoday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByUser returns a page of a user's reservations, newest first,
// optionally filtered by stored status.
func (r *MongoReservationRepo) ListByUser(userID, status string, page, size int) ([]models.Reservation, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations for user %s: %w", userID, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var results []models.Reservation
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return results, total, nil
}

// ListBySchedule returns reservations of one schedule of an activity,
// optionally filtered by stored status, in creation order.
func (r *MongoReservationRepo) ListBySchedule(activityID, scheduleID, status string) ([]models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"activity_id": activityID}
	if scheduleID != "" {
		filter["schedule_id"] = scheduleID
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for activity %s: %w", activityID, err)
	}
	defer cursor.Close(ctx)

	var results []models.Reservation
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return results, nil
}

// CountByActivity counts reservations that still block activity deletion
// (anything not declined or canceled).
func (r *MongoReservationRepo) CountByActivity(activityID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"activity_id": activityID,
		"status":      bson.M{"$nin": bson.A{models.ReservationDeclined, models.ReservationCanceled}},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations for activity %s: %w", activityID, err)
	}
	return count, nil
}

// DashboardForMonth aggregates per-date status counts for an activity.
// monthPrefix is "YYYY-MM"; dates are stored as "YYYY-MM-DD" strings so a
// prefix match selects the month. "completed" is not a stored status:
// confirmed rows whose window has passed are counted as completed, using
// a lexicographic compare on the "date end_time" stamp.
func (r *MongoReservationRepo) DashboardForMonth(activityID, monthPrefix string) ([]models.ReservationDashboardDay, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	nowStamp := time.Now().Format("2006-01-02 15:04")
	endStamp := bson.M{"$concat": bson.A{"$date", " ", "$end_time"}}
	isConfirmed := bson.M{"$eq": bson.A{"$status", models.ReservationConfirmed}}
	hasEnded := bson.M{"$lt": bson.A{endStamp, nowStamp}}

	pipeline := []bson.M{
		{"$match": bson.M{
			"activity_id": activityID,
			"date":        bson.M{"$regex": "^" + monthPrefix},
			"status":      bson.M{"$in": bson.A{models.ReservationPending, models.ReservationConfirmed}},
		}},
		{"$group": bson.M{
			"_id":       "$date",
			"pending":   bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.ReservationPending}}, 1, 0}}},
			"confirmed": bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$and": bson.A{isConfirmed, bson.M{"$not": hasEnded}}}, 1, 0}}},
			"completed": bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$and": bson.A{isConfirmed, hasEnded}}, 1, 0}}},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard for activity %s: %w", activityID, err)
	}
	defer cursor.Close(ctx)

	var results []models.ReservationDashboardDay
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard rows: %w", err)
	}
	return results, nil
}

// ReservedSchedulesForDate aggregates per-schedule status counts for one
// date of an activity.
func (r *MongoReservationRepo) ReservedSchedulesForDate(activityID, date string) ([]models.ReservedScheduleSummary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"activity_id": activityID,
			"date":        date,
		}},
		{"$group": bson.M{
			"_id":        "$schedule_id",
			"start_time": bson.M{"$first": "$start_time"},
			"end_time":   bson.M{"$first": "$end_time"},
			"pending":    bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.ReservationPending}}, 1, 0}}},
			"confirmed":  bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.ReservationConfirmed}}, 1, 0}}},
			"declined":   bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.ReservationDeclined}}, 1, 0}}},
		}},
		{"$sort": bson.M{"start_time": 1}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reserved schedules for activity %s: %w", activityID, err)
	}
	defer cursor.Close(ctx)

	var results []models.ReservedScheduleSummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode reserved schedule rows: %w", err)
	}
	return results, nil
}
