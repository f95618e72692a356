package activityRepo

import (
	"fmt"
	"time"

	"whattoday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// summaryProjection limits list queries to the summary fields.
var summaryProjection = bson.M{
	"id": 1, "user_id": 1, "title": 1, "category": 1, "price": 1,
	"address": 1, "banner_image_url": 1, "rating": 1, "review_count": 1,
	"created_at": 1,
}

// List returns a page of activity summaries matching the query, plus the
// total match count.
func (r *MongoActivityRepo) List(query models.ActivityQuery) ([]models.ActivitySummary, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.Keyword != "" {
		filter["title"] = bson.M{"$regex": query.Keyword, "$options": "i"}
	}

	var sort bson.D
	switch query.Sort {
	case "price_asc":
		sort = bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		sort = bson.D{{Key: "price", Value: -1}}
	default:
		sort = bson.D{{Key: "created_at", Value: -1}}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	opts := options.Find().
		SetProjection(summaryProjection).
		SetSort(sort).
		SetSkip(int64((query.Page - 1) * query.Size)).
		SetLimit(int64(query.Size))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.ActivitySummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("failed to decode activities: %w", err)
	}
	return results, total, nil
}

// ListByUser returns a page of the host's own activities, newest first.
func (r *MongoActivityRepo) ListByUser(userID string, page, size int) ([]models.ActivitySummary, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count activities for user %s: %w", userID, err)
	}

	opts := options.Find().
		SetProjection(summaryProjection).
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var results []models.ActivitySummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("failed to decode activities: %w", err)
	}
	return results, total, nil
}
