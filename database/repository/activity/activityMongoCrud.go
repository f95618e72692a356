package activityRepo

import (
	"fmt"
	"time"

	"whattoday/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new activity document.
func (r *MongoActivityRepo) Create(activity *models.Activity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing activity document.
func (r *MongoActivityRepo) Update(activity *models.Activity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	activity.UpdatedAt = time.Now()
	filter := bson.M{"id": activity.ID}
	update := bson.M{"$set": activity}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update activity with id %s: %w", activity.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("activity with id %s not found", activity.ID)
	}
	return nil
}

// UpdateWithDocument applies a raw update document to an activity.
func (r *MongoActivityRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update activity with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("activity with id %s not found", id)
	}
	return nil
}

// Delete removes an activity document by its ID.
func (r *MongoActivityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete activity with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("activity with id %s not found", id)
	}
	return nil
}

// GetByID fetches a single activity document, or nil when absent.
func (r *MongoActivityRepo) GetByID(id string) (*models.Activity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var activity models.Activity
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&activity)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity with id %s: %w", id, err)
	}
	return &activity, nil
}
