package activity

import (
	"fmt"

	"whattoday/models"
	"whattoday/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates and publishes a new activity owned by userID. Each
// schedule gets a fresh ID; the submitted schedule set must be free of
// overlapping windows.
func (s *DefaultActivityService) Create(userID string, req models.ActivityCreateRequest) (*models.Activity, error) {
	if req.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if err := ValidateSchedules(req.Schedules); err != nil {
		return nil, err
	}

	schedules := make([]models.Schedule, len(req.Schedules))
	for i, sch := range req.Schedules {
		sch.ID = uuid.New().String()
		schedules[i] = sch
	}

	activity := &models.Activity{
		ID:             uuid.New().String(),
		UserID:         userID,
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		Price:          req.Price,
		Address:        req.Address,
		BannerImageURL: req.BannerImageURL,
		SubImageURLs:   req.SubImageURLs,
		Schedules:      schedules,
	}

	if err := s.Repo.Create(activity); err != nil {
		utils.GetLogger().Error("Create activity failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create activity, please try again")
	}
	return activity, nil
}

// Update applies a partial update to one of the host's activities.
// Schedules are edited by add/remove lists; the resulting set is
// re-validated for overlaps as a whole.
func (s *DefaultActivityService) Update(activityID, userID string, req models.ActivityUpdateRequest) (*models.Activity, error) {
	activity, err := s.Repo.GetByID(activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, fmt.Errorf("activity with id %s not found", activityID)
	}
	if activity.UserID != userID {
		return nil, fmt.Errorf("activity belongs to another user")
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Category != nil {
		activity.Category = *req.Category
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("price must not be negative")
		}
		activity.Price = *req.Price
	}
	if req.Address != nil {
		activity.Address = *req.Address
	}
	if req.BannerImageURL != nil {
		activity.BannerImageURL = *req.BannerImageURL
	}

	if len(req.SubImageURLsToRemove) > 0 {
		remove := make(map[string]struct{}, len(req.SubImageURLsToRemove))
		for _, u := range req.SubImageURLsToRemove {
			remove[u] = struct{}{}
		}
		kept := activity.SubImageURLs[:0]
		for _, u := range activity.SubImageURLs {
			if _, ok := remove[u]; !ok {
				kept = append(kept, u)
			}
		}
		activity.SubImageURLs = kept
	}
	activity.SubImageURLs = append(activity.SubImageURLs, req.SubImageURLsToAdd...)

	if len(req.ScheduleIDsToRemove) > 0 {
		remove := make(map[string]struct{}, len(req.ScheduleIDsToRemove))
		for _, id := range req.ScheduleIDsToRemove {
			remove[id] = struct{}{}
		}
		kept := activity.Schedules[:0]
		for _, sch := range activity.Schedules {
			if _, ok := remove[sch.ID]; !ok {
				kept = append(kept, sch)
			}
		}
		activity.Schedules = kept
	}
	for _, sch := range req.SchedulesToAdd {
		sch.ID = uuid.New().String()
		activity.Schedules = append(activity.Schedules, sch)
	}

	if err := ValidateSchedules(activity.Schedules); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(activity); err != nil {
		utils.GetLogger().Error("Update activity failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update activity, please try again")
	}
	return activity, nil
}

// Delete removes one of the host's activities. An activity with live
// reservations cannot be removed.
func (s *DefaultActivityService) Delete(activityID, userID string) error {
	activity, err := s.Repo.GetByID(activityID)
	if err != nil {
		return err
	}
	if activity == nil {
		return fmt.Errorf("activity with id %s not found", activityID)
	}
	if activity.UserID != userID {
		return fmt.Errorf("activity belongs to another user")
	}

	count, err := s.ReservationRepo.CountByActivity(activityID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("activity has existing reservations and cannot be deleted")
	}

	return s.Repo.Delete(activityID)
}
