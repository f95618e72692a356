package activity

import (
	"fmt"

	"whattoday/models"
	"whattoday/services/booking"
)

// List returns a page of activity summaries.
func (s *DefaultActivityService) List(query models.ActivityQuery) ([]models.ActivitySummary, int64, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Size < 1 || query.Size > 50 {
		query.Size = 20
	}
	return s.Repo.List(query)
}

// GetByID returns the full activity document.
func (s *DefaultActivityService) GetByID(id string) (*models.Activity, error) {
	activity, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, fmt.Errorf("activity with id %s not found", id)
	}
	return activity, nil
}

// AvailableScheduleForMonth groups the activity's schedules into per-date
// time lists for one calendar month, preserving the stored order within
// each date.
func (s *DefaultActivityService) AvailableScheduleForMonth(activityID string, year, month int) ([]AvailableSchedule, error) {
	activity, err := s.GetByID(activityID)
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("%04d-%02d", year, month)
	monthly := make([]models.Schedule, 0, len(activity.Schedules))
	for _, sch := range activity.Schedules {
		if len(sch.Date) >= len(prefix) && sch.Date[:len(prefix)] == prefix {
			monthly = append(monthly, sch)
		}
	}

	result := make([]AvailableSchedule, 0)
	for _, date := range booking.ReservableDates(monthly) {
		result = append(result, AvailableSchedule{
			Date:  date,
			Times: booking.TimesFor(monthly, date),
		})
	}
	return result, nil
}

// ListMine returns a page of the host's own activities.
func (s *DefaultActivityService) ListMine(userID string, page, size int) ([]models.ActivitySummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 50 {
		size = 20
	}
	return s.Repo.ListByUser(userID, page, size)
}
