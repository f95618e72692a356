package booking

import "whattoday/models"

// ReservableDates returns the distinct calendar dates having at least one
// schedule, in first-seen order. Empty input yields an empty result.
func ReservableDates(schedules []models.Schedule) []string {
	seen := make(map[string]struct{}, len(schedules))
	dates := make([]string, 0, len(schedules))
	for _, s := range schedules {
		if _, ok := seen[s.Date]; ok {
			continue
		}
		seen[s.Date] = struct{}{}
		dates = append(dates, s.Date)
	}
	return dates
}

// TimesFor returns the schedules on the given date as (id, start, end)
// tuples, preserving the original order. No resorting happens here; the
// server-provided order is the display order.
func TimesFor(schedules []models.Schedule, date string) []models.ScheduleTime {
	times := make([]models.ScheduleTime, 0)
	for _, s := range schedules {
		if s.Date != date {
			continue
		}
		times = append(times, models.ScheduleTime{
			ID:        s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return times
}

// ScheduleByID looks a schedule up by ID, or nil when absent.
func ScheduleByID(schedules []models.Schedule, id string) *models.Schedule {
	for i := range schedules {
		if schedules[i].ID == id {
			return &schedules[i]
		}
	}
	return nil
}
