package activity

import (
	"fmt"
	"time"

	"whattoday/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidateSchedules rejects malformed time windows and overlapping
// windows on the same date. Windows are half-open [start, end), so a
// window starting exactly when another ends is fine.
func ValidateSchedules(schedules []models.Schedule) error {
	type window struct {
		start, end time.Time
	}
	byDate := make(map[string][]window)

	for _, s := range schedules {
		if _, err := time.Parse(dateLayout, s.Date); err != nil {
			return fmt.Errorf("invalid schedule date %q", s.Date)
		}
		start, err := time.Parse(timeLayout, s.StartTime)
		if err != nil {
			return fmt.Errorf("invalid schedule start time %q", s.StartTime)
		}
		end, err := time.Parse(timeLayout, s.EndTime)
		if err != nil {
			return fmt.Errorf("invalid schedule end time %q", s.EndTime)
		}
		if !end.After(start) {
			return fmt.Errorf("schedule on %s: end time %s must be after start time %s", s.Date, s.EndTime, s.StartTime)
		}

		for _, w := range byDate[s.Date] {
			if start.Before(w.end) && w.start.Before(end) {
				return fmt.Errorf("schedule on %s: time window %s-%s overlaps an existing window", s.Date, s.StartTime, s.EndTime)
			}
		}
		byDate[s.Date] = append(byDate[s.Date], window{start: start, end: end})
	}
	return nil
}
