package models

import "time"

// Schedule is one bookable time window on one calendar date of an activity.
// Immutable once created; reservations reference it by ID.
type Schedule struct {
	ID        string `json:"id" bson:"id"`
	Date      string `json:"date" bson:"date"`           // "2006-01-02"
	StartTime string `json:"startTime" bson:"startTime"` // "15:04"
	EndTime   string `json:"endTime" bson:"endTime"`     // "15:04"
}

// ScheduleTime is the (id, startTime, endTime) view exposed to clients
// once a date has been picked.
type ScheduleTime struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// EndsBefore reports whether the schedule's end lies strictly before the
// given instant. Malformed schedules are treated as not yet ended.
func (s Schedule) EndsBefore(t time.Time) bool {
	end, err := time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.EndTime, t.Location())
	if err != nil {
		return false
	}
	return end.Before(t)
}
