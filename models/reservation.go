package models

import "time"

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationDeclined  = "declined"
	ReservationCanceled  = "canceled"
	ReservationCompleted = "completed"
)

// Reservation is one booking of a schedule by a user. The schedule's
// date and time window are denormalized so reservation views never need
// the activity document.
type Reservation struct {
	ID         string    `json:"id" bson:"id"`
	ActivityID string    `json:"activityId" bson:"activity_id"`
	ScheduleID string    `json:"scheduleId" bson:"schedule_id"`
	UserID     string    `json:"userId" bson:"user_id"`
	OwnerID    string    `json:"-" bson:"owner_id"`
	Status     string    `json:"status" bson:"status"`
	HeadCount  int       `json:"headCount" bson:"head_count"`
	TotalPrice int       `json:"totalPrice" bson:"total_price"`
	Date       string    `json:"date" bson:"date"`
	StartTime  string    `json:"startTime" bson:"start_time"`
	EndTime    string    `json:"endTime" bson:"end_time"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updated_at"`
}

// EffectiveStatus rolls a confirmed reservation over to completed once
// its time window has passed. Stored documents are never mutated for
// this; reads apply the rollover on the fly.
func (r Reservation) EffectiveStatus(now time.Time) string {
	if r.Status != ReservationConfirmed {
		return r.Status
	}
	s := Schedule{Date: r.Date, EndTime: r.EndTime}
	if s.EndsBefore(now) {
		return ReservationCompleted
	}
	return r.Status
}

// ReservationCreateRequest is the payload for booking a schedule directly.
type ReservationCreateRequest struct {
	ScheduleID string `json:"scheduleId" binding:"required"`
	HeadCount  int    `json:"headCount" binding:"required,min=1"`
}

// ReservationDashboardDay aggregates a host's reservations for one
// calendar date of the monthly dashboard.
type ReservationDashboardDay struct {
	Date      string `json:"date" bson:"_id"`
	Pending   int    `json:"pending" bson:"pending"`
	Confirmed int    `json:"confirmed" bson:"confirmed"`
	Completed int    `json:"completed" bson:"completed"`
}

// ReservedScheduleSummary lists per-schedule reservation counts for one
// date of a host's activity.
type ReservedScheduleSummary struct {
	ScheduleID string `json:"scheduleId" bson:"_id"`
	StartTime  string `json:"startTime" bson:"start_time"`
	EndTime    string `json:"endTime" bson:"end_time"`
	Pending    int    `json:"pending" bson:"pending"`
	Confirmed  int    `json:"confirmed" bson:"confirmed"`
	Declined   int    `json:"declined" bson:"declined"`
}
