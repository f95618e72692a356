package booking

import (
	"testing"

	"whattoday/models"

	"github.com/stretchr/testify/assert"
)

func sampleSchedules() []models.Schedule {
	return []models.Schedule{
		{ID: "1", Date: "2025-08-01", StartTime: "10:00", EndTime: "11:00"},
		{ID: "2", Date: "2025-08-01", StartTime: "13:00", EndTime: "14:00"},
		{ID: "3", Date: "2025-08-02", StartTime: "09:00", EndTime: "10:00"},
	}
}

func TestReservableDates(t *testing.T) {
	t.Run("distinct dates in first-seen order", func(t *testing.T) {
		dates := ReservableDates(sampleSchedules())
		assert.Equal(t, []string{"2025-08-01", "2025-08-02"}, dates)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, ReservableDates(nil))
		assert.Empty(t, ReservableDates([]models.Schedule{}))
	})

	t.Run("no duplicates even with interleaved dates", func(t *testing.T) {
		schedules := []models.Schedule{
			{ID: "a", Date: "2025-09-03"},
			{ID: "b", Date: "2025-09-01"},
			{ID: "c", Date: "2025-09-03"},
			{ID: "d", Date: "2025-09-01"},
		}
		assert.Equal(t, []string{"2025-09-03", "2025-09-01"}, ReservableDates(schedules))
	})
}

func TestTimesFor(t *testing.T) {
	t.Run("returns schedules of the date in original order", func(t *testing.T) {
		times := TimesFor(sampleSchedules(), "2025-08-01")
		assert.Equal(t, []models.ScheduleTime{
			{ID: "1", StartTime: "10:00", EndTime: "11:00"},
			{ID: "2", StartTime: "13:00", EndTime: "14:00"},
		}, times)
	})

	t.Run("date without schedules yields empty output", func(t *testing.T) {
		assert.Empty(t, TimesFor(sampleSchedules(), "2025-08-03"))
	})

	t.Run("empty date matches nothing", func(t *testing.T) {
		assert.Empty(t, TimesFor(sampleSchedules(), ""))
	})
}

func TestScheduleByID(t *testing.T) {
	schedules := sampleSchedules()

	found := ScheduleByID(schedules, "2")
	assert.NotNil(t, found)
	assert.Equal(t, "2025-08-01", found.Date)

	assert.Nil(t, ScheduleByID(schedules, "missing"))
}
