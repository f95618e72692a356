package activity

import (
	"testing"

	"whattoday/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateSchedules(t *testing.T) {
	t.Run("valid non-overlapping windows", func(t *testing.T) {
		err := ValidateSchedules([]models.Schedule{
			{Date: "2025-08-01", StartTime: "10:00", EndTime: "11:00"},
			{Date: "2025-08-01", StartTime: "13:00", EndTime: "14:00"},
			{Date: "2025-08-02", StartTime: "10:00", EndTime: "11:00"},
		})
		assert.NoError(t, err)
	})

	t.Run("adjacent windows do not overlap", func(t *testing.T) {
		err := ValidateSchedules([]models.Schedule{
			{Date: "2025-08-01", StartTime: "10:00", EndTime: "11:00"},
			{Date: "2025-08-01", StartTime: "11:00", EndTime: "12:00"},
		})
		assert.NoError(t, err)
	})

	t.Run("overlapping windows on the same date are rejected", func(t *testing.T) {
		err := ValidateSchedules([]models.Schedule{
			{Date: "2025-08-01", StartTime: "10:00", EndTime: "12:00"},
			{Date: "2025-08-01", StartTime: "11:00", EndTime: "13:00"},
		})
		assert.ErrorContains(t, err, "overlaps")
	})

	t.Run("same window on different dates is fine", func(t *testing.T) {
		err := ValidateSchedules([]models.Schedule{
			{Date: "2025-08-01", StartTime: "10:00", EndTime: "12:00"},
			{Date: "2025-08-02", StartTime: "10:00", EndTime: "12:00"},
		})
		assert.NoError(t, err)
	})

	t.Run("end must be after start", func(t *testing.T) {
		err := ValidateSchedules([]models.Schedule{
			{Date: "2025-08-01", StartTime: "11:00", EndTime: "11:00"},
		})
		assert.ErrorContains(t, err, "must be after")
	})

	t.Run("malformed date", func(t *testing.T) {
		err := ValidateSchedules([]models.Schedule{
			{Date: "08/01/2025", StartTime: "10:00", EndTime: "11:00"},
		})
		assert.ErrorContains(t, err, "invalid schedule date")
	})

	t.Run("malformed time", func(t *testing.T) {
		err := ValidateSchedules([]models.Schedule{
			{Date: "2025-08-01", StartTime: "10am", EndTime: "11:00"},
		})
		assert.ErrorContains(t, err, "invalid schedule start time")
	})
}
