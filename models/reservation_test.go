package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC)

	t.Run("confirmed rolls over to completed after the window ends", func(t *testing.T) {
		r := Reservation{Status: ReservationConfirmed, Date: "2025-08-01", EndTime: "11:00"}
		assert.Equal(t, ReservationCompleted, r.EffectiveStatus(now))
	})

	t.Run("confirmed stays confirmed before the window ends", func(t *testing.T) {
		r := Reservation{Status: ReservationConfirmed, Date: "2025-08-03", EndTime: "11:00"}
		assert.Equal(t, ReservationConfirmed, r.EffectiveStatus(now))
	})

	t.Run("non-confirmed statuses never roll over", func(t *testing.T) {
		for _, status := range []string{ReservationPending, ReservationDeclined, ReservationCanceled} {
			r := Reservation{Status: status, Date: "2025-08-01", EndTime: "11:00"}
			assert.Equal(t, status, r.EffectiveStatus(now))
		}
	})
}
