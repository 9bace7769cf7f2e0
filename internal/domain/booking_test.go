package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_OccupiesSlot(t *testing.T) {
	tests := []struct {
		name     string
		status   BookingStatus
		occupies bool
	}{
		{"pending occupies", StatusPending, true},
		{"confirmed occupies", StatusConfirmed, true},
		{"cancelled does not occupy", StatusCancelled, false},
		{"completed does not occupy", StatusCompleted, false},
		{"cancelled uppercase does not occupy", BookingStatus("CANCELLED"), false},
		{"completed mixed case does not occupy", BookingStatus("Completed"), false},
		{"unknown status occupies", BookingStatus("on_hold"), true},
		{"empty status occupies", BookingStatus(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.occupies, b.OccupiesSlot())
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
}

func TestBooking_LocalInterval(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	t.Run("converts UTC instants to local time", func(t *testing.T) {
		// 07:00 UTC == 10:00 MSK
		b := &Booking{
			StartTime: time.Date(2026, 10, 15, 7, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
		}

		start, end := b.LocalInterval(moscow)

		assert.Equal(t, 10, start.Hour())
		assert.Equal(t, 12, end.Hour())
		assert.Equal(t, moscow, start.Location())
	})

	t.Run("zero duration is clamped to one hour", func(t *testing.T) {
		at := time.Date(2026, 10, 15, 7, 30, 0, 0, time.UTC)
		b := &Booking{StartTime: at, EndTime: at}

		start, end := b.LocalInterval(moscow)

		assert.Equal(t, start.Add(time.Hour), end)
	})

	t.Run("negative duration is clamped to one hour", func(t *testing.T) {
		b := &Booking{
			StartTime: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
		}

		start, end := b.LocalInterval(moscow)

		assert.Equal(t, start.Add(time.Hour), end)
	})
}
