package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/booking/model"
)

func TestNightsBetween(t *testing.T) {
	base := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three whole nights",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, 3),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, 1),
			want:     1,
		},
		{
			name:     "partial night rounds up",
			checkIn:  base,
			checkOut: base.Add(30 * time.Hour),
			want:     2,
		},
		{
			name:     "under one night still charges one",
			checkIn:  base,
			checkOut: base.Add(6 * time.Hour),
			want:     1,
		},
		{
			name:     "zero duration",
			checkIn:  base,
			checkOut: base,
			want:     0,
		},
		{
			name:     "negative duration",
			checkIn:  base.AddDate(0, 0, 1),
			checkOut: base,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestBookingNights(t *testing.T) {
	booking := model.Booking{
		CheckIn:  time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2030, 6, 5, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 4, booking.Nights())
}
