package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

func validInput() ServiceInput {
	return ServiceInput{
		Name:            "Haircut",
		Description:     "Classic cut",
		Price:           30,
		DurationMinutes: 30,
	}
}

func TestServiceInputValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ServiceInput)
		field  string
	}{
		{"valid", func(*ServiceInput) {}, ""},
		{"missing name", func(in *ServiceInput) { in.Name = "" }, "name"},
		{"zero price", func(in *ServiceInput) { in.Price = 0 }, "price"},
		{"negative price", func(in *ServiceInput) { in.Price = -5 }, "price"},
		{"duration too long", func(in *ServiceInput) { in.DurationMinutes = 500 }, "duration_minutes"},
		{"duration too short", func(in *ServiceInput) { in.DurationMinutes = 4 }, "duration_minutes"},
		{"long name", func(in *ServiceInput) { in.Name = string(make([]byte, 101)) }, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var ve httperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestServiceInputNormalize(t *testing.T) {
	in := ServiceInput{Name: "  Shave ", Price: 10}
	in.Normalize()

	assert.Equal(t, "Shave", in.Name)
	assert.Equal(t, DefaultDurationMinutes, in.DurationMinutes)
}

func TestServiceInputApplyKeepsActiveFlag(t *testing.T) {
	s := &models.Service{IsActive: true}

	in := validInput()
	in.Apply(s)
	assert.True(t, s.IsActive)

	off := false
	in.IsActive = &off
	in.Apply(s)
	assert.False(t, s.IsActive)
	assert.Equal(t, "Haircut", s.Name)
}

func TestNewTimeSlot(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	start := time.Date(2026, 5, 4, 9, 0, 0, 0, loc)

	slot := NewTimeSlot(&models.Service{ID: 7, DurationMinutes: 45}, start)

	assert.Equal(t, uint(7), slot.ServiceID)
	assert.Equal(t, time.UTC, slot.StartTime.Location())
	assert.Equal(t, time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC), slot.StartTime)
	assert.Equal(t, 45*time.Minute, slot.EndTime.Sub(slot.StartTime))
	assert.True(t, slot.IsAvailable)
}
