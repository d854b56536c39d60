package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
	"github.com/BruksfildServices01/barbershop-reservation/internal/testutil"
)

func TestSlots(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Skip("tz database unavailable")
	}

	// Saturday
	now := time.Date(2030, 6, 1, 15, 0, 0, 0, loc)
	service := &models.Service{ID: 7, DurationMinutes: 45}

	slots := Slots(service, now, loc)

	perDay := map[string]int{}
	for _, s := range slots {
		local := s.StartTime.In(loc)

		assert.Equal(t, time.UTC, s.StartTime.Location())
		assert.NotEqual(t, time.Sunday, local.Weekday())
		assert.True(t, local.After(now))
		assert.Equal(t, 45*time.Minute, s.EndTime.Sub(s.StartTime))
		assert.Equal(t, uint(7), s.ServiceID)
		assert.True(t, s.IsAvailable)

		assert.GreaterOrEqual(t, local.Hour(), OpeningHour)
		assert.LessOrEqual(t, local.Hour(), LastStartHour)

		perDay[local.Format("2006-01-02")]++
	}

	assert.Len(t, perDay, 12)
	for day, n := range perDay {
		assert.Equal(t, 18, n, day)
	}
	assert.Equal(t, time.Date(2030, 6, 3, 9, 0, 0, 0, loc), slots[0].StartTime.In(loc))
}

func TestRun_Idempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	opts := Options{
		AdminEmail:    "admin@example.com",
		AdminPassword: "Admin123",
		Timezone:      "UTC",
		Now:           time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	first, err := Run(ctx, db, opts, testutil.Logger())
	require.NoError(t, err)
	assert.True(t, first.AdminCreated)
	assert.Equal(t, len(defaultServices), first.Services)
	assert.Equal(t, len(defaultServices)*12*18, first.TimeSlots)

	second, err := Run(ctx, db, opts, testutil.Logger())
	require.NoError(t, err)
	assert.False(t, second.AdminCreated)
	assert.Zero(t, second.Services)
	assert.Zero(t, second.TimeSlots)

	var admins, services, slots int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error)
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	require.NoError(t, db.Model(&models.TimeSlot{}).Count(&slots).Error)

	assert.Equal(t, int64(1), admins)
	assert.Equal(t, int64(len(defaultServices)), services)
	assert.Equal(t, int64(first.TimeSlots), slots)
}
