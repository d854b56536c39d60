package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	dbpkg "github.com/BruksfildServices01/barbershop-reservation/internal/db"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// NewDB returns a migrated private in-memory SQLite database. A single
// connection serializes transactions the way row locks do on PostgreSQL.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dbpkg.SQLiteDSN(dsn)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func Logger() *zap.Logger {
	return zap.NewNop()
}

// ======================================================
// FIXTURES
// ======================================================

func CreateUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	u := models.User{
		FirstName:    "Test",
		LastName:     role,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func CreateService(t *testing.T, db *gorm.DB, name string, duration int) models.Service {
	t.Helper()

	s := models.Service{
		Name:            name,
		Price:           30,
		DurationMinutes: duration,
		IsActive:        true,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func CreateSlot(t *testing.T, db *gorm.DB, service models.Service, start time.Time) models.TimeSlot {
	t.Helper()

	start = start.UTC().Truncate(time.Second)
	slot := models.TimeSlot{
		ServiceID:   service.ID,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(service.DurationMinutes) * time.Minute),
		IsAvailable: true,
	}
	require.NoError(t, db.Create(&slot).Error)
	return slot
}

func ReloadSlot(t *testing.T, db *gorm.DB, id uint) models.TimeSlot {
	t.Helper()

	var slot models.TimeSlot
	require.NoError(t, db.First(&slot, id).Error)
	return slot
}

func ReloadReservation(t *testing.T, db *gorm.DB, id uint) models.Reservation {
	t.Helper()

	var r models.Reservation
	require.NoError(t, db.First(&r, id).Error)
	return r
}

// AssertSlotInvariant checks that every slot is available exactly when no
// pending or approved reservation points at it.
func AssertSlotInvariant(t *testing.T, db *gorm.DB) {
	t.Helper()

	var slots []models.TimeSlot
	require.NoError(t, db.Find(&slots).Error)

	for _, slot := range slots {
		var live int64
		require.NoError(t, db.Model(&models.Reservation{}).
			Where("time_slot_id = ? AND status IN ?", slot.ID, []string{"pending", "approved"}).
			Count(&live).Error)

		require.LessOrEqual(t, live, int64(1), "slot %d has %d live reservations", slot.ID, live)
		require.Equal(t, live == 0, slot.IsAvailable, "slot %d availability out of sync", slot.ID)
	}
}
