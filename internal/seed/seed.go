package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
	"github.com/BruksfildServices01/barbershop-reservation/internal/timezone"
)

const (
	Days          = 14
	OpeningHour   = 9
	LastStartHour = 17
	SlotStep      = 30 * time.Minute
)

type serviceDef struct {
	Name        string
	Description string
	Price       float64
	Duration    int
}

var defaultServices = []serviceDef{
	{"Haircut", "Classic cut with wash and styling.", 30.00, 30},
	{"Shave", "Hot towel straight razor shave.", 25.00, 20},
	{"Haircut + Shave", "Full haircut followed by a hot towel shave.", 50.00, 45},
	{"Beard Styling", "Beard trim, shaping and conditioning.", 20.00, 15},
	{"Hair Colouring", "Full colour or grey blending.", 40.00, 40},
}

type Options struct {
	AdminEmail    string
	AdminPassword string
	Timezone      string
	// Now anchors the slot calendar. Zero means time.Now.
	Now time.Time
}

type Result struct {
	AdminCreated bool
	Services     int
	TimeSlots    int
}

// Run creates the administrator account and, on an empty catalog, the
// default services with two weeks of slots. Running it again changes
// nothing.
func Run(ctx context.Context, db *gorm.DB, opts Options, log *zap.Logger) (Result, error) {
	var res Result

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := ensureAdmin(tx, opts)
		if err != nil {
			return err
		}
		res.AdminCreated = created

		var count int64
		if err := tx.Model(&models.Service{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count services: %w", err)
		}
		if count > 0 {
			return nil
		}

		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		loc := timezone.Location(opts.Timezone)

		for _, def := range defaultServices {
			service := models.Service{
				Name:            def.Name,
				Description:     def.Description,
				Price:           def.Price,
				DurationMinutes: def.Duration,
				IsActive:        true,
			}
			if err := tx.Create(&service).Error; err != nil {
				return fmt.Errorf("create service %q: %w", def.Name, err)
			}
			res.Services++

			slots := Slots(&service, now, loc)
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(slots, 200).Error; err != nil {
				return fmt.Errorf("create slots for %q: %w", def.Name, err)
			}
			res.TimeSlots += len(slots)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info("seed finished",
		zap.Bool("admin_created", res.AdminCreated),
		zap.Int("services", res.Services),
		zap.Int("time_slots", res.TimeSlots),
	)
	return res, nil
}

func ensureAdmin(tx *gorm.DB, opts Options) (bool, error) {
	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		return false, nil
	}

	var count int64
	if err := tx.Model(&models.User{}).
		Where("email = ?", opts.AdminEmail).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("find admin: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(opts.AdminPassword)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        opts.AdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

// Slots returns the half-hour starts from 09:00 to 17:30 in loc for the
// Days days following now, skipping Sundays.
func Slots(service *models.Service, now time.Time, loc *time.Location) []models.TimeSlot {
	duration := time.Duration(service.DurationMinutes) * time.Minute
	first := timezone.StartOfDay(now, loc)

	var slots []models.TimeSlot
	for d := 1; d <= Days; d++ {
		day := first.AddDate(0, 0, d)
		if day.Weekday() == time.Sunday {
			continue
		}

		end := timezone.At(day, LastStartHour, 30, loc)
		for start := timezone.At(day, OpeningHour, 0, loc); !start.After(end); start = start.Add(SlotStep) {
			utc := start.UTC()
			slots = append(slots, models.TimeSlot{
				ServiceID:   service.ID,
				StartTime:   utc,
				EndTime:     utc.Add(duration),
				IsAvailable: true,
			})
		}
	}
	return slots
}
