package handlers

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
)

// parseSlotStart accepts an RFC 3339 instant or a date and HH:MM wall
// clock time in the shop time zone.
func parseSlotStart(loc *time.Location, startTime, date, clock string) (time.Time, error) {
	if s := strings.TrimSpace(startTime); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, httperr.ErrValidation("start_time", "must be an RFC 3339 timestamp")
		}
		return t, nil
	}

	if date == "" || clock == "" {
		return time.Time{}, httperr.ErrValidation("start_time", "is required")
	}

	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("date", "expected YYYY-MM-DD and HH:MM")
	}
	return t, nil
}
