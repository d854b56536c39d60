package reservation

import (
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
)

type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// logFailure records storage failures before they leave the use case.
// Business errors are returned untouched and not logged.
func logFailure(log *zap.Logger, op string, err error) error {
	if err != nil && httperr.IsPersistence(err) {
		log.Error("reservation operation failed",
			zap.String("op", op),
			zap.Error(err),
		)
	}
	return err
}
