package catalog

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

func logFailure(log *zap.Logger, op string, err error) error {
	if err != nil && httperr.IsPersistence(err) {
		log.Error("catalog operation failed",
			zap.String("op", op),
			zap.Error(err),
		)
	}
	return err
}

// noCache is used when no catalog cache is configured.
type noCache struct{}

func (noCache) GetActiveServices(context.Context) ([]models.Service, bool) { return nil, false }
func (noCache) SetActiveServices(context.Context, []models.Service) {}
func (noCache) Invalidate(context.Context) {}

func cacheOrNoop(c domain.Cache) domain.Cache {
	if c == nil {
		return noCache{}
	}
	return c
}
