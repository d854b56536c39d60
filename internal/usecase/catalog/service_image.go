package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/imaging"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// UploadServiceImage converts the upload to webp, stores it and points the
// service at the stored object.
type UploadServiceImage struct {
	repo  domain.Repository
	store domain.ImageStore
	cache domain.Cache
	log   *zap.Logger
}

func NewUploadServiceImage(
	repo domain.Repository,
	store domain.ImageStore,
	cache domain.Cache,
	log *zap.Logger,
) *UploadServiceImage {
	return &UploadServiceImage{
		repo:  repo,
		store: store,
		cache: cacheOrNoop(cache),
		log:   log,
	}
}

func (uc *UploadServiceImage) Execute(
	ctx context.Context,
	actor auth.Actor,
	serviceID uint,
	image io.Reader,
) (*models.Service, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	if uc.store == nil || !uc.store.Enabled() {
		return nil, httperr.ErrImageStorageDisabled
	}

	if _, err := uc.repo.GetService(ctx, serviceID); err != nil {
		return nil, logFailure(uc.log, "upload_service_image", err)
	}

	body, err := imaging.ToWebP(image)
	if err != nil {
		switch {
		case errors.Is(err, imaging.ErrTooLarge):
			return nil, httperr.ErrValidation("image", "must be at most 10 MB")
		case errors.Is(err, imaging.ErrUnsupported), errors.Is(err, imaging.ErrEmptyImage):
			return nil, httperr.ErrInvalidImage
		}
		return nil, logFailure(uc.log, "upload_service_image", httperr.ErrPersistence("convert_image", err))
	}

	key := fmt.Sprintf("services/%d/%s%s", serviceID, uuid.NewString(), imaging.Extension)
	url, err := uc.store.Put(ctx, key, imaging.ContentType, body)
	if err != nil {
		return nil, logFailure(uc.log, "upload_service_image", httperr.ErrPersistence("store_image", err))
	}

	var service *models.Service

	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		s, err := tx.GetService(ctx, serviceID)
		if err != nil {
			return err
		}

		s.ImageURL = url
		if err := tx.UpdateService(ctx, s); err != nil {
			return err
		}

		service = s
		return tx.RecordAudit(ctx, audit.Event{
			UserID:   audit.Ptr(actor.UserID),
			Action:   audit.ActionServiceImageUploaded,
			Entity:   audit.EntityService,
			EntityID: audit.Ptr(s.ID),
			Metadata: map[string]any{"key": key, "bytes": len(body)},
		})
	})
	if err != nil {
		return nil, logFailure(uc.log, "upload_service_image", err)
	}

	uc.cache.Invalidate(ctx)
	return service, nil
}
