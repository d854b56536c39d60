package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateService struct {
	repo  domain.Repository
	cache domain.Cache
	log   *zap.Logger
}

func NewCreateService(repo domain.Repository, cache domain.Cache, log *zap.Logger) *CreateService {
	return &CreateService{repo: repo, cache: cacheOrNoop(cache), log: log}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	actor auth.Actor,
	in domain.ServiceInput,
) (*models.Service, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	service := &models.Service{IsActive: true}
	in.Apply(service)

	err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		if err := tx.CreateService(ctx, service); err != nil {
			return err
		}
		return tx.RecordAudit(ctx, audit.Event{
			UserID:   audit.Ptr(actor.UserID),
			Action:   audit.ActionServiceCreated,
			Entity:   audit.EntityService,
			EntityID: audit.Ptr(service.ID),
			Metadata: map[string]any{"name": service.Name},
		})
	})
	if err != nil {
		return nil, logFailure(uc.log, "create_service", err)
	}

	uc.cache.Invalidate(ctx)
	return service, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateService struct {
	repo  domain.Repository
	cache domain.Cache
	log   *zap.Logger
}

func NewUpdateService(repo domain.Repository, cache domain.Cache, log *zap.Logger) *UpdateService {
	return &UpdateService{repo: repo, cache: cacheOrNoop(cache), log: log}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	actor auth.Actor,
	serviceID uint,
	in domain.ServiceInput,
) (*models.Service, error) {

	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var service *models.Service

	err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {
		s, err := tx.GetService(ctx, serviceID)
		if err != nil {
			return err
		}

		in.Apply(s)
		if err := tx.UpdateService(ctx, s); err != nil {
			return err
		}

		service = s
		return tx.RecordAudit(ctx, audit.Event{
			UserID:   audit.Ptr(actor.UserID),
			Action:   audit.ActionServiceUpdated,
			Entity:   audit.EntityService,
			EntityID: audit.Ptr(s.ID),
		})
	})
	if err != nil {
		return nil, logFailure(uc.log, "update_service", err)
	}

	uc.cache.Invalidate(ctx)
	return service, nil
}

// ======================================================
// GET / LIST (ADMIN)
// ======================================================

type GetService struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewGetService(repo domain.Repository, log *zap.Logger) *GetService {
	return &GetService{repo: repo, log: log}
}

func (uc *GetService) Execute(ctx context.Context, actor auth.Actor, serviceID uint) (*models.Service, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	s, err := uc.repo.GetService(ctx, serviceID)
	return s, logFailure(uc.log, "get_service", err)
}

type ListServices struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewListServices(repo domain.Repository, log *zap.Logger) *ListServices {
	return &ListServices{repo: repo, log: log}
}

func (uc *ListServices) Execute(ctx context.Context, actor auth.Actor) ([]models.Service, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx, false)
	return services, logFailure(uc.log, "list_services", err)
}

// ======================================================
// ACTIVE (PUBLIC, CACHED)
// ======================================================

type ListActiveServices struct {
	repo  domain.Repository
	cache domain.Cache
	log   *zap.Logger
}

func NewListActiveServices(repo domain.Repository, cache domain.Cache, log *zap.Logger) *ListActiveServices {
	return &ListActiveServices{repo: repo, cache: cacheOrNoop(cache), log: log}
}

func (uc *ListActiveServices) Execute(ctx context.Context) ([]models.Service, error) {
	if services, ok := uc.cache.GetActiveServices(ctx); ok {
		return services, nil
	}

	services, err := uc.repo.ListServices(ctx, true)
	if err != nil {
		return nil, logFailure(uc.log, "list_active_services", err)
	}

	uc.cache.SetActiveServices(ctx, services)
	return services, nil
}
