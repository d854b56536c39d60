package account

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-reservation/internal/audit"
	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/account"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
	"github.com/BruksfildServices01/barbershop-reservation/internal/validators"
)

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// DomainChecker reports whether the domain of an email address can
// receive mail.
type DomainChecker func(ctx context.Context, email string) bool

// ======================================================
// REGISTER
// ======================================================

type Register struct {
	repo        domain.Repository
	tokens      TokenConfig
	checkDomain DomainChecker
	log         *zap.Logger
}

// NewRegister builds the use case. A nil checkDomain skips the mail domain
// lookup.
func NewRegister(
	repo domain.Repository,
	tokens TokenConfig,
	checkDomain DomainChecker,
	log *zap.Logger,
) *Register {
	return &Register{
		repo:        repo,
		tokens:      tokens,
		checkDomain: checkDomain,
		log:         log,
	}
}

func (uc *Register) Execute(ctx context.Context, in domain.RegisterInput) (*Session, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if uc.checkDomain != nil && !uc.checkDomain(ctx, in.Email) {
		return nil, httperr.ErrValidation("email", "domain does not accept mail")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, uc.fail("hash_password", err)
	}

	user := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, uc.fail("create_user", err)
	}

	// the account exists at this point; a lost audit row must not fail it
	if err := uc.repo.RecordAudit(ctx, audit.Event{
		UserID:   audit.Ptr(user.ID),
		Action:   audit.ActionUserRegistered,
		Entity:   audit.EntityUser,
		EntityID: audit.Ptr(user.ID),
	}); err != nil {
		uc.log.Warn("audit write failed", zap.Error(err))
	}

	token, err := auth.IssueToken(user, uc.tokens.Secret, uc.tokens.TTL, time.Now())
	if err != nil {
		return nil, uc.fail("issue_token", err)
	}

	return &Session{User: user, Token: token}, nil
}

func (uc *Register) fail(op string, err error) error {
	return fail(uc.log, op, err)
}

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	repo   domain.Repository
	tokens TokenConfig
	log    *zap.Logger
}

func NewLogin(repo domain.Repository, tokens TokenConfig, log *zap.Logger) *Login {
	return &Login{repo: repo, tokens: tokens, log: log}
}

func (uc *Login) Execute(ctx context.Context, in domain.LoginInput) (*Session, error) {
	in.Email = domain.NormalizeEmail(in.Email)
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	user, err := uc.repo.FindUserByEmail(ctx, in.Email)
	if err != nil {
		if httperr.IsPersistence(err) {
			return nil, fail(uc.log, "find_user", err)
		}
		return nil, httperr.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, in.Password) {
		return nil, httperr.ErrInvalidCredentials
	}

	token, err := auth.IssueToken(user, uc.tokens.Secret, uc.tokens.TTL, time.Now())
	if err != nil {
		return nil, fail(uc.log, "issue_token", err)
	}

	return &Session{User: user, Token: token}, nil
}

// fail passes business errors through and logs everything else as a
// persistence failure.
func fail(log *zap.Logger, op string, err error) error {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}
	if !httperr.IsPersistence(err) {
		err = httperr.ErrPersistence(op, err)
	}
	log.Error("account operation failed", zap.String("op", op), zap.Error(err))
	return err
}

// ======================================================
// ME
// ======================================================

type Me struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewMe(repo domain.Repository, log *zap.Logger) *Me {
	return &Me{repo: repo, log: log}
}

func (uc *Me) Execute(ctx context.Context, actor auth.Actor) (*models.User, error) {
	if actor.UserID == 0 {
		return nil, auth.ErrUnauthenticated
	}

	user, err := uc.repo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		if httperr.IsPersistence(err) {
			return nil, fail(uc.log, "find_user", err)
		}
		return nil, err
	}
	return user, nil
}
