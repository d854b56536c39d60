package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	domain "github.com/BruksfildServices01/barbershop-reservation/internal/domain/account"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barbershop-reservation/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
	"github.com/BruksfildServices01/barbershop-reservation/internal/testutil"
	ucAccount "github.com/BruksfildServices01/barbershop-reservation/internal/usecase/account"
)

var tokens = ucAccount.TokenConfig{Secret: "test-secret", TTL: time.Hour}

func TestRegisterLoginMe(t *testing.T) {
	db := testutil.NewDB(t)
	repo := infraRepo.NewUserGormRepository(db)
	ctx := context.Background()

	session, err := ucAccount.NewRegister(repo, tokens, nil, testutil.Logger()).Execute(ctx, domain.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "  Jane@Example.COM ",
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", session.User.Email)
	assert.Equal(t, models.RoleUser, session.User.Role)

	actor, err := auth.ParseToken(session.Token, tokens.Secret)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, actor.UserID)

	var audits int64
	require.NoError(t, db.Model(&models.AuditLog{}).Where("action = ?", "user_registered").Count(&audits).Error)
	assert.Equal(t, int64(1), audits)

	_, err = ucAccount.NewRegister(repo, tokens, nil, testutil.Logger()).Execute(ctx, domain.RegisterInput{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Password:  "another1",
	})
	assert.True(t, errors.Is(err, httperr.ErrEmailTaken))

	login := ucAccount.NewLogin(repo, tokens, testutil.Logger())

	_, err = login.Execute(ctx, domain.LoginInput{Email: "JANE@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = login.Execute(ctx, domain.LoginInput{Email: "jane@example.com", Password: "nope"})
	assert.True(t, errors.Is(err, httperr.ErrInvalidCredentials))

	_, err = login.Execute(ctx, domain.LoginInput{Email: "ghost@example.com", Password: "secret123"})
	assert.True(t, errors.Is(err, httperr.ErrInvalidCredentials))

	me, err := ucAccount.NewMe(repo, testutil.Logger()).Execute(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, "Jane", me.FirstName)

	_, err = ucAccount.NewMe(repo, testutil.Logger()).Execute(ctx, auth.Actor{})
	assert.True(t, errors.Is(err, auth.ErrUnauthenticated))
}

func TestRegister_Validation(t *testing.T) {
	db := testutil.NewDB(t)
	repo := infraRepo.NewUserGormRepository(db)
	uc := ucAccount.NewRegister(repo, tokens, nil, testutil.Logger())

	cases := []struct {
		name  string
		in    domain.RegisterInput
		field string
	}{
		{"missing name", domain.RegisterInput{Email: "a@example.com", Password: "secret123"}, "first_name"},
		{"bad email", domain.RegisterInput{FirstName: "A", Email: "nope", Password: "secret123"}, "email"},
		{"short password", domain.RegisterInput{FirstName: "A", Email: "a@example.com", Password: "123"}, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.in)
			var ve httperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestRegister_DomainCheck(t *testing.T) {
	db := testutil.NewDB(t)
	repo := infraRepo.NewUserGormRepository(db)

	reject := func(context.Context, string) bool { return false }
	_, err := ucAccount.NewRegister(repo, tokens, reject, testutil.Logger()).Execute(context.Background(), domain.RegisterInput{
		FirstName: "A",
		Email:     "a@nowhere.invalid",
		Password:  "secret123",
	})

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}
