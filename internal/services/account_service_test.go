package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahaavila/e-colect/internal/models/request_models"
	"github.com/ahaavila/e-colect/internal/repositories"
	"github.com/ahaavila/e-colect/pkg/utils"
)

func TestAccountService(t *testing.T) {
	ctx := context.Background()
	svc := NewAccountService(repositories.NewAccountRepository(newTestDB(t)))

	signUp := request_models.SignUpRequest{
		DisplayName: "Admin",
		Email:       "admin@ecolect.com",
		Password:    "s3cret-pass",
	}

	t.Run("first registration bootstraps the admin", func(t *testing.T) {
		require.NoError(t, svc.Register(ctx, signUp))
	})

	t.Run("registration closes after the first account", func(t *testing.T) {
		err := svc.Register(ctx, request_models.SignUpRequest{
			DisplayName: "Second",
			Email:       "second@ecolect.com",
			Password:    "s3cret-pass",
		})
		assert.ErrorIs(t, err, utils.ErrRegistrationClosed)
	})

	t.Run("login returns a token", func(t *testing.T) {
		token, err := svc.Login(ctx, request_models.LoginRequest{
			Email:    "admin@ecolect.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := utils.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, request_models.LoginRequest{
			Email:    "admin@ecolect.com",
			Password: "wrong-pass",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, request_models.LoginRequest{
			Email:    "ghost@ecolect.com",
			Password: "s3cret-pass",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}
