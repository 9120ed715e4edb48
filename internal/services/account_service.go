package services

import (
	"context"
	"log"

	"github.com/ahaavila/e-colect/internal/models/db_models"
	"github.com/ahaavila/e-colect/internal/models/request_models"
	"github.com/ahaavila/e-colect/internal/repositories"
	"github.com/ahaavila/e-colect/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// Register bootstraps the first admin account. Once any account exists the
// endpoint is closed; further admins would be provisioned out of band.
func (a *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) error {
	count, err := a.accountRepo.CountAccounts(ctx)
	if err != nil {
		log.Printf("Counting accounts failed: %v", err)
		return utils.ErrDatabaseError
	}
	if count > 0 {
		return utils.ErrRegistrationClosed
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         "admin",
	}

	if err := a.accountRepo.CreateAccount(ctx, account); err != nil {
		log.Printf("Creating account failed: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Looking up account failed: %v", err)
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		log.Printf("Signing token failed: %v", err)
		return "", utils.ErrDatabaseError
	}

	return token, nil
}
