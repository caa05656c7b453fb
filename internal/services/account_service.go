package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"venu/internal/authz"
	"venu/internal/models/db_models"
	"venu/internal/models/request_models"
	"venu/internal/models/response_models"
	"venu/internal/repositories"
	mem "venu/pkg/memcache"
	"venu/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetProfile(ctx context.Context, caller authz.Caller) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, caller authz.Caller, request request_models.UpdateProfileRequest) error
	ListAllAccounts(ctx context.Context, caller authz.Caller, page, pageSize int) ([]response_models.AccountResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		mailService: mailService,
		resetTokens: resetTokens,
		logger:      logger,
	}
}

// provisionName derives the display name: supplied metadata first, then the
// local part of the email address.
func provisionName(displayName, email string) string {
	if displayName != "" {
		return displayName
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// provisionRole derives the role: supplied metadata first, "client" otherwise.
func provisionRole(role string) db_models.Role {
	r := db_models.Role(role)
	if r.Valid() {
		return r
	}
	return db_models.RoleClient
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         provisionName(request.DisplayName, request.Email),
		Email:        request.Email,
		Phone:        request.Phone,
		PasswordHash: hashedPassword,
		Role:         provisionRole(request.Role),
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		a.logger.Error("account insert failed", zap.String("email", request.Email), zap.Error(err))
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token:       token,
		DefaultView: DefaultViewForRole(account.Role),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, caller authz.Caller) (*response_models.AccountResponse, error) {
	if !authz.CanReadAccount(caller, caller.ID) {
		return nil, utils.ErrForbidden
	}

	account, err := a.accountRepo.FindById(ctx, caller.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, caller authz.Caller, request request_models.UpdateProfileRequest) error {
	if !authz.CanUpdateAccount(caller, caller.ID) {
		return utils.ErrForbidden
	}

	if err := a.accountRepo.UpdateProfile(ctx, caller.ID.String(), request.Name, request.Phone); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) ListAllAccounts(ctx context.Context, caller authz.Caller, page, pageSize int) ([]response_models.AccountResponse, error) {
	if !authz.CanListAccounts(caller) {
		return nil, utils.ErrForbidden
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	accounts, err := a.accountRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, toAccountResponse(&accounts[i]))
	}
	return responses, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the email exists
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, 15*time.Minute)

	if err := a.mailService.SendPasswordReset(account.Email, token); err != nil {
		a.logger.Error("reset mail failed", zap.String("email", account.Email), zap.Error(err))
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordByEmail(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Phone: account.Phone,
		Role:  string(account.Role),
		Color: account.Color,
	}
}
