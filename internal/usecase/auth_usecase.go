package usecase

import (
	"context"
	"errors"
	"strings"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid e-mail or password")
	ErrUserInactive       = errors.New("user is inactive")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenIssuerNotSet  = errors.New("token issuer not configured")
)

type LoginResult struct {
	Token     string        `json:"token"`
	ExpiresAt int64         `json:"expires_at"`
	User      entities.User `json:"user"`
}

type Session struct {
	User    entities.User    `json:"user"`
	Company entities.Company `json:"company"`
}

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	CurrentSession(ctx context.Context, userID, companyID string) (Session, error)
}

type AuthUseCase struct {
	users     interfaces.IUserRepository
	companies interfaces.ICompanyRepository
	tokens    interfaces.ITokenIssuer
	logger    *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, companies interfaces.ICompanyRepository, tokens interfaces.ITokenIssuer, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, companies: companies, tokens: tokens, logger: loggerOrNop(logger)}
}

// Login checks the bcrypt hash and signs a token carrying the user's company.
// Unknown e-mails and wrong passwords produce the same error.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	if u.tokens == nil {
		return LoginResult{}, ErrTokenIssuerNotSet
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		u.logger.Info("[auth][usecase] password mismatch", zap.String("user_id", user.ID))
		return LoginResult{}, ErrInvalidCredentials
	}
	if !user.Active {
		return LoginResult{}, ErrUserInactive
	}

	token, exp, err := u.tokens.Issue(user)
	if err != nil {
		return LoginResult{}, err
	}
	u.logger.Info("[auth][usecase] login", zap.String("user_id", user.ID), zap.String("company_id", user.CompanyID))
	return LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// CurrentSession resolves the authenticated user and their company.
func (u *AuthUseCase) CurrentSession(ctx context.Context, userID, companyID string) (Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Session{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return Session{}, err
	}
	if user.ID == "" || user.CompanyID != companyID {
		return Session{}, ErrUserNotFound
	}
	if !user.Active {
		return Session{}, ErrUserInactive
	}
	company, err := loadCompany(ctx, u.companies, companyID)
	if err != nil {
		return Session{}, err
	}
	return Session{User: user, Company: company}, nil
}
