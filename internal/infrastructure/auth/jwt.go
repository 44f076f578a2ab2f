package auth

import (
	"errors"
	"fmt"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/infrastructure/config"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrMissingCompanyID = errors.New("missing company_id in claims")
	ErrMissingUserID    = errors.New("missing user id in claims")
)

// Claims binds the operator to the company every request is scoped to.
type Claims struct {
	jwt.RegisteredClaims
	CompanyID string `json:"company_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
}

type JWTService struct {
	secret     []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTService)(nil)

func NewJWTService(cfg config.JWTConfig) *JWTService {
	exp := cfg.Expiration
	if exp <= 0 {
		exp = 12 * time.Hour
	}
	return &JWTService{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: exp,
		now:        time.Now,
	}
}

// Issue signs an HS256 access token. expiresAt is a unix timestamp.
func (s *JWTService) Issue(user entities.User) (string, int64, error) {
	if user.ID == "" {
		return "", 0, ErrMissingUserID
	}
	if user.CompanyID == "" {
		return "", 0, ErrMissingCompanyID
	}
	now := s.now()
	exp := now.Add(s.expiration)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(exp),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		CompanyID: user.CompanyID,
		Name:      user.Name,
		Email:     user.Email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp.Unix(), nil
}

func (s *JWTService) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingUserID
	}
	if claims.CompanyID == "" {
		return nil, ErrMissingCompanyID
	}
	return claims, nil
}
