package auth

import (
	"testing"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-very-long-test-secret-with-32-plus-chars"

func newService() *JWTService {
	return NewJWTService(config.JWTConfig{Secret: testSecret, Issuer: "nfe-backoffice", Expiration: time.Hour})
}

func TestIssueAndParse(t *testing.T) {
	s := newService()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	token, exp, err := s.Issue(entities.User{ID: "u-1", CompanyID: "c-1", Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour).Unix(), exp)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "c-1", claims.CompanyID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestIssue_RequiresIdentity(t *testing.T) {
	s := newService()
	_, _, err := s.Issue(entities.User{CompanyID: "c-1"})
	assert.ErrorIs(t, err, ErrMissingUserID)
	_, _, err = s.Issue(entities.User{ID: "u-1"})
	assert.ErrorIs(t, err, ErrMissingCompanyID)
}

func TestParse_Rejections(t *testing.T) {
	s := newService()
	token, _, err := s.Issue(entities.User{ID: "u-1", CompanyID: "c-1"})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		late := newService()
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{Secret: "another-secret-that-is-also-long-enough", Issuer: "nfe-backoffice"})
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{Secret: testSecret, Issuer: "someone-else"})
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{CompanyID: "c-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = s.Parse(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing company", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1", Issuer: "nfe-backoffice"},
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = s.Parse(raw)
		assert.ErrorIs(t, err, ErrMissingCompanyID)
	})
}
