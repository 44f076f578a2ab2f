package middleware

import (
	"errors"
	"net/http"
	"strings"

	"nfe_backoffice/internal/infrastructure/auth"
	"nfe_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "user_id"
	ctxCompanyID = "company_id"
)

// TokenParser validates a bearer token and returns its claims.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization token not provided", http.StatusUnauthorized)
	errBadFormat    = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization header format", http.StatusUnauthorized)
	errBadToken     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
	errExpiredToken = pkg.NewDomainErrorSimple("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)
	errNoTenant     = pkg.NewDomainErrorSimple("COMPANY_NOT_LOADED", "Company profile not loaded", http.StatusForbidden)
)

// RequireAuth rejects requests without a valid bearer token. The company in
// the token scopes every downstream call.
func RequireAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, errMissingToken)
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abort(c, errBadFormat)
			return
		}

		claims, err := parser.Parse(strings.TrimSpace(parts[1]))
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			abort(c, errExpiredToken)
			return
		case errors.Is(err, auth.ErrMissingCompanyID):
			abort(c, errNoTenant)
			return
		case err != nil:
			abort(c, errBadToken)
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxCompanyID, claims.CompanyID)
		c.Next()
	}
}

func abort(c *gin.Context, e *pkg.AppError) {
	c.AbortWithStatusJSON(e.HTTPStatus, e.ToHTTPError())
}

// CompanyID returns the tenant set by RequireAuth.
func CompanyID(c *gin.Context) string {
	return c.GetString(ctxCompanyID)
}

func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// SetPrincipal is used by tests and internal callers that bypass RequireAuth.
func SetPrincipal(c *gin.Context, userID, companyID string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxCompanyID, companyID)
}
