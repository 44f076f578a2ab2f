package handlers

import (
	"net/http"

	"nfe_backoffice/internal/adapter/http/dto/request"
	"nfe_backoffice/internal/adapter/http/middleware"
	"nfe_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body request.LoginRequest true "Credentials"
// @Success 200 {object} usecase.LoginResult
// @Failure 401 {object} pkg.HTTPError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	result, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Me returns the user and company bound to the current token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		writeError(c, errUnauthenticated)
		return
	}
	companyID, ok := companyFrom(c)
	if !ok {
		return
	}
	session, err := h.usecase.CurrentSession(c.Request.Context(), userID, companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
