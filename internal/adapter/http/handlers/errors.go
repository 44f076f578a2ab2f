package handlers

import (
	"errors"
	"net/http"

	"nfe_backoffice/internal/adapter/http/dto/request"
	"nfe_backoffice/internal/adapter/http/middleware"
	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/infrastructure/logger"
	"nfe_backoffice/internal/usecase"
	"nfe_backoffice/internal/usecase/interfaces"
	"nfe_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload    = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery      = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
	errInvalidPathParam  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid path parameter", http.StatusBadRequest)
	errCompanyNotLoaded  = pkg.NewDomainErrorSimple("COMPANY_NOT_LOADED", "Company profile not loaded", http.StatusForbidden)
	errUnauthenticated   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errInternal          = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
	errSectionNotAllowed = pkg.NewDomainErrorSimple("UNKNOWN_SECTION", "Unknown form section", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// respondError maps err, logs server-side failures and writes the envelope.
func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromGin(c).Error("[http][handler] request failed", zap.String("code", appErr.Code), zap.Error(err))
		_ = c.Error(err)
	}
	writeError(c, appErr)
}

func mapError(err error) *pkg.AppError {
	var (
		preflight *usecase.PreflightError
		section   *entities.SectionError
		rejection *usecase.SefazRejectionError
		artifact  *usecase.ArtifactCheckError
	)
	switch {
	case errors.As(err, &preflight):
		return pkg.NewDomainError("PREFLIGHT_FAILED", "Form has violations", err, http.StatusUnprocessableEntity).
			WithDetails(preflight.Violations)
	case errors.As(err, &section):
		return pkg.NewDomainError("INVALID_SECTION", "Invalid "+string(section.Section), err, http.StatusUnprocessableEntity).
			WithDetails(section.Fields)
	case errors.As(err, &rejection):
		info := usecase.TranslateSefazError(string(rejection.Code), rejection.Reason)
		return pkg.NewDomainError("SEFAZ_REJECTED", info.Title, err, http.StatusUnprocessableEntity).
			WithDetails(sefazDetails(info))
	case errors.As(err, &artifact):
		return pkg.NewDomainError("ARTIFACT_INVALID", "The fiscal backend returned an invalid artifact", err, http.StatusBadGateway).
			WithDetails([]string{artifact.Error()})

	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid e-mail or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserInactive):
		return pkg.NewDomainErrorSimple("USER_INACTIVE", "User is inactive", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCompanyNotLoaded):
		return errCompanyNotLoaded

	case errors.Is(err, usecase.ErrOptionNotFound):
		return pkg.NewDomainErrorSimple("OPTION_NOT_FOUND", "Additional option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOptionItemNotFound):
		return pkg.NewDomainErrorSimple("OPTION_ITEM_NOT_FOUND", "Additional item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmissionJobNotFound):
		return pkg.NewDomainErrorSimple("EMISSION_JOB_NOT_FOUND", "Emission job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrArtifactUnavailable):
		return pkg.NewDomainErrorSimple("ARTIFACT_UNAVAILABLE", "Artifact not available", http.StatusNotFound)

	case errors.Is(err, usecase.ErrInvalidOptionName),
		errors.Is(err, usecase.ErrInvalidSelectionBounds),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrNegativeItemPrice),
		errors.Is(err, usecase.ErrInvalidPriceTable),
		errors.Is(err, usecase.ErrReorderMismatch),
		errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidDocumentID),
		errors.Is(err, usecase.ErrOperationNatureRequired),
		errors.Is(err, usecase.ErrInvalidModel),
		errors.Is(err, usecase.ErrInvalidSeries),
		errors.Is(err, usecase.ErrInvalidJustification),
		errors.Is(err, usecase.ErrInvalidNumberRange),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrNoEmailRecipients),
		errors.Is(err, usecase.ErrInvalidArtifactKind),
		errors.Is(err, usecase.ErrInvalidCorrectionSeq),
		errors.Is(err, usecase.ErrPaymentsExceedTotal),
		errors.Is(err, entities.ErrCarrierNotAllowed),
		errors.Is(err, entities.ErrLineItemIndex),
		errors.Is(err, request.ErrInvalidSectionPayload):
		return pkg.NewDomainError("INVALID_REQUEST", capitalize(err.Error()), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownSection):
		return errSectionNotAllowed

	case errors.Is(err, usecase.ErrCertificateMissing):
		return pkg.NewDomainErrorSimple("CERTIFICATE_MISSING", "Digital certificate is not configured", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCertificateExpired):
		return pkg.NewDomainErrorSimple("CERTIFICATE_EXPIRED", "Digital certificate is expired", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidCNPJ):
		return pkg.NewDomainErrorSimple("INVALID_COMPANY_CNPJ", "Company CNPJ must have 14 digits", http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrDocumentNotDraft),
		errors.Is(err, usecase.ErrDocumentNotEditable),
		errors.Is(err, usecase.ErrCannotCancel),
		errors.Is(err, usecase.ErrCannotCorrect),
		errors.Is(err, usecase.ErrCannotInvalidate),
		errors.Is(err, usecase.ErrCorrectionLimit),
		errors.Is(err, usecase.ErrDocumentNotEmitted):
		return pkg.NewDomainError("INVALID_DOCUMENT_STATE", capitalize(err.Error()), err, http.StatusConflict)

	case errors.Is(err, usecase.ErrIncompleteEmission), errors.Is(err, interfaces.ErrFiscalBackend):
		return pkg.NewDomainError("FISCAL_BACKEND_ERROR", "The fiscal backend failed to process the request", err, http.StatusBadGateway).
			WithDetails([]string{err.Error()})
	case errors.Is(err, usecase.ErrFiscalGatewayNotSet):
		return pkg.NewDomainError("FISCAL_BACKEND_UNAVAILABLE", "Fiscal backend not configured", err, http.StatusServiceUnavailable)

	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}

func sefazDetails(info entities.SefazErrorInfo) []string {
	details := []string{"codigo: " + info.Code}
	if info.Description != "" {
		details = append(details, info.Description)
	}
	if info.Remedy != "" {
		details = append(details, info.Remedy)
	}
	return details
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// companyFrom reads the authenticated company, answering 403 when it is absent.
func companyFrom(c *gin.Context) (string, bool) {
	id := middleware.CompanyID(c)
	if id == "" {
		writeError(c, errCompanyNotLoaded)
		return "", false
	}
	return id, true
}
