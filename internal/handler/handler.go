// Package handler exposes the admin HTTP API. Every endpoint responds
// with the common envelope {success, data, meta, error}.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/common"
)

// respondError maps service errors to HTTP statuses and writes the
// error envelope.
func respondError(c *gin.Context, err error) {
	var missing *common.MissingVariablesError
	if errors.As(err, &missing) {
		common.ErrorResponseWithDetails(c, http.StatusBadRequest, "Missing required variables", missing.Names)
		return
	}

	switch {
	case errors.Is(err, common.ErrContentNotFound),
		errors.Is(err, common.ErrTemplateNotFound),
		errors.Is(err, common.ErrInstanceNotFound),
		errors.Is(err, common.ErrVersionNotFound),
		errors.Is(err, common.ErrUserNotFound),
		errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, common.ErrSlugConflict),
		errors.Is(err, common.ErrAlreadyMaterialized):
		common.ErrorResponse(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidCredentials):
		common.ErrorResponse(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrValidation):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, common.ErrStorageUnavailable):
		common.ErrorResponse(c, http.StatusServiceUnavailable, err.Error(), nil)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
