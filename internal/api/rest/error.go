package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/launchos/curve-engine/internal/domain"
	"github.com/launchos/curve-engine/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondConflict sends a 409 Conflict response
func respondConflict(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusConflict, errCodeConflict, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps curve engine errors onto HTTP responses. Anything
// not recognized falls through as a 500.
func respondDomainError(c *gin.Context, err error) {
	var capErr *domain.CapExceededError
	var thresholdErr *domain.ThresholdError

	switch {
	case errors.Is(err, domain.ErrCurveNotFound):
		respondNotFound(c, "Curve not found")
	case errors.Is(err, domain.ErrAttemptNotFound):
		respondNotFound(c, "Launch attempt not found")
	case errors.Is(err, domain.ErrCurveAlreadyExists):
		respondConflict(c, "Curve already exists")
	case errors.Is(err, domain.ErrZeroKeys),
		errors.Is(err, domain.ErrBuyTooLarge),
		errors.Is(err, domain.ErrSelfReferral),
		errors.Is(err, domain.ErrAmountOverflow):
		respondBadRequest(c, "Invalid trade", err.Error())
	case errors.Is(err, domain.ErrCurveNotActive),
		errors.Is(err, domain.ErrCurveNotFrozen),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrLaunchInProgress),
		errors.Is(err, domain.ErrVersionConflict),
		errors.Is(err, domain.ErrInsufficientKeys),
		errors.Is(err, domain.ErrInsufficientReserve),
		errors.Is(err, domain.ErrSupplyUnderflow):
		respondConflict(c, "Trade rejected", err.Error())
	case errors.As(err, &capErr):
		respondConflict(c, "Wallet cap exceeded", capErr.Error())
	case errors.As(err, &thresholdErr):
		parts := make([]string, 0, len(thresholdErr.Failures))
		for _, f := range thresholdErr.Failures {
			parts = append(parts, fmt.Sprintf("%s: need %d, have %d", f.Criterion, f.Need, f.Have))
		}
		respondConflict(c, "Curve not eligible to launch", strings.Join(parts, "; "))
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
