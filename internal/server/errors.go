package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	paymentdomain "github.com/smallbiznis/subhub/internal/payment/domain"
	plandomain "github.com/smallbiznis/subhub/internal/plan/domain"
	"github.com/smallbiznis/subhub/internal/shared"
	subdomain "github.com/smallbiznis/subhub/internal/subscription/domain"
	userdomain "github.com/smallbiznis/subhub/internal/user/domain"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrorHandlingMiddleware renders the last error attached to the context as
// a JSON error response. Handlers call AbortWithError and return.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: validationErr.Error(),
			Field:   validationErr.Field,
		}
	}

	if errors.Is(err, shared.ErrInvalidTransition) {
		return http.StatusConflict, errorPayload{
			Type:    "invalid_transition",
			Message: err.Error(),
		}
	}

	switch {
	case errors.Is(err, plandomain.ErrNotFound),
		errors.Is(err, userdomain.ErrNotFound),
		errors.Is(err, subdomain.ErrNotFound),
		errors.Is(err, paymentdomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	case errors.Is(err, userdomain.ErrEmailTaken),
		errors.Is(err, plandomain.ErrInactive),
		errors.Is(err, userdomain.ErrInactive),
		errors.Is(err, subdomain.ErrNotActive):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case errors.Is(err, paymentdomain.ErrChargeDeclined):
		return http.StatusPaymentRequired, errorPayload{
			Type:    "charge_declined",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

func invalidRequestError() error {
	return shared.NewValidationError("request", "malformed request body")
}
