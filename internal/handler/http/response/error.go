package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wmoldes/roster-backend/internal/domain/auth"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/domain/export"
	"github.com/wmoldes/roster-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid admin password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Access denied")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRegistrationIDExists):
		Conflict(w, "DRT already registered")

	// Export domain errors
	case errors.Is(err, export.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format", map[string]string{"format": "format must be csv or xlsx"})

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
