package response

import (
	"errors"
	"net/http"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/auth"
	"github.com/trainhub/training-backend-go/internal/domain/certificate"
	"github.com/trainhub/training-backend-go/internal/domain/evaluation"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/domain/program"
	"github.com/trainhub/training-backend-go/internal/domain/proposal"
	"github.com/trainhub/training-backend-go/internal/pkg/validator"
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
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrSessionNotFound):
		Unauthorized(w, "Session not found")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, profile.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, profile.ErrProfileInactive):
		Forbidden(w, "Profile is inactive")
	case errors.Is(err, profile.ErrInvalidRole),
		errors.Is(err, profile.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, profile.ErrCannotDeleteSelf):
		Forbidden(w, "Cannot delete your own profile")

	// Program domain errors
	case errors.Is(err, program.ErrProgramNotFound):
		NotFound(w, "Program not found")
	case errors.Is(err, program.ErrInvalidCategory),
		errors.Is(err, program.ErrInvalidDateRange),
		errors.Is(err, program.ErrNegativeHours),
		errors.Is(err, program.ErrInvalidProgramStatus):
		BadRequest(w, err.Error(), nil)

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrAlreadyAssigned):
		Conflict(w, err.Error())
	case errors.Is(err, assignment.ErrAlreadyAttended):
		Conflict(w, "Attendance already marked")
	case errors.Is(err, assignment.ErrNotAssigned):
		NotFound(w, err.Error())
	case errors.Is(err, assignment.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Evaluation domain errors
	case errors.Is(err, evaluation.ErrEvaluationNotFound):
		NotFound(w, "Evaluation not found")
	case errors.Is(err, evaluation.ErrEvaluationExists):
		Conflict(w, "Evaluation already submitted for this program")
	case errors.Is(err, evaluation.ErrInvalidAnswer):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, evaluation.ErrNotAttended):
		Forbidden(w, err.Error())

	// Proposal domain errors
	case errors.Is(err, proposal.ErrProposalNotFound):
		NotFound(w, "Proposal not found")
	case errors.Is(err, proposal.ErrProposalWindowClosed):
		Forbidden(w, err.Error())
	case errors.Is(err, proposal.ErrInvalidSlot),
		errors.Is(err, proposal.ErrEmptyProposal):
		BadRequest(w, err.Error(), nil)

	// Certificate domain errors
	case errors.Is(err, certificate.ErrCertificateNotFound):
		NotFound(w, "Certificate not found")
	case errors.Is(err, certificate.ErrUnsupportedFileType),
		errors.Is(err, certificate.ErrFileTooLarge):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, certificate.ErrNotAttended):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
