package response

import (
	"errors"
	"net/http"

	"github.com/hrcore/payroll-engine-go/internal/domain/contract"
	"github.com/hrcore/payroll-engine-go/internal/domain/payroll"
	"github.com/hrcore/payroll-engine-go/internal/domain/period"
	"github.com/hrcore/payroll-engine-go/internal/domain/schedule"
	"github.com/hrcore/payroll-engine-go/internal/pkg/validator"
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
	// Period domain errors
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, period.ErrInvalidPeriod):
		BadRequest(w, "Invalid pay period", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrLineNotFound):
		NotFound(w, "Payroll line not found")
	case errors.Is(err, payroll.ErrLineAlreadyExists):
		Conflict(w, "Payroll line already exists for this period")
	case errors.Is(err, payroll.ErrLineApproved):
		Conflict(w, "Payroll line is approved and cannot be modified")
	case errors.Is(err, payroll.ErrNoEmployees):
		NotFound(w, "No employees with an active contract")

	// Contract and schedule errors surface when a single-employee request
	// targets someone who cannot be computed
	case errors.Is(err, contract.ErrNoActiveContract):
		NotFound(w, "No active contract for employee")
	case errors.Is(err, contract.ErrInvalidContract):
		BadRequest(w, "Contract has invalid salary or hours", nil)
	case errors.Is(err, schedule.ErrNoActiveSchedule):
		NotFound(w, "No active work schedule for contract")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
