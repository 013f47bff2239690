package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hrcore/payroll-engine-go/internal/domain/attendance"
	"github.com/hrcore/payroll-engine-go/internal/domain/deduction"
	"github.com/hrcore/payroll-engine-go/internal/domain/period"
	"github.com/hrcore/payroll-engine-go/internal/pkg/validator"
)

// PeriodGlobals holds everything a batch run loads exactly once: the period
// itself, calendar holidays keyed by date, the mandatory deduction catalog,
// the tax schedule, and the resolved ACTIVE status id. It is passed explicitly
// to every per-employee computation and never re-queried mid-loop.
type PeriodGlobals struct {
	Period         period.PayPeriod
	Holidays       map[string]attendance.Holiday
	Deductions     []deduction.MandatoryDeduction
	TaxBrackets    []deduction.TaxBracket
	ActiveStatusID string
}

// LineItem is one row of the human-auditable payroll breakdown. The ordered
// item list is a contractual output of the computation, not logging.
type LineItem struct {
	Code     string           `json:"code"`
	Label    string           `json:"label"`
	Quantity *decimal.Decimal `json:"quantity,omitempty"`
	Amount   decimal.Decimal  `json:"amount"`
}

// ComputationResult is the outcome of computing one employee for one period.
// It is produced without touching storage; persistence is the orchestrator's
// concern.
type ComputationResult struct {
	Line    PayrollLine
	Details []DeductionDetail
	Items   []LineItem
}

// BatchRequest addresses a generate, recalculate, or simulate run. An empty
// EmployeeIDs list means every employee with an active contract.
type BatchRequest struct {
	PeriodID    string   `json:"-"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *BatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{Field: "period_id", Message: "is required"})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BatchItemError captures a single employee's failure inside a batch without
// aborting the run.
type BatchItemError struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type GenerateBatchResponse struct {
	Computed   []LineResponse   `json:"computed"`
	Duplicates []string         `json:"duplicates"`
	Errors     []BatchItemError `json:"errors"`
}

type RecalculatedLine struct {
	LineResponse
	PreviousNet decimal.Decimal `json:"previousNet"`
	Difference  decimal.Decimal `json:"difference"`
}

type RecalculateBatchResponse struct {
	Recalculated []RecalculatedLine `json:"recalculated"`
	Errors       []BatchItemError   `json:"errors"`
}

type SimulateBatchResponse struct {
	Preview []LineResponse   `json:"preview"`
	Errors  []BatchItemError `json:"errors"`
}

// LineResponse is the serialized payroll line. Field names and the fixed-point
// decimal encoding are part of the external contract.
type LineResponse struct {
	IDDetail      string                    `json:"idDetail"`
	IDPeriod      string                    `json:"idPeriod"`
	IDEmployee    string                    `json:"idEmployee"`
	IDContract    string                    `json:"idContract"`
	OrdinaryHours decimal.Decimal           `json:"ordinaryHours"`
	OvertimeHours decimal.Decimal           `json:"overtimeHours"`
	HolidayHours  decimal.Decimal           `json:"holidayHours"`
	NightHours    decimal.Decimal           `json:"nightHours"`
	Gross         decimal.Decimal           `json:"gross"`
	Deductions    decimal.Decimal           `json:"deductions"`
	Tax           decimal.Decimal           `json:"tax"`
	Net           decimal.Decimal           `json:"net"`
	Status        string                    `json:"status"`
	Details       []DeductionDetailResponse `json:"deductionDetails,omitempty"`
	Items         []LineItem                `json:"items,omitempty"`
}

type DeductionDetailResponse struct {
	ID          string          `json:"id"`
	DeductionID string          `json:"deductionId"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

type ApproveLinesRequest struct {
	LineIDs []string `json:"line_ids"`
}

func (r *ApproveLinesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.LineIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "line_ids", Message: "at least one line is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodSummaryResponse struct {
	PeriodID        string          `json:"period_id"`
	LineCount       int             `json:"line_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	TotalNet        decimal.Decimal `json:"total_net"`
	DraftCount      int             `json:"draft_count"`
	ApprovedCount   int             `json:"approved_count"`
}
