package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrcore/payroll-engine-go/internal/domain/attendance"
	"github.com/hrcore/payroll-engine-go/internal/domain/catalog"
	"github.com/hrcore/payroll-engine-go/internal/domain/contract"
	"github.com/hrcore/payroll-engine-go/internal/domain/deduction"
	"github.com/hrcore/payroll-engine-go/internal/domain/leave"
	"github.com/hrcore/payroll-engine-go/internal/domain/payroll"
	"github.com/hrcore/payroll-engine-go/internal/domain/period"
	"github.com/hrcore/payroll-engine-go/internal/domain/schedule"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
	"github.com/hrcore/payroll-engine-go/internal/pkg/money"
)

type PayrollServiceImpl struct {
	tx             database.TxManager
	periodRepo     period.PeriodRepository
	statusRepo     catalog.StatusRepository
	deductionRepo  deduction.DeductionRepository
	holidayRepo    attendance.HolidayRepository
	contractRepo   contract.ContractRepository
	scheduleRepo   schedule.ScheduleRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	lineRepo       payroll.LineRepository
}

func NewPayrollService(
	tx database.TxManager,
	periodRepo period.PeriodRepository,
	statusRepo catalog.StatusRepository,
	deductionRepo deduction.DeductionRepository,
	holidayRepo attendance.HolidayRepository,
	contractRepo contract.ContractRepository,
	scheduleRepo schedule.ScheduleRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	lineRepo payroll.LineRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:             tx,
		periodRepo:     periodRepo,
		statusRepo:     statusRepo,
		deductionRepo:  deductionRepo,
		holidayRepo:    holidayRepo,
		contractRepo:   contractRepo,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		lineRepo:       lineRepo,
	}
}

// ========== PERIOD GLOBALS ==========

// LoadPeriodGlobals loads the period-wide inputs exactly once per batch.
// A failure here aborts the whole operation; no per-employee work is
// meaningful without the globals.
func (s *PayrollServiceImpl) LoadPeriodGlobals(ctx context.Context, periodID string) (payroll.PeriodGlobals, error) {
	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.PeriodGlobals{}, err
	}
	if p.EndDate.Before(p.StartDate) {
		return payroll.PeriodGlobals{}, period.ErrInvalidPeriod
	}

	holidays, err := s.holidayRepo.GetByRange(ctx, p.StartDate, p.EndDate)
	if err != nil {
		return payroll.PeriodGlobals{}, fmt.Errorf("failed to load holidays: %w", err)
	}
	holidayMap := make(map[string]attendance.Holiday, len(holidays))
	for _, h := range holidays {
		holidayMap[attendance.DateKey(h.Date)] = h
	}

	deductions, err := s.deductionRepo.GetMandatory(ctx)
	if err != nil {
		return payroll.PeriodGlobals{}, fmt.Errorf("failed to load mandatory deductions: %w", err)
	}

	brackets, err := s.deductionRepo.GetTaxBrackets(ctx)
	if err != nil {
		return payroll.PeriodGlobals{}, fmt.Errorf("failed to load tax brackets: %w", err)
	}

	activeStatusID, err := s.statusRepo.GetStatusIDByName(ctx, catalog.StatusActive)
	if err != nil {
		return payroll.PeriodGlobals{}, fmt.Errorf("failed to resolve active status: %w", err)
	}

	return payroll.PeriodGlobals{
		Period:         p,
		Holidays:       holidayMap,
		Deductions:     deductions,
		TaxBrackets:    brackets,
		ActiveStatusID: activeStatusID,
	}, nil
}

// ========== PER-EMPLOYEE COMPUTATION ==========

// ComputeForEmployee loads one employee's read set and computes the payroll
// line. It never writes; persistence belongs to the batch operations.
func (s *PayrollServiceImpl) ComputeForEmployee(ctx context.Context, employeeID string, globals payroll.PeriodGlobals) (payroll.ComputationResult, error) {
	inputs, err := s.loadEmployeeInputs(ctx, employeeID, globals)
	if err != nil {
		return payroll.ComputationResult{}, err
	}
	return Compute(inputs, globals)
}

func (s *PayrollServiceImpl) loadEmployeeInputs(ctx context.Context, employeeID string, globals payroll.PeriodGlobals) (EmployeeInputs, error) {
	contracts, err := s.contractRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeInputs{}, err
	}
	active, err := contract.ResolveActive(contracts, globals.ActiveStatusID)
	if err != nil {
		return EmployeeInputs{}, err
	}

	sched, err := s.scheduleRepo.GetActiveByContractID(ctx, active.ID, globals.ActiveStatusID)
	if err != nil {
		return EmployeeInputs{}, err
	}

	start, end := globals.Period.StartDate, globals.Period.EndDate

	atts, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return EmployeeInputs{}, err
	}
	attMap := make(map[string]attendance.DailyAttendance, len(atts))
	for _, a := range atts {
		attMap[attendance.DateKey(a.Date)] = a
	}

	vacations, err := s.leaveRepo.GetApprovedVacations(ctx, employeeID, start, end)
	if err != nil {
		return EmployeeInputs{}, err
	}
	paidLeaves, err := s.leaveRepo.GetApprovedPaidLeaves(ctx, employeeID, start, end)
	if err != nil {
		return EmployeeInputs{}, err
	}
	incapacities, err := s.leaveRepo.GetIncapacities(ctx, employeeID, start, end)
	if err != nil {
		return EmployeeInputs{}, err
	}

	return EmployeeInputs{
		EmployeeID: employeeID,
		Contract:   active,
		Schedule:   sched,
		Calendar: CalendarInputs{
			Schedule:       sched,
			Holidays:       globals.Holidays,
			VacationDates:  dateSet(vacations),
			PaidLeaveDates: dateSet(paidLeaves),
			Attendance:     attMap,
			Incapacities:   incapacities,
		},
	}, nil
}

func dateSet(requests []leave.LeaveRequest) map[string]bool {
	set := make(map[string]bool)
	for _, r := range requests {
		for _, d := range r.Dates() {
			set[attendance.DateKey(d)] = true
		}
	}
	return set
}

// ========== BATCH OPERATIONS ==========

// GenerateBatch computes and persists one line per requested employee inside
// a single transaction. Duplicates are reported, never overwritten; a batch
// where every employee is a duplicate is a conflict so the caller can switch
// to recalculation.
func (s *PayrollServiceImpl) GenerateBatch(ctx context.Context, req payroll.BatchRequest) (payroll.GenerateBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateBatchResponse{}, err
	}

	globals, err := s.LoadPeriodGlobals(ctx, req.PeriodID)
	if err != nil {
		return payroll.GenerateBatchResponse{}, err
	}

	employeeIDs, err := s.resolveEmployeeIDs(ctx, req, globals)
	if err != nil {
		return payroll.GenerateBatchResponse{}, err
	}

	resp := payroll.GenerateBatchResponse{
		Computed:   []payroll.LineResponse{},
		Duplicates: []string{},
		Errors:     []payroll.BatchItemError{},
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, employeeID := range employeeIDs {
			if _, err := s.lineRepo.GetByPeriodAndEmployee(ctx, req.PeriodID, employeeID); err == nil {
				resp.Duplicates = append(resp.Duplicates, employeeID)
				continue
			} else if !errors.Is(err, payroll.ErrLineNotFound) {
				return err
			}

			result, err := s.ComputeForEmployee(ctx, employeeID, globals)
			if err != nil {
				resp.Errors = append(resp.Errors, payroll.BatchItemError{EmployeeID: employeeID, Reason: err.Error()})
				continue
			}

			created, err := s.lineRepo.Create(ctx, result.Line, result.Details)
			if err != nil {
				if errors.Is(err, payroll.ErrLineAlreadyExists) {
					resp.Duplicates = append(resp.Duplicates, employeeID)
					continue
				}
				return err
			}

			resp.Computed = append(resp.Computed, toLineResponse(created, result.Details, result.Items))
		}
		return nil
	})
	if err != nil {
		return payroll.GenerateBatchResponse{}, err
	}

	if len(resp.Computed) == 0 && len(resp.Duplicates) == len(employeeIDs) {
		return resp, payroll.ErrAllDuplicates
	}

	return resp, nil
}

// RecalculateBatch recomputes lines that already exist. The line row is
// locked for the rest of the transaction so two recalculations cannot apply
// concurrently; approved lines are refused.
func (s *PayrollServiceImpl) RecalculateBatch(ctx context.Context, req payroll.BatchRequest) (payroll.RecalculateBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecalculateBatchResponse{}, err
	}

	globals, err := s.LoadPeriodGlobals(ctx, req.PeriodID)
	if err != nil {
		return payroll.RecalculateBatchResponse{}, err
	}

	employeeIDs, err := s.resolveEmployeeIDs(ctx, req, globals)
	if err != nil {
		return payroll.RecalculateBatchResponse{}, err
	}

	resp := payroll.RecalculateBatchResponse{
		Recalculated: []payroll.RecalculatedLine{},
		Errors:       []payroll.BatchItemError{},
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, employeeID := range employeeIDs {
			existing, err := s.lineRepo.GetForUpdate(ctx, req.PeriodID, employeeID)
			if err != nil {
				if errors.Is(err, payroll.ErrLineNotFound) {
					resp.Errors = append(resp.Errors, payroll.BatchItemError{EmployeeID: employeeID, Reason: err.Error()})
					continue
				}
				return err
			}
			if existing.Status == payroll.LineStatusApproved {
				resp.Errors = append(resp.Errors, payroll.BatchItemError{EmployeeID: employeeID, Reason: payroll.ErrLineApproved.Error()})
				continue
			}

			result, err := s.ComputeForEmployee(ctx, employeeID, globals)
			if err != nil {
				resp.Errors = append(resp.Errors, payroll.BatchItemError{EmployeeID: employeeID, Reason: err.Error()})
				continue
			}

			updated := result.Line
			updated.ID = existing.ID
			updated.Status = existing.Status
			updated.CreatedAt = existing.CreatedAt
			if err := s.lineRepo.Update(ctx, updated, result.Details); err != nil {
				return err
			}

			resp.Recalculated = append(resp.Recalculated, payroll.RecalculatedLine{
				LineResponse: toLineResponse(updated, result.Details, result.Items),
				PreviousNet:  existing.NetPay,
				Difference:   money.Round2(updated.NetPay.Sub(existing.NetPay)),
			})
		}
		return nil
	})
	if err != nil {
		return payroll.RecalculateBatchResponse{}, err
	}

	return resp, nil
}

// SimulateBatch runs the identical computation with no persistence, for
// what-if review before commit.
func (s *PayrollServiceImpl) SimulateBatch(ctx context.Context, req payroll.BatchRequest) (payroll.SimulateBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SimulateBatchResponse{}, err
	}

	globals, err := s.LoadPeriodGlobals(ctx, req.PeriodID)
	if err != nil {
		return payroll.SimulateBatchResponse{}, err
	}

	employeeIDs, err := s.resolveEmployeeIDs(ctx, req, globals)
	if err != nil {
		return payroll.SimulateBatchResponse{}, err
	}

	resp := payroll.SimulateBatchResponse{
		Preview: []payroll.LineResponse{},
		Errors:  []payroll.BatchItemError{},
	}

	for _, employeeID := range employeeIDs {
		result, err := s.ComputeForEmployee(ctx, employeeID, globals)
		if err != nil {
			resp.Errors = append(resp.Errors, payroll.BatchItemError{EmployeeID: employeeID, Reason: err.Error()})
			continue
		}
		resp.Preview = append(resp.Preview, toLineResponse(result.Line, result.Details, result.Items))
	}

	return resp, nil
}

func (s *PayrollServiceImpl) resolveEmployeeIDs(ctx context.Context, req payroll.BatchRequest, globals payroll.PeriodGlobals) ([]string, error) {
	if len(req.EmployeeIDs) > 0 {
		return req.EmployeeIDs, nil
	}
	ids, err := s.contractRepo.ListEmployeeIDsByStatus(ctx, globals.ActiveStatusID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(ids) == 0 {
		return nil, payroll.ErrNoEmployees
	}
	return ids, nil
}

// ========== LINE ACCESS ==========

func (s *PayrollServiceImpl) GetLine(ctx context.Context, id string) (payroll.LineResponse, error) {
	line, err := s.lineRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.LineResponse{}, err
	}
	details, err := s.lineRepo.GetDetails(ctx, line.ID)
	if err != nil {
		return payroll.LineResponse{}, err
	}
	return toLineResponse(line, details, nil), nil
}

func (s *PayrollServiceImpl) ListLines(ctx context.Context, periodID string) ([]payroll.LineResponse, error) {
	lines, err := s.lineRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	result := make([]payroll.LineResponse, 0, len(lines))
	for _, line := range lines {
		result = append(result, toLineResponse(line, nil, nil))
	}
	return result, nil
}

func (s *PayrollServiceImpl) ApproveLines(ctx context.Context, req payroll.ApproveLinesRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.lineRepo.Approve(ctx, req.LineIDs)
}

// DeleteLine removes a line and its deduction details. Approved lines are
// immutable and cannot be deleted.
func (s *PayrollServiceImpl) DeleteLine(ctx context.Context, id string) error {
	line, err := s.lineRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if line.Status == payroll.LineStatusApproved {
		return payroll.ErrLineApproved
	}
	return s.lineRepo.Delete(ctx, id)
}

func (s *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, periodID string) (payroll.PeriodSummaryResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}
	return s.lineRepo.GetPeriodSummary(ctx, periodID)
}

// ========== HELPERS ==========

func toLineResponse(line payroll.PayrollLine, details []payroll.DeductionDetail, items []payroll.LineItem) payroll.LineResponse {
	detailResponses := make([]payroll.DeductionDetailResponse, 0, len(details))
	for _, d := range details {
		detailResponses = append(detailResponses, payroll.DeductionDetailResponse{
			ID:          d.ID,
			DeductionID: d.DeductionID,
			Name:        d.DeductionName,
			Amount:      d.Amount,
		})
	}

	return payroll.LineResponse{
		IDDetail:      line.ID,
		IDPeriod:      line.PeriodID,
		IDEmployee:    line.EmployeeID,
		IDContract:    line.ContractID,
		OrdinaryHours: line.OrdinaryHours,
		OvertimeHours: line.OvertimeHours,
		HolidayHours:  line.HolidayHours,
		NightHours:    line.NightHours,
		Gross:         line.GrossPay,
		Deductions:    line.TotalDeductions,
		Tax:           line.Tax,
		Net:           line.NetPay,
		Status:        string(line.Status),
		Details:       detailResponses,
		Items:         items,
	}
}
