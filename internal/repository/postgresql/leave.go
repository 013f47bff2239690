package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrcore/payroll-engine-go/internal/domain/leave"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) GetApprovedVacations(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	return r.listApproved(ctx, "vacation", false, employeeID, start, end)
}

func (r *leaveRepository) GetApprovedPaidLeaves(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	return r.listApproved(ctx, "leave", true, employeeID, start, end)
}

func (r *leaveRepository) listApproved(ctx context.Context, requestType string, paidOnly bool, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, approval_status, paid, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND request_type = $2
		  AND approval_status = 'approved'
		  AND start_date <= $4
		  AND end_date >= $3
	`
	if paidOnly {
		query += " AND paid = true"
	}
	query += " ORDER BY start_date"

	rows, err := q.Query(ctx, query, employeeID, requestType, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s requests: %w", requestType, err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate,
			&req.ApprovalStatus, &req.Paid, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan %s request: %w", requestType, err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRepository) GetIncapacities(ctx context.Context, employeeID string, start, end time.Time) ([]leave.IncapacityRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date,
			   employer_coverage_percent, insurer_coverage_percent, created_at, updated_at
		FROM incapacity_records
		WHERE employee_id = $1
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list incapacity records: %w", err)
	}
	defer rows.Close()

	var records []leave.IncapacityRecord
	for rows.Next() {
		var rec leave.IncapacityRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate,
			&rec.EmployerCoveragePercent, &rec.InsurerCoveragePercent, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan incapacity record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
