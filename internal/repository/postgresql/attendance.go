package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrcore/payroll-engine-go/internal/domain/attendance"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.DailyAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, ordinary_hours, overtime_hours, night_hours,
			   is_holiday, incapacity_id, vacation_id, leave_id, created_at, updated_at
		FROM daily_attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.DailyAttendance
	for rows.Next() {
		var a attendance.DailyAttendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.OrdinaryHours, &a.OvertimeHours, &a.NightHours,
			&a.IsHoliday, &a.IncapacityID, &a.VacationID, &a.LeaveID, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}

	return attendances, rows.Err()
}

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) attendance.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) GetByRange(ctx context.Context, start, end time.Time) ([]attendance.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, is_mandatory
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []attendance.Holiday
	for rows.Next() {
		var h attendance.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.IsMandatory); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}
