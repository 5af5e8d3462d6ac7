package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/waspernest/pe-bms-node/internal/domain/employee"
	"github.com/waspernest/pe-bms-node/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, biometric_id, first_name, last_name, job_position,
	schedule_start, schedule_end, rest_day, schedule_group_id,
	base_daily_rate, is_reliever, is_deleted, created_at, updated_at
`

// GetByBiometricID implements employee.Repository.
func (e *employeeRepository) GetByBiometricID(ctx context.Context, biometricID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE biometric_id = $1
		  AND is_deleted = FALSE
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, biometricID).Scan(
		&emp.ID, &emp.BiometricID, &emp.FirstName, &emp.LastName, &emp.JobPosition,
		&emp.ScheduleStart, &emp.ScheduleEnd, &emp.RestDay, &emp.ScheduleGroupID,
		&emp.BaseDailyRate, &emp.IsReliever, &emp.IsDeleted, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by biometric id: %w", err)
	}

	return emp, nil
}

// List implements employee.Repository.
func (e *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_deleted = FALSE
		ORDER BY last_name ASC, first_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.BiometricID, &emp.FirstName, &emp.LastName, &emp.JobPosition,
			&emp.ScheduleStart, &emp.ScheduleEnd, &emp.RestDay, &emp.ScheduleGroupID,
			&emp.BaseDailyRate, &emp.IsReliever, &emp.IsDeleted, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// UpdateSchedule implements employee.Repository.
func (e *employeeRepository) UpdateSchedule(ctx context.Context, biometricID string, req employee.UpdateScheduleRequest) error {
	q := GetQuerier(ctx, e.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.ScheduleStart != nil {
		updates = append(updates, fmt.Sprintf("schedule_start = $%d", argIdx))
		args = append(args, *req.ScheduleStart)
		argIdx++
	}
	if req.ScheduleEnd != nil {
		updates = append(updates, fmt.Sprintf("schedule_end = $%d", argIdx))
		args = append(args, *req.ScheduleEnd)
		argIdx++
	}
	if req.RestDay != nil {
		updates = append(updates, fmt.Sprintf("rest_day = $%d", argIdx))
		args = append(args, req.RestDay)
		argIdx++
	}
	if req.ScheduleGroupID != nil {
		updates = append(updates, fmt.Sprintf("schedule_group_id = $%d", argIdx))
		args = append(args, req.ScheduleGroupID)
		argIdx++
	}
	if req.IsReliever != nil {
		updates = append(updates, fmt.Sprintf("is_reliever = $%d", argIdx))
		args = append(args, *req.IsReliever)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee schedule update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, biometricID)

	query := "UPDATE employees SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE biometric_id = $%d AND is_deleted = FALSE RETURNING id", argIdx)

	var updatedID int64
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee schedule: %w", err)
	}

	return nil
}
