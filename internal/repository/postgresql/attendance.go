package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
	"github.com/waspernest/pe-bms-node/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.biometric_id, a.log_date, a.time_in, a.time_out, a.origin,
	a.is_reliever, a.created_at, a.updated_at,
	u.first_name, u.last_name
`

// GetForUserDate implements attendance.Repository.
func (a *attendanceRepository) GetForUserDate(ctx context.Context, biometricID, logDate string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		LEFT JOIN employees u ON u.biometric_id = a.biometric_id
		WHERE a.biometric_id = $1
		  AND a.log_date = $2
		ORDER BY a.time_in ASC
	`

	rows, err := q.Query(ctx, query, biometricID, logDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Insert implements attendance.Repository.
func (a *attendanceRepository) Insert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			biometric_id, log_date, time_in, time_out, origin, is_reliever
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.BiometricID,
		rec.LogDate,
		rec.TimeIn,
		rec.TimeOut,
		rec.Origin,
		rec.IsReliever,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return rec, nil
}

// Close implements attendance.Repository.
func (a *attendanceRepository) Close(ctx context.Context, id int64, timeOut string, origin attendance.Origin) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET time_out = $1, origin = $2, updated_at = $3
		WHERE id = $4 AND time_out IS NULL
		RETURNING id
	`

	var closedID int64
	if err := q.QueryRow(ctx, query, timeOut, origin, time.Now(), id).Scan(&closedID); err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to close attendance record: %w", err)
	}

	return nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		LEFT JOIN employees u ON u.biometric_id = a.biometric_id
		WHERE a.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.BiometricID, &rec.LogDate, &rec.TimeIn, &rec.TimeOut, &rec.Origin,
		&rec.IsReliever, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.FirstName, &rec.LastName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(
			" AND (a.biometric_id ILIKE $%d OR u.first_name ILIKE $%d OR u.last_name ILIKE $%d)",
			argIdx, argIdx, argIdx,
		)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.log_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.log_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Count needs the employees join for the name search.
	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records a
		LEFT JOIN employees u ON u.biometric_id = a.biometric_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendance_records a
		LEFT JOIN employees u ON u.biometric_id = a.biometric_id
		WHERE %s
		ORDER BY a.log_date %s, a.time_in %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, sortOrder, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetOpenBefore implements attendance.Repository.
func (a *attendanceRepository) GetOpenBefore(ctx context.Context, cutoffDate string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		LEFT JOIN employees u ON u.biometric_id = a.biometric_id
		WHERE a.time_out IS NULL
		  AND a.log_date < $1
		ORDER BY a.log_date ASC
	`

	rows, err := q.Query(ctx, query, cutoffDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query open attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.BiometricID, &rec.LogDate, &rec.TimeIn, &rec.TimeOut, &rec.Origin,
			&rec.IsReliever, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.FirstName, &rec.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
