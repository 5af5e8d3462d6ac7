package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/waspernest/pe-bms-node/internal/domain/schedule"
	"github.com/waspernest/pe-bms-node/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

// CreateGroup implements schedule.Repository.
func (s *scheduleRepository) CreateGroup(ctx context.Context, name string) (schedule.Group, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedule_groups (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`

	var g schedule.Group
	err := q.QueryRow(ctx, query, name).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.Group{}, schedule.ErrGroupNameExists
		}
		return schedule.Group{}, fmt.Errorf("failed to create schedule group: %w", err)
	}

	return g, nil
}

// ListGroups implements schedule.Repository.
func (s *scheduleRepository) ListGroups(ctx context.Context) ([]schedule.Group, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM schedule_groups
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule groups: %w", err)
	}
	defer rows.Close()

	var groups []schedule.Group
	for rows.Next() {
		var g schedule.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// GetGroup implements schedule.Repository.
func (s *scheduleRepository) GetGroup(ctx context.Context, id int64) (schedule.Group, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM schedule_groups
		WHERE id = $1
	`

	var g schedule.Group
	err := q.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Group{}, schedule.ErrGroupNotFound
		}
		return schedule.Group{}, fmt.Errorf("failed to get schedule group: %w", err)
	}

	return g, nil
}

// DeleteGroup implements schedule.Repository.
func (s *scheduleRepository) DeleteGroup(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, s.db)

	query := `DELETE FROM schedule_groups WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule group: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return schedule.ErrGroupNotFound
	}

	return nil
}

// GetAssignment implements schedule.Repository.
func (s *scheduleRepository) GetAssignment(ctx context.Context, groupID int64, date string) (*schedule.Assignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, group_id, date, start_time, end_time, created_at, updated_at
		FROM schedule_assignments
		WHERE group_id = $1
		  AND date = $2
	`

	var a schedule.Assignment
	err := q.QueryRow(ctx, query, groupID, date).Scan(
		&a.ID, &a.GroupID, &a.Date, &a.Start, &a.End, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No assignment for this date
		}
		return nil, fmt.Errorf("failed to get schedule assignment: %w", err)
	}

	return &a, nil
}

// ListAssignments implements schedule.Repository.
func (s *scheduleRepository) ListAssignments(ctx context.Context, groupID int64, startDate, endDate string) ([]schedule.Assignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, group_id, date, start_time, end_time, created_at, updated_at
		FROM schedule_assignments
		WHERE group_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, groupID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.Assignment
	for rows.Next() {
		var a schedule.Assignment
		err := rows.Scan(&a.ID, &a.GroupID, &a.Date, &a.Start, &a.End, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// UpsertAssignment implements schedule.Repository.
func (s *scheduleRepository) UpsertAssignment(ctx context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedule_assignments (group_id, date, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (group_id, date)
		DO UPDATE SET start_time = EXCLUDED.start_time,
		              end_time = EXCLUDED.end_time,
		              updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.GroupID, a.Date, a.Start, a.End).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return schedule.Assignment{}, fmt.Errorf("failed to upsert schedule assignment: %w", err)
	}

	return a, nil
}
