package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/storage"
)

const planColumns = "id, start_date, duration, exclude_weekends, summary, days_json, created_at, deleted_at"

func scanPlan(row scanner) (models.RoutinePlan, error) {
	var plan models.RoutinePlan
	var daysJSON string
	var deletedAt sql.NullString

	if err := row.Scan(
		&plan.ID, &plan.StartDate, &plan.Duration, &plan.ExcludeWeekends,
		&plan.Summary, &daysJSON, &plan.CreatedAt, &deletedAt,
	); err != nil {
		return models.RoutinePlan{}, err
	}
	if deletedAt.Valid {
		plan.DeletedAt = &deletedAt.String
	}

	days, err := storage.DecodeDays(daysJSON)
	if err != nil {
		return models.RoutinePlan{}, fmt.Errorf("plan %s: %w", plan.ID, err)
	}
	plan.Days = days
	return plan, nil
}

func (s *Store) SavePlan(plan models.RoutinePlan) error {
	daysJSON, err := storage.EncodeDays(plan.Days)
	if err != nil {
		return err
	}
	if plan.CreatedAt == "" {
		plan.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	var deletedAt sql.NullString
	if plan.DeletedAt != nil {
		deletedAt = sql.NullString{String: *plan.DeletedAt, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO routine_plans (`+planColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.StartDate, plan.Duration, plan.ExcludeWeekends,
		plan.Summary, daysJSON, plan.CreatedAt, deletedAt,
	)
	return err
}

func (s *Store) GetPlan(id string) (models.RoutinePlan, error) {
	row := s.db.QueryRow("SELECT "+planColumns+" FROM routine_plans WHERE id = ? AND deleted_at IS NULL", id)
	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RoutinePlan{}, fmt.Errorf("plan %s: %w", id, storage.ErrNotFound)
	}
	return plan, err
}

func (s *Store) GetAllPlans(includeDeleted bool) ([]models.RoutinePlan, error) {
	query := "SELECT " + planColumns + " FROM routine_plans"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.RoutinePlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (s *Store) DeletePlan(id string) error {
	res, err := s.db.Exec("UPDATE routine_plans SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no active plan %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) RestorePlan(id string) error {
	res, err := s.db.Exec("UPDATE routine_plans SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no deleted plan %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
