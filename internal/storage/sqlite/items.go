package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/storage"
)

const itemColumns = `id, subject, daily_hours, focus_time_slots, selected_days, priority,
	unavailable_time_by_day, notes, position, deleted_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (models.RoutineItem, error) {
	var item models.RoutineItem
	var cols storage.ItemColumns
	var priority string
	var deletedAt sql.NullString

	if err := row.Scan(
		&item.ID, &item.Subject, &item.DailyHours, &cols.FocusTimeSlots, &cols.SelectedDays, &priority,
		&cols.UnavailableTimeByDay, &item.Notes, &item.Position, &deletedAt,
	); err != nil {
		return models.RoutineItem{}, err
	}

	item.Priority = models.Priority(priority)
	if deletedAt.Valid {
		item.DeletedAt = &deletedAt.String
	}
	if err := storage.DecodeItem(&item, cols); err != nil {
		return models.RoutineItem{}, err
	}
	return item, nil
}

// AddItem appends item after the last existing position.
func (s *Store) AddItem(item models.RoutineItem) error {
	var next int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(position), -1) + 1 FROM routine_items").Scan(&next); err != nil {
		return fmt.Errorf("failed to compute item position: %w", err)
	}
	item.Position = next
	return s.UpdateItem(item)
}

func (s *Store) GetItem(id string) (models.RoutineItem, error) {
	row := s.db.QueryRow("SELECT "+itemColumns+" FROM routine_items WHERE id = ? AND deleted_at IS NULL", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RoutineItem{}, fmt.Errorf("routine item %s: %w", id, storage.ErrNotFound)
	}
	return item, err
}

func (s *Store) GetAllItems() ([]models.RoutineItem, error) {
	return s.queryItems("SELECT " + itemColumns + " FROM routine_items WHERE deleted_at IS NULL ORDER BY position, id")
}

func (s *Store) GetAllItemsIncludingDeleted() ([]models.RoutineItem, error) {
	return s.queryItems("SELECT " + itemColumns + " FROM routine_items ORDER BY position, id")
}

func (s *Store) queryItems(query string) ([]models.RoutineItem, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.RoutineItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) UpdateItem(item models.RoutineItem) error {
	cols, err := storage.EncodeItem(item)
	if err != nil {
		return err
	}

	var deletedAt sql.NullString
	if item.DeletedAt != nil {
		deletedAt = sql.NullString{String: *item.DeletedAt, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO routine_items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Subject, item.DailyHours, cols.FocusTimeSlots, cols.SelectedDays, string(item.Priority),
		cols.UnavailableTimeByDay, item.Notes, item.Position, deletedAt,
	)
	return err
}

func (s *Store) DeleteItem(id string) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM routine_items WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("routine item %s: %w", id, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to check item existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("routine item %s is already deleted", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec("UPDATE routine_items SET deleted_at = ? WHERE id = ?", now, id)
	return err
}

func (s *Store) RestoreItem(id string) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM routine_items WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("routine item %s: %w", id, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to check item existence: %w", err)
	}

	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a routine item that is not deleted: %s", id)
	}

	_, err = s.db.Exec("UPDATE routine_items SET deleted_at = NULL WHERE id = ?", id)
	return err
}
