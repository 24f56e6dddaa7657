package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/routinely/internal/models"
)

// ItemColumns is the column encoding of a routine item shared by the SQL stores.
type ItemColumns struct {
	FocusTimeSlots       string
	SelectedDays         string
	UnavailableTimeByDay string
}

// EncodeItem serializes the list and map fields of item as JSON text.
func EncodeItem(item models.RoutineItem) (ItemColumns, error) {
	focus, err := json.Marshal(nonNil(item.FocusTimeSlots))
	if err != nil {
		return ItemColumns{}, fmt.Errorf("failed to marshal focus time slots: %w", err)
	}
	days, err := json.Marshal(nonNil(item.SelectedDays))
	if err != nil {
		return ItemColumns{}, fmt.Errorf("failed to marshal selected days: %w", err)
	}
	windows := item.UnavailableTimeByDay
	if windows == nil {
		windows = map[models.Weekday]models.TimeWindow{}
	}
	unavailable, err := json.Marshal(windows)
	if err != nil {
		return ItemColumns{}, fmt.Errorf("failed to marshal unavailable windows: %w", err)
	}
	return ItemColumns{
		FocusTimeSlots:       string(focus),
		SelectedDays:         string(days),
		UnavailableTimeByDay: string(unavailable),
	}, nil
}

// DecodeItem fills the list and map fields of item from their JSON columns.
func DecodeItem(item *models.RoutineItem, cols ItemColumns) error {
	if cols.FocusTimeSlots != "" {
		if err := json.Unmarshal([]byte(cols.FocusTimeSlots), &item.FocusTimeSlots); err != nil {
			return fmt.Errorf("failed to unmarshal focus time slots for %s: %w", item.ID, err)
		}
	}
	if cols.SelectedDays != "" {
		if err := json.Unmarshal([]byte(cols.SelectedDays), &item.SelectedDays); err != nil {
			return fmt.Errorf("failed to unmarshal selected days for %s: %w", item.ID, err)
		}
	}
	if cols.UnavailableTimeByDay != "" && cols.UnavailableTimeByDay != "{}" {
		if err := json.Unmarshal([]byte(cols.UnavailableTimeByDay), &item.UnavailableTimeByDay); err != nil {
			return fmt.Errorf("failed to unmarshal unavailable windows for %s: %w", item.ID, err)
		}
	}
	if len(item.SelectedDays) == 0 {
		item.SelectedDays = nil
	}
	return nil
}

// EncodeDays serializes the day records of a plan.
func EncodeDays(days []models.DayRecord) (string, error) {
	b, err := json.Marshal(nonNil(days))
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan days: %w", err)
	}
	return string(b), nil
}

func DecodeDays(raw string) ([]models.DayRecord, error) {
	var days []models.DayRecord
	if raw == "" {
		return days, nil
	}
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan days: %w", err)
	}
	return days, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
