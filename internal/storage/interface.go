package storage

import (
	"errors"

	"github.com/julianstephens/routinely/internal/models"
)

// ErrNotFound is returned when a routine item or plan does not exist.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	// Migrate applies pending schema migrations and returns how many ran.
	Migrate(logFn func(string)) (int, error)
	// SchemaVersion returns the applied and the latest known schema version.
	SchemaVersion() (current int, latest int, err error)

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Routine items
	AddItem(models.RoutineItem) error
	GetItem(id string) (models.RoutineItem, error)
	// GetAllItems returns non-deleted items ordered by position.
	GetAllItems() ([]models.RoutineItem, error)
	GetAllItemsIncludingDeleted() ([]models.RoutineItem, error)
	UpdateItem(models.RoutineItem) error
	DeleteItem(id string) error
	RestoreItem(id string) error

	// Plans
	SavePlan(models.RoutinePlan) error
	GetPlan(id string) (models.RoutinePlan, error)
	// GetAllPlans returns plans newest first.
	GetAllPlans(includeDeleted bool) ([]models.RoutinePlan, error)
	DeletePlan(id string) error
	RestorePlan(id string) error

	// Utils
	GetConfigPath() string
}
