package postgres

import (
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/storage"
)

func TestPostgresStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	id := uuid.NewString()
	item := models.RoutineItem{ID: id, Subject: "Integration", DailyHours: 1.5, Priority: models.PriorityLow}
	if err := store.AddItem(item); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	got, err := store.GetItem(id)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if got.DailyHours != 1.5 || got.Priority != models.PriorityLow {
		t.Errorf("Unexpected item: %+v", got)
	}

	if err := store.DeleteItem(id); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if _, err := store.GetItem(id); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	planID := uuid.NewString()
	if err := store.SavePlan(models.RoutinePlan{ID: planID, StartDate: "2024-01-01", Duration: 1}); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	if _, err := store.GetPlan(planID); err != nil {
		t.Fatalf("GetPlan failed: %v", err)
	}
	if err := store.DeletePlan(planID); err != nil {
		t.Fatalf("DeletePlan failed: %v", err)
	}
}
