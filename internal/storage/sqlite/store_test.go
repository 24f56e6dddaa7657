package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/storage"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "routinely.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var _ storage.Provider = (*Store)(nil)

func TestInit_WritesDefaultSettings(t *testing.T) {
	store := setupStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("Expected default settings, got %+v", settings)
	}

	settings.ExcludeWeekends = true
	settings.DayEnd = "21:30"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got, _ := store.GetSettings()
	if !got.ExcludeWeekends || got.DayEnd != "21:30" {
		t.Errorf("Settings not persisted: %+v", got)
	}
}

func TestLoad_RequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Expected Load to fail before Init")
	}
}

func TestLoad_AfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routinely.db")
	first := NewStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	first.Close()

	second := NewStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer second.Close()

	applied, err := second.Migrate(nil)
	if err != nil || applied != 0 {
		t.Errorf("Expected no pending migrations, got %d, %v", applied, err)
	}
}

func TestSchemaVersion(t *testing.T) {
	unloaded := NewStore(filepath.Join(t.TempDir(), "routinely.db"))
	if _, _, err := unloaded.SchemaVersion(); err == nil {
		t.Error("Expected error before the database is opened")
	}

	store := setupStore(t)
	current, latest, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if latest < 1 || current != latest {
		t.Errorf("Expected current == latest >= 1, got %d/%d", current, latest)
	}
}

func TestItems_CRUD(t *testing.T) {
	store := setupStore(t)

	math := models.RoutineItem{
		ID:             "math",
		Subject:        "Math",
		DailyHours:     2,
		FocusTimeSlots: []models.FocusTime{models.FocusForenoon, models.FocusEvening},
		SelectedDays:   []models.Weekday{models.Monday, models.Friday},
		Priority:       models.PriorityHigh,
		UnavailableTimeByDay: map[models.Weekday]models.TimeWindow{
			models.Monday: {Start: "12:00", End: "13:00"},
		},
		Notes: "chapter 3",
	}
	english := models.RoutineItem{ID: "english", Subject: "English", DailyHours: 1.5, Priority: models.PriorityMedium}

	if err := store.AddItem(math); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := store.AddItem(english); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	got, err := store.GetItem("math")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if got.Subject != "Math" || got.DailyHours != 2 || got.Priority != models.PriorityHigh || got.Notes != "chapter 3" {
		t.Errorf("Unexpected item: %+v", got)
	}
	if len(got.FocusTimeSlots) != 2 || got.FocusTimeSlots[1] != models.FocusEvening {
		t.Errorf("Focus slots not round-tripped: %v", got.FocusTimeSlots)
	}
	if len(got.SelectedDays) != 2 || got.SelectedDays[1] != models.Friday {
		t.Errorf("Selected days not round-tripped: %v", got.SelectedDays)
	}
	if w := got.UnavailableTimeByDay[models.Monday]; w.Start != "12:00" || w.End != "13:00" {
		t.Errorf("Window not round-tripped: %+v", got.UnavailableTimeByDay)
	}

	items, err := store.GetAllItems()
	if err != nil {
		t.Fatalf("GetAllItems failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != "math" || items[1].ID != "english" {
		t.Fatalf("Expected items in insertion order, got %+v", items)
	}
	if items[1].Position != 1 {
		t.Errorf("Expected second item at position 1, got %d", items[1].Position)
	}

	english.DailyHours = 3
	english.Position = items[1].Position
	if err := store.UpdateItem(english); err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	got, _ = store.GetItem("english")
	if got.DailyHours != 3 {
		t.Errorf("Expected updated hours, got %v", got.DailyHours)
	}

	if _, err := store.GetItem("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestItems_SoftDelete(t *testing.T) {
	store := setupStore(t)

	if err := store.AddItem(models.RoutineItem{ID: "a", Subject: "A", DailyHours: 1}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := store.DeleteItem("a"); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if err := store.DeleteItem("a"); err == nil {
		t.Error("Expected error deleting an already deleted item")
	}
	if _, err := store.GetItem("a"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected deleted item to be hidden, got %v", err)
	}

	all, _ := store.GetAllItemsIncludingDeleted()
	if len(all) != 1 || all[0].DeletedAt == nil {
		t.Fatalf("Expected deleted item in full listing, got %+v", all)
	}

	if err := store.RestoreItem("a"); err != nil {
		t.Fatalf("RestoreItem failed: %v", err)
	}
	if err := store.RestoreItem("a"); err == nil {
		t.Error("Expected error restoring an active item")
	}
	if err := store.DeleteItem("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestPlans(t *testing.T) {
	store := setupStore(t)

	plan := models.RoutinePlan{
		ID:              "p1",
		StartDate:       "2024-01-01",
		Duration:        1,
		ExcludeWeekends: true,
		Summary:         "one day",
		Days: []models.DayRecord{{
			Day:          1,
			Date:         "January 1, Monday",
			CalendarDate: "2024-01-01",
			Content:      "09:00-11:00: Math - Concept study",
			Schedules:    []models.ScheduleBlock{{Title: "Math - Concept study", StartTime: "09:00", EndTime: "11:00", Subject: "Math"}},
		}},
		CreatedAt: "2024-01-01T00:00:00Z",
	}
	older := models.RoutinePlan{ID: "p0", StartDate: "2023-12-01", Duration: 2, CreatedAt: "2023-12-01T00:00:00Z"}

	if err := store.SavePlan(plan); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	if err := store.SavePlan(older); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}

	got, err := store.GetPlan("p1")
	if err != nil {
		t.Fatalf("GetPlan failed: %v", err)
	}
	if !got.ExcludeWeekends || got.Summary != "one day" || len(got.Days) != 1 {
		t.Errorf("Unexpected plan: %+v", got)
	}
	if got.Days[0].Schedules[0].EndTime != "11:00" {
		t.Errorf("Days not round-tripped: %+v", got.Days)
	}

	plans, err := store.GetAllPlans(false)
	if err != nil {
		t.Fatalf("GetAllPlans failed: %v", err)
	}
	if len(plans) != 2 || plans[0].ID != "p1" {
		t.Errorf("Expected newest plan first, got %+v", plans)
	}

	if err := store.DeletePlan("p1"); err != nil {
		t.Fatalf("DeletePlan failed: %v", err)
	}
	if _, err := store.GetPlan("p1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if plans, _ := store.GetAllPlans(false); len(plans) != 1 {
		t.Errorf("Expected 1 active plan, got %d", len(plans))
	}
	if plans, _ := store.GetAllPlans(true); len(plans) != 2 {
		t.Errorf("Expected 2 plans including deleted, got %d", len(plans))
	}

	if err := store.RestorePlan("p1"); err != nil {
		t.Fatalf("RestorePlan failed: %v", err)
	}
	if err := store.RestorePlan("p1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound restoring active plan, got %v", err)
	}
}
