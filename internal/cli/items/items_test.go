package items

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/storage"
	"github.com/julianstephens/routinely/internal/storage/sqlite"
)

func setupContext(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "routinely.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store}
}

func TestItemAddCmd_Item(t *testing.T) {
	cmd := ItemAddCmd{
		Subject:     " Math ",
		Hours:       1.5,
		Focus:       "afternoon,evening",
		Days:        "mon,wed",
		Priority:    "HIGH",
		Unavailable: "mon=14:00-15:00",
	}

	item, err := cmd.Item()
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}
	if item.ID == "" {
		t.Error("Expected a generated ID")
	}
	if item.Subject != "Math" || item.Priority != models.PriorityHigh {
		t.Errorf("Unexpected item: %+v", item)
	}
	if item.PrimaryFocus() != models.FocusAfternoon {
		t.Errorf("Expected afternoon focus, got %s", item.PrimaryFocus())
	}
	if len(item.SelectedDays) != 2 {
		t.Errorf("Expected 2 selected days, got %v", item.SelectedDays)
	}
	if w, ok := item.UnavailableTimeByDay[models.Monday]; !ok || w.Start != "14:00" {
		t.Errorf("Unexpected unavailable windows: %v", item.UnavailableTimeByDay)
	}
}

func TestItemAddCmd_ItemInvalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  ItemAddCmd
	}{
		{name: "hours out of range", cmd: ItemAddCmd{Subject: "Math", Hours: 13, Focus: "forenoon", Priority: "medium"}},
		{name: "hours off increment", cmd: ItemAddCmd{Subject: "Math", Hours: 1.25, Focus: "forenoon", Priority: "medium"}},
		{name: "unknown focus", cmd: ItemAddCmd{Subject: "Math", Hours: 1, Focus: "dawn", Priority: "medium"}},
		{name: "unknown day", cmd: ItemAddCmd{Subject: "Math", Hours: 1, Focus: "forenoon", Days: "funday"}},
		{name: "inverted window", cmd: ItemAddCmd{Subject: "Math", Hours: 1, Focus: "forenoon", Unavailable: "mon=10:00-09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cmd.Item(); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestItemLifecycle(t *testing.T) {
	ctx := setupContext(t)

	add := &ItemAddCmd{Subject: "Math", Hours: 2, Focus: "forenoon", Priority: "medium"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("ItemAddCmd failed: %v", err)
	}

	list, err := ctx.Store.GetAllItems()
	if err != nil {
		t.Fatalf("GetAllItems failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(list))
	}
	id := list[0].ID

	hours := 3.0
	notes := "chapter 4"
	edit := &ItemEditCmd{ID: id, Hours: &hours, Notes: &notes}
	if err := edit.Run(ctx); err != nil {
		t.Fatalf("ItemEditCmd failed: %v", err)
	}
	got, _ := ctx.Store.GetItem(id)
	if got.DailyHours != 3 || got.Notes != "chapter 4" {
		t.Errorf("Edit not persisted: %+v", got)
	}

	bad := 20.0
	if err := (&ItemEditCmd{ID: id, Hours: &bad}).Run(ctx); err == nil {
		t.Error("Expected error for invalid hours")
	}

	if err := (&ItemDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("ItemDeleteCmd failed: %v", err)
	}
	if list, _ := ctx.Store.GetAllItems(); len(list) != 0 {
		t.Errorf("Expected no active items, got %d", len(list))
	}

	if err := (&ItemRestoreCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("ItemRestoreCmd failed: %v", err)
	}
	if list, _ := ctx.Store.GetAllItems(); len(list) != 1 {
		t.Errorf("Expected restored item, got %d", len(list))
	}

	if err := (&ItemDeleteCmd{ID: "missing"}).Run(ctx); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestItemAddCmd_RequiresSubject(t *testing.T) {
	ctx := setupContext(t)
	if err := (&ItemAddCmd{Hours: 2, Focus: "forenoon"}).Run(ctx); err == nil {
		t.Error("Expected error without subject")
	}
}

func TestFormModel_Apply(t *testing.T) {
	fm := NewFormModel(ItemAddCmd{Subject: "Art", Hours: 1.5, Focus: "evening,night", Priority: "low"})
	if fm.Focus != "evening" || fm.Hours != "1.5" {
		t.Errorf("Unexpected form seed: %+v", fm)
	}

	fm.Hours = "2.5"
	var cmd ItemAddCmd
	if err := fm.Apply(&cmd); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if cmd.Subject != "Art" || cmd.Hours != 2.5 || cmd.Priority != "low" {
		t.Errorf("Unexpected command: %+v", cmd)
	}

	fm.Hours = "lots"
	if err := fm.Apply(&cmd); err == nil {
		t.Error("Expected error for non-numeric hours")
	}

	if validateHours("0.25") == nil || validateHours("4") != nil {
		t.Error("validateHours returned unexpected result")
	}
}
