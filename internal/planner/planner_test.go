package planner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/scheduler"
)

func TestGenerateRaw(t *testing.T) {
	svc := New(nil, nil)

	res, err := svc.GenerateRaw(context.Background(), models.RawRequest{
		RoutineItems: []models.RawRoutineItem{
			{Subject: "Math", DailyHours: 2, FocusTimeSlots: []any{"forenoon"}},
			{Subject: "English", DailyHours: 1.5, FocusTimeSlots: []any{"afternoon"}},
		},
		StartDate:       "2024-01-01",
		Duration:        7,
		ExcludeWeekends: true,
	})
	if err != nil {
		t.Fatalf("GenerateRaw failed: %v", err)
	}

	if len(res.Days) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(res.Days))
	}
	if res.Days[0].Schedules[1].StartTime != "14:00" {
		t.Errorf("Expected English at 14:00, got %s", res.Days[0].Schedules[1].StartTime)
	}
	if !strings.Contains(res.Summary, "Math, English") {
		t.Errorf("Expected subjects in summary, got %q", res.Summary)
	}
}

func TestGenerateRaw_Invalid(t *testing.T) {
	svc := New(nil, nil)

	_, err := svc.GenerateRaw(context.Background(), models.RawRequest{StartDate: "2024-01-01", Duration: -1})
	if !errors.Is(err, models.ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got %v", err)
	}
}

func TestGenerate_ValidatesNormalizedRequest(t *testing.T) {
	svc := New(scheduler.NewWithOptions(scheduler.Options{EnforceConstraints: true}), nil)

	if _, err := svc.Generate(context.Background(), models.Request{StartDate: time.Now()}); !errors.Is(err, models.ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for zero duration, got %v", err)
	}
	if _, err := svc.Generate(context.Background(), models.Request{Duration: 1}); !errors.Is(err, models.ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for missing start date, got %v", err)
	}
	if _, err := svc.Generate(context.Background(), models.Request{StartDate: time.Now(), Duration: 1_000_000_000}); !errors.Is(err, models.ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for oversized duration, got %v", err)
	}
}

func TestGenerate_MaxDuration(t *testing.T) {
	svc := New(nil, nil)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	res, err := svc.Generate(context.Background(), models.Request{StartDate: start, Duration: constants.MaxDurationDays})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(res.Days) != constants.MaxDurationDays {
		t.Errorf("Expected %d days, got %d", constants.MaxDurationDays, len(res.Days))
	}
}
