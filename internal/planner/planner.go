package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/narrative"
	"github.com/julianstephens/routinely/internal/scheduler"
)

// Result is the outcome of generating a routine.
type Result struct {
	Summary string             `json:"summary"`
	Days    []models.DayRecord `json:"days"`
}

// Service is the single entry point for routine generation used by the CLI,
// the HTTP server and the TUI.
type Service struct {
	scheduler  *scheduler.Scheduler
	summarizer *narrative.Summarizer
}

func New(s *scheduler.Scheduler, summarizer *narrative.Summarizer) *Service {
	if s == nil {
		s = scheduler.New()
	}
	if summarizer == nil {
		summarizer = narrative.NewSummarizer(nil)
	}
	return &Service{scheduler: s, summarizer: summarizer}
}

// GenerateRaw normalizes a loosely typed request and generates the routine.
// Only an unusable duration or start date is rejected, wrapping
// models.ErrInvalidRequest.
func (s *Service) GenerateRaw(ctx context.Context, raw models.RawRequest) (Result, error) {
	req, err := raw.Normalize()
	if err != nil {
		return Result{}, err
	}
	return s.Generate(ctx, req)
}

// Generate produces the summary and day records for an already normalized request.
func (s *Service) Generate(ctx context.Context, req models.Request) (Result, error) {
	if req.Duration < 1 {
		return Result{}, fmt.Errorf("duration must be a positive integer: %w", models.ErrInvalidRequest)
	}
	if req.Duration > constants.MaxDurationDays {
		return Result{}, fmt.Errorf("duration must be at most %d days: %w", constants.MaxDurationDays, models.ErrInvalidRequest)
	}
	if req.StartDate.IsZero() {
		return Result{}, fmt.Errorf("start date is required: %w", models.ErrInvalidRequest)
	}

	started := time.Now()
	days := s.scheduler.Generate(req.Items, req.StartDate, req.Duration, req.ExcludeWeekends)
	summary := s.summarizer.Summarize(ctx, req.Items, req.Duration)

	logger.Info("Routine generated",
		"items", len(req.Items),
		"days", len(days),
		"exclude_weekends", req.ExcludeWeekends,
		"elapsed", time.Since(started).String(),
	)

	return Result{Summary: summary, Days: days}, nil
}
