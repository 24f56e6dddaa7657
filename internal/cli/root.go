package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/keyring"
	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/narrative"
	"github.com/julianstephens/routinely/internal/planner"
	"github.com/julianstephens/routinely/internal/scheduler"
	"github.com/julianstephens/routinely/internal/storage"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// Settings returns the stored settings with defaults filled in.
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

// NewPlanner builds the generation service from settings. enforce turns on
// constraint enforcement regardless of the stored setting.
func (c *Context) NewPlanner(settings models.Settings, enforce bool) *planner.Service {
	return planner.New(NewScheduler(settings, enforce), NewSummarizer(settings))
}

func NewScheduler(settings models.Settings, enforce bool) *scheduler.Scheduler {
	return scheduler.NewWithOptions(scheduler.Options{
		EnforceConstraints: enforce || settings.EnforceConstraints,
		DateLayout:         settings.DateLayout,
	})
}

// NewSummarizer wires the text provider named in settings. A missing API key
// or unknown provider yields a summarizer that always uses the fallback text.
func NewSummarizer(settings models.Settings) *narrative.Summarizer {
	if settings.TextProvider != constants.TextProviderOpenAI {
		return narrative.NewSummarizer(nil)
	}

	apiKey, err := keyring.Resolve(keyring.APIKey)
	if err != nil {
		logger.Warn("Text provider enabled but no API key found, using fallback summaries", "error", err)
		return narrative.NewSummarizer(nil)
	}

	provider, err := narrative.NewOpenAIProvider(narrative.OpenAIConfig{
		APIKey:     apiKey,
		BaseURL:    os.Getenv("OPENAI_BASE_URL"),
		Model:      settings.TextModel,
		MaxRetries: constants.TextProviderRetries,
	})
	if err != nil {
		logger.Warn("Failed to create text provider, using fallback summaries", "error", err)
		return narrative.NewSummarizer(nil)
	}
	return narrative.NewSummarizer(provider)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]models.Weekday, error) {
	var weekdays []models.Weekday
	seen := make(map[models.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		wd, err := models.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		if !seen[wd] {
			seen[wd] = true
			weekdays = append(weekdays, wd)
		}
	}
	return weekdays, nil
}

// ParseFocusTimes parses a comma-separated list of focus-time buckets.
func ParseFocusTimes(s string) ([]models.FocusTime, error) {
	var slots []models.FocusTime
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		f := models.FocusTime(part)
		if !f.Valid() {
			return nil, fmt.Errorf("invalid focus time: %s (expected morning|forenoon|afternoon|evening|night)", part)
		}
		slots = append(slots, f)
	}
	return slots, nil
}

// ParseUnavailable parses windows of the form "mon=09:00-10:00,wed=13:00-14:30".
func ParseUnavailable(s string) (map[models.Weekday]models.TimeWindow, error) {
	windows := make(map[models.Weekday]models.TimeWindow)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dayStr, rangeStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid unavailable window %q: expected day=HH:MM-HH:MM", part)
		}
		day, err := models.ParseWeekday(dayStr)
		if err != nil {
			return nil, err
		}
		start, end, ok := strings.Cut(strings.TrimSpace(rangeStr), "-")
		if !ok {
			return nil, fmt.Errorf("invalid unavailable window %q: expected day=HH:MM-HH:MM", part)
		}
		w := models.TimeWindow{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}
		if _, _, err := w.Minutes(); err != nil {
			return nil, fmt.Errorf("invalid unavailable window for %s: %w", day, err)
		}
		windows[day] = w
	}
	if len(windows) == 0 {
		return nil, nil
	}
	return windows, nil
}

// FormatUnavailable renders windows in the form accepted by ParseUnavailable,
// ordered Monday first.
func FormatUnavailable(windows map[models.Weekday]models.TimeWindow) string {
	days := make([]models.Weekday, 0, len(windows))
	for day := range windows {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return weekdayOrder(days[i]) < weekdayOrder(days[j])
	})

	parts := make([]string, 0, len(days))
	for _, day := range days {
		w := windows[day]
		parts = append(parts, fmt.Sprintf("%s=%s-%s", day, w.Start, w.End))
	}
	return strings.Join(parts, ",")
}

func weekdayOrder(d models.Weekday) int {
	return (int(d.Time()) + 6) % 7
}

// FormatItem renders one routine item for listings.
func FormatItem(item models.RoutineItem, showID bool) string {
	focus := make([]string, 0, len(item.FocusTimeSlots))
	for _, f := range item.FocusTimeSlots {
		focus = append(focus, string(f))
	}

	line := fmt.Sprintf("%s - %.1fh (%s, priority %s)", item.Subject, item.DailyHours, strings.Join(focus, ","), item.Priority)
	if showID {
		line = fmt.Sprintf("%s (ID: %s)", line, item.ID)
	}
	if len(item.SelectedDays) > 0 {
		days := make([]string, 0, len(item.SelectedDays))
		for _, d := range item.SelectedDays {
			days = append(days, string(d))
		}
		line += fmt.Sprintf("\n      Days: %s", strings.Join(days, ","))
	}
	if len(item.UnavailableTimeByDay) > 0 {
		line += fmt.Sprintf("\n      Unavailable: %s", FormatUnavailable(item.UnavailableTimeByDay))
	}
	if item.Notes != "" {
		line += fmt.Sprintf("\n      Notes: %s", item.Notes)
	}
	return line
}
