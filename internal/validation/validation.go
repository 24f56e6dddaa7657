package validation

import (
	"fmt"
	"sort"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/scheduler"
	"github.com/julianstephens/routinely/internal/utils"
)

// Conflict represents a detected problem in routine items or a generated plan
type Conflict struct {
	Type        constants.ConflictType
	Description string
	Date        string   // YYYY-MM-DD (if applicable)
	Items       []string // Subjects involved
	TimeRange   string   // Human-readable time range (if applicable)
	ItemIDs     []string // IDs of routine items involved (for auto-fixing)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Merge appends the conflicts of other to vr.
func (vr *ValidationResult) Merge(other ValidationResult) {
	vr.Conflicts = append(vr.Conflicts, other.Conflicts...)
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks routine items and generated days
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateItems reports duplicate subjects and item fields outside the strict shape.
// Deleted items are ignored.
func (v *Validator) ValidateItems(items []models.RoutineItem) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	subjectIDs := make(map[string][]string)
	var subjects []string
	for _, item := range items {
		if item.DeletedAt != nil || item.Subject == "" {
			continue
		}
		if _, seen := subjectIDs[item.Subject]; !seen {
			subjects = append(subjects, item.Subject)
		}
		subjectIDs[item.Subject] = append(subjectIDs[item.Subject], item.ID)
	}
	for _, subject := range subjects {
		ids := subjectIDs[subject]
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictDuplicateSubject,
				Description: fmt.Sprintf("Duplicate subject: \"%s\" (IDs: %v)", subject, ids),
				Items:       []string{subject},
				ItemIDs:     ids,
			})
		}
	}

	for _, item := range items {
		if item.DeletedAt != nil {
			continue
		}

		if !models.ValidDailyHours(item.DailyHours) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: constants.ConflictInvalidHours,
				Description: fmt.Sprintf("\"%s\" has daily hours %v; expected %.1f-%.1f in %.1f steps",
					item.Subject, item.DailyHours, constants.MinDailyHours, constants.MaxDailyHours, constants.HoursIncrement),
				Items:   []string{item.Subject},
				ItemIDs: []string{item.ID},
			})
		}

		for _, focus := range item.FocusTimeSlots {
			if !focus.Valid() {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        constants.ConflictInvalidFocusTime,
					Description: fmt.Sprintf("\"%s\" has unknown focus time: %s", item.Subject, focus),
					Items:       []string{item.Subject},
					ItemIDs:     []string{item.ID},
				})
			}
		}

		days := make([]models.Weekday, 0, len(item.UnavailableTimeByDay))
		for day := range item.UnavailableTimeByDay {
			days = append(days, day)
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Time() < days[j].Time() })
		for _, day := range days {
			window := item.UnavailableTimeByDay[day]
			if _, _, err := window.Minutes(); err != nil || !day.Valid() {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        constants.ConflictInvalidWindow,
					Description: fmt.Sprintf("\"%s\" has an invalid unavailable window on %s: %s-%s", item.Subject, day, window.Start, window.End),
					Items:       []string{item.Subject},
					TimeRange:   fmt.Sprintf("%s-%s", window.Start, window.End),
					ItemIDs:     []string{item.ID},
				})
			}
		}
	}

	return result
}

// ValidateDay checks one generated day for overlapping blocks, blocks ending
// after dayEnd and blocks running past midnight.
func (v *Validator) ValidateDay(day models.DayRecord, dayEnd string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	dayEndMinutes, err := utils.ParseTimeToMinutes(dayEnd)
	if err != nil {
		dayEndMinutes = constants.MinutesPerDay
	}

	type span struct {
		block      models.ScheduleBlock
		start, end int
	}
	spans := make([]span, 0, len(day.Schedules))
	for _, block := range day.Schedules {
		start, err := scheduler.ParseClock(block.StartTime)
		if err != nil {
			continue
		}
		end, err := scheduler.ParseClock(block.EndTime)
		if err != nil {
			continue
		}
		spans = append(spans, span{block: block, start: start, end: end})
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			a, b := spans[i], spans[j]
			if a.start < b.end && b.start < a.end {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type: constants.ConflictOverlappingBlocks,
					Description: fmt.Sprintf("Day %d: %s-%s \"%s\" overlaps \"%s\"",
						day.Day, a.block.StartTime, a.block.EndTime, a.block.Title, b.block.Title),
					Date:      day.CalendarDate,
					Items:     []string{a.block.Subject, b.block.Subject},
					TimeRange: fmt.Sprintf("%s-%s", b.block.StartTime, b.block.EndTime),
				})
			}
		}
	}

	for _, s := range spans {
		timeRange := fmt.Sprintf("%s-%s", s.block.StartTime, s.block.EndTime)
		switch {
		case s.end > constants.MinutesPerDay:
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictExceedsDay,
				Description: fmt.Sprintf("Day %d: \"%s\" runs past midnight (%s)", day.Day, s.block.Title, timeRange),
				Date:        day.CalendarDate,
				Items:       []string{s.block.Subject},
				TimeRange:   timeRange,
			})
		case s.end > dayEndMinutes:
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictExceedsWakingWindow,
				Description: fmt.Sprintf("Day %d: \"%s\" ends after %s (%s)", day.Day, s.block.Title, dayEnd, timeRange),
				Date:        day.CalendarDate,
				Items:       []string{s.block.Subject},
				TimeRange:   timeRange,
			})
		}
	}

	return result
}

// ValidatePlan runs ValidateDay over every day of a plan.
func (v *Validator) ValidatePlan(days []models.DayRecord, dayEnd string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	for _, day := range days {
		result.Merge(v.ValidateDay(day, dayEnd))
	}
	return result
}

// AutoFixDuplicateItems keeps the earliest-positioned item of each duplicate
// subject and soft-deletes the rest through deleteFunc.
func AutoFixDuplicateItems(conflicts []Conflict, items []models.RoutineItem, deleteFunc func(id string) error) []FixAction {
	actions := []FixAction{}

	itemMap := make(map[string]models.RoutineItem)
	for _, item := range items {
		itemMap[item.ID] = item
	}

	for _, conflict := range conflicts {
		if conflict.Type != constants.ConflictDuplicateSubject || len(conflict.ItemIDs) <= 1 {
			continue
		}

		var candidates []models.RoutineItem
		for _, id := range conflict.ItemIDs {
			if item, ok := itemMap[id]; ok && item.DeletedAt == nil {
				candidates = append(candidates, item)
			}
		}
		if len(candidates) <= 1 {
			continue
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Position < candidates[j].Position
		})

		keep := candidates[0]
		var deletedIDs, failedIDs []string
		for _, item := range candidates[1:] {
			if err := deleteFunc(item.ID); err == nil {
				deletedIDs = append(deletedIDs, item.ID)
			} else {
				failedIDs = append(failedIDs, item.ID)
			}
		}

		if len(deletedIDs) > 0 {
			msg := fmt.Sprintf("Removed %d duplicate item(s) with subject \"%s\" (kept ID: %s, removed: %v)", len(deletedIDs), keep.Subject, keep.ID, deletedIDs)
			if len(failedIDs) > 0 {
				msg += fmt.Sprintf(" (failed to remove: %v)", failedIDs)
			}
			actions = append(actions, FixAction{Action: msg, SourceConflict: conflict})
		} else if len(failedIDs) > 0 {
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Failed to remove duplicates for \"%s\": %v", keep.Subject, failedIDs),
				SourceConflict: conflict,
			})
		}
	}

	return actions
}
