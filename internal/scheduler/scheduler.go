package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
)

// Options tunes generation. The zero value reproduces the classic behavior:
// selectedDays, priority and unavailable windows are informational only.
type Options struct {
	// EnforceConstraints filters items by selectedDays, orders them by priority
	// and moves blocks out of each item's unavailable window.
	EnforceConstraints bool
	// DateLayout is the Go layout for DayRecord.Date. Defaults to constants.DateLabelLayout.
	DateLayout string
}

// Scheduler expands routine items into day-by-day time blocks.
// It holds no mutable state and is safe for concurrent use.
type Scheduler struct {
	opts Options
}

func New() *Scheduler {
	return NewWithOptions(Options{})
}

func NewWithOptions(opts Options) *Scheduler {
	if opts.DateLayout == "" {
		opts.DateLayout = constants.DateLabelLayout
	}
	return &Scheduler{opts: opts}
}

// Options returns the options the scheduler was built with.
func (s *Scheduler) Options() Options {
	return s.opts
}

// Generate builds exactly duration day records starting at start. When
// excludeWeekends is set, Saturdays and Sundays are skipped without consuming
// a day number. A non-positive duration yields no records.
func (s *Scheduler) Generate(items []models.RoutineItem, start time.Time, duration int, excludeWeekends bool) []models.DayRecord {
	if duration <= 0 {
		return []models.DayRecord{}
	}

	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	days := make([]models.DayRecord, 0, duration)

	dayOffset := 0
	addedDays := 0
	for addedDays < duration {
		date := start.AddDate(0, 0, dayOffset)
		weekend := IsWeekend(date)

		if excludeWeekends && weekend {
			dayOffset++
			continue
		}

		var blocks []models.ScheduleBlock
		if weekend {
			blocks = WeekendBlocks(date.Weekday())
		} else {
			blocks = s.Allocate(items, addedDays, date.Weekday())
		}

		days = append(days, models.DayRecord{
			Day:          addedDays + 1,
			Date:         date.Format(s.opts.DateLayout),
			CalendarDate: date.Format(constants.DateFormat),
			Content:      RenderContent(blocks),
			Schedules:    blocks,
		})

		addedDays++
		dayOffset++
	}

	return days
}

// IsWeekend reports whether date falls on Saturday or Sunday. This is the
// only exclusion predicate; there is no holiday calendar.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// RenderContent concatenates each block as "HH:MM-HH:MM: title" with the
// note, when present, on an indented line below.
func RenderContent(blocks []models.ScheduleBlock) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s-%s: %s", block.StartTime, block.EndTime, block.Title)
		if block.Notes != "" {
			b.WriteString("\n  ")
			b.WriteString(block.Notes)
		}
	}
	return b.String()
}

// ParseClock parses an HH:MM string produced by the scheduler into minutes
// from midnight, accepting hours past 23.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}
