package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
)

type FocusTime string

const (
	FocusMorning   FocusTime = "morning"
	FocusForenoon  FocusTime = "forenoon"
	FocusAfternoon FocusTime = "afternoon"
	FocusEvening   FocusTime = "evening"
	FocusNight     FocusTime = "night"
)

// FocusTimes lists every focus-time bucket in day order.
var FocusTimes = []FocusTime{FocusMorning, FocusForenoon, FocusAfternoon, FocusEvening, FocusNight}

// Valid reports whether f is a known focus-time bucket.
func (f FocusTime) Valid() bool {
	for _, known := range FocusTimes {
		if f == known {
			return true
		}
	}
	return false
}

// FloorMinutes returns the earliest start, in minutes from midnight, a block
// preferring f may take. Night has no floor.
func (f FocusTime) FloorMinutes() (int, bool) {
	switch f {
	case FocusMorning:
		return 8 * 60, true
	case FocusForenoon:
		return 9 * 60, true
	case FocusAfternoon:
		return 14 * 60, true
	case FocusEvening:
		return 18 * 60, true
	default:
		return 0, false
	}
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities; lower ranks are scheduled first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

var weekdayToTime = map[Weekday]time.Weekday{
	Sunday:    time.Sunday,
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// ParseWeekday accepts short ("mon"), long ("monday") or numeric ("1", 0=Sunday) forms.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) >= 3 {
		if _, ok := weekdayToTime[Weekday(s[:3])]; ok && strings.HasPrefix(longWeekday(Weekday(s[:3])), s) {
			return Weekday(s[:3]), nil
		}
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return WeekdayFromTime(time.Weekday(s[0] - '0')), nil
	}
	return "", fmt.Errorf("invalid weekday: %s", s)
}

func longWeekday(w Weekday) string {
	return strings.ToLower(weekdayToTime[w].String())
}

// WeekdayFromTime converts a time.Weekday into its short form.
func WeekdayFromTime(wd time.Weekday) Weekday {
	return Weekday(strings.ToLower(wd.String()[:3]))
}

// Time converts w into a time.Weekday. Unknown values map to Sunday.
func (w Weekday) Time() time.Weekday {
	return weekdayToTime[w]
}

func (w Weekday) Valid() bool {
	_, ok := weekdayToTime[w]
	return ok
}

// TimeWindow is a half-open [Start, End) range in HH:MM form.
type TimeWindow struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// Minutes returns the window bounds in minutes from midnight.
func (w TimeWindow) Minutes() (int, int, error) {
	start, err := time.Parse(constants.TimeFormat, w.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window start %q: %w", w.Start, err)
	}
	end, err := time.Parse(constants.TimeFormat, w.End)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window end %q: %w", w.End, err)
	}
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if endMin <= startMin {
		return 0, 0, fmt.Errorf("window start %s must be before end %s", w.Start, w.End)
	}
	return startMin, endMin, nil
}

// RoutineItem is one recurring activity in its normalized form.
type RoutineItem struct {
	ID                   string                 `json:"id,omitempty" yaml:"id,omitempty"`
	Subject              string                 `json:"subject" yaml:"subject"`
	DailyHours           float64                `json:"dailyHours" yaml:"dailyHours"`
	FocusTimeSlots       []FocusTime            `json:"focusTimeSlots" yaml:"focusTimeSlots"`
	SelectedDays         []Weekday              `json:"selectedDays,omitempty" yaml:"selectedDays,omitempty"`
	Priority             Priority               `json:"priority" yaml:"priority"`
	UnavailableTimeByDay map[Weekday]TimeWindow `json:"unavailableTimeByDay,omitempty" yaml:"unavailableTimeByDay,omitempty"`
	Notes                string                 `json:"notes,omitempty" yaml:"notes,omitempty"`
	Position             int                    `json:"-" yaml:"-"`
	DeletedAt            *string                `json:"deleted_at,omitempty" yaml:"-"` // RFC3339 timestamp
}

// PrimaryFocus is the only focus-time preference the allocator consults.
func (r RoutineItem) PrimaryFocus() FocusTime {
	if len(r.FocusTimeSlots) == 0 {
		return FocusForenoon
	}
	return r.FocusTimeSlots[0]
}

// DurationMinutes returns the block length for the item, falling back to the default.
func (r RoutineItem) DurationMinutes() int {
	hours := r.DailyHours
	if hours <= 0 {
		hours = constants.DefaultDailyHours
	}
	return int(math.Round(hours * 60))
}

// ParticipatesOn reports whether the item is selected for the weekday.
// An empty selection means every day.
func (r RoutineItem) ParticipatesOn(wd time.Weekday) bool {
	if len(r.SelectedDays) == 0 {
		return true
	}
	for _, d := range r.SelectedDays {
		if d.Time() == wd && d.Valid() {
			return true
		}
	}
	return false
}

// UnavailableOn returns the item's unavailable window for the weekday, if any.
func (r RoutineItem) UnavailableOn(wd time.Weekday) (TimeWindow, bool) {
	w, ok := r.UnavailableTimeByDay[WeekdayFromTime(wd)]
	return w, ok
}

// Validate checks an item against the strict shape.
func (r RoutineItem) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return errors.New("subject cannot be empty")
	}
	if !ValidDailyHours(r.DailyHours) {
		return fmt.Errorf("dailyHours must be between %.1f and %.1f in %.1f increments, got %v",
			constants.MinDailyHours, constants.MaxDailyHours, constants.HoursIncrement, r.DailyHours)
	}
	for _, f := range r.FocusTimeSlots {
		if !f.Valid() {
			return fmt.Errorf("invalid focus time: %s", f)
		}
	}
	for _, d := range r.SelectedDays {
		if !d.Valid() {
			return fmt.Errorf("invalid selected day: %s", d)
		}
	}
	if r.Priority != "" && !r.Priority.Valid() {
		return fmt.Errorf("invalid priority: %s", r.Priority)
	}
	for day, w := range r.UnavailableTimeByDay {
		if !day.Valid() {
			return fmt.Errorf("invalid unavailable day: %s", day)
		}
		if _, _, err := w.Minutes(); err != nil {
			return fmt.Errorf("unavailable window for %s: %w", day, err)
		}
	}
	return nil
}

// ValidDailyHours reports whether h is within range and a multiple of the increment.
func ValidDailyHours(h float64) bool {
	if h < constants.MinDailyHours || h > constants.MaxDailyHours {
		return false
	}
	steps := h / constants.HoursIncrement
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

// NormalizeDailyHours rounds h to the nearest increment and clamps it into range.
// Non-positive values take the default.
func NormalizeDailyHours(h float64) float64 {
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return constants.DefaultDailyHours
	}
	h = math.Round(h/constants.HoursIncrement) * constants.HoursIncrement
	return math.Min(math.Max(h, constants.MinDailyHours), constants.MaxDailyHours)
}
