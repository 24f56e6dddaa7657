package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/julianstephens/routinely/internal/constants"
)

// ErrInvalidRequest is returned when the day count or start date cannot be computed.
var ErrInvalidRequest = errors.New("invalid request")

// RawRoutineItem is a loosely-typed routine item as received from a request body or file.
type RawRoutineItem struct {
	Subject              any `json:"subject" yaml:"subject"`
	DailyHours           any `json:"dailyHours" yaml:"dailyHours"`
	FocusTimeSlots       any `json:"focusTimeSlots" yaml:"focusTimeSlots"`
	SelectedDays         any `json:"selectedDays" yaml:"selectedDays"`
	Priority             any `json:"priority" yaml:"priority"`
	UnavailableTimeByDay any `json:"unavailableTimeByDay" yaml:"unavailableTimeByDay"`
	Notes                any `json:"notes" yaml:"notes"`
}

// RawRequest is the loosely-typed generateRoutine request.
// ExcludeHolidays is accepted as an alias of ExcludeWeekends.
type RawRequest struct {
	RoutineItems    []RawRoutineItem `json:"routineItems" yaml:"routineItems"`
	StartDate       any              `json:"startDate" yaml:"startDate"`
	Duration        any              `json:"duration" yaml:"duration"`
	ExcludeWeekends any              `json:"excludeWeekends" yaml:"excludeWeekends"`
	ExcludeHolidays any              `json:"excludeHolidays" yaml:"excludeHolidays"`
}

// Request is a validated generateRoutine request.
type Request struct {
	Items           []RoutineItem
	StartDate       time.Time
	Duration        int
	ExcludeWeekends bool
}

// Normalize validates the scalars and applies defaults to every item.
// Only a malformed start date or a duration outside 1..constants.MaxDurationDays is rejected.
func (r RawRequest) Normalize() (Request, error) {
	duration, err := normalizeDuration(r.Duration)
	if err != nil {
		return Request{}, err
	}

	start, err := normalizeStartDate(r.StartDate)
	if err != nil {
		return Request{}, err
	}

	exclude := r.ExcludeWeekends
	if exclude == nil {
		exclude = r.ExcludeHolidays
	}

	items := make([]RoutineItem, 0, len(r.RoutineItems))
	for i, raw := range r.RoutineItems {
		item := raw.Normalize()
		item.Position = i
		items = append(items, item)
	}

	return Request{
		Items:           items,
		StartDate:       start,
		Duration:        duration,
		ExcludeWeekends: cast.ToBool(exclude),
	}, nil
}

func normalizeDuration(v any) (int, error) {
	switch v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: duration is required", ErrInvalidRequest)
	case bool:
		return 0, fmt.Errorf("%w: duration must be numeric", ErrInvalidRequest)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: duration must be numeric: %v", ErrInvalidRequest, err)
	}
	if f < 1 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: duration must be a positive whole number of days, got %v", ErrInvalidRequest, v)
	}
	if f > constants.MaxDurationDays {
		return 0, fmt.Errorf("%w: duration must be at most %d days, got %v", ErrInvalidRequest, constants.MaxDurationDays, v)
	}
	return int(f), nil
}

func normalizeStartDate(v any) (time.Time, error) {
	if t, ok := v.(time.Time); ok {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	s := strings.TrimSpace(cast.ToString(v))
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: startDate is required", ErrInvalidRequest)
	}
	if len(s) > len(constants.DateFormat) && s[len(constants.DateFormat)] == 'T' {
		s = s[:len(constants.DateFormat)]
	}
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: startDate must be YYYY-MM-DD: %v", ErrInvalidRequest, err)
	}
	return t, nil
}

// Normalize coerces a raw item into the strict shape, substituting defaults
// for anything missing or unusable. It never fails.
func (r RawRoutineItem) Normalize() RoutineItem {
	item := RoutineItem{
		Subject:    strings.TrimSpace(cast.ToString(r.Subject)),
		DailyHours: constants.DefaultDailyHours,
		Priority:   PriorityMedium,
		Notes:      strings.TrimSpace(cast.ToString(r.Notes)),
	}
	if item.Subject == "" {
		item.Subject = constants.DefaultSubject
	}

	if h, err := cast.ToFloat64E(r.DailyHours); err == nil && r.DailyHours != nil {
		item.DailyHours = NormalizeDailyHours(h)
	}

	for _, s := range toStrings(r.FocusTimeSlots) {
		f := FocusTime(strings.ToLower(s))
		if f.Valid() {
			item.FocusTimeSlots = append(item.FocusTimeSlots, f)
		}
	}
	if len(item.FocusTimeSlots) == 0 {
		item.FocusTimeSlots = []FocusTime{FocusForenoon}
	}

	seen := make(map[Weekday]bool)
	for _, s := range toStrings(r.SelectedDays) {
		d, err := ParseWeekday(s)
		if err != nil || seen[d] {
			continue
		}
		seen[d] = true
		item.SelectedDays = append(item.SelectedDays, d)
	}

	if p := Priority(strings.ToLower(strings.TrimSpace(cast.ToString(r.Priority)))); p.Valid() {
		item.Priority = p
	}

	if windows, err := cast.ToStringMapE(r.UnavailableTimeByDay); err == nil {
		for key, raw := range windows {
			day, err := ParseWeekday(key)
			if err != nil {
				continue
			}
			fields, err := cast.ToStringMapStringE(raw)
			if err != nil {
				continue
			}
			w := TimeWindow{Start: strings.TrimSpace(fields["start"]), End: strings.TrimSpace(fields["end"])}
			if _, _, err := w.Minutes(); err != nil {
				continue
			}
			if item.UnavailableTimeByDay == nil {
				item.UnavailableTimeByDay = make(map[Weekday]TimeWindow)
			}
			item.UnavailableTimeByDay[day] = w
		}
	}

	return item
}

// toStrings accepts a single string (comma separated) or a list of scalars.
func toStrings(v any) []string {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	list, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
