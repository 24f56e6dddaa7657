package models

// ScheduleBlock is one contiguous time-stamped entry within a day.
type ScheduleBlock struct {
	Title     string `json:"title" yaml:"title"`
	StartTime string `json:"startTime" yaml:"startTime"` // HH:MM format
	EndTime   string `json:"endTime" yaml:"endTime"`     // HH:MM format
	Subject   string `json:"subject" yaml:"subject"`
	Notes     string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DayRecord is the assembled output for one kept calendar day.
type DayRecord struct {
	Day          int             `json:"day" yaml:"day"`
	Date         string          `json:"date" yaml:"date"`                 // localized label, e.g. "March 5, Tuesday"
	CalendarDate string          `json:"calendarDate" yaml:"calendarDate"` // YYYY-MM-DD format
	Content      string          `json:"content" yaml:"content"`
	Schedules    []ScheduleBlock `json:"schedules" yaml:"schedules"`
}

// RoutinePlan is a generated multi-day routine, as persisted.
type RoutinePlan struct {
	ID              string      `json:"id"`
	StartDate       string      `json:"start_date"` // YYYY-MM-DD format
	Duration        int         `json:"duration"`
	ExcludeWeekends bool        `json:"exclude_weekends"`
	Summary         string      `json:"summary"`
	Days            []DayRecord `json:"days"`
	CreatedAt       string      `json:"created_at"`           // RFC3339 timestamp
	DeletedAt       *string     `json:"deleted_at,omitempty"` // RFC3339 timestamp
}
