package models

// Settings represents application-wide settings
type Settings struct {
	ExcludeWeekends    bool   `json:"exclude_weekends"`    // skip Saturday/Sunday when generating
	EnforceConstraints bool   `json:"enforce_constraints"` // honor selectedDays, priority and unavailable windows
	DayEnd             string `json:"day_end"`             // latest acceptable block end, e.g. "22:00"
	Timezone           string `json:"timezone"`            // IANA timezone name (e.g. "America/New_York", "Europe/London", or "Local" for system timezone)
	DateLayout         string `json:"date_layout"`         // Go layout used for day labels
	TextProvider       string `json:"text_provider"`       // "none" or "openai"
	TextModel          string `json:"text_model"`          // model name passed to the text provider
}
