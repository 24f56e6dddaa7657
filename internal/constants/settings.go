package constants

const (
	// General Settings
	SettingExcludeWeekends    = "exclude_weekends"
	SettingEnforceConstraints = "enforce_constraints"
	SettingDayEnd             = "day_end"
	SettingTimezone           = "timezone"
	SettingDateLayout         = "date_layout"

	// Text provider Settings
	SettingTextProvider = "text_provider"
	SettingTextModel    = "text_model"

	// Default Settings Values
	DefaultExcludeWeekends    = false
	DefaultEnforceConstraints = false
	DefaultDayEnd             = "22:00"
	DefaultTimezone           = "Local" // Use system local timezone by default
	DefaultDateLayout         = DateLabelLayout
	DefaultTextProvider       = TextProviderNone
)
