package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/routinely/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingExcludeWeekends:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing exclude_weekends: %w", err)
			}
			settings.ExcludeWeekends = b
		case constants.SettingEnforceConstraints:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing enforce_constraints: %w", err)
			}
			settings.EnforceConstraints = b
		case constants.SettingDayEnd:
			settings.DayEnd = value
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingDateLayout:
			settings.DateLayout = value
		case constants.SettingTextProvider:
			settings.TextProvider = value
		case constants.SettingTextModel:
			settings.TextModel = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingExcludeWeekends:    strconv.FormatBool(settings.ExcludeWeekends),
		constants.SettingEnforceConstraints: strconv.FormatBool(settings.EnforceConstraints),
		constants.SettingDayEnd:             settings.DayEnd,
		constants.SettingTimezone:           settings.Timezone,
		constants.SettingDateLayout:         settings.DateLayout,
		constants.SettingTextProvider:       settings.TextProvider,
		constants.SettingTextModel:          settings.TextModel,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.DayEnd == "" {
		settings.DayEnd = constants.DefaultDayEnd
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.DateLayout == "" {
		settings.DateLayout = constants.DefaultDateLayout
	}
	if settings.TextProvider == "" {
		settings.TextProvider = constants.DefaultTextProvider
	}
	if settings.TextModel == "" {
		settings.TextModel = constants.DefaultTextModel
	}
}

// DefaultSettings returns the settings written by a fresh init.
func DefaultSettings() Settings {
	s := Settings{
		ExcludeWeekends:    constants.DefaultExcludeWeekends,
		EnforceConstraints: constants.DefaultEnforceConstraints,
	}
	ApplyDefaultSettings(&s)
	return s
}
