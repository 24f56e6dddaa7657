package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	ExcludeWeekends    *bool   `help:"Skip Saturdays and Sundays when generating."`
	EnforceConstraints *bool   `help:"Honor selected days, priority and unavailable windows."`
	DayEnd             *string `help:"Latest acceptable block end (HH:MM), used for validation warnings."`
	Timezone           *string `help:"IANA timezone used to resolve 'today' (or 'Local')."`
	DateLayout         *string `help:"Go time layout for day labels, e.g. 'January 2, Monday'."`
	TextProvider       *string `help:"Text provider for plan summaries (none|openai)."`
	TextModel          *string `help:"Model name passed to the text provider."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.List {
		printSettings(settings)
		return nil
	}

	updated, err := c.apply(&settings)
	if err != nil {
		return err
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}

func (c *SettingsCmd) apply(settings *models.Settings) (bool, error) {
	updated := false
	if c.ExcludeWeekends != nil {
		settings.ExcludeWeekends = *c.ExcludeWeekends
		updated = true
	}
	if c.EnforceConstraints != nil {
		settings.EnforceConstraints = *c.EnforceConstraints
		updated = true
	}
	if c.DayEnd != nil {
		if !utils.ValidateTimeFormat(*c.DayEnd) {
			return false, fmt.Errorf("invalid day end %q, use HH:MM", *c.DayEnd)
		}
		settings.DayEnd = *c.DayEnd
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return false, fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.DateLayout != nil {
		if strings.TrimSpace(*c.DateLayout) == "" {
			return false, fmt.Errorf("date layout cannot be empty")
		}
		settings.DateLayout = *c.DateLayout
		updated = true
	}
	if c.TextProvider != nil {
		provider := strings.ToLower(strings.TrimSpace(*c.TextProvider))
		if provider != constants.TextProviderNone && provider != constants.TextProviderOpenAI {
			return false, fmt.Errorf("invalid text provider %q (expected none|openai)", *c.TextProvider)
		}
		settings.TextProvider = provider
		updated = true
	}
	if c.TextModel != nil {
		if strings.TrimSpace(*c.TextModel) == "" {
			return false, fmt.Errorf("text model cannot be empty")
		}
		settings.TextModel = *c.TextModel
		updated = true
	}
	return updated, nil
}

func printSettings(settings models.Settings) {
	fmt.Println("Current Settings:")
	fmt.Printf("  Exclude Weekends:    %v\n", settings.ExcludeWeekends)
	fmt.Printf("  Enforce Constraints: %v\n", settings.EnforceConstraints)
	fmt.Printf("  Day End:             %s\n", settings.DayEnd)
	fmt.Printf("  Timezone:            %s\n", settings.Timezone)
	fmt.Printf("  Date Layout:         %s\n", settings.DateLayout)
	fmt.Println("\nSummary Settings:")
	fmt.Printf("  Text Provider:       %s\n", settings.TextProvider)
	fmt.Printf("  Text Model:          %s\n", settings.TextModel)
}
