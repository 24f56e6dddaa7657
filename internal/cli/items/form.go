package items

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/models"
)

type FormModel struct {
	Subject     string
	Hours       string
	Focus       string
	Days        string
	Priority    string
	Unavailable string
	Notes       string
}

// NewFormModel seeds the form with the values already given as flags.
func NewFormModel(c ItemAddCmd) *FormModel {
	focus := c.Focus
	if parsed, err := cli.ParseFocusTimes(c.Focus); err == nil && len(parsed) > 0 {
		focus = string(parsed[0])
	}
	return &FormModel{
		Subject:     c.Subject,
		Hours:       strconv.FormatFloat(c.Hours, 'f', -1, 64),
		Focus:       focus,
		Days:        c.Days,
		Priority:    c.Priority,
		Unavailable: c.Unavailable,
		Notes:       c.Notes,
	}
}

// Apply copies the form values back onto the command.
func (fm *FormModel) Apply(c *ItemAddCmd) error {
	hours, err := strconv.ParseFloat(strings.TrimSpace(fm.Hours), 64)
	if err != nil {
		return fmt.Errorf("invalid hours: %w", err)
	}
	c.Subject = fm.Subject
	c.Hours = hours
	c.Focus = fm.Focus
	c.Days = fm.Days
	c.Priority = fm.Priority
	c.Unavailable = fm.Unavailable
	c.Notes = fm.Notes
	return nil
}

func NewItemForm(fm *FormModel) *huh.Form {
	focusOptions := make([]huh.Option[string], 0, len(models.FocusTimes))
	for _, f := range models.FocusTimes {
		focusOptions = append(focusOptions, huh.NewOption(string(f), string(f)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Value(&fm.Subject).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("subject cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Daily hours").
				Value(&fm.Hours).
				Validate(validateHours),
			huh.NewSelect[string]().
				Title("Focus time").
				Options(focusOptions...).
				Value(&fm.Focus),
			huh.NewSelect[string]().
				Title("Priority").
				Options(huh.NewOptions("high", "medium", "low")...).
				Value(&fm.Priority),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Days (comma-separated, empty for every day)").
				Value(&fm.Days).
				Validate(func(s string) error {
					_, err := cli.ParseWeekdays(s)
					return err
				}),
			huh.NewInput().
				Title("Unavailable (e.g. mon=09:00-10:00)").
				Value(&fm.Unavailable).
				Validate(func(s string) error {
					_, err := cli.ParseUnavailable(s)
					return err
				}),
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateHours(s string) error {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("hours must be a number")
	}
	if !models.ValidDailyHours(h) {
		return fmt.Errorf("hours must be between 0.5 and 12 in 0.5 steps")
	}
	return nil
}
