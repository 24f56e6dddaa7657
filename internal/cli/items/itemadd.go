package items

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/models"
)

type ItemAddCmd struct {
	Subject     string  `arg:"" optional:"" help:"Subject name."`
	Hours       float64 `short:"H" help:"Daily hours (0.5-12 in 0.5 steps)." default:"2"`
	Focus       string  `short:"f" help:"Comma-separated focus times (morning|forenoon|afternoon|evening|night). The first one is used for placement." default:"forenoon"`
	Days        string  `short:"d" help:"Comma-separated weekdays the item runs on. Empty means every day."`
	Priority    string  `short:"p" help:"Priority (high|medium|low)." default:"medium" enum:"high,medium,low"`
	Unavailable string  `short:"u" help:"Unavailable windows, e.g. 'mon=09:00-10:00,wed=13:00-14:30'."`
	Notes       string  `short:"n" help:"Free-form notes."`
	Interactive bool    `short:"i" help:"Fill in the item with an interactive form."`
}

func (c *ItemAddCmd) Run(ctx *cli.Context) error {
	if c.Interactive {
		fm := NewFormModel(*c)
		if err := NewItemForm(fm).Run(); err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}
		if err := fm.Apply(c); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.Subject) == "" {
		return fmt.Errorf("subject is required (pass it as an argument or use --interactive)")
	}

	item, err := c.Item()
	if err != nil {
		return err
	}

	if err := ctx.Store.AddItem(item); err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	logger.Debug("Routine item added", "id", item.ID, "subject", item.Subject)
	fmt.Printf("Added item: %s (ID: %s)\n", item.Subject, item.ID)
	return nil
}

// Item builds a validated routine item from the flags.
func (c *ItemAddCmd) Item() (models.RoutineItem, error) {
	focus, err := cli.ParseFocusTimes(c.Focus)
	if err != nil {
		return models.RoutineItem{}, err
	}
	if len(focus) == 0 {
		focus = []models.FocusTime{models.FocusForenoon}
	}

	days, err := cli.ParseWeekdays(c.Days)
	if err != nil {
		return models.RoutineItem{}, err
	}

	windows, err := cli.ParseUnavailable(c.Unavailable)
	if err != nil {
		return models.RoutineItem{}, err
	}

	item := models.RoutineItem{
		ID:                   uuid.New().String(),
		Subject:              strings.TrimSpace(c.Subject),
		DailyHours:           c.Hours,
		FocusTimeSlots:       focus,
		SelectedDays:         days,
		Priority:             models.Priority(strings.ToLower(c.Priority)),
		UnavailableTimeByDay: windows,
		Notes:                strings.TrimSpace(c.Notes),
	}
	if item.Priority == "" {
		item.Priority = models.PriorityMedium
	}

	if err := item.Validate(); err != nil {
		return models.RoutineItem{}, err
	}
	return item, nil
}
