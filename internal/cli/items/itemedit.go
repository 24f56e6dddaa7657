package items

import (
	"fmt"
	"strings"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/models"
)

type ItemEditCmd struct {
	ID          string   `arg:"" help:"Item ID."`
	Subject     *string  `help:"New subject name."`
	Hours       *float64 `short:"H" help:"New daily hours."`
	Focus       *string  `short:"f" help:"New comma-separated focus times."`
	Days        *string  `short:"d" help:"New comma-separated weekdays. Pass an empty string for every day."`
	Priority    *string  `short:"p" help:"New priority (high|medium|low)."`
	Unavailable *string  `short:"u" help:"New unavailable windows. Pass an empty string to clear."`
	Notes       *string  `short:"n" help:"New notes."`
}

func (c *ItemEditCmd) Run(ctx *cli.Context) error {
	item, err := ctx.Store.GetItem(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find item: %w", err)
	}

	if err := c.apply(&item); err != nil {
		return err
	}

	if err := item.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.UpdateItem(item); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	fmt.Printf("Updated item: %s (ID: %s)\n", item.Subject, item.ID)
	return nil
}

func (c *ItemEditCmd) apply(item *models.RoutineItem) error {
	if c.Subject != nil {
		item.Subject = strings.TrimSpace(*c.Subject)
	}
	if c.Hours != nil {
		item.DailyHours = *c.Hours
	}
	if c.Focus != nil {
		focus, err := cli.ParseFocusTimes(*c.Focus)
		if err != nil {
			return err
		}
		if len(focus) == 0 {
			return fmt.Errorf("at least one focus time is required")
		}
		item.FocusTimeSlots = focus
	}
	if c.Days != nil {
		days, err := cli.ParseWeekdays(*c.Days)
		if err != nil {
			return err
		}
		item.SelectedDays = days
	}
	if c.Priority != nil {
		item.Priority = models.Priority(strings.ToLower(strings.TrimSpace(*c.Priority)))
	}
	if c.Unavailable != nil {
		windows, err := cli.ParseUnavailable(*c.Unavailable)
		if err != nil {
			return err
		}
		item.UnavailableTimeByDay = windows
	}
	if c.Notes != nil {
		item.Notes = strings.TrimSpace(*c.Notes)
	}
	return nil
}
