package plans

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/utils"
	"github.com/julianstephens/routinely/internal/validation"
)

type GenerateCmd struct {
	File               string `short:"f" help:"JSON or YAML request file. Defaults to the stored routine items." type:"existingfile"`
	Start              string `short:"s" help:"Start date (YYYY-MM-DD or 'today'). Ignored when the file sets startDate." default:"today"`
	Days               int    `short:"n" help:"Number of days to generate. Ignored when the file sets duration." default:"7"`
	ExcludeWeekends    bool   `help:"Skip Saturdays and Sundays (also on when the exclude_weekends setting is set)."`
	EnforceConstraints bool   `help:"Honor selected days, priority and unavailable windows."`
	JSON               bool   `help:"Print the result as JSON." name:"json"`
	Save               bool   `help:"Save the generated routine."`
}

func (c *GenerateCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	req, err := c.Request(ctx, settings)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := ctx.NewPlanner(settings, c.EnforceConstraints).Generate(runCtx, req)
	if err != nil {
		return err
	}

	var plan models.RoutinePlan
	if c.Save {
		plan = models.RoutinePlan{
			ID:              uuid.New().String(),
			StartDate:       req.StartDate.Format(constants.DateFormat),
			Duration:        req.Duration,
			ExcludeWeekends: req.ExcludeWeekends,
			Summary:         result.Summary,
			Days:            result.Days,
			CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		}
		if err := ctx.Store.SavePlan(plan); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
	}

	if c.JSON {
		return PrintJSON(os.Stdout, result)
	}

	validator := validation.New()
	warnings := validator.ValidateItems(req.Items)
	warnings.Merge(validator.ValidatePlan(result.Days, settings.DayEnd))

	PrintDays(os.Stdout, result.Summary, result.Days)
	PrintWarnings(os.Stdout, warnings)
	if c.Save {
		fmt.Printf("Saved routine plan (ID: %s)\n", plan.ID)
	}
	return nil
}

// Request resolves the generation request from the file or the stored items.
func (c *GenerateCmd) Request(ctx *cli.Context, settings models.Settings) (models.Request, error) {
	if c.File != "" {
		raw, err := LoadRequest(c.File)
		if err != nil {
			return models.Request{}, err
		}
		if raw.StartDate == nil {
			start, err := c.startDate(settings)
			if err != nil {
				return models.Request{}, err
			}
			raw.StartDate = start.Format(constants.DateFormat)
		}
		if raw.Duration == nil {
			raw.Duration = c.Days
		}
		req, err := raw.Normalize()
		if err != nil {
			return models.Request{}, err
		}
		req.ExcludeWeekends = req.ExcludeWeekends || c.ExcludeWeekends || settings.ExcludeWeekends
		return req, nil
	}

	items, err := ctx.Store.GetAllItems()
	if err != nil {
		return models.Request{}, fmt.Errorf("failed to get items: %w", err)
	}
	if len(items) == 0 {
		return models.Request{}, fmt.Errorf("no routine items found. Add some with 'routinely item add' or pass --file")
	}

	start, err := c.startDate(settings)
	if err != nil {
		return models.Request{}, err
	}
	if c.Days < 1 || c.Days > constants.MaxDurationDays {
		return models.Request{}, fmt.Errorf("%w: --days must be between 1 and %d", models.ErrInvalidRequest, constants.MaxDurationDays)
	}

	return models.Request{
		Items:           items,
		StartDate:       start,
		Duration:        c.Days,
		ExcludeWeekends: c.ExcludeWeekends || settings.ExcludeWeekends,
	}, nil
}

func (c *GenerateCmd) startDate(settings models.Settings) (time.Time, error) {
	if c.Start == "" || c.Start == "today" {
		return utils.TodayFromSettings(settings)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	start, err := utils.ParseDateInLocation(c.Start, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid start date, use YYYY-MM-DD or 'today': %v", models.ErrInvalidRequest, err)
	}
	return start, nil
}
