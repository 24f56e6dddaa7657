package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/cli/plans"
	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/tui"
)

type TuiCmd struct {
	Plan string `help:"Saved plan ID to browse. Defaults to generating from the stored items."`
	Days int    `short:"n" help:"Number of days to generate when no plan is given." default:"7"`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	plan, err := c.load(ctx, settings)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(plan, settings.DayEnd), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func (c *TuiCmd) load(ctx *cli.Context, settings models.Settings) (models.RoutinePlan, error) {
	if c.Plan != "" {
		plan, err := ctx.Store.GetPlan(c.Plan)
		if err != nil {
			return models.RoutinePlan{}, fmt.Errorf("failed to find plan: %w", err)
		}
		return plan, nil
	}

	gen := &plans.GenerateCmd{Start: "today", Days: c.Days}
	req, err := gen.Request(ctx, settings)
	if err != nil {
		return models.RoutinePlan{}, err
	}
	result, err := ctx.NewPlanner(settings, false).Generate(context.Background(), req)
	if err != nil {
		return models.RoutinePlan{}, err
	}
	return models.RoutinePlan{
		StartDate:       req.StartDate.Format(constants.DateFormat),
		Duration:        req.Duration,
		ExcludeWeekends: req.ExcludeWeekends,
		Summary:         result.Summary,
		Days:            result.Days,
	}, nil
}
