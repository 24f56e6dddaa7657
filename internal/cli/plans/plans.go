package plans

import (
	"fmt"
	"os"

	"github.com/julianstephens/routinely/internal/cli"
)

type PlanListCmd struct {
	ShowDeleted bool `help:"Include deleted plans." name:"show-deleted"`
}

func (c *PlanListCmd) Run(ctx *cli.Context) error {
	plans, err := ctx.Store.GetAllPlans(c.ShowDeleted)
	if err != nil {
		return fmt.Errorf("failed to get plans: %w", err)
	}
	if len(plans) == 0 {
		fmt.Println("No saved plans found")
		return nil
	}

	fmt.Println("Saved plans:")
	for _, plan := range plans {
		status := ""
		if plan.DeletedAt != nil {
			status = " [deleted]"
		}
		weekends := ""
		if plan.ExcludeWeekends {
			weekends = ", weekdays only"
		}
		fmt.Printf("  %s  from %s, %d day(s)%s (created %s)%s\n",
			plan.ID, plan.StartDate, plan.Duration, weekends, plan.CreatedAt, status)
	}
	return nil
}

type PlanShowCmd struct {
	ID   string `arg:"" help:"Plan ID."`
	JSON bool   `help:"Print the plan as JSON." name:"json"`
}

func (c *PlanShowCmd) Run(ctx *cli.Context) error {
	plan, err := ctx.Store.GetPlan(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find plan: %w", err)
	}

	if c.JSON {
		return PrintJSON(os.Stdout, plan)
	}

	fmt.Printf("Plan %s (from %s, %d day(s))\n\n", plan.ID, plan.StartDate, plan.Duration)
	PrintDays(os.Stdout, plan.Summary, plan.Days)
	return nil
}

type PlanDeleteCmd struct {
	ID string `arg:"" help:"Plan ID to delete."`
}

func (c *PlanDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeletePlan(c.ID); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	fmt.Printf("Deleted plan: %s\n", c.ID)
	fmt.Printf("To restore, use: routinely plans restore %s\n", c.ID)
	return nil
}

type PlanRestoreCmd struct {
	ID string `arg:"" help:"Plan ID to restore."`
}

func (c *PlanRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestorePlan(c.ID); err != nil {
		return fmt.Errorf("failed to restore plan: %w", err)
	}

	fmt.Printf("Restored plan: %s\n", c.ID)
	return nil
}
