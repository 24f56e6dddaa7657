package system

import (
	"fmt"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/validation"
)

type ValidateCmd struct {
	Plan string `help:"Also validate the saved plan with this ID."`
	Fix  bool   `help:"Soft-delete duplicate items, keeping the first one."`
}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	items, err := ctx.Store.GetAllItems()
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}

	validator := validation.New()

	fmt.Println("Validating routine items...")
	result := validator.ValidateItems(items)

	if cmd.Plan != "" {
		fmt.Printf("Validating plan %s...\n", cmd.Plan)
		plan, err := ctx.Store.GetPlan(cmd.Plan)
		if err != nil {
			return fmt.Errorf("failed to find plan: %w", err)
		}
		result.Merge(validator.ValidatePlan(plan.Days, settings.DayEnd))
	}

	fmt.Println()
	fmt.Println(result.FormatReport())

	if cmd.Fix && result.HasConflicts() {
		actions := validation.AutoFixDuplicateItems(result.Conflicts, items, ctx.Store.DeleteItem)
		if len(actions) == 0 {
			fmt.Println("No automatic fixes available.")
			return nil
		}
		fmt.Println("Applied fixes:")
		for _, action := range actions {
			fmt.Printf("  - %s\n", action.Action)
		}
	}

	return nil
}
