package items

import (
	"fmt"

	"github.com/julianstephens/routinely/internal/cli"
)

type ItemDeleteCmd struct {
	ID string `arg:"" help:"Item ID to delete."`
}

func (c *ItemDeleteCmd) Run(ctx *cli.Context) error {
	item, err := ctx.Store.GetItem(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find item with ID %s: %w", c.ID, err)
	}

	if err := ctx.Store.DeleteItem(c.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	fmt.Printf("Deleted item: %s (ID: %s)\n", item.Subject, c.ID)
	return nil
}

type ItemRestoreCmd struct {
	ID string `arg:"" help:"Item ID to restore."`
}

func (c *ItemRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreItem(c.ID); err != nil {
		return fmt.Errorf("failed to restore item: %w", err)
	}

	fmt.Printf("Restored item with ID: %s\n", c.ID)
	return nil
}
