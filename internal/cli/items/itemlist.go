package items

import (
	"fmt"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/models"
)

type ItemListCmd struct {
	ShowIDs     bool `help:"Show item IDs." name:"show-ids"`
	ShowDeleted bool `help:"Include deleted items." name:"show-deleted"`
}

func (c *ItemListCmd) Run(ctx *cli.Context) error {
	var (
		list []models.RoutineItem
		err  error
	)
	if c.ShowDeleted {
		list, err = ctx.Store.GetAllItemsIncludingDeleted()
	} else {
		list, err = ctx.Store.GetAllItems()
	}
	if err != nil {
		return fmt.Errorf("failed to get items: %w", err)
	}
	if len(list) == 0 {
		fmt.Println("No routine items found")
		return nil
	}

	fmt.Println("Routine items:")
	for _, item := range list {
		status := "active"
		if item.DeletedAt != nil {
			status = "deleted"
		}
		fmt.Printf("  [%s] %s\n", status, cli.FormatItem(item, c.ShowIDs))
	}
	return nil
}
