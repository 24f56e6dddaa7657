package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/keyring"
	"github.com/julianstephens/routinely/internal/server"
	"github.com/julianstephens/routinely/internal/utils"
	"github.com/julianstephens/routinely/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	dbChecks := []struct {
		name  string
		check func(*cli.Context) error
	}{
		{"Schema version", checkSchemaVersion},
		{"Migrations complete", checkMigrationsComplete},
		{"Settings", checkSettings},
		{"Routine items", checkItems},
	}
	for _, c := range dbChecks {
		if !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		if err := c.check(ctx); err != nil {
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ %s: OK\n", c.name)
		}
	}

	if dbReachable {
		if err := checkItemWarnings(ctx); err != nil {
			fmt.Printf("⚠ Item validation: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Item validation: OK\n")
		}
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	if dbReachable {
		if msg, err := checkTextProvider(ctx); err != nil {
			fmt.Printf("⚠ Text provider: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Text provider: %s\n", msg)
		}
	}

	fmt.Printf("ℹ HTTP server: %s\n", serverStatus(ctx))

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone setting: %s", settings.Timezone)
	}
	if !utils.ValidateTimeFormat(settings.DayEnd) {
		return fmt.Errorf("invalid day_end setting: %s", settings.DayEnd)
	}
	return nil
}

func checkItems(ctx *cli.Context) error {
	items, err := ctx.Store.GetAllItemsIncludingDeleted()
	if err != nil {
		return fmt.Errorf("failed to get items: %w", err)
	}

	ids := make(map[string]bool)
	for _, item := range items {
		if ids[item.ID] {
			return fmt.Errorf("duplicate item ID found: %s", item.ID)
		}
		ids[item.ID] = true
	}
	return nil
}

func checkItemWarnings(ctx *cli.Context) error {
	items, err := ctx.Store.GetAllItems()
	if err != nil {
		return fmt.Errorf("failed to get items: %w", err)
	}
	result := validation.New().ValidateItems(items)
	if result.HasConflicts() {
		return fmt.Errorf("%d item warning(s), run 'routinely validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkTextProvider(ctx *cli.Context) (string, error) {
	settings, err := ctx.Settings()
	if err != nil {
		return "", err
	}
	if settings.TextProvider != constants.TextProviderOpenAI {
		return "disabled (fallback summaries)", nil
	}
	if _, err := keyring.Resolve(keyring.APIKey); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("openai enabled but no API key found, set OPENAI_API_KEY or run 'routinely keyring set-api-key'")
		}
		return "", err
	}
	return fmt.Sprintf("openai (%s)", settings.TextModel), nil
}

func serverStatus(ctx *cli.Context) string {
	lock, err := server.Status(server.LockfilePath(ctx.Store.GetConfigPath()))
	if err != nil {
		if errors.Is(err, server.ErrNotRunning) {
			return "not running"
		}
		return fmt.Sprintf("unknown (%v)", err)
	}
	return fmt.Sprintf("running on %s (pid %d)", lock.Addr, lock.PID)
}
