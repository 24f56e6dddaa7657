package system

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/julianstephens/routinely/internal/backup"
	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/storage"
	"github.com/julianstephens/routinely/internal/storage/sqlite"
)

var errBackupUnsupported = errors.New("backups are only supported for SQLite databases")

func backupManager(store storage.Provider) (*backup.Manager, error) {
	if _, ok := store.(*sqlite.Store); !ok {
		return nil, errBackupUnsupported
	}
	return backup.NewManager(store.GetConfigPath()), nil
}

// snapshotBeforeChange backs up a SQLite database ahead of a destructive
// operation. Other stores are skipped.
func snapshotBeforeChange(store storage.Provider) {
	mgr, err := backupManager(store)
	if err != nil {
		return
	}
	if path, err := mgr.Create(); err == nil {
		fmt.Printf("Backed up database to: %s\n", path)
	}
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx.Store)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("✓ Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx.Store)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Printf("No backups found in %s\n", mgr.Dir())
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.Dir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %.1f KB\n", filepath.Base(b.Path), b.Timestamp.Format("2006-01-02 15:04:05"), float64(b.Size)/1024)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup filename (from 'backup list') or path."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx.Store)
	if err != nil {
		return err
	}
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	previous, err := mgr.Restore(mgr.Resolve(c.Name))
	if err != nil {
		return err
	}
	if previous != "" {
		fmt.Printf("Created backup of current database: %s\n", filepath.Base(previous))
	}
	fmt.Printf("✓ Restored database from %s\n", c.Name)
	return nil
}
