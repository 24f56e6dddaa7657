package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/server"
)

type ServeCmd struct {
	Addr    string `help:"Address to listen on." default:"${server_addr}"`
	NoItems bool   `help:"Do not expose stored routine items at /api/items."`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	lock, err := server.AcquireLock(server.LockfilePath(ctx.Store.GetConfigPath()), c.Addr)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("Failed to release server lockfile", "error", err)
		}
	}()

	cfg := server.Config{Planner: ctx.NewPlanner(settings, false)}
	if !c.NoItems {
		cfg.Store = ctx.Store
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving %s API on http://%s (Ctrl+C to stop)\n", constants.AppName, c.Addr)
	return server.New(cfg).Run(runCtx, c.Addr)
}
