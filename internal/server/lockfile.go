package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/routinely/internal/constants"
)

var findProcessFunc = ps.FindProcess

var (
	// ErrAlreadyRunning is returned when a live server already holds the lockfile.
	ErrAlreadyRunning = errors.New("routinely server is already running")
	// ErrNotRunning is returned when no live server holds the lockfile.
	ErrNotRunning = errors.New("routinely server is not running")
)

// Lock is a PID lockfile of the form "pid|addr".
type Lock struct {
	Path string
	PID  int
	Addr string
}

// LockfilePath returns the lockfile location next to the database. Stores
// without a file path use the user config directory.
func LockfilePath(configPath string) string {
	dir := filepath.Dir(configPath)
	if dir == "." {
		if configDir, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(configDir, constants.AppName)
		}
	}
	return filepath.Join(dir, constants.ServerLockfileName)
}

// Status reads the lockfile and checks the recorded PID is alive.
func Status(path string) (Lock, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Lock{}, ErrNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return Lock{}, errors.New("lockfile is malformed")
	}

	pid, err := strconv.Atoi(parts[0])
	if err != nil {
		return Lock{}, errors.New("invalid process ID in lockfile")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return Lock{}, ErrNotRunning
	}

	return Lock{Path: path, PID: pid, Addr: parts[1]}, nil
}

// AcquireLock writes the lockfile for the current process. Stale lockfiles
// from dead processes are replaced.
func AcquireLock(path, addr string) (*Lock, error) {
	if existing, err := Status(path); err == nil {
		return nil, fmt.Errorf("%w (pid %d on %s)", ErrAlreadyRunning, existing.PID, existing.Addr)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create lockfile directory: %w", err)
	}

	lock := &Lock{Path: path, PID: os.Getpid(), Addr: addr}
	content := fmt.Sprintf("%d|%s", lock.PID, lock.Addr)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return lock, nil
}

// Release removes the lockfile if it still belongs to this process.
func (l *Lock) Release() error {
	current, err := Status(l.Path)
	if err == nil && current.PID != l.PID {
		return nil
	}
	if err := os.Remove(l.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}
