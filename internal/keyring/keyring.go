package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/routinely/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Secret names one credential stored under the application's keyring service.
type Secret struct {
	User  string
	Label string
	// Env overrides the keyring value when set.
	Env string
}

var (
	ConnectionString = Secret{User: constants.DefaultKeyringUser, Label: "database connection string", Env: "ROUTINELY_DB_CONNECTION"}
	APIKey           = Secret{User: constants.DefaultKeyringAPIUser, Label: "text provider API key", Env: "OPENAI_API_KEY"}
)

// Get retrieves secret from the OS keyring. Returns ErrNotFound if nothing is stored.
func Get(secret Secret) (string, error) {
	value, err := keyring.Get(constants.AppName, secret.User)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return value, nil
}

// Set stores value for secret in the OS keyring.
func Set(secret Secret, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", secret.Label)
	}
	if err := keyring.Set(constants.AppName, secret.User, value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", secret.Label, err)
	}
	return nil
}

// Delete removes secret from the OS keyring.
func Delete(secret Secret) error {
	if err := keyring.Delete(constants.AppName, secret.User); err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", secret.Label, err)
	}
	return nil
}

// Resolve returns the secret from its environment variable, falling back to the keyring.
func Resolve(secret Secret) (string, error) {
	if secret.Env != "" {
		if v := strings.TrimSpace(os.Getenv(secret.Env)); v != "" {
			return v, nil
		}
	}
	return Get(secret)
}

// GetConnectionString retrieves the database connection string from the OS keyring.
func GetConnectionString() (string, error) {
	return Get(ConnectionString)
}

// SetConnectionString stores the database connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	return Set(ConnectionString, connStr)
}

// DeleteConnectionString removes the database connection string from the OS keyring.
func DeleteConnectionString() error {
	return Delete(ConnectionString)
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
