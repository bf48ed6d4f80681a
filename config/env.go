package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/subosito/gotenv"
)

// loadEnvFile reads ./.env into the process environment.
// Variables already set win. A missing file is not an error.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return gotenv.Load(".env")
}
