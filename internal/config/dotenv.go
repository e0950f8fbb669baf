// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"

	"github.com/soulseed/consolectl/internal/log"
)

var dotenvOnce sync.Once

// LoadDotenv loads a .env file from the current directory into the process
// environment, once per process.
func LoadDotenv() {
	dotenvOnce.Do(func() {
		if err := loadDotenv(".env"); err != nil {
			logger := log.WithComponent("config")
			logger.Warn().
				Err(err).
				Msg("failed to load .env")
		}
	})
}

// loadDotenv loads one dotenv file. Variables already set in the
// environment are never overridden. A missing file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
