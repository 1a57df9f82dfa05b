package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"progym-go/pkg/logger"
)

const dotenvFilename = ".env"

// loadDotEnv loads the nearest .env above the working directory. Variables already
// present in the process environment win over the file.
func loadDotEnv(log logger.Logger) error {
	path, err := findDotEnv(dotenvFilename)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("dotenv: no .env file found, using process environment")
		return nil
	}
	if err != nil {
		return err
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	log.Info("dotenv: loaded", "path", path)
	return nil
}

func findDotEnv(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
