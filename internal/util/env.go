package util

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if one exists.
// A missing file is not an error so deployments can rely on real env vars.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
