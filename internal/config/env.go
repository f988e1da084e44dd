package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadEnvFiles loads dotenv files into the process environment.
// Missing files are skipped. Variables that are already set keep their value,
// so the real environment always wins over a file.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "load env file %s", f)
		}
	}

	return nil
}
