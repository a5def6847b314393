package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; earlier files win because godotenv never overrides a
// variable that is already set, and neither overrides the process environment.
var envFiles = []string{".env.local", ".env"}

// loadEnvFiles loads the optional env files that sit next to the configuration file.
// Missing files are skipped; a file that exists but cannot be parsed is an error.
func loadEnvFiles(dir string) ([]string, error) {
	var loaded []string
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, err
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
