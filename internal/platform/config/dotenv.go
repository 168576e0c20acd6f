package config

import (
	"errors"
	"io/fs"

	"github.com/subosito/gotenv"
)

// LoadDotenv loads KEY=VALUE pairs from the given files into the process environment.
// Variables already present in the environment win; missing files are skipped.
// It returns the files that were actually loaded.
func LoadDotenv(paths ...string) ([]string, error) {
	var loaded []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := gotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
