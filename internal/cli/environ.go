package cli

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environ returns the process environment extended with the variables of
// the given dotenv files. Variables already set in the process win over
// the files, and earlier files win over later ones. Missing files are
// skipped.
func Environ(dotenvFiles ...string) (map[string]string, error) {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}

	for _, path := range dotenvFiles {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for k, v := range values {
			if _, set := environ[k]; !set {
				environ[k] = v
			}
		}
	}
	return environ, nil
}
