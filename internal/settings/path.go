package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDirName  = ".dworshak"
	configFileName = "config.json"
)

// ResolvePath resolves the backing file location. An explicit override wins,
// then the DWORSHAK_CONFIG environment variable, then the fixed default
// ~/.dworshak/config.json. The file need not exist.
func ResolvePath(override string) (string, error) {
	if p := strings.TrimSpace(override); p != "" {
		return filepath.Clean(p), nil
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return filepath.Clean(p), nil
	}
	return DefaultPath()
}

// DefaultPath returns the well-known location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		if err == nil {
			err = fmt.Errorf("home directory not found")
		}
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}
