// Package config loads the catalog browser configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/catalog-browser/internal/common"
)

// ExpandPath resolves $VAR references and a leading ~ in a configured path.
// Only the current user's home is supported; "~name/..." is rejected.
func ExpandPath(path string) (string, error) {
	path = os.ExpandEnv(path)
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	rest := strings.TrimPrefix(path, "~")
	if rest != "" && rest[0] != '/' && rest[0] != filepath.Separator {
		return "", fmt.Errorf("%w: cannot expand %q", common.ErrInvalidConfig, path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: cannot expand %q: %w", common.ErrInvalidConfig, path, err)
	}
	return filepath.Join(home, rest), nil
}
