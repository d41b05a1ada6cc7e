// Package paths provides centralized path handling for bombadil.
// It resolves the root configuration file against the XDG base
// directories and the dotfiles root against the user's home.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/bombadil/pkg/errors"
)

const (
	// ConfigFileName is the fixed basename of the root configuration file
	ConfigFileName = "bombadil.toml"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ConfigFilePath returns the location of the root configuration file:
// `<config dir>/bombadil.toml`. When configDir is empty the XDG config
// home is used.
func ConfigFilePath(configDir string) (string, error) {
	if configDir == "" {
		configDir = xdg.ConfigHome
	}
	if configDir == "" {
		return "", errors.Newf(errors.ErrConfigDirNotFound,
			"unable to find `$XDG_CONFIG_HOME/%s`", ConfigFileName)
	}
	return filepath.Join(expandHome(configDir), ConfigFileName), nil
}

// DotfilesRoot resolves the dotfiles root directory from the configured
// dotfiles_dir value. Absolute paths are used as-is; relative paths are
// joined onto the home directory (homeDir when given, the user's home
// otherwise). The resolved path must exist on disk.
func DotfilesRoot(dotfilesDir, homeDir string) (string, error) {
	if dotfilesDir == "" {
		return "", errors.New(errors.ErrInvalidInput, "dotfiles_dir is empty")
	}

	dotfilesDir = expandHome(dotfilesDir)

	var root string
	if filepath.IsAbs(dotfilesDir) {
		root = dotfilesDir
	} else {
		if homeDir == "" {
			var err error
			homeDir, err = GetHomeDirectory()
			if err != nil {
				return "", errors.Wrap(err, errors.ErrHomeNotFound, "$HOME directory not found")
			}
		}
		root = filepath.Join(homeDir, dotfilesDir)
	}

	if _, err := os.Stat(root); err != nil {
		return "", errors.Newf(errors.ErrDotfilesDirMissing,
			"dotfiles directory %q does not exist", root)
	}

	return root, nil
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrHomeNotFound, "failed to get home directory")
	}
	return homeDir, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}
