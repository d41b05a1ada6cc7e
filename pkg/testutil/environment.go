// Package testutil orchestrates test environments for settings loading:
// a temp config dir, home dir and dotfiles root with TOML fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/bombadil/pkg/paths"
)

// TestEnvironment provides an isolated filesystem layout for a load test
type TestEnvironment struct {
	// ConfigDir holds bombadil.toml
	ConfigDir string

	// HomeDir is the simulated home directory
	HomeDir string

	// DotfilesRoot is the dotfiles directory, created under HomeDir
	DotfilesRoot string

	t *testing.T
}

// NewTestEnvironment creates a fresh environment under t.TempDir
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	base := t.TempDir()
	env := &TestEnvironment{
		ConfigDir:    filepath.Join(base, "config"),
		HomeDir:      filepath.Join(base, "home"),
		DotfilesRoot: filepath.Join(base, "home", "dotfiles"),
		t:            t,
	}

	for _, dir := range []string{env.ConfigDir, env.HomeDir, env.DotfilesRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	return env
}

// WriteRootConfig writes content as the root bombadil.toml
func (e *TestEnvironment) WriteRootConfig(content string) string {
	e.t.Helper()
	path := filepath.Join(e.ConfigDir, paths.ConfigFileName)
	e.writeFile(path, content)
	return path
}

// WriteDotfilesFile writes a file (an import fragment, a var file, a
// managed dotfile) at relPath under the dotfiles root
func (e *TestEnvironment) WriteDotfilesFile(relPath, content string) string {
	e.t.Helper()
	path := filepath.Join(e.DotfilesRoot, relPath)
	e.writeFile(path, content)
	return path
}

// Setenv points HOME and XDG_CONFIG_HOME at this environment for
// end-to-end runs that exercise the zero-value load options. The XDG
// cache is reloaded so the override takes effect within this process.
func (e *TestEnvironment) Setenv() {
	e.t.Helper()
	e.t.Cleanup(xdg.Reload)
	e.t.Setenv("HOME", e.HomeDir)
	e.t.Setenv("XDG_CONFIG_HOME", e.ConfigDir)
	xdg.Reload()
}

func (e *TestEnvironment) writeFile(path, content string) {
	e.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
}
