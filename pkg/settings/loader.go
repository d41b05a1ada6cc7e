package settings

import (
	"io"
	"os"

	"github.com/arthur-debert/bombadil/pkg/paths"
)

// Options controls where Load looks for configuration. The zero value
// resolves everything against the host environment: the XDG config
// home, the user's home directory and stderr for import diagnostics.
type Options struct {
	// ConfigDir overrides the directory holding bombadil.toml
	ConfigDir string

	// HomeDir overrides the home directory used to anchor a relative
	// dotfiles_dir
	HomeDir string

	// Diag receives per-import diagnostics for skipped imports
	Diag io.Writer
}

// Load resolves, parses and merges the bombadil configuration.
//
// The root file is located at `<config dir>/bombadil.toml` and parsed
// strictly; the dotfiles root is resolved from the parsed model and
// must exist; then each entry of the root's import list is loaded and
// folded in, in order. Root-level failures abort the load with a coded
// error; import-level failures are diagnostics only, so the returned
// settings reflect every import that did succeed.
func Load(opts Options) (*Settings, error) {
	diag := opts.Diag
	if diag == nil {
		diag = os.Stderr
	}

	configPath, err := paths.ConfigFilePath(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	root, err := ParseRoot(configPath)
	if err != nil {
		return nil, err
	}

	dotfilesRoot, err := paths.DotfilesRoot(root.DotfilesDir, opts.HomeDir)
	if err != nil {
		return nil, err
	}

	if err := root.resolveImports(dotfilesRoot, diag); err != nil {
		return nil, err
	}

	log.Info().
		Str("config", configPath).
		Str("dotfilesRoot", dotfilesRoot).
		Int("imports", len(root.Import)).
		Msg("Settings loaded")

	return root, nil
}
