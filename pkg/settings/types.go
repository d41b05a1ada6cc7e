// Package settings loads the bombadil configuration: it locates the
// root file under the XDG config directory, parses it, resolves the
// dotfiles root and folds every declared import into the final model.
package settings

import (
	"github.com/arthur-debert/bombadil/pkg/dots"
	"github.com/arthur-debert/bombadil/pkg/paths"
)

// Settings is the global bombadil configuration
type Settings struct {
	// DotfilesDir is the user's dotfiles directory, usually versioned.
	// Relative values are anchored on the home directory.
	DotfilesDir string `toml:"dotfiles_dir"`

	// GpgUserID selects the GPG identity used for encrypted variables
	GpgUserID string `toml:"gpg_user_id,omitempty"`

	// Settings is the default, always-enabled profile
	Settings ActiveProfile `toml:"settings,omitempty"`

	// Profiles are named override layers keyed by profile name
	Profiles map[string]Profile `toml:"profiles,omitempty"`

	// Import lists further configuration files to merge into this one
	Import []ImportPath `toml:"import,omitempty"`
}

// ImportedSettings is an imported configuration, same as Settings but
// without `dotfiles_dir` and `gpg_user_id`: a fragment contributes
// profile data but can never relocate the dotfiles root or change the
// GPG identity.
type ImportedSettings struct {
	Settings ActiveProfile      `toml:"settings,omitempty"`
	Profiles map[string]Profile `toml:"profiles,omitempty"`
	Import   []ImportPath       `toml:"import,omitempty"`
}

// ActiveProfile is the default profile, containing dot entries, vars and hooks
type ActiveProfile struct {
	// Dots maps logical names to managed symlink entries
	Dots map[string]dots.Dot `toml:"dots,omitempty"`

	// Prehooks are shell commands run before linking, in order
	Prehooks []string `toml:"prehooks,omitempty"`

	// Posthooks are shell commands run after linking, in order
	Posthooks []string `toml:"posthooks,omitempty"`

	// Vars are paths to template variable definition files
	Vars []string `toml:"vars,omitempty"`
}

// Profile is a named profile meant to override the default one.
// ExtraProfiles activation is resolved by the consumer, which must
// guard against cycles; this package only guarantees the named
// profiles are present and merged.
type Profile struct {
	Dots          map[string]dots.DotOverride `toml:"dots,omitempty"`
	ExtraProfiles []string                    `toml:"extra_profiles,omitempty"`
	Prehooks      []string                    `toml:"prehooks,omitempty"`
	Posthooks     []string                    `toml:"posthooks,omitempty"`
	Vars          []string                    `toml:"vars,omitempty"`
}

// ImportPath points at a configuration fragment to merge, relative to
// the dotfiles root unless absolute
type ImportPath struct {
	Path string `toml:"path"`
}

// DotfilesPath resolves the dotfiles root directory for these settings.
// homeDir overrides the user's home when non-empty.
func (s *Settings) DotfilesPath(homeDir string) (string, error) {
	return paths.DotfilesRoot(s.DotfilesDir, homeDir)
}
