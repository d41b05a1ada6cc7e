// Package dots defines the per-entry value types carried by bombadil
// profiles. The symlink engine consumes them; this package only models
// the data.
package dots

import (
	"path/filepath"

	"github.com/arthur-debert/bombadil/pkg/paths"
)

// Dot is a single managed entry: a source file or directory inside the
// dotfiles root linked to a target location under the user's home.
type Dot struct {
	// Source is the path of the entry, relative to the dotfiles root
	Source string `toml:"source"`

	// Target is the link location, relative to the home directory
	// unless absolute
	Target string `toml:"target"`

	// Ignore lists glob patterns excluded from linking
	Ignore []string `toml:"ignore,omitempty"`
}

// DotOverride is a profile's partial override of a named Dot. Unset
// fields fall back to the overridden entry's values.
type DotOverride struct {
	Source *string  `toml:"source,omitempty"`
	Target *string  `toml:"target,omitempty"`
	Ignore []string `toml:"ignore,omitempty"`
}

// SourcePath returns the absolute source location under the dotfiles root
func (d *Dot) SourcePath(dotfilesRoot string) string {
	if filepath.IsAbs(d.Source) {
		return d.Source
	}
	return filepath.Join(dotfilesRoot, d.Source)
}

// TargetPath returns the absolute link location under the home directory
func (d *Dot) TargetPath(homeDir string) string {
	target := paths.ExpandHome(d.Target)
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(homeDir, target)
}

// Resolve applies the override to a base entry, returning the effective Dot
func (o *DotOverride) Resolve(base Dot) Dot {
	result := base
	if o.Source != nil {
		result.Source = *o.Source
	}
	if o.Target != nil {
		result.Target = *o.Target
	}
	if len(o.Ignore) > 0 {
		result.Ignore = o.Ignore
	}
	return result
}
