package settings

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// resolveImports walks the root's import list in declared order,
// anchoring relative paths on the dotfiles root, and merges each
// fragment into the receiver as soon as it parses. A missing or
// malformed import is reported on diag and skipped; it never aborts
// the batch, so the error is always nil once every import has been
// attempted.
//
// The list is snapshotted up front: fragments may contribute further
// import entries, and those are merged into the receiver's list but
// not walked in this pass.
func (s *Settings) resolveImports(dotfilesRoot string, diag io.Writer) error {
	importPaths := make([]string, 0, len(s.Import))
	for _, imp := range s.Import {
		path := imp.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dotfilesRoot, path)
		}
		importPaths = append(importPaths, path)
	}

	for _, path := range importPaths {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(diag, "Unable to find bombadil import file: %s\n", path)
			log.Warn().Str("path", path).Msg("Import file not found, skipping")
			continue
		}

		sub, err := ParseImport(path)
		if err != nil {
			fmt.Fprintf(diag, "Error loading settings from: %s %v\n", path, err)
			log.Warn().Err(err).Str("path", path).Msg("Import file invalid, skipping")
			continue
		}

		s.merge(sub)
		log.Debug().Str("path", path).Msg("Merged import")
	}

	return nil
}
