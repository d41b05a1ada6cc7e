package settings

import (
	"bytes"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/bombadil/pkg/errors"
	"github.com/arthur-debert/bombadil/pkg/logging"
)

var log = logging.GetLogger("settings")

// ParseRoot reads and parses the root configuration file. The root
// schema is strict: unknown keys are a hard error, so a typo in the
// root file never passes silently.
func ParseRoot(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfigNotFound,
				"unable to find bombadil config file %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read config file %s", path)
	}

	var s Settings
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigFormat, "config format error")
	}

	if s.DotfilesDir == "" {
		return nil, errors.New(errors.ErrConfigFormat,
			"config format error: missing required key `dotfiles_dir`")
	}

	log.Debug().Str("path", path).Msg("Parsed root configuration")
	return &s, nil
}

// ParseImport reads and parses an imported configuration fragment.
// Unlike the root schema, fragments tolerate unknown keys.
func ParseImport(path string) (*ImportedSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfigNotFound,
				"unable to find bombadil import file %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read import file %s", path)
	}

	var s ImportedSettings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigFormat, "config format error")
	}

	log.Debug().Str("path", path).Msg("Parsed imported configuration")
	return &s, nil
}
