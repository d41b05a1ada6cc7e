package main

import (
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bombadil/pkg/settings"
)

func newConfigCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load(settings.Options{
				ConfigDir: *configDir,
				Diag:      cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			out, err := toml.Marshal(s)
			if err != nil {
				return err
			}

			cmd.Print(string(out))
			return nil
		},
	}
}
