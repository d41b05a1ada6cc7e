package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bombadil/pkg/paths"
	"github.com/arthur-debert/bombadil/pkg/settings"
)

func newPathCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgPathShort,
		Long:  MsgPathLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := paths.ConfigFilePath(*configDir)
			if err != nil {
				return err
			}
			cmd.Printf(MsgConfigPathFormat, configPath)

			s, err := settings.Load(settings.Options{
				ConfigDir: *configDir,
				Diag:      cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			dotfilesRoot, err := s.DotfilesPath("")
			if err != nil {
				return err
			}
			cmd.Printf(MsgDotfilesRootFormat, dotfilesRoot)
			return nil
		},
	}
}
