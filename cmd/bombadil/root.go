package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bombadil/pkg/logging"
)

var version = "dev"

// NewRootCmd creates the bombadil root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	var verbosity int
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "bombadil",
		Short: MsgRootShort,
		Long: `bombadil keeps your dotfiles in one versioned directory, links them
into place and layers named profiles on top of a default one. Its
configuration lives at $XDG_CONFIG_HOME/bombadil.toml and may import
further configuration files from the dotfiles directory.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"Directory holding bombadil.toml (default: $XDG_CONFIG_HOME)")

	rootCmd.AddCommand(newConfigCmd(&configDir))
	rootCmd.AddCommand(newPathCmd(&configDir))

	return rootCmd
}
