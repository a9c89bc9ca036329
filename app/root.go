// Package app implements the command line commands.
package app

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/config"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/logger"
)

// runtime is shared by all commands of one invocation.
type runtime struct {
	configPath string
	devMode    bool
	cfg        config.Config
	out        io.Writer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:   "pdns-api",
		Short: "pdns-api is a command line client for the PowerDNS HTTP API",
		Long: `pdns-api lists zones and records of a PowerDNS authoritative server
and replaces RRsets through its HTTP API. The mock command serves a fake
PowerDNS API for development.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			if rt.cfg, err = config.ReadConfig(rt.configPath); err != nil {
				return err //nolint:wrapcheck
			}

			if rt.devMode {
				rt.cfg.DevMode = true
			}

			if err = logger.Init(rt.cfg.Log); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}

			rt.out = cmd.OutOrStdout()

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rt.configPath, "config", "c", "", "config directory containing main.toml (default ./etc/)")
	rootCmd.PersistentFlags().BoolVar(&rt.devMode, "dev", false, "enable dev mode")

	rootCmd.AddCommand(
		newZonesCmd(rt),
		newRecordsCmd(rt),
		newConfigCmd(rt),
		newMockCmd(rt),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}

	return err
}
