package app

import (
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/daemon"
)

func newMockCmd(rt *runtime) *cobra.Command {
	var listen string

	mockCmd := &cobra.Command{
		Use:   "mock",
		Short: "Serve a fake PowerDNS API backed by the configured database",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listen != "" {
				rt.cfg.Mock.Listen = listen
			}

			d, err := daemon.New(&rt.cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start() //nolint:wrapcheck
		},
	}

	mockCmd.Flags().StringVar(&listen, "listen", "", "listen address, overrides Mock.Listen")

	return mockCmd
}
