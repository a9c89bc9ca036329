package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/config"
)

func newConfigCmd(rt *runtime) *cobra.Command {
	var asJSON bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration of file, environment and " + config.EnvConfigJSON,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(rt.cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(rt.out, out)

			return err //nolint:wrapcheck
		},
	}

	showCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of TOML")
	configCmd.AddCommand(showCmd)

	return configCmd
}
