package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/dnsname"
)

func newZonesCmd(rt *runtime) *cobra.Command {
	zonesCmd := &cobra.Command{
		Use:   "zones",
		Short: "Inspect zones",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all zones of the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}

			zones, err := client.Zones.List(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "failed to list zones")
			}

			w := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tSERIAL\tDNSSEC\tREVERSE")

			for _, z := range zones {
				fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%t\n",
					deref(z.Name),
					deref(z.Kind),
					deref(z.Serial),
					deref(z.DNSSEC),
					dnsname.IsReverse(deref(z.Name)),
				)
			}

			return w.Flush() //nolint:wrapcheck
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <zone>",
		Short: "Show a zone including its records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}

			zoneID := dnsname.Canonical(args[0])

			zone, err := client.Zones.Fetch(cmd.Context(), zoneID)
			if err != nil {
				return errors.Wrapf(err, "failed to fetch zone %s", zoneID)
			}

			return rt.writeJSON(zone)
		},
	}

	zonesCmd.AddCommand(listCmd, showCmd)

	return zonesCmd
}
