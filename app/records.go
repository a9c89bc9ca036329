package app

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/dnsname"
	"github.com/GoPowerDNS-Admin/pdns-api/pdns"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputPDNS  = "pdns"

	defaultTTL = 3600
)

// ErrUnknownOutput is returned for an unsupported --output value.
var ErrUnknownOutput = errors.New("output must be table, json or pdns")

func newRecordsCmd(rt *runtime) *cobra.Command {
	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "Inspect and change records",
	}

	recordsCmd.AddCommand(newRecordsListCmd(rt), newRecordsAddCmd(rt))

	return recordsCmd
}

func newRecordsListCmd(rt *runtime) *cobra.Command {
	var output string

	listCmd := &cobra.Command{
		Use:   "list <zone>",
		Short: "List the records of a zone",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			switch output {
			case outputTable, outputJSON, outputPDNS:
				return nil
			}

			return ErrUnknownOutput
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}

			zoneID := dnsname.Canonical(args[0])

			records, err := client.Records.List(cmd.Context(), zoneID)
			if err != nil {
				return errors.Wrapf(err, "failed to list records of %s", zoneID)
			}

			switch output {
			case outputJSON:
				return rt.writeJSON(records)
			case outputPDNS:
				return rt.writeJSON(pdns.ToPowerDNS(records))
			}

			w := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tTTL\tCONTENT")

			for _, r := range records {
				disabled := ""
				if deref(r.Disabled) {
					disabled = " (disabled)"
				}

				fmt.Fprintf(w, "%s\t%s\t%d\t%s%s\n",
					dnsname.Relative(deref(r.Name), zoneID),
					deref(r.Type),
					deref(r.TTL),
					deref(r.Content),
					disabled,
				)
			}

			return w.Flush() //nolint:wrapcheck
		},
	}

	listCmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or pdns")

	return listCmd
}

func newRecordsAddCmd(rt *runtime) *cobra.Command {
	var (
		ttl      uint32
		disabled bool
		setPTR   bool
	)

	addCmd := &cobra.Command{
		Use:   "add <zone> <name> <type> <content>",
		Short: "Replace the RRset <name> <type> with a single record",
		Long: `Replace the RRset <name> <type> with a single record.
<name> is relative to <zone> unless it ends with a dot, "@" is the apex.
TXT, SPF and URI content is quoted when necessary.`,
		Args: cobra.ExactArgs(4), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID := dnsname.Canonical(args[0])
			name := dnsname.Qualify(args[1], zoneID)
			rrType := strings.ToUpper(args[2])

			record := &pdns.Record{
				Name:     pdns.String(name),
				Type:     pdns.String(rrType),
				TTL:      pdns.Uint32(ttl),
				Disabled: pdns.Bool(disabled),
				Content:  pdns.String(dnsname.QuoteContent(rrType, args[3])),
			}

			if setPTR {
				record.SetPTR = pdns.Bool(true)
			}

			client, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}

			if _, err = client.Records.Add(cmd.Context(), zoneID, record); err != nil {
				return errors.Wrapf(err, "failed to replace %s %s in %s", name, rrType, zoneID)
			}

			fmt.Fprintf(rt.out, "replaced %s %s in %s\n", name, rrType, zoneID)

			return nil
		},
	}

	addCmd.Flags().Uint32Var(&ttl, "ttl", defaultTTL, "time to live in seconds")
	addCmd.Flags().BoolVar(&disabled, "disabled", false, "add the record disabled")
	addCmd.Flags().BoolVar(&setPTR, "set-ptr", false, "ask the server to create the matching PTR record")

	return addCmd
}
