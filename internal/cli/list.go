package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/cumulus13/bwmon/internal/errors"
	"github.com/cumulus13/bwmon/internal/monitor"
	"github.com/cumulus13/bwmon/internal/netstat"
)

// listCmd prints the interfaces and exits; `bwmon -l` does the same thing.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List network interfaces and their counters",
	Long: `List every network interface with its cumulative received and sent
byte counters. The busiest interface, which bwmon monitors when --iface
is omitted, is marked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listCommand prints every interface with its cumulative counters and
// marks the one auto-selection would pick.
func listCommand(w io.Writer) error {
	return listInterfaces(w, netstat.NewSystemProvider())
}

func listInterfaces(w io.Writer, provider netstat.Provider) error {
	snaps, err := provider.Snapshots(context.Background())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSample,
			"Failed to read interface counters",
			"Check that /proc/net/dev (or the platform equivalent) is readable")
	}
	if len(snaps) == 0 {
		return errors.NewNoInterfaces()
	}

	busiest, err := monitor.Resolve("", snaps)
	if err != nil {
		return err
	}

	out := termenv.NewOutput(w)
	bold := func(s string) string { return out.String(s).Bold().String() }
	muted := func(s string) string { return out.String(s).Faint().String() }

	fmt.Fprintf(out, "  %s  %14s  %14s\n", bold(fmt.Sprintf("%-16s", "interface")), bold("received"), bold("sent"))
	for _, snap := range snaps {
		marker := muted("  ")
		name := fmt.Sprintf("%-16s", snap.Name)
		if snap.Name == busiest {
			marker = out.String("* ").Foreground(out.Color("6")).String()
			name = out.String(name).Foreground(out.Color("6")).String()
		}
		fmt.Fprintf(out, "%s%s  %14s  %14s\n", marker, name,
			monitor.FormatBytes(snap.RxBytes), monitor.FormatBytes(snap.TxBytes))
	}
	fmt.Fprintf(out, "\n%s\n", muted("* busiest interface (auto-selected when --iface is omitted)"))

	return nil
}
