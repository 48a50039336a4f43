package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cumulus13/bwmon/internal/config"
)

// Root command flags. Values here are only defaults; resolved settings
// come from applyFlags, which layers them over the config file.
var (
	ifaceFlag    string
	heightFlag   int
	widthFlag    int
	intervalFlag time.Duration
	historyFlag  int
	rendererFlag string
	summaryFlag  bool
	downloadFlag bool
	uploadFlag   bool
	staticFlag   bool
	listFlag     bool
	configFlag   string
)

// rootCmd is the bwmon dashboard itself; monitoring is the default action.
var rootCmd = &cobra.Command{
	Use:   "bwmon",
	Short: "Live network bandwidth monitor",
	Long: `bwmon samples network interface byte counters and plots download and
upload rates as a scrolling terminal chart.

With no arguments it opens a full-screen dashboard on the busiest
interface. A pattern given with --iface selects the interface: an exact
name wins, otherwise the shortest case-insensitive substring match.

Examples:
  bwmon                     monitor the busiest interface
  bwmon -i eth0             monitor eth0
  bwmon -i wl -t 500ms      monitor the first wl* interface, twice a second
  bwmon --static --summary  plain output with running statistics
  bwmon --list              show all interfaces and their counters`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		if listFlag {
			return listCommand(cmd.OutOrStdout())
		}
		if settings.Static {
			return staticCommand(cmd.Context(), settings)
		}
		return monitorCommand(settings)
	},
}

func init() {
	d := config.DefaultSettings()

	rootCmd.Flags().StringVarP(&ifaceFlag, "iface", "i", "", "interface name or substring pattern (empty = busiest)")
	rootCmd.Flags().IntVarP(&heightFlag, "height", "H", d.Height, "chart height in rows")
	rootCmd.Flags().IntVarP(&widthFlag, "width", "W", d.Width, "chart width in columns (0 = terminal width)")
	rootCmd.Flags().DurationVarP(&intervalFlag, "interval", "t", d.Interval, "sampling interval")
	rootCmd.Flags().IntVar(&historyFlag, "history", d.History, "number of samples kept for the chart")
	rootCmd.Flags().StringVar(&rendererFlag, "renderer", d.Renderer, "chart backend (ascii or blocks)")
	rootCmd.Flags().BoolVarP(&summaryFlag, "summary", "s", false, "show the running statistics block")
	rootCmd.Flags().BoolVarP(&downloadFlag, "download", "d", false, "plot download traffic only")
	rootCmd.Flags().BoolVarP(&uploadFlag, "upload", "u", false, "plot upload traffic only")
	rootCmd.Flags().BoolVar(&staticFlag, "static", false, "print one line per sample instead of the TUI")
	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list interfaces and exit")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default .bwmon.yaml, then ~/.config/bwmon/config.yaml)")
}

// resolveSettings layers command-line flags over the config file. Only
// flags the user actually set override file values.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Load(configFlag)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("iface") {
		settings.Iface = ifaceFlag
	}
	if flags.Changed("height") {
		settings.Height = heightFlag
	}
	if flags.Changed("width") {
		settings.Width = widthFlag
	}
	if flags.Changed("interval") {
		settings.Interval = intervalFlag
	}
	if flags.Changed("history") {
		settings.History = historyFlag
	}
	if flags.Changed("renderer") {
		settings.Renderer = rendererFlag
	}
	if flags.Changed("summary") {
		settings.Summary = summaryFlag
	}
	if flags.Changed("download") {
		settings.DownloadOnly = downloadFlag
	}
	if flags.Changed("upload") {
		settings.UploadOnly = uploadFlag
	}
	if flags.Changed("static") {
		settings.Static = staticFlag
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// Execute runs the root command and exits non-zero on error. Structured
// errors already carry their own formatting and suggestion text.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
