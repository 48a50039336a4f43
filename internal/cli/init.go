package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cumulus13/bwmon/internal/config"
	"github.com/cumulus13/bwmon/internal/errors"
	"github.com/cumulus13/bwmon/internal/monitor"
	"github.com/cumulus13/bwmon/internal/netstat"
)

var (
	initForce  bool
	initGlobal bool
)

// initCmd creates a config file interactively.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a bwmon config file",
	Long: `Create a configuration file interactively.

Writes .bwmon.yaml in the current directory by default, or the global
~/.config/bwmon/config.yaml with --global. The interface picker lists
the machine's current interfaces.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(netstat.NewSystemProvider(), initForce, initGlobal)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write the global config instead of ./"+config.ConfigFileName)
}

func initCommand(provider netstat.Provider, force, global bool) error {
	path := config.ConfigFileName
	if global {
		var err error
		path, err = config.GlobalConfigPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	settings, err := promptSettings(provider)
	if err != nil {
		return err
	}

	return writeConfigFile(path, settings)
}

// promptSettings collects settings interactively, offering the machine's
// current interfaces in the picker.
func promptSettings(provider netstat.Provider) (config.Settings, error) {
	settings := config.DefaultSettings()

	ifaceOptions := []huh.Option[string]{huh.NewOption("auto (busiest interface)", "")}
	if snaps, err := provider.Snapshots(context.Background()); err == nil {
		for _, snap := range snaps {
			label := fmt.Sprintf("%s (%s down, %s up)", snap.Name,
				monitor.FormatBytes(snap.RxBytes), monitor.FormatBytes(snap.TxBytes))
			ifaceOptions = append(ifaceOptions, huh.NewOption(label, snap.Name))
		}
	}

	interval := settings.Interval.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Interface").
				Description("Which interface to monitor by default").
				Options(ifaceOptions...).
				Value(&settings.Iface),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sampling interval").
				Description("How often to read the counters (e.g. 1s, 500ms)").
				Value(&interval).
				Validate(func(s string) error {
					d, err := time.ParseDuration(s)
					if err != nil {
						return fmt.Errorf("not a valid duration")
					}
					if d < config.MinInterval {
						return fmt.Errorf("must be at least %s", config.MinInterval)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Chart renderer").
				Options(
					huh.NewOption("ascii (library backend)", "ascii"),
					huh.NewOption("blocks (hand-rolled glyphs)", "blocks"),
				).
				Value(&settings.Renderer),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show the statistics summary by default?").
				Value(&settings.Summary),
		),
	)

	if err := form.Run(); err != nil {
		return config.Settings{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Re-run 'bwmon init' or write the config file by hand")
	}

	settings.Interval, _ = time.ParseDuration(interval)
	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// configFile is the on-disk shape of the settings. Durations are written
// as strings ("1s") rather than raw nanosecond counts.
type configFile struct {
	Iface    string `yaml:"iface,omitempty"`
	Height   int    `yaml:"height"`
	Width    int    `yaml:"width"`
	Interval string `yaml:"interval"`
	History  int    `yaml:"history"`
	Renderer string `yaml:"renderer"`
	Summary  bool   `yaml:"summary"`
	Static   bool   `yaml:"static"`
}

// writeConfigFile marshals the settings and writes them, creating parent
// directories for the global path.
func writeConfigFile(path string, settings config.Settings) error {
	data, err := yaml.Marshal(configFile{
		Iface:    settings.Iface,
		Height:   settings.Height,
		Width:    settings.Width,
		Interval: settings.Interval.String(),
		History:  settings.History,
		Renderer: settings.Renderer,
		Summary:  settings.Summary,
		Static:   settings.Static,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize configuration",
			"This is a bug; please report it")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Failed to create config directory %s", dir),
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write %s", path),
			"Check file permissions")
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
