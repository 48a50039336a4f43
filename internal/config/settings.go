// Package config loads bwmon settings from defaults, an optional YAML
// config file, BWMON_* environment variables, and command-line flags, in
// increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/cumulus13/bwmon/internal/chart"
	"github.com/cumulus13/bwmon/internal/errors"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".bwmon.yaml"
	// GlobalConfigDir is the directory for the global config, under $HOME.
	GlobalConfigDir = ".config/bwmon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"

	// EnvPrefix namespaces environment overrides (BWMON_HEIGHT and friends).
	EnvPrefix = "BWMON"
)

// Defaults.
const (
	DefaultHeight   = 10
	DefaultWidth    = 0 // 0 = derive from terminal width
	DefaultInterval = time.Second
	DefaultHistory  = 120

	// MinInterval guards against busy-looping on the counter source.
	MinInterval = 100 * time.Millisecond
)

// Settings holds every tunable for a monitoring run.
type Settings struct {
	Iface    string        `yaml:"iface" mapstructure:"iface"`
	Height   int           `yaml:"height" mapstructure:"height"`
	Width    int           `yaml:"width" mapstructure:"width"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
	History  int           `yaml:"history" mapstructure:"history"`
	Renderer string        `yaml:"renderer" mapstructure:"renderer"`

	Summary      bool `yaml:"summary" mapstructure:"summary"`
	DownloadOnly bool `yaml:"download_only" mapstructure:"download_only"`
	UploadOnly   bool `yaml:"upload_only" mapstructure:"upload_only"`
	Static       bool `yaml:"static" mapstructure:"static"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Height:   DefaultHeight,
		Width:    DefaultWidth,
		Interval: DefaultInterval,
		History:  DefaultHistory,
		Renderer: chart.BackendASCII,
	}
}

// Load reads settings from the config file (explicit path, or discovered)
// and the environment. Flag values are applied by the caller afterwards;
// flags always win.
func Load(explicitPath string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	path := explicitPath
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if explicitPath == "" && os.IsNotExist(err) {
				// A discovered file racing with deletion is not fatal.
				return settingsFromViper(v)
			}
			return Settings{}, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file: "+path,
				"Check the file exists and is valid YAML, or recreate it with 'bwmon init'")
		}
	}

	return settingsFromViper(v)
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("iface", d.Iface)
	v.SetDefault("height", d.Height)
	v.SetDefault("width", d.Width)
	v.SetDefault("interval", d.Interval)
	v.SetDefault("history", d.History)
	v.SetDefault("renderer", d.Renderer)
	v.SetDefault("summary", d.Summary)
	v.SetDefault("download_only", d.DownloadOnly)
	v.SetDefault("upload_only", d.UploadOnly)
	v.SetDefault("static", d.Static)
}

func settingsFromViper(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid configuration values",
			"Check field types in the config file")
	}
	return s, nil
}

// findConfigFile locates a config file: .bwmon.yaml in the current
// directory first, then the global ~/.config/bwmon/config.yaml. Returns
// the empty string when neither exists.
func findConfigFile() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global
	}
	return ""
}

// GlobalConfigPath returns the path the init command writes to.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set the HOME environment variable")
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile), nil
}
