package config

import (
	"fmt"

	"github.com/cumulus13/bwmon/internal/chart"
	"github.com/cumulus13/bwmon/internal/errors"
)

// Validate checks that the settings describe a runnable monitor.
func (s Settings) Validate() error {
	if s.Height < chart.MinHeight {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Chart height must be at least %d (got %d)", chart.MinHeight, s.Height),
			"Increase --height")
	}
	if s.Width < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Chart width cannot be negative (got %d)", s.Width),
			"Use --width 0 to size from the terminal")
	}
	if s.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Sampling interval must be at least %s (got %s)", MinInterval, s.Interval),
			"Increase --interval")
	}
	if s.History < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("History size must be positive (got %d)", s.History),
			"Use --history 120 for the default window")
	}
	if s.Renderer != chart.BackendASCII && s.Renderer != chart.BackendBlocks {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown renderer %q", s.Renderer),
			fmt.Sprintf("Use --renderer %s or --renderer %s", chart.BackendASCII, chart.BackendBlocks))
	}
	if s.DownloadOnly && s.UploadOnly {
		return errors.New(errors.ErrConfig,
			"--download and --upload are mutually exclusive",
			"Drop one of the flags to show both directions")
	}
	return nil
}
