package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cumulus13/bwmon/internal/config"
	"github.com/cumulus13/bwmon/internal/errors"
	"github.com/cumulus13/bwmon/internal/logger"
	"github.com/cumulus13/bwmon/internal/monitor"
	"github.com/cumulus13/bwmon/internal/netstat"
)

// monitorCommand starts the full-screen TUI dashboard and prints the
// session statistics once it exits.
func monitorCommand(settings config.Settings) error {
	sess, err := monitor.NewSession(context.Background(),
		netstat.NewSystemProvider(), settings.Iface, settings.History, logger.Default())
	if err != nil {
		return err
	}

	model := monitor.NewModel(sess, settings)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"The dashboard terminated unexpectedly",
			"Try --static for plain output on limited terminals")
	}

	// The program returns the final model state; its session carries the
	// statistics accumulated while the dashboard ran.
	if m, ok := final.(monitor.Model); ok && m.Session().Stats.Count() > 0 {
		fmt.Print(monitor.RenderFinalStats(m.Session(), time.Now()))
	}
	return nil
}
