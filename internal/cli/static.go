package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/cumulus13/bwmon/internal/chart"
	"github.com/cumulus13/bwmon/internal/config"
	"github.com/cumulus13/bwmon/internal/logger"
	"github.com/cumulus13/bwmon/internal/monitor"
	"github.com/cumulus13/bwmon/internal/netstat"
)

// staticCommand prints one line per sample until interrupted, then the
// session statistics. Suitable for logs, pipes and dumb terminals.
func staticCommand(ctx context.Context, settings config.Settings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, err := monitor.NewSession(ctx,
		netstat.NewSystemProvider(), settings.Iface, settings.History, logger.Default())
	if err != nil {
		return err
	}

	out := termenv.NewOutput(os.Stdout)
	down := out.String(monitor.MarkerDownload).Foreground(out.Color("6"))
	up := out.String(monitor.MarkerUpload).Foreground(out.Color("3"))

	fmt.Fprintf(out, "monitoring %s every %s (ctrl+c to stop)\n", sess.Iface, settings.Interval)

	ticker := time.NewTicker(settings.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if sess.Stats.Count() > 0 {
				printFinalChart(out, settings, sess)
				fmt.Fprint(out, "\n"+monitor.RenderFinalStats(sess, time.Now()))
			}
			return nil

		case now := <-ticker.C:
			sample, ok := sess.Tick(ctx, now)
			if !ok {
				continue
			}
			printStaticLine(out, settings, sess, sample, down.String(), up.String())
		}
	}
}

// printStaticLine writes one sample as a timestamped line, honoring the
// direction flags and the optional inline summary.
func printStaticLine(out *termenv.Output, settings config.Settings, sess *monitor.Session, sample monitor.Sample, down, up string) {
	line := sample.Timestamp.Format("15:04:05")

	if !settings.UploadOnly {
		line += fmt.Sprintf("  %s %-12s", down, monitor.FormatRate(sample.RxRate))
	}
	if !settings.DownloadOnly {
		line += fmt.Sprintf("  %s %-12s", up, monitor.FormatRate(sample.TxRate))
	}

	if settings.Summary {
		line += fmt.Sprintf("  peak %s %s %s %s",
			down, monitor.FormatRate(sess.Stats.PeakRx),
			up, monitor.FormatRate(sess.Stats.PeakTx))
	}

	fmt.Fprintln(out, line)
}

// printFinalChart dumps the sampled history as a one-shot chart when the
// static run ends, one chart per plotted direction.
func printFinalChart(out *termenv.Output, settings config.Settings, sess *monitor.Session) {
	width := chart.PlotWidth(settings.Width, terminalWidth())
	renderer := chart.New(settings.Renderer)

	if !settings.UploadOnly {
		fmt.Fprintf(out, "\ndownload (%s)\n%s\n", sess.Iface,
			renderer.Render(sess.History.RxWindow(width), settings.Height, width))
	}
	if !settings.DownloadOnly {
		fmt.Fprintf(out, "\nupload (%s)\n%s\n", sess.Iface,
			renderer.Render(sess.History.TxWindow(width), settings.Height, width))
	}
}

// terminalWidth returns the width of stdout, or a conservative default
// when stdout is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
