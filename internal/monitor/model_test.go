package monitor

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cumulus13/bwmon/internal/chart"
	"github.com/cumulus13/bwmon/internal/config"
	"github.com/cumulus13/bwmon/internal/logger"
	"github.com/cumulus13/bwmon/internal/netstat"
)

func testSession(t *testing.T) *Session {
	t.Helper()

	provider := &netstat.FakeProvider{
		Script: [][]netstat.Snapshot{
			{{Name: "eth0", RxBytes: 1000, TxBytes: 500}},
			{{Name: "eth0", RxBytes: 3000, TxBytes: 1500}},
		},
	}
	sess, err := NewSession(context.Background(), provider, "eth0", 10, logger.Noop())
	require.NoError(t, err)
	return sess
}

func testModel(t *testing.T) Model {
	t.Helper()
	return NewModel(testSession(t), config.DefaultSettings())
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDirectionFromSettings(t *testing.T) {
	settings := config.DefaultSettings()

	m := NewModel(testSession(t), settings)
	assert.Equal(t, ModeBoth, m.mode)

	settings.DownloadOnly = true
	m = NewModel(testSession(t), settings)
	assert.Equal(t, ModeDownload, m.mode)

	settings.DownloadOnly = false
	settings.UploadOnly = true
	m = NewModel(testSession(t), settings)
	assert.Equal(t, ModeUpload, m.mode)
}

func TestNewModelRendererFromSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Renderer = chart.BackendBlocks

	m := NewModel(testSession(t), settings)
	assert.Equal(t, chart.BackendBlocks, m.renderer.Name())
}

func TestUpdateWindowSize(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestUpdateTickRecordsSample(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.Update(tickMsg(time.Now().Add(time.Second)))
	m = updated.(Model)

	assert.NotNil(t, cmd, "tick should schedule the next tick")
	assert.False(t, m.sampleErr)
	assert.Greater(t, m.lastSample.RxRate, 0.0)
	assert.Equal(t, 1, m.session.History.Len())
}

func TestUpdateTickProviderFailureMarksStale(t *testing.T) {
	provider := &netstat.FakeProvider{
		Script: [][]netstat.Snapshot{
			{{Name: "eth0", RxBytes: 1000, TxBytes: 500}},
		},
		Err: assert.AnError,
	}
	// Provider succeeds once for the session baseline, then fails.
	provider.Err = nil
	sess, err := NewSession(context.Background(), provider, "eth0", 10, logger.Noop())
	require.NoError(t, err)
	provider.Err = assert.AnError

	m := NewModel(sess, config.DefaultSettings())
	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(Model)

	assert.True(t, m.sampleErr)
	assert.Equal(t, 0, m.session.History.Len())
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		keyMsg("q"),
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := testModel(t)
		updated, cmd := m.Update(key)
		m = updated.(Model)

		assert.True(t, m.quitting, "key %s should quit", key.String())
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
		assert.Empty(t, m.View())
	}
}

func TestDirectionKeys(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(keyMsg("d"))
	m = updated.(Model)
	assert.Equal(t, ModeDownload, m.mode)

	updated, _ = m.Update(keyMsg("u"))
	m = updated.(Model)
	assert.Equal(t, ModeUpload, m.mode)

	updated, _ = m.Update(keyMsg("b"))
	m = updated.(Model)
	assert.Equal(t, ModeBoth, m.mode)
}

func TestRendererToggleKey(t *testing.T) {
	m := testModel(t)
	require.Equal(t, chart.BackendASCII, m.renderer.Name())

	updated, _ := m.Update(keyMsg("r"))
	m = updated.(Model)
	assert.Equal(t, chart.BackendBlocks, m.renderer.Name())

	updated, _ = m.Update(keyMsg("r"))
	m = updated.(Model)
	assert.Equal(t, chart.BackendASCII, m.renderer.Name())
}

func TestSummaryToggleKey(t *testing.T) {
	m := testModel(t)
	assert.False(t, m.showSummary)

	updated, _ := m.Update(keyMsg("s"))
	m = updated.(Model)
	assert.True(t, m.showSummary)

	updated, _ = m.Update(keyMsg("s"))
	m = updated.(Model)
	assert.False(t, m.showSummary)
}

func TestHelpOverlay(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(keyMsg("?"))
	m = updated.(Model)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "bwmon keys")

	// Any key returns to the dashboard.
	updated, _ = m.Update(keyMsg("x"))
	m = updated.(Model)
	assert.False(t, m.showHelp)

	// Except quit, which still quits from the overlay.
	updated, _ = m.Update(keyMsg("?"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("q"))
	m = updated.(Model)
	assert.True(t, m.quitting)
}

func TestDirectionModeString(t *testing.T) {
	assert.Equal(t, "both", ModeBoth.String())
	assert.Equal(t, "download", ModeDownload.String())
	assert.Equal(t, "upload", ModeUpload.String())
}
