package primitives

import (
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ilkoid/phoenix-lab/pkg/tui"
)

// StatusBarManager manages the bottom status bar: spinner while a request
// is in flight, the current activity label, and custom extra info.
type StatusBarManager struct {
	spinner      spinner.Model
	isProcessing bool
	label        string
	mu           sync.RWMutex

	cfg StatusBarConfig

	customExtra func() string
}

// StatusBarConfig holds color configuration for the status bar
type StatusBarConfig struct {
	SpinnerColor    lipgloss.Color
	IdleColor       lipgloss.Color
	BackgroundColor lipgloss.Color
	ExtraText       lipgloss.Color
}

// DefaultStatusBarConfig returns colors of the light scheme.
func DefaultStatusBarConfig() StatusBarConfig {
	return StatusBarConfigFromScheme(tui.DefaultColorScheme())
}

// StatusBarConfigFromScheme derives status bar colors from a color scheme.
func StatusBarConfigFromScheme(s tui.ColorScheme) StatusBarConfig {
	return StatusBarConfig{
		SpinnerColor:    s.Spinner,
		IdleColor:       s.Success,
		BackgroundColor: s.StatusBackground,
		ExtraText:       s.StatusForeground,
	}
}

// NewStatusBarManager creates a new StatusBarManager with the given configuration
func NewStatusBarManager(cfg StatusBarConfig) *StatusBarManager {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.SpinnerColor)

	return &StatusBarManager{
		spinner: s,
		cfg:     cfg,
	}
}

// SetConfig swaps colors, used when the theme changes.
func (sm *StatusBarManager) SetConfig(cfg StatusBarConfig) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.cfg = cfg
	sm.spinner.Style = lipgloss.NewStyle().Foreground(cfg.SpinnerColor)
}

// Tick returns the command that starts spinner animation.
func (sm *StatusBarManager) Tick() tea.Cmd {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.spinner.Tick
}

// Update advances the spinner. Ticks stop while idle.
func (sm *StatusBarManager) Update(msg spinner.TickMsg) tea.Cmd {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.isProcessing {
		return nil
	}

	var cmd tea.Cmd
	sm.spinner, cmd = sm.spinner.Update(msg)
	return cmd
}

// Render returns the status bar as a styled string
func (sm *StatusBarManager) Render() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	var text string
	if sm.isProcessing {
		text = sm.spinner.View()
		if sm.label != "" {
			text += " " + sm.label
		}
	} else {
		text = "✓ Готово"
	}

	fg := sm.cfg.IdleColor
	if sm.isProcessing {
		fg = sm.cfg.SpinnerColor
	}

	out := lipgloss.NewStyle().
		Background(sm.cfg.BackgroundColor).
		Foreground(fg).
		Padding(0, 1).
		Render(text)

	if sm.customExtra != nil {
		if extra := sm.customExtra(); extra != "" {
			out += lipgloss.NewStyle().
				Background(sm.cfg.BackgroundColor).
				Foreground(sm.cfg.ExtraText).
				Padding(0, 1).
				Render(extra)
		}
	}

	return out
}

// SetProcessing sets the processing state and the activity label shown next
// to the spinner. An empty label keeps only the spinner.
func (sm *StatusBarManager) SetProcessing(processing bool, label string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.isProcessing = processing
	if processing {
		sm.label = label
	} else {
		sm.label = ""
	}
}

// IsProcessing returns the current processing state
func (sm *StatusBarManager) IsProcessing() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.isProcessing
}

// SetCustomExtra sets the callback for custom status extra info
func (sm *StatusBarManager) SetCustomExtra(fn func() string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.customExtra = fn
}

// GetCustomExtra returns the current custom extra callback
func (sm *StatusBarManager) GetCustomExtra() func() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.customExtra
}
