package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap определяет клавиатурные сокращения формы рерайта.
type KeyMap struct {
	Quit           key.Binding
	NextField      key.Binding
	PrevField      key.Binding
	Left           key.Binding
	Right          key.Binding
	Up             key.Binding
	Down           key.Binding
	Activate       key.Binding
	ToggleCheck    key.Binding
	ToggleTheme    key.Binding
	ReloadChannels key.Binding
	ToggleHelp     key.Binding
}

// ShortHelp реализует help.KeyMap интерфейс.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.NextField,
		km.Activate,
		km.ToggleTheme,
		km.ToggleHelp,
		km.Quit,
	}
}

// FullHelp реализует help.KeyMap интерфейс.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.NextField, km.PrevField, km.Left, km.Right},
		{km.Up, km.Down, km.Activate, km.ToggleCheck},
		{km.ToggleTheme, km.ReloadChannels, km.ToggleHelp, km.Quit},
	}
}

// DefaultKeyMap возвращает дефолтный KeyMap.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("Ctrl+C", "выход"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "следующее поле"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "предыдущее поле"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "влево"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "вправо"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "вниз"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "выбрать"),
		),
		ToggleCheck: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "отметить канал"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", "тема"),
		),
		ReloadChannels: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "обновить каналы"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "справка"),
		),
	}
}
