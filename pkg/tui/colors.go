// Package tui предоставляет цветовые схемы и клавиатурные сокращения для TUI.
//
// Светлая и тёмная схемы соответствуют теме оформления, которую
// пользователь переключает в клиенте.
package tui

import "github.com/charmbracelet/lipgloss"

// Имена предустановленных схем.
const (
	SchemeLight = "light"
	SchemeDark  = "dark"
)

// ColorScheme определяет цвета для элементов формы.
//
// Каждое поле - это lipgloss.Color (hex, ANSI или named color).
type ColorScheme struct {
	// Общие
	Background lipgloss.Color // Фон панелей
	Foreground lipgloss.Color // Основной текст
	Muted      lipgloss.Color // Подписи, подсказки
	Border     lipgloss.Color // Границы и разделители

	// Шапка
	Title    lipgloss.Color
	Subtitle lipgloss.Color

	// Кнопки
	Button         lipgloss.Color // Текст обычной кнопки
	ButtonActive   lipgloss.Color // Фон выбранного стиля
	ButtonActiveFg lipgloss.Color // Текст выбранного стиля
	Focus          lipgloss.Color // Рамка элемента в фокусе

	// Сообщения
	Success lipgloss.Color
	Error   lipgloss.Color
	Notice  lipgloss.Color // Рамка модального уведомления

	// Status Bar
	StatusBackground lipgloss.Color
	StatusForeground lipgloss.Color
	Spinner          lipgloss.Color
}

// ColorSchemes предоставляет предустановленные цветовые схемы.
var ColorSchemes = map[string]ColorScheme{
	SchemeLight: {
		Background:       lipgloss.Color("255"),
		Foreground:       lipgloss.Color("235"),
		Muted:            lipgloss.Color("244"),
		Border:           lipgloss.Color("250"),
		Title:            lipgloss.Color("#D9480F"),
		Subtitle:         lipgloss.Color("240"),
		Button:           lipgloss.Color("236"),
		ButtonActive:     lipgloss.Color("#D9480F"),
		ButtonActiveFg:   lipgloss.Color("#FFFFFF"),
		Focus:            lipgloss.Color("#1C7ED6"),
		Success:          lipgloss.Color("28"),
		Error:            lipgloss.Color("160"),
		Notice:           lipgloss.Color("#F08C00"),
		StatusBackground: lipgloss.Color("253"),
		StatusForeground: lipgloss.Color("236"),
		Spinner:          lipgloss.Color("#D9480F"),
	},
	SchemeDark: {
		Background:       lipgloss.Color("235"),
		Foreground:       lipgloss.Color("252"),
		Muted:            lipgloss.Color("242"),
		Border:           lipgloss.Color("240"),
		Title:            lipgloss.Color("#FF922B"),
		Subtitle:         lipgloss.Color("248"),
		Button:           lipgloss.Color("252"),
		ButtonActive:     lipgloss.Color("#FF922B"),
		ButtonActiveFg:   lipgloss.Color("0"),
		Focus:            lipgloss.Color("86"),
		Success:          lipgloss.Color("42"),
		Error:            lipgloss.Color("196"),
		Notice:           lipgloss.Color("#FFD43B"),
		StatusBackground: lipgloss.Color("0"),
		StatusForeground: lipgloss.Color("252"),
		Spinner:          lipgloss.Color("86"),
	},
}

// DefaultColorScheme возвращает светлую схему.
func DefaultColorScheme() ColorScheme {
	return ColorSchemes[SchemeLight]
}

// GetColorScheme возвращает цветовую схему по имени.
//
// Если схема не найдена, возвращает светлую.
func GetColorScheme(name string) ColorScheme {
	if scheme, ok := ColorSchemes[name]; ok {
		return scheme
	}
	return DefaultColorScheme()
}
