package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the overlay.
type Styles struct {
	Window            *lipgloss.Style
	Toolbar           *lipgloss.Style
	Title             *lipgloss.Style
	Button            *lipgloss.Style
	FocusedButton     *lipgloss.Style
	HighlightButton   *lipgloss.Style
	Label             *lipgloss.Style
	Muted             *lipgloss.Style
	Separator         *lipgloss.Style
	BreadcrumbCurrent *lipgloss.Style
	SliderTrack       *lipgloss.Style
	SliderFill        *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	Scene             *lipgloss.Style
	SceneActor        *lipgloss.Style
	SceneStatus       *lipgloss.Style
}

var defaultStyles = Styles{
	Window: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")),
	),
	Toolbar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	HighlightButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	BreadcrumbCurrent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true),
	),
	SliderTrack: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SliderFill: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Scene: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	SceneActor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	),
	SceneStatus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Render applies style when present, otherwise returns value untouched.
func Render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
