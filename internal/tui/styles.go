package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/internal/session"
)

// Accent is one of the fixed section colours.
type Accent string

const (
	AccentPurple  Accent = "purple"
	AccentIndigo  Accent = "indigo"
	AccentBlue    Accent = "blue"
	AccentCyan    Accent = "cyan"
	AccentEmerald Accent = "emerald"
	AccentPink    Accent = "pink"
	AccentSlate   Accent = "slate"
)

var accentColors = map[Accent]lipgloss.Color{
	AccentPurple:  lipgloss.Color("#A855F7"),
	AccentIndigo:  lipgloss.Color("#6366F1"),
	AccentBlue:    lipgloss.Color("#3B82F6"),
	AccentCyan:    lipgloss.Color("#22D3EE"),
	AccentEmerald: lipgloss.Color("#10B981"),
	AccentPink:    lipgloss.Color("#EC4899"),
	AccentSlate:   lipgloss.Color("#64748B"),
}

// Color returns the terminal colour of a, falling back to purple.
func (a Accent) Color() lipgloss.Color {
	if c, ok := accentColors[a]; ok {
		return c
	}
	return accentColors[AccentPurple]
}

func fieldAccent(field domain.InputField) Accent {
	switch field {
	case domain.FieldBasicAttributes, domain.FieldTime, domain.FieldBudget:
		return AccentBlue
	case domain.FieldLiteracy:
		return AccentIndigo
	case domain.FieldHall, domain.FieldReward:
		return AccentPurple
	case domain.FieldProductConcept:
		return AccentPink
	default:
		return AccentSlate
	}
}

func modeAccent(mode domain.InputMode) Accent {
	if mode == domain.InputModeProduct {
		return AccentPink
	}
	return AccentIndigo
}

func tabAccent(tab session.Tab) Accent {
	switch tab {
	case session.TabDetailed:
		return AccentPurple
	case session.TabSlides:
		return AccentPink
	default:
		return AccentSlate
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E0E7FF"))

	headerBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(AccentIndigo.Color()).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(30).
			MarginRight(1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E2E8F0"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#555555")).
				Italic(true)

	customMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(AccentPurple.Color()).
			Bold(true)

	optionStyle = lipgloss.NewStyle().
			PaddingLeft(6)

	optionDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			PaddingLeft(8)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 3)

	buttonDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Padding(0, 3)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#94A3B8")).
				Padding(0, 2)

	reportStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(AccentEmerald.Color())
)

func accentText(a Accent) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(a.Color()).Bold(true)
}

func activeTabStyle(a Accent) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(a.Color()).
		Padding(0, 2)
}
