package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/internal/report"
	"github.com/kapu/pachinko-persona-lab/internal/session"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerBorder.Render(titleStyle.Render("Pachinko Persona Lab")))
	b.WriteString("\n")

	if m.screen == screenResult && m.view.HasResult() {
		m.renderResult(&b)
	} else {
		m.renderForm(&b)
	}

	if m.view.Err != "" {
		b.WriteString("\n" + errorStyle.Render("  "+m.view.Err) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render("  "+m.status) + "\n")
	}

	b.WriteString(helpStyle.Render("  " + m.help()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderForm(b *strings.Builder) {
	mode := m.view.Input.InputMode
	var tabs []string
	for _, md := range []domain.InputMode{domain.InputModeUser, domain.InputModeProduct} {
		if md == mode {
			tabs = append(tabs, activeTabStyle(modeAccent(md)).Render(modeLabels[md]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(modeLabels[md]))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	for i, item := range m.items {
		active := i == m.cursor
		if item.field == "" {
			b.WriteString("\n")
			b.WriteString("  " + m.submitButton(active))
			b.WriteString("\n")
			continue
		}

		cursor := "  "
		if active {
			cursor = cursorStyle.Render("> ")
		}
		label := labelStyle.Foreground(fieldAccent(item.field).Color()).Render(item.label)
		b.WriteString(cursor + label + " " + m.renderValue(item, active) + "\n")

		if active && m.state == statePicking {
			for j, opt := range item.options {
				prefix := "  "
				if j == m.pick {
					prefix = cursorStyle.Render("> ")
				}
				b.WriteString(optionStyle.Render(prefix+opt.Label) + "\n")
				if j == m.pick && opt.Description != "" {
					b.WriteString(optionDescStyle.Render(opt.Description) + "\n")
				}
			}
		}
	}

	if !m.view.Input.CanSubmit() {
		msg := "※全ての項目を選択または入力してください"
		if mode == domain.InputModeProduct {
			msg = "※プロダクトの概要を入力してください"
		}
		b.WriteString("\n" + placeholderStyle.Render("  "+msg) + "\n")
	}
}

func (m Model) renderValue(item formItem, active bool) string {
	if active && m.state == stateTyping {
		return valueStyle.Render(m.draft + "_")
	}
	value := m.view.Input.Get(item.field)
	if value == "" {
		if item.text {
			return placeholderStyle.Render("(未入力)")
		}
		return placeholderStyle.Render("(未選択)")
	}
	display := value
	for _, opt := range item.options {
		if opt.Value == value {
			display = opt.Label
			break
		}
	}
	if item.text {
		display = strings.ReplaceAll(display, "\n", " ")
	}
	rendered := valueStyle.Render(display)
	if domain.IsCustomValue(item.field, value) && !item.text {
		rendered += " " + customMarkStyle.Render("✎")
	}
	return rendered
}

func (m Model) submitButton(active bool) string {
	switch {
	case m.view.Loading:
		return buttonDimStyle.Render("Analyzing...")
	case !m.view.CanSubmit():
		return buttonDimStyle.Render(m.submitLabel())
	}
	style := buttonStyle.Background(modeAccent(m.view.Input.InputMode).Color())
	if !active {
		style = style.Faint(true)
	}
	return style.Render(m.submitLabel())
}

func (m Model) submitLabel() string {
	if m.view.Input.InputMode == domain.InputModeProduct {
		return "ターゲット分析・生成 (Analyze)"
	}
	return "ペルソナ生成 (Generate)"
}

func (m Model) renderResult(b *strings.Builder) {
	var tabs []string
	for i, tab := range session.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tabLabels[tab])
		if tab == m.view.Tab {
			tabs = append(tabs, activeTabStyle(tabAccent(tab)).Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	body := m.view.ReportText()
	if m.view.Tab == session.TabSlides {
		body = slidePreview(m.view.Result, &m.view.Deck)
	}

	style := reportStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	b.WriteString(style.Render(body))
	b.WriteString("\n")
}

// slidePreview renders the current slide of the deck as terminal text.
func slidePreview(p *domain.PersonaRecord, deck *report.Deck) string {
	var b strings.Builder
	accent := accentText(AccentPink)
	b.WriteString(accent.Render(deck.Title()))
	b.WriteString("\n\n")

	switch deck.Index() {
	case 0:
		b.WriteString(strings.Join(report.Tags(p.Keywords), " ") + "\n\n")
		b.WriteString(titleStyle.Render(p.Name) + "\n")
		b.WriteString(fmt.Sprintf("\"%s\"\n\n", p.Catchphrase))
		b.WriteString(p.VisualImage + "\n")
	case 1:
		b.WriteString(p.Attributes.Basic + "\n\n")
		b.WriteString(fmt.Sprintf("時間帯: %s\n予算: %s\nホール選び: %s\nリテラシー: %s\n\n",
			p.Attributes.PlayStyle.Time, p.Attributes.PlayStyle.Budget,
			p.Attributes.PlayStyle.Hall, p.Attributes.PlayStyle.Literacy))
		b.WriteString(accentText(AccentPurple).Render("Daily Routine") + "\n" + p.PrivateLife.DailyRoutine + "\n\n")
		b.WriteString(accentText(AccentPurple).Render("Deep Insight") + "\n" + p.BackgroundAnalysis + "\n")
	case 2:
		b.WriteString(accentText(AccentIndigo).Render(p.Specs.Summary) + "\n")
		b.WriteString(bullets(p.Specs.Details))
		b.WriteString("Latent Need: " + p.Specs.LatentNeed + "\n\n")
		b.WriteString(accentText(AccentCyan).Render(p.Enshutsu.Style) + "\n")
		b.WriteString(bullets(p.Enshutsu.Behaviors))
		b.WriteString("Insight: " + p.Enshutsu.PsychologicalInsight + "\n")
	case 3:
		b.WriteString(accentText(AccentEmerald).Render("DO") + "\n")
		b.WriteString(bullets(p.DeveloperAdvice.Dos))
		b.WriteString("\n" + errorStyle.Render("DON'T") + "\n")
		b.WriteString(bullets(p.DeveloperAdvice.Donts))
	}

	prev, next := "  ", "  "
	if !deck.IsFirst() {
		prev = "◀ "
	}
	if !deck.IsLast() {
		next = " ▶"
	}
	b.WriteString("\n" + placeholderStyle.Render(prev+deck.Indicator()+next))
	return b.String()
}

func bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  • " + item + "\n")
	}
	return b.String()
}

func (m Model) help() string {
	if m.screen == screenResult && m.view.HasResult() {
		keys := "tab/1-3 switch view | t save text | w save slides | a save all | esc back | q quit"
		if m.view.Tab == session.TabSlides {
			keys = "←/→ slide | " + keys
		}
		return keys
	}
	switch m.state {
	case statePicking:
		return "j/k or arrows to pick | enter to select | e custom value | esc to cancel"
	case stateTyping:
		return "type value | enter to confirm | alt+enter newline | ctrl+u to clear | esc to cancel"
	}
	keys := "j/k or arrows to navigate | enter to edit | e custom | x clear | tab switch mode | q quit"
	if m.view.HasResult() {
		keys += " | r result"
	}
	return keys
}
