package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/internal/report"
	"github.com/kapu/pachinko-persona-lab/internal/session"
)

// formItem is one row of the input form. The zero field is the submit button.
type formItem struct {
	field   domain.InputField
	label   string
	options []domain.SelectOption
	text    bool
}

type formState int

const (
	stateMenu formState = iota
	statePicking
	stateTyping
)

type screen int

const (
	screenForm screen = iota
	screenResult
)

var modeLabels = map[domain.InputMode]string{
	domain.InputModeUser:    "ユーザーから生成",
	domain.InputModeProduct: "スペックから逆算",
}

var tabLabels = map[session.Tab]string{
	session.TabSimple:   "簡易形式",
	session.TabDetailed: "企画書形式",
	session.TabSlides:   "スライドプレビュー",
}

const (
	conceptLabel = "プロダクト概要・コンセプト (Product Concept)"
	noteLabel    = "その他・補足 (Notes)"
)

func buildItems(mode domain.InputMode) []formItem {
	var items []formItem
	if mode == domain.InputModeProduct {
		items = append(items, formItem{field: domain.FieldProductConcept, label: conceptLabel, text: true})
	} else {
		for _, dim := range domain.Catalog() {
			items = append(items, formItem{field: dim.Field, label: dim.Label, options: dim.Options})
		}
	}
	items = append(items, formItem{field: domain.FieldCustomNote, label: noteLabel, text: true})
	return append(items, formItem{})
}

type generatedMsg struct {
	record *domain.PersonaRecord
	meta   *domain.GenerateMetadata
	err    error
}

type exportedMsg struct {
	paths []string
	err   error
}

// Options configures the terminal UI.
type Options struct {
	Generator session.Generator
	ExportDir string
	Logger    *zap.Logger
}

// Model is the Bubble Tea model. All view state lives in the session.View;
// it is only mutated from Update.
type Model struct {
	ctx       context.Context
	view      *session.View
	generator session.Generator
	exportDir string
	logger    *zap.Logger

	items  []formItem
	cursor int
	state  formState
	pick   int
	draft  string
	screen screen
	width  int
	status string
}

func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	view := session.NewView()
	return Model{
		ctx:       ctx,
		view:      view,
		generator: opts.Generator,
		exportDir: opts.ExportDir,
		logger:    logger,
		items:     buildItems(view.Input.InputMode),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) submitIdx() int {
	return len(m.items) - 1
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case generatedMsg:
		m.view.Complete(msg.record, msg.meta, msg.err)
		if msg.err != nil {
			m.logger.Warn("Persona generation failed", zap.Error(msg.err))
			return m, nil
		}
		m.logger.Info("Persona generated",
			zap.String("request_id", msg.meta.RequestID),
			zap.String("name", msg.record.Name),
		)
		m.screen = screenResult
		m.status = ""
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.status = ""
			m.view.Err = fmt.Sprintf("export failed: %v", msg.err)
			return m, nil
		}
		m.view.Err = ""
		m.status = fmt.Sprintf("saved %d file(s) to %s", len(msg.paths), m.exportDir)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenResult {
			return m.updateResult(msg)
		}
		switch m.state {
		case statePicking:
			return m.updatePicking(msg)
		case stateTyping:
			return m.updateTyping(msg)
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.submitIdx() {
			m.cursor++
		}

	case "tab", "m":
		m.toggleMode()

	case "x", "delete":
		if item := m.items[m.cursor]; item.field != "" {
			m.view.SetField(item.field, "")
		}

	case "e":
		if item := m.items[m.cursor]; item.field != "" {
			m.startTyping(item.field)
		}

	case "r":
		if m.view.HasResult() {
			m.screen = screenResult
		}

	case "enter", " ":
		item := m.items[m.cursor]
		switch {
		case item.field == "":
			return m.submit()
		case item.text:
			m.startTyping(item.field)
		default:
			m.state = statePicking
			m.pick = optionIndex(item.options, m.view.Input.Get(item.field))
		}
	}
	return m, nil
}

func (m Model) updatePicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.items[m.cursor]
	switch msg.String() {
	case "enter", " ":
		m.view.SetField(item.field, item.options[m.pick].Value)
		m.state = stateMenu
		m.advance()
	case "e":
		m.startTyping(item.field)
	case "esc":
		m.state = stateMenu
	case "up", "k":
		if m.pick > 0 {
			m.pick--
		}
	case "down", "j":
		if m.pick < len(item.options)-1 {
			m.pick++
		}
	}
	return m, nil
}

func (m Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if msg.Alt {
			m.draft += "\n"
			return m, nil
		}
		m.view.SetField(m.items[m.cursor].field, m.draft)
		m.state = stateMenu
		m.advance()
	case tea.KeyEsc:
		m.state = stateMenu
	case tea.KeyBackspace:
		if r := []rune(m.draft); len(r) > 0 {
			m.draft = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.draft = ""
	case tea.KeySpace:
		m.draft += " "
	case tea.KeyRunes:
		m.draft += string(msg.Runes)
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "n":
		m.screen = screenForm
		m.status = ""
	case "tab":
		m.view.CycleTab()
	case "1", "2", "3":
		m.view.SetTab(session.Tabs[msg.String()[0]-'1'])
	case "right", "l":
		if m.view.Tab == session.TabSlides {
			m.view.NextSlide()
		}
	case "left", "h":
		if m.view.Tab == session.TabSlides {
			m.view.PrevSlide()
		}
	case "t":
		return m, m.exportCmd(m.view.TextExportKind())
	case "w":
		return m, m.exportCmd(report.KindSlides)
	case "a":
		return m, m.exportCmd(report.AllKinds...)
	}
	return m, nil
}

func (m *Model) toggleMode() {
	next := domain.InputModeProduct
	if m.view.Input.InputMode == domain.InputModeProduct {
		next = domain.InputModeUser
	}
	m.view.SetMode(next)
	m.items = buildItems(next)
	m.cursor = 0
}

func (m *Model) startTyping(field domain.InputField) {
	m.draft = m.view.Input.Get(field)
	m.state = stateTyping
}

func (m *Model) advance() {
	if m.cursor < m.submitIdx() {
		m.cursor++
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	input, err := m.view.BeginSubmit()
	if err != nil {
		return m, nil
	}
	m.status = ""
	m.logger.Debug("Submitting persona input", zap.String("mode", string(input.InputMode)))
	return m, generateCmd(m.ctx, m.generator, input)
}

func generateCmd(ctx context.Context, gen session.Generator, input domain.PersonaInput) tea.Cmd {
	return func() tea.Msg {
		record, meta, err := gen.GenerateFromInput(ctx, input)
		return generatedMsg{record: record, meta: meta, err: err}
	}
}

func (m Model) exportCmd(kinds ...report.Kind) tea.Cmd {
	record := m.view.Result
	if record == nil {
		return nil
	}
	ctx, dir := m.ctx, m.exportDir
	return func() tea.Msg {
		paths, err := report.WriteAll(ctx, dir, record, kinds...)
		return exportedMsg{paths: paths, err: err}
	}
}

func optionIndex(options []domain.SelectOption, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return 0
}

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
