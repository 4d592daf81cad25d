package session

import (
	"context"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/internal/report"
	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

// Generator is the generation call as seen by the view.
type Generator interface {
	GenerateFromInput(ctx context.Context, input domain.PersonaInput) (*domain.PersonaRecord, *domain.GenerateMetadata, error)
}

// Tab is the active report projection.
type Tab string

const (
	TabSimple   Tab = "simple"
	TabDetailed Tab = "detailed"
	TabSlides   Tab = "slides"
)

var Tabs = []Tab{TabSimple, TabDetailed, TabSlides}

// View owns the state of one interactive session. It is not safe for
// concurrent use; callers mutate it from a single goroutine.
type View struct {
	Input   domain.PersonaInput
	Result  *domain.PersonaRecord
	Meta    *domain.GenerateMetadata
	Loading bool
	Err     string
	Tab     Tab
	Deck    report.Deck
}

func NewView() *View {
	return &View{
		Input: domain.NewPersonaInput(),
		Tab:   TabSimple,
	}
}

func (v *View) SetMode(mode domain.InputMode) {
	v.Input.SetMode(mode)
}

func (v *View) SetField(field domain.InputField, value string) {
	v.Input.Set(field, value)
}

// CanSubmit is false while a generation is in flight.
func (v *View) CanSubmit() bool {
	return !v.Loading && v.Input.CanSubmit()
}

// BeginSubmit validates the input, enters the loading state and clears the
// previous result and error. It returns the input snapshot to generate from.
func (v *View) BeginSubmit() (domain.PersonaInput, error) {
	if v.Loading {
		return domain.PersonaInput{}, errors.NewBusyError("view")
	}
	if err := v.Input.Validate(); err != nil {
		v.Err = errors.UserMessage(err)
		return domain.PersonaInput{}, err
	}

	v.Loading = true
	v.Result = nil
	v.Meta = nil
	v.Err = ""
	return v.Input, nil
}

// Complete leaves the loading state with either a record or an error.
// A failed generation never leaves a partial persona behind.
func (v *View) Complete(record *domain.PersonaRecord, meta *domain.GenerateMetadata, err error) {
	v.Loading = false
	if err != nil {
		v.Result = nil
		v.Meta = nil
		v.Err = errors.UserMessage(err)
		return
	}
	v.Result = record
	v.Meta = meta
	v.Err = ""
	v.Tab = TabSimple
	v.Deck.Reset()
}

// Submit runs BeginSubmit, the generation and Complete synchronously.
func (v *View) Submit(ctx context.Context, gen Generator) error {
	input, err := v.BeginSubmit()
	if err != nil {
		return err
	}
	record, meta, err := gen.GenerateFromInput(ctx, input)
	v.Complete(record, meta, err)
	return err
}

func (v *View) HasResult() bool {
	return v.Result != nil
}

func (v *View) SetTab(tab Tab) {
	for _, t := range Tabs {
		if t == tab {
			v.Tab = tab
			return
		}
	}
}

// CycleTab moves to the next tab, wrapping around.
func (v *View) CycleTab() {
	for i, t := range Tabs {
		if t == v.Tab {
			v.Tab = Tabs[(i+1)%len(Tabs)]
			return
		}
	}
	v.Tab = TabSimple
}

func (v *View) NextSlide() int { return v.Deck.Next() }

func (v *View) PrevSlide() int { return v.Deck.Prev() }

// ReportText is the text shown for the active tab. The slides tab shows
// the detailed report, matching its text download.
func (v *View) ReportText() string {
	if v.Result == nil {
		return ""
	}
	if v.Tab == TabSimple {
		return report.Summary(v.Result)
	}
	return report.Detailed(v.Result)
}

// TextExportKind is the text artifact downloaded from the active tab.
func (v *View) TextExportKind() report.Kind {
	if v.Tab == TabSimple {
		return report.KindSimple
	}
	return report.KindDetailed
}
