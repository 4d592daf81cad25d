package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/kapu/pachinko-persona-lab/internal/constants"
	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/internal/util"
	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type TemplateName string

const (
	TemplateUserPersona    TemplateName = "user_persona.tmpl"
	TemplateProductPersona TemplateName = "product_persona.tmpl"
)

// emptyNote is what the model sees when no additional note was given.
const emptyNote = "None"

// Prompt is the instruction text plus the response contract for one call.
type Prompt struct {
	Text   string
	Mode   domain.InputMode
	Schema *Schema
}

type PromptBuilder struct {
	mu        sync.RWMutex
	templates map[TemplateName]*template.Template
	fs        embedFS
}

type embedFS interface {
	ReadFile(name string) ([]byte, error)
}

var (
	defaultBuilderOnce sync.Once
	defaultBuilder     *PromptBuilder
)

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		templates: make(map[TemplateName]*template.Template),
		fs:        templateFS,
	}
}

func DefaultPromptBuilder() *PromptBuilder {
	defaultBuilderOnce.Do(func() {
		defaultBuilder = NewPromptBuilder()
	})
	return defaultBuilder
}

// Build renders the prompt for input with the default builder.
func Build(input domain.PersonaInput) (Prompt, error) {
	return DefaultPromptBuilder().Build(input)
}

// Build branches on the input mode. Rendering failures fall back to the
// compiled-in prompt text; an unknown mode is a configuration error.
func (pb *PromptBuilder) Build(input domain.PersonaInput) (Prompt, error) {
	note := util.SanitizeText(input.CustomNote, constants.AIInputLimits.MaxNoteLength)
	if note == "" {
		note = emptyNote
	}

	var text string
	switch input.InputMode {
	case domain.InputModeProduct:
		data := ProductPersonaData{
			Concept: util.SanitizeText(input.ProductConcept, constants.AIInputLimits.MaxConceptLength),
			Note:    note,
		}
		rendered, err := pb.Render(TemplateProductPersona, data)
		if err != nil {
			rendered = FallbackProductPersonaPrompt(data)
		}
		text = rendered
	case domain.InputModeUser:
		limit := constants.AIInputLimits.MaxFieldLength
		data := UserPersonaData{
			BasicAttributes: util.SanitizeText(input.BasicAttributes, limit),
			Time:            util.SanitizeText(input.Time, limit),
			Budget:          util.SanitizeText(input.Budget, limit),
			Hall:            util.SanitizeText(input.Hall, limit),
			Literacy:        util.SanitizeText(input.Literacy, limit),
			Reward:          util.SanitizeText(input.Reward, limit),
			Note:            note,
		}
		rendered, err := pb.Render(TemplateUserPersona, data)
		if err != nil {
			rendered = FallbackUserPersonaPrompt(data)
		}
		text = rendered
	default:
		return Prompt{}, errors.NewConfigError("unsupported input mode: "+string(input.InputMode), map[string]any{
			"inputMode": string(input.InputMode),
		})
	}

	return Prompt{
		Text:   text,
		Mode:   input.InputMode,
		Schema: PersonaSchema(),
	}, nil
}

func (pb *PromptBuilder) Render(name TemplateName, data any) (string, error) {
	tmpl, err := pb.getTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}

	return buf.String(), nil
}

func (pb *PromptBuilder) getTemplate(name TemplateName) (*template.Template, error) {
	pb.mu.RLock()
	if tmpl, ok := pb.templates[name]; ok {
		pb.mu.RUnlock()
		return tmpl, nil
	}
	pb.mu.RUnlock()

	filename := filepath.ToSlash(filepath.Join("templates", string(name)))
	content, err := pb.fs.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load prompt template %s: %w", name, err)
	}

	tmpl, err := template.New(string(name)).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse prompt template %s: %w", name, err)
	}

	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.templates[name] = tmpl

	return tmpl, nil
}
