package ai

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/internal/constants"
	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/internal/prompt"
	"github.com/kapu/pachinko-persona-lab/internal/util"
	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

const (
	msgMissingKey    = "API Key is missing. Please check your environment."
	msgEmptyResponse = "No response generated from AI."
	msgInvalidJSON   = "AI response is not valid JSON."
	msgShapeMismatch = "AI response does not match the persona schema."
)

// GeneratorConfig selects the provider and model.
type GeneratorConfig struct {
	Provider string
	Model    string
}

// PersonaGenerator performs one structured-output call per request.
// The API key is looked up on every call, never cached.
type PersonaGenerator struct {
	provider string
	model    string
	lookup   func(string) (string, bool)
	factory  ProviderFactory
	builder  *prompt.PromptBuilder
	logger   *zap.Logger
}

type GeneratorOption func(*PersonaGenerator)

// WithKeyLookup replaces os.LookupEnv for credential lookup.
func WithKeyLookup(lookup func(string) (string, bool)) GeneratorOption {
	return func(g *PersonaGenerator) {
		g.lookup = lookup
	}
}

// WithProviderFactory replaces NewProvider.
func WithProviderFactory(factory ProviderFactory) GeneratorOption {
	return func(g *PersonaGenerator) {
		g.factory = factory
	}
}

func NewPersonaGenerator(cfg GeneratorConfig, logger *zap.Logger, opts ...GeneratorOption) *PersonaGenerator {
	provider := util.Normalize(cfg.Provider)
	if provider == "" {
		provider = constants.GenerationConfig.DefaultProvider
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel(provider)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &PersonaGenerator{
		provider: provider,
		model:    model,
		lookup:   os.LookupEnv,
		factory:  NewProvider,
		builder:  prompt.DefaultPromptBuilder(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *PersonaGenerator) Provider() string { return g.provider }

func (g *PersonaGenerator) Model() string { return g.model }

// GenerateFromInput builds the prompt for input and generates.
func (g *PersonaGenerator) GenerateFromInput(ctx context.Context, input domain.PersonaInput) (*domain.PersonaRecord, *domain.GenerateMetadata, error) {
	p, err := g.builder.Build(input)
	if err != nil {
		return nil, nil, err
	}
	return g.Generate(ctx, p)
}

// Generate sends p to the configured provider once and decodes the answer.
func (g *PersonaGenerator) Generate(ctx context.Context, p prompt.Prompt) (*domain.PersonaRecord, *domain.GenerateMetadata, error) {
	requestID := uuid.NewString()
	logger := g.logger.With(
		zap.String("request_id", requestID),
		zap.String("provider", g.provider),
		zap.String("model", g.model),
		zap.String("mode", string(p.Mode)),
	)

	apiKey := g.apiKey()
	if apiKey == "" {
		logger.Warn("Generation rejected: API key missing")
		return nil, nil, errors.NewConfigError(msgMissingKey, map[string]any{
			"provider": g.provider,
		})
	}

	provider, err := g.factory(ctx, g.provider, apiKey, g.model, logger)
	if err != nil {
		logger.Error("Failed to create provider", zap.Error(err))
		return nil, nil, errors.NewConfigError(err.Error(), map[string]any{
			"provider": g.provider,
		})
	}

	schema := p.Schema
	if schema == nil {
		schema = prompt.PersonaSchema()
	}

	logger.Info("Generating persona", zap.Int("prompt_length", len(p.Text)))

	result, err := provider.Generate(ctx, p.Text, PresetPersona, &GenerateOptions{
		Model:  g.model,
		Schema: schema,
	})
	if err != nil {
		logger.Error("Persona generation failed", zap.Error(err))
		return nil, nil, errors.NewServiceError("AI service request failed", provider.Name(), g.model, err)
	}

	record, err := decodePersona(result.Text, schema)
	if err != nil {
		var decErr *errors.DecodeError
		preview := ""
		if stderrors.As(err, &decErr) {
			preview = decErr.Preview
		}
		logger.Error("Failed to decode persona response",
			zap.Error(err),
			zap.String("response_preview", preview),
		)
		return nil, nil, err
	}

	model := result.Model
	if model == "" {
		model = g.model
	}
	meta := &domain.GenerateMetadata{
		RequestID: requestID,
		Provider:  provider.Name(),
		Model:     model,
	}

	logger.Info("Persona generated", zap.String("name", record.Name), zap.Int("length", len(result.Text)))
	return record, meta, nil
}

func (g *PersonaGenerator) apiKey() string {
	candidates := []string{constants.CredentialEnv.Shared}
	switch g.provider {
	case ProviderGemini:
		candidates = append(candidates, constants.CredentialEnv.Gemini)
	case ProviderOpenAI:
		candidates = append(candidates, constants.CredentialEnv.OpenAI)
	}
	for _, name := range candidates {
		if value, ok := g.lookup(name); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// decodePersona strips optional code fences, checks the shape against
// schema and decodes into a PersonaRecord.
func decodePersona(text string, schema *prompt.Schema) (*domain.PersonaRecord, error) {
	cleaned := stripCodeFence(text)
	if cleaned == "" {
		return nil, errors.NewDecodeError(msgEmptyResponse, "", nil)
	}
	preview := util.TruncateString(cleaned, constants.AIInputLimits.PreviewLength)

	var raw any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, errors.NewDecodeError(msgInvalidJSON, preview, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, errors.NewDecodeError(msgShapeMismatch, preview, err)
	}

	var record domain.PersonaRecord
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		return nil, errors.NewDecodeError(msgInvalidJSON, preview, err)
	}
	return &record, nil
}

func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}
