package ai

import (
	"github.com/kapu/pachinko-persona-lab/internal/constants"
	"github.com/kapu/pachinko-persona-lab/internal/prompt"
)

// ModelPreset represents the model usage preset
type ModelPreset string

const (
	PresetPersona ModelPreset = "persona" // 페르소나 생성 (고정 temperature)
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ModelConfig holds model configuration
type ModelConfig struct {
	Temperature      float32
	ResponseMimeType string
}

// GenerateOptions holds options for one provider call
type GenerateOptions struct {
	Model  string
	Schema *prompt.Schema
}

// ProviderResult is the raw text answered by a provider.
type ProviderResult struct {
	Text  string
	Model string
}

// GetPresetConfig returns the configuration for a preset
func GetPresetConfig(preset ModelPreset) ModelConfig {
	switch preset {
	case PresetPersona:
		return ModelConfig{
			Temperature:      constants.GenerationConfig.Temperature,
			ResponseMimeType: constants.GenerationConfig.ResponseMIMEType,
		}
	default:
		return GetPresetConfig(PresetPersona)
	}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return constants.GenerationConfig.OpenAIDefaultModel
	}
	return constants.GenerationConfig.GeminiDefaultModel
}
