package ai

import (
	"context"
	stderrors "errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

const personaJSON = `{
  "name": "タイパ至上主義サラリーマン",
  "catchphrase": "残業明けの30分で、脳を焼け。",
  "visualImage": "スーツ姿でスマホを片手に台を見つめるシルエット",
  "keywords": ["#タイパ", "#脳汁", "#先バレ"],
  "attributes": {
    "basic": "34歳 男性 会社員 独身",
    "playStyle": {"time": "平日19時以降", "budget": "月3万", "hall": "駅近", "literacy": "先バレ待ち"}
  },
  "privateLife": {"dailyRoutine": "07:00 起床 -> 19:30 ホール", "hobbies": ["サウナ", "YouTube"], "stressors": ["上司"]},
  "backgroundAnalysis": "時間がないからこそ濃度を求める。",
  "specs": {"summary": "短時間勝負", "details": ["ラッキートリガー", "右打ち高速消化"], "latentNeed": "時間の支配"},
  "enshutsu": {"style": "先バレ", "behaviors": ["通常時はスマホ"], "psychologicalInsight": "落胆の回避"},
  "developerAdvice": {"dos": ["先バレ搭載"], "donts": ["長尺リーチ"]}
}`

type fakeProvider struct {
	text    string
	err     error
	prompts []string
	opts    []*GenerateOptions
	presets []ModelPreset
}

func (f *fakeProvider) Name() string { return "Fake" }

func (f *fakeProvider) Generate(_ context.Context, prompt string, preset ModelPreset, opts *GenerateOptions) (ProviderResult, error) {
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	f.presets = append(f.presets, preset)
	if f.err != nil {
		return ProviderResult{}, f.err
	}
	return ProviderResult{Text: f.text, Model: opts.Model}, nil
}

type factoryRecorder struct {
	provider *fakeProvider
	calls    int
	keys     []string
}

func (r *factoryRecorder) factory(_ context.Context, _ string, apiKey, _ string, _ *zap.Logger) (JSONProvider, error) {
	r.calls++
	r.keys = append(r.keys, apiKey)
	return r.provider, nil
}

func envOf(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func exampleInput() domain.PersonaInput {
	return domain.PersonaInput{
		InputMode:       domain.InputModeUser,
		BasicAttributes: "30代男性会社員",
		Time:            "平日夜",
		Budget:          "お小遣い制",
		Hall:            "駅近",
		Literacy:        "タイパ勢",
		Reward:          "脳汁",
	}
}

func newTestGenerator(rec *factoryRecorder, env map[string]string) *PersonaGenerator {
	return NewPersonaGenerator(GeneratorConfig{}, zap.NewNop(),
		WithKeyLookup(envOf(env)),
		WithProviderFactory(rec.factory),
	)
}

func TestGenerateFromInputExampleScenario(t *testing.T) {
	rec := &factoryRecorder{provider: &fakeProvider{text: personaJSON}}
	gen := newTestGenerator(rec, map[string]string{"API_KEY": "test-key"})

	input := exampleInput()
	if !input.CanSubmit() {
		t.Fatalf("example input must be submittable")
	}

	record, meta, err := gen.GenerateFromInput(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record == nil || record.Name != "タイパ至上主義サラリーマン" {
		t.Fatalf("unexpected record %+v", record)
	}
	if len(record.Specs.Details) != 2 || record.Attributes.PlayStyle.Budget != "月3万" {
		t.Fatalf("nested fields not decoded: %+v", record)
	}
	if meta == nil || meta.RequestID == "" || meta.Provider != "Fake" || meta.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected metadata %+v", meta)
	}

	fp := rec.provider
	if len(fp.prompts) != 1 {
		t.Fatalf("expected exactly one provider call, got %d", len(fp.prompts))
	}
	if fp.presets[0] != PresetPersona || fp.opts[0].Schema == nil {
		t.Fatalf("expected persona preset with schema")
	}
	if rec.keys[0] != "test-key" {
		t.Fatalf("expected API_KEY to be used, got %q", rec.keys[0])
	}
}

func TestGenerateMissingKeyFailsBeforeProvider(t *testing.T) {
	rec := &factoryRecorder{provider: &fakeProvider{text: personaJSON}}
	gen := newTestGenerator(rec, map[string]string{"API_KEY": "   "})

	record, _, err := gen.GenerateFromInput(context.Background(), exampleInput())
	if record != nil {
		t.Fatalf("expected no record")
	}

	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Fatalf("expected config error, got %T (%v)", err, err)
	}
	var svcErr *errors.ServiceError
	if stderrors.As(err, &svcErr) {
		t.Fatalf("config error must be distinguishable from service error")
	}
	if err.Error() != "API Key is missing. Please check your environment." {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if rec.calls != 0 {
		t.Fatalf("provider must not be created without a key")
	}
}

func TestGenerateReadsKeyAtCallTime(t *testing.T) {
	env := map[string]string{}
	rec := &factoryRecorder{provider: &fakeProvider{text: personaJSON}}
	gen := newTestGenerator(rec, env)

	if _, _, err := gen.GenerateFromInput(context.Background(), exampleInput()); err == nil {
		t.Fatalf("expected missing key error")
	}

	env["GEMINI_API_KEY"] = "late-key"
	if _, _, err := gen.GenerateFromInput(context.Background(), exampleInput()); err != nil {
		t.Fatalf("expected success once key is set: %v", err)
	}
	if rec.keys[0] != "late-key" {
		t.Fatalf("expected provider key fallback, got %q", rec.keys[0])
	}
}

func TestGenerateOpenAIKeyLookup(t *testing.T) {
	rec := &factoryRecorder{provider: &fakeProvider{text: personaJSON}}
	gen := NewPersonaGenerator(GeneratorConfig{Provider: "OpenAI"}, zap.NewNop(),
		WithKeyLookup(envOf(map[string]string{"GEMINI_API_KEY": "g", "OPENAI_API_KEY": "o"})),
		WithProviderFactory(rec.factory),
	)
	if gen.Model() != "gpt-4o-mini" {
		t.Fatalf("unexpected default model %q", gen.Model())
	}
	if _, _, err := gen.GenerateFromInput(context.Background(), exampleInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.keys[0] != "o" {
		t.Fatalf("expected OpenAI key, got %q", rec.keys[0])
	}
}

func TestGenerateServiceError(t *testing.T) {
	rec := &factoryRecorder{provider: &fakeProvider{err: stderrors.New("429 quota exceeded")}}
	gen := newTestGenerator(rec, map[string]string{"API_KEY": "k"})

	_, _, err := gen.GenerateFromInput(context.Background(), exampleInput())
	var svcErr *errors.ServiceError
	if !stderrors.As(err, &svcErr) {
		t.Fatalf("expected service error, got %T (%v)", err, err)
	}
	if errors.UserMessage(err) == "" {
		t.Fatalf("expected a user facing message")
	}
	if len(rec.provider.prompts) != 1 {
		t.Fatalf("expected a single attempt, got %d", len(rec.provider.prompts))
	}
}

func TestGenerateDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"empty":       "   ",
		"not json":    "ペルソナを生成できませんでした",
		"truncated":   personaJSON[:120],
		"wrong shape": `{"name": "x"}`,
	}

	for name, body := range cases {
		rec := &factoryRecorder{provider: &fakeProvider{text: body}}
		gen := newTestGenerator(rec, map[string]string{"API_KEY": "k"})

		record, meta, err := gen.GenerateFromInput(context.Background(), exampleInput())
		if record != nil || meta != nil {
			t.Fatalf("%s: no partial result expected", name)
		}
		var decErr *errors.DecodeError
		if !stderrors.As(err, &decErr) {
			t.Fatalf("%s: expected decode error, got %T (%v)", name, err, err)
		}
		if errors.UserMessage(err) == "" {
			t.Fatalf("%s: expected non-empty message", name)
		}
	}
}

func TestGenerateAcceptsFencedJSON(t *testing.T) {
	rec := &factoryRecorder{provider: &fakeProvider{text: "```json\n" + personaJSON + "\n```"}}
	gen := newTestGenerator(rec, map[string]string{"API_KEY": "k"})

	record, _, err := gen.GenerateFromInput(context.Background(), exampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(record.Keywords) != 3 {
		t.Fatalf("unexpected keywords %v", record.Keywords)
	}
}

func TestGenerateUnknownModeIsConfigError(t *testing.T) {
	rec := &factoryRecorder{provider: &fakeProvider{text: personaJSON}}
	gen := newTestGenerator(rec, map[string]string{"API_KEY": "k"})

	input := exampleInput()
	input.InputMode = "other"
	_, _, err := gen.GenerateFromInput(context.Background(), input)
	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Fatalf("expected config error, got %T", err)
	}
	if rec.calls != 0 {
		t.Fatalf("provider must not be created for an unknown mode")
	}
}
