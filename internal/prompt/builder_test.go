package prompt

import (
	stderrors "errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

func sampleUserInput() domain.PersonaInput {
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

func TestBuildUserModeIncludesProfileFields(t *testing.T) {
	p, err := NewPromptBuilder().Build(sampleUserInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"1. Basic Attributes: 30代男性会社員",
		"2. Time Constraints: 平日夜",
		"3. Budget Constraints: お小遣い制",
		"4. Hall Selection Logic: 駅近",
		"5. Game Literacy / Attitude: タイパ勢",
		"6. Core Desire / Reward Source: 脳汁",
		"7. Additional Notes: None",
		"Output Language: Japanese.",
	} {
		if !strings.Contains(p.Text, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p.Text)
		}
	}
	if strings.Contains(p.Text, "Reverse Engineer") {
		t.Fatalf("user prompt must not contain the product instructions")
	}
	if p.Mode != domain.InputModeUser {
		t.Fatalf("expected user mode, got %q", p.Mode)
	}
	if p.Schema != PersonaSchema() {
		t.Fatalf("expected shared persona schema")
	}
}

func TestBuildProductModeUsesConceptAndNote(t *testing.T) {
	in := domain.PersonaInput{
		InputMode:      domain.InputModeProduct,
		ProductConcept: "  ラッキートリガー搭載、右打ち中オール3000発\x00  ",
		CustomNote:     "版権は昭和の特撮",
		Time:           "平日夜",
	}

	p, err := NewPromptBuilder().Build(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(p.Text, `"ラッキートリガー搭載、右打ち中オール3000発"`) {
		t.Fatalf("expected sanitized concept in quotes:\n%s", p.Text)
	}
	if !strings.Contains(p.Text, "Additional Notes: 版権は昭和の特撮") {
		t.Fatalf("expected note in prompt")
	}
	if strings.Contains(p.Text, "Time Constraints") {
		t.Fatalf("product prompt must not list profile fields")
	}
	if p.Schema != PersonaSchema() {
		t.Fatalf("both modes must share the schema")
	}
}

func TestBuildUnknownModeIsConfigError(t *testing.T) {
	in := sampleUserInput()
	in.InputMode = "mixed"

	_, err := Build(in)
	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Fatalf("expected config error, got %T (%v)", err, err)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build(sampleUserInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Build(sampleUserInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Text != b.Text {
		t.Fatalf("expected identical prompts")
	}
}

func TestBuildFallsBackWhenTemplatesMissing(t *testing.T) {
	broken := NewPromptBuilder()
	broken.fs = fstest.MapFS{}

	inputs := []domain.PersonaInput{
		sampleUserInput(),
		{InputMode: domain.InputModeProduct, ProductConcept: "甘デジ、遊タイム付き", CustomNote: "シニア向け"},
	}
	for _, in := range inputs {
		want, err := NewPromptBuilder().Build(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := broken.Build(in)
		if err != nil {
			t.Fatalf("fallback build failed: %v", err)
		}
		if got.Text != want.Text {
			t.Fatalf("fallback prompt differs from template for %s mode:\n--- template\n%s\n--- fallback\n%s", in.InputMode, want.Text, got.Text)
		}
	}
}

func TestBuildClampsLongFields(t *testing.T) {
	in := domain.PersonaInput{
		InputMode:      domain.InputModeProduct,
		ProductConcept: strings.Repeat("連", 5000),
	}
	p, err := Build(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(p.Text, strings.Repeat("連", 4001)) {
		t.Fatalf("concept was not clamped")
	}
	if !strings.Contains(p.Text, strings.Repeat("連", 4000)) {
		t.Fatalf("concept clamped too far")
	}
}
