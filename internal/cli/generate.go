package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/internal/report"
	"github.com/kapu/pachinko-persona-lab/internal/service/ai"
	"github.com/kapu/pachinko-persona-lab/internal/session"
)

type generateFlags struct {
	mode     string
	basic    string
	time     string
	budget   string
	hall     string
	literacy string
	reward   string
	concept  string
	note     string

	out     string
	kinds   []string
	noSave  bool
	format  string
	jsonOut bool
}

func newGenerateCmd(opts []ai.GeneratorOption) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one persona and write the report files",
		Example: `  personalab generate --basic "30-40代 男性会社員" --time "平日夜 (19:00〜)" \
    --budget "お小遣い制 (月3万)" --hall "駅近・通勤経路" --literacy "効率・タイパ勢" --reward "金銭的爆発・脳汁"
  personalab generate --mode product --concept "大当り確率1/319、RUSH継続率81%の王道バトルスペック"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &f, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.mode, "mode", "m", string(domain.InputModeUser), "Input mode: user or product")
	flags.StringVar(&f.basic, "basic", "", "Basic attributes")
	flags.StringVar(&f.time, "time", "", "Play time")
	flags.StringVar(&f.budget, "budget", "", "Budget")
	flags.StringVar(&f.hall, "hall", "", "Hall selection")
	flags.StringVar(&f.literacy, "literacy", "", "Literacy / play style")
	flags.StringVar(&f.reward, "reward", "", "Desired reward")
	flags.StringVarP(&f.concept, "concept", "c", "", "Product concept (product mode)")
	flags.StringVarP(&f.note, "note", "n", "", "Additional notes")
	flags.StringVarP(&f.out, "out", "o", "", "Export directory (default EXPORT_DIR)")
	flags.StringSliceVarP(&f.kinds, "kinds", "k", []string{"simple", "detailed", "slides"}, "Artifacts to write: simple, detailed, slides")
	flags.BoolVar(&f.noSave, "no-save", false, "Do not write any files")
	flags.StringVarP(&f.format, "print", "p", "simple", "Report printed to stdout: simple, detailed or none")
	flags.BoolVar(&f.jsonOut, "json", false, "Print the persona record as JSON instead of a report")
	return cmd
}

func (f *generateFlags) input() domain.PersonaInput {
	input := domain.NewPersonaInput()
	input.SetMode(domain.NormalizeInputMode(f.mode))
	input.Set(domain.FieldBasicAttributes, f.basic)
	input.Set(domain.FieldTime, f.time)
	input.Set(domain.FieldBudget, f.budget)
	input.Set(domain.FieldHall, f.hall)
	input.Set(domain.FieldLiteracy, f.literacy)
	input.Set(domain.FieldReward, f.reward)
	input.Set(domain.FieldProductConcept, f.concept)
	input.Set(domain.FieldCustomNote, f.note)
	return input
}

func runGenerate(cmd *cobra.Command, f *generateFlags, opts []ai.GeneratorOption) error {
	var kinds []report.Kind
	if !f.noSave {
		for _, raw := range f.kinds {
			kind, err := report.ParseKind(raw)
			if err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}
	}
	switch f.format {
	case "simple", "detailed", "none":
	default:
		return fmt.Errorf("invalid --print %q: must be simple, detailed or none", f.format)
	}

	view := session.NewView()
	view.Input = f.input()
	if !view.Input.InputMode.Valid() {
		return fmt.Errorf("invalid --mode %q: must be user or product", f.mode)
	}
	if err := view.Input.Validate(); err != nil {
		return err
	}

	container, cleanup, err := bootstrap(cmd.Context(), logStderr, cmd.ErrOrStderr(), opts)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := view.Submit(cmd.Context(), container.Generator); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case f.jsonOut:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(view.Result); err != nil {
			return fmt.Errorf("encode persona: %w", err)
		}
	case f.format == "simple":
		fmt.Fprintln(out, report.Summary(view.Result))
	case f.format == "detailed":
		fmt.Fprint(out, report.Detailed(view.Result))
	}

	if len(kinds) == 0 {
		return nil
	}

	dir := f.out
	if dir == "" {
		dir = container.Config.Export.Dir
	}
	paths, err := report.WriteAll(cmd.Context(), dir, view.Result, kinds...)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved: %s\n", path)
	}
	container.Logger.Debug("Artifacts written",
		zap.String("request_id", view.Meta.RequestID),
		zap.Int("count", len(paths)),
	)
	return nil
}
