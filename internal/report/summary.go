package report

import (
	"fmt"
	"strings"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
)

const (
	listSeparator = "、"
	doSeparator   = "。"
)

// Summary renders the short plain-text report.
func Summary(p *domain.PersonaRecord) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("【%s】\n", p.Name))
	sb.WriteString(fmt.Sprintf("属性: %s\n\n", p.Attributes.Basic))

	sb.WriteString(fmt.Sprintf("求めるスペック: %s\n", p.Specs.Summary))
	sb.WriteString(fmt.Sprintf("(詳細: %s)\n", strings.Join(p.Specs.Details, listSeparator)))
	sb.WriteString(fmt.Sprintf("💡潜在的需要: %s\n\n", p.Specs.LatentNeed))

	sb.WriteString(fmt.Sprintf("演出嗜好: %s\n", p.Enshutsu.Style))
	sb.WriteString(fmt.Sprintf("(行動: %s)\n", strings.Join(p.Enshutsu.Behaviors, listSeparator)))
	sb.WriteString(fmt.Sprintf("🧠心理的洞察: %s\n\n", p.Enshutsu.PsychologicalInsight))

	sb.WriteString(fmt.Sprintf("開発ヒント: %s\n", strings.Join(p.DeveloperAdvice.Dos, doSeparator)))
	sb.WriteString(fmt.Sprintf("(NG事項: %s)", strings.Join(p.DeveloperAdvice.Donts, listSeparator)))

	return sb.String()
}
