package report

import (
	"fmt"
	"strings"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
)

const (
	bullet      = "・"
	sectionRule = "--------------------------------------"
	lifeListSep = ", "
	keywordSep  = " "
	keywordMark = "#"
)

// Detailed renders the long four-section plain-text report.
func Detailed(p *domain.PersonaRecord) string {
	var sb strings.Builder

	sb.WriteString("1. 【ヘッダー】キャッチコピーと象徴的なビジュアル\n")
	sb.WriteString(fmt.Sprintf("ネーミング: 「%s」\n", p.Name))
	sb.WriteString(fmt.Sprintf("キャッチフレーズ: 「%s」\n", p.Catchphrase))
	sb.WriteString(fmt.Sprintf("キーワードタグ: %s\n\n", strings.Join(Tags(p.Keywords), keywordSep)))

	play := p.Attributes.PlayStyle
	sb.WriteString("2. 【左側】デモグラ・ライフスタイル（基本データ）\n")
	sb.WriteString(fmt.Sprintf("基本属性: %s\n", p.Attributes.Basic))
	sb.WriteString("稼働スタイル:\n")
	sb.WriteString(fmt.Sprintf("%s時間帯: %s\n", bullet, play.Time))
	sb.WriteString(fmt.Sprintf("%s予算: %s\n", bullet, play.Budget))
	sb.WriteString(fmt.Sprintf("%sホール選び: %s\n", bullet, play.Hall))
	sb.WriteString(fmt.Sprintf("%sリテラシー: %s\n\n", bullet, play.Literacy))

	sb.WriteString("【背景分析・プライベート】\n")
	sb.WriteString(fmt.Sprintf("%sルーティン: %s\n", bullet, p.PrivateLife.DailyRoutine))
	sb.WriteString(fmt.Sprintf("%s趣味: %s\n", bullet, strings.Join(p.PrivateLife.Hobbies, lifeListSep)))
	sb.WriteString(fmt.Sprintf("%sストレス要因: %s\n", bullet, strings.Join(p.PrivateLife.Stressors, lifeListSep)))
	sb.WriteString(sectionRule + "\n")
	sb.WriteString("背景分析サマリ:\n")
	sb.WriteString(p.BackgroundAnalysis + "\n\n")

	sb.WriteString("3. 【右側】スペック・演出・開発指針\n")
	sb.WriteString("[求めるスペック]\n")
	sb.WriteString(fmt.Sprintf("概要: %s\n", p.Specs.Summary))
	sb.WriteString("詳細:\n")
	sb.WriteString(bulletLines(p.Specs.Details))
	sb.WriteString("💡潜在的需要 (Deep Insight):\n")
	sb.WriteString(p.Specs.LatentNeed + "\n\n")

	sb.WriteString("[演出嗜好]\n")
	sb.WriteString(fmt.Sprintf("概要: %s\n", p.Enshutsu.Style))
	sb.WriteString("行動:\n")
	sb.WriteString(bulletLines(p.Enshutsu.Behaviors))
	sb.WriteString("🧠心理的洞察 (Psychological Insight):\n")
	sb.WriteString(p.Enshutsu.PsychologicalInsight + "\n\n")

	sb.WriteString("4. 【開発者への提言】\n")
	sb.WriteString("[DO - 実装すべき]\n")
	sb.WriteString(bulletLines(p.DeveloperAdvice.Dos))
	sb.WriteString("\n")
	sb.WriteString("[DON'T - 避けるべき]\n")
	sb.WriteString(bulletLines(p.DeveloperAdvice.Donts))

	return sb.String()
}

// bulletLines writes one "・item" line per entry. An empty list still
// yields the blank line that terminates the block.
func bulletLines(items []string) string {
	if len(items) == 0 {
		return "\n"
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(bullet)
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Tags prefixes each keyword with a single "#".
func Tags(keywords []string) []string {
	tags := make([]string, 0, len(keywords))
	for _, k := range keywords {
		tags = append(tags, keywordMark+strings.TrimLeft(strings.TrimSpace(k), keywordMark))
	}
	return tags
}
