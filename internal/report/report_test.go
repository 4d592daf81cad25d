package report

import (
	"strings"
	"testing"

	"github.com/kapu/pachinko-persona-lab/internal/domain"
)

func samplePersona() *domain.PersonaRecord {
	return &domain.PersonaRecord{
		Name:        "タイパ至上主義 サラリーマン",
		Catchphrase: "残業明けの30分で、脳を焼け。",
		VisualImage: "スーツ姿でスマホを片手に台を見つめるシルエット",
		Keywords:    []string{"#タイパ", "脳汁"},
		Attributes: domain.PersonaAttributes{
			Basic: "34歳 男性 会社員",
			PlayStyle: domain.PlayStyle{
				Time:     "平日19時以降",
				Budget:   "月3万",
				Hall:     "駅近",
				Literacy: "先バレ待ち",
			},
		},
		PrivateLife: domain.PrivateLife{
			DailyRoutine: "07:00 起床 -> 19:30 ホール",
			Hobbies:      []string{"サウナ", "YouTube"},
			Stressors:    []string{"上司", "孤独"},
		},
		BackgroundAnalysis: "時間がないからこそ濃度を求める。",
		Specs: domain.SpecPreference{
			Summary:    "短時間勝負",
			Details:    []string{"ラッキートリガー", "右打ち高速消化"},
			LatentNeed: "時間の支配",
		},
		Enshutsu: domain.EnshutsuProfile{
			Style:                "先バレ重視",
			Behaviors:            []string{"通常時はスマホ", "リーチはスキップ"},
			PsychologicalInsight: "落胆の回避",
		},
		DeveloperAdvice: domain.DeveloperAdvice{
			Dos:   []string{"先バレ搭載", "時短告知"},
			Donts: []string{"長尺リーチ"},
		},
	}
}

func TestSummary(t *testing.T) {
	want := `【タイパ至上主義 サラリーマン】
属性: 34歳 男性 会社員

求めるスペック: 短時間勝負
(詳細: ラッキートリガー、右打ち高速消化)
💡潜在的需要: 時間の支配

演出嗜好: 先バレ重視
(行動: 通常時はスマホ、リーチはスキップ)
🧠心理的洞察: 落胆の回避

開発ヒント: 先バレ搭載。時短告知
(NG事項: 長尺リーチ)`

	if got := Summary(samplePersona()); got != want {
		t.Fatalf("unexpected summary:\n%s\n--- want\n%s", got, want)
	}
}

func TestDetailed(t *testing.T) {
	want := `1. 【ヘッダー】キャッチコピーと象徴的なビジュアル
ネーミング: 「タイパ至上主義 サラリーマン」
キャッチフレーズ: 「残業明けの30分で、脳を焼け。」
キーワードタグ: #タイパ #脳汁

2. 【左側】デモグラ・ライフスタイル（基本データ）
基本属性: 34歳 男性 会社員
稼働スタイル:
・時間帯: 平日19時以降
・予算: 月3万
・ホール選び: 駅近
・リテラシー: 先バレ待ち

【背景分析・プライベート】
・ルーティン: 07:00 起床 -> 19:30 ホール
・趣味: サウナ, YouTube
・ストレス要因: 上司, 孤独
--------------------------------------
背景分析サマリ:
時間がないからこそ濃度を求める。

3. 【右側】スペック・演出・開発指針
[求めるスペック]
概要: 短時間勝負
詳細:
・ラッキートリガー
・右打ち高速消化
💡潜在的需要 (Deep Insight):
時間の支配

[演出嗜好]
概要: 先バレ重視
行動:
・通常時はスマホ
・リーチはスキップ
🧠心理的洞察 (Psychological Insight):
落胆の回避

4. 【開発者への提言】
[DO - 実装すべき]
・先バレ搭載
・時短告知

[DON'T - 避けるべき]
・長尺リーチ
`

	if got := Detailed(samplePersona()); got != want {
		t.Fatalf("unexpected detailed report:\n%s\n--- want\n%s", got, want)
	}
}

func TestDetailedListsEveryItemOnceInOrder(t *testing.T) {
	p := samplePersona()
	text := Detailed(p)

	lists := [][]string{p.Specs.Details, p.Enshutsu.Behaviors, p.DeveloperAdvice.Dos, p.DeveloperAdvice.Donts}
	last := -1
	for _, list := range lists {
		for _, item := range list {
			line := "\n" + bullet + item + "\n"
			if n := strings.Count(text, line); n != 1 {
				t.Fatalf("expected %q exactly once, found %d", item, n)
			}
			pos := strings.Index(text, line)
			if pos < last {
				t.Fatalf("item %q out of order", item)
			}
			last = pos
		}
	}
}

func TestProjectionsArePure(t *testing.T) {
	p := samplePersona()
	if Summary(p) != Summary(p) {
		t.Fatalf("summary not deterministic")
	}
	if Detailed(p) != Detailed(p) {
		t.Fatalf("detailed not deterministic")
	}
	if p.Keywords[0] != "#タイパ" {
		t.Fatalf("projection mutated the record")
	}
}

func TestEmptyRecordRendersEmptySections(t *testing.T) {
	p := &domain.PersonaRecord{}

	summary := Summary(p)
	if !strings.Contains(summary, "(詳細: )") || !strings.Contains(summary, "(NG事項: )") {
		t.Fatalf("unexpected empty summary:\n%s", summary)
	}

	detailed := Detailed(p)
	if !strings.Contains(detailed, "詳細:\n\n💡潜在的需要") {
		t.Fatalf("expected empty details block:\n%s", detailed)
	}
	if !strings.HasSuffix(detailed, "[DON'T - 避けるべき]\n\n") {
		t.Fatalf("unexpected tail %q", detailed[len(detailed)-40:])
	}
	if strings.Contains(detailed, bullet+"\n") {
		t.Fatalf("empty lists must not produce bare bullets")
	}
}

func TestTags(t *testing.T) {
	got := Tags([]string{"#タイパ", "脳汁", " ##先バレ "})
	want := []string{"#タイパ", "#脳汁", "#先バレ"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
