package domain

// SelectOption is a static catalog entry offered for one profile dimension.
type SelectOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Dimension groups the options of one profile field.
type Dimension struct {
	Field   InputField     `json:"field"`
	Label   string         `json:"label"`
	Options []SelectOption `json:"options"`
}

var BasicAttributeOptions = []SelectOption{
	{Value: "30-40代 男性会社員", Label: "30-40代 男性会社員 (独身)", Description: "可処分所得はあるが、仕事のストレスが多く、時間がない。"},
	{Value: "20代 学生/フリーター", Label: "20代 学生/フリーター", Description: "時間は比較的自由だが、軍資金に限りがある。コスパ重視。"},
	{Value: "シニア層 (年金受給)", Label: "シニア層 (年金受給)", Description: "毎日来店可能。勝ち負けよりコミュニティや安心感を重視。"},
	{Value: "主婦/パート", Label: "主婦/パート", Description: "家事の合間や夕方までの稼働。1パチや甘デジを好む傾向も。"},
	{Value: "高所得・経営者クラス", Label: "高所得・経営者クラス", Description: "金に糸目はつけない。レートや投資額より「面白いか」が全て。"},
}

var TimeOptions = []SelectOption{
	{Value: "平日夜 (19:00〜)", Label: "平日夜 (19:00以降)", Description: "仕事終わりの短時間勝負。時速と瞬発力が命。"},
	{Value: "休日のみ (朝から全ツッパ)", Label: "休日のみ (朝から全ツッパ)", Description: "平日は打てない分、休日は開店から閉店まで粘る気概がある。"},
	{Value: "毎日 (日中メイン)", Label: "毎日 (日中メイン)", Description: "常連客。生活の一部としてルーティン化している。"},
	{Value: "不定期 (隙間時間)", Label: "不定期 (隙間時間)", Description: "待ち合わせ前や買い物ついでなど、1時間以内の遊技。"},
}

var BudgetOptions = []SelectOption{
	{Value: "お小遣い制 (月3万)", Label: "お小遣い制 (月3万)", Description: "負けられない戦い。低投資で当たる台を探す。"},
	{Value: "生活費を削るレベル", Label: "生活費を削るレベル", Description: "ヒリつきを求める。ハイリスク・ハイリターンを辞さない。"},
	{Value: "潤沢 (5万〜/日)", Label: "潤沢 (5万〜/日)", Description: "投資額は気にしない。出るまで突っ込むパワープレイ。"},
	{Value: "勝ち分で回す (堅実)", Label: "勝ち分で回す (堅実)", Description: "持ち玉遊技を徹底し、現金投資を極力嫌う。"},
}

var HallOptions = []SelectOption{
	{Value: "駅近・通勤経路", Label: "駅近・通勤経路", Description: "利便性最優先。スペックより寄りやすさ。"},
	{Value: "特定日・イベント重視", Label: "特定日・イベント重視", Description: "旧イベ日や取材が入る店を調べて遠征する。"},
	{Value: "快適性・設備重視", Label: "快適性・設備重視", Description: "パーソナルシステム、禁煙/分煙、椅子の座り心地などで選ぶ。"},
	{Value: "地元密着・過疎店", Label: "地元密着・過疎店", Description: "人が少なく、まったり打てる店を好む。"},
}

var LiteracyOptions = []SelectOption{
	{Value: "情弱・ライト層 (ポスターで選ぶ)", Label: "情弱・ライト層", Description: "スペック詳細は見ない。版権や雰囲気、ポスターのインパクトで座る。"},
	{Value: "ガチ勢 (期待値・ボーダー)", Label: "ガチ勢 (期待値重視)", Description: "回転率、ボーダーラインを常に意識。無駄玉を嫌う。"},
	{Value: "効率・タイパ勢", Label: "効率・タイパ勢", Description: "通常時はスマホ。先バレ設定で当たりの時だけ画面を見る。"},
	{Value: "オカルト・波読み勢", Label: "オカルト・波読み勢", Description: "グラフの波、好調台、遠隔などを信じて立ち回る。"},
}

var RewardOptions = []SelectOption{
	{Value: "金銭的爆発・脳汁", Label: "金銭的爆発・脳汁", Description: "3000発、高速消化。リスクを背負ってでも圧倒的な出玉速度を求める。"},
	{Value: "承認欲求・ドヤ", Label: "承認欲求・ドヤ", Description: "レア演出、プレミア、リザルト画面をSNSにアップしたい。"},
	{Value: "没入・現実逃避", Label: "没入・現実逃避", Description: "好きな版権の世界に浸りたい。嫌なことを忘れたい。"},
	{Value: "攻略・支配感", Label: "攻略・支配感", Description: "仕組みを理解し、技術介入や知識で台をコントロールした気になりたい。"},
}

// Catalog returns the six profile dimensions in form order.
func Catalog() []Dimension {
	return []Dimension{
		{Field: FieldBasicAttributes, Label: "基本属性", Options: BasicAttributeOptions},
		{Field: FieldTime, Label: "時間帯 (Time)", Options: TimeOptions},
		{Field: FieldBudget, Label: "予算 (Budget)", Options: BudgetOptions},
		{Field: FieldHall, Label: "ホール選び (Hall Selection)", Options: HallOptions},
		{Field: FieldLiteracy, Label: "リテラシー・遊び方 (Literacy)", Options: LiteracyOptions},
		{Field: FieldReward, Label: "求める報酬・欲求 (Desire)", Options: RewardOptions},
	}
}

// DimensionFor returns the catalog entry of field.
func DimensionFor(field InputField) (Dimension, bool) {
	for _, dim := range Catalog() {
		if dim.Field == field {
			return dim, true
		}
	}
	return Dimension{}, false
}

// IsCustomValue reports whether value was typed freely rather than picked
// from the options of field.
func IsCustomValue(field InputField, value string) bool {
	if value == "" {
		return false
	}
	dim, ok := DimensionFor(field)
	if !ok {
		return true
	}
	for _, opt := range dim.Options {
		if opt.Value == value {
			return false
		}
	}
	return true
}
