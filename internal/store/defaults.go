package store

import (
	"encoding/json"

	"github.com/eihojp/corpsite/internal/models"
)

// Built-in Japanese copy seeded into the homepage row the first time it is
// created. Admins are expected to replace the placeholder values.

func defaultHeroStats() []models.HeroStat {
	return []models.HeroStat{
		{Value: 2, Suffix: "国間", Label: "日中の調達・販売を一気通貫"},
		{Value: 3, Suffix: "領域", Label: "輸入 / 輸出 / OEM・コンサル"},
		{Value: 100, Suffix: "%", Label: "品質基準に向けた検品体制"},
	}
}

func defaultConceptPoints() []models.ConceptPoint {
	return []models.ConceptPoint{
		{Label: "安心", Body: "検品・規格・品質の可視化"},
		{Label: "快適", Body: "機能性・耐久性・コスパの両立"},
		{Label: "楽しさ", Body: "カーライフを彩るアクセサリー提案"},
	}
}

// DefaultServices is also the fallback for the service detail page when the
// stored list is empty or corrupt.
func DefaultServices() []models.ServiceItem {
	return []models.ServiceItem{
		{
			Title: "輸入事業（Import）",
			Body:  "中国の先進的な製造ネットワークを駆使し、最新のカーアクセサリーや機能パーツをいち早く日本市場へ導入。徹底した検品体制で、コストパフォーマンスと品質を両立させた製品を提供します。",
			Icon:  "box-seam",
		},
		{
			Title: "輸出事業（Export）",
			Body:  "信頼の「Made in Japan」ブランドの自動車用品・メンテナンス用品を中国市場へ展開。現地のニーズを的確に捉えたマーケティングにより、日本の優れた技術を世界へ広めます。",
			Icon:  "truck",
		},
		{
			Title: "コンサル・OEM受託",
			Body:  "日中間の貿易実務だけでなく、市場調査から製品のオリジナル開発（OEM）まで、お客様のビジネス拡大をトータルにサポートいたします。",
			Icon:  "clipboard2-data",
		},
	}
}

func defaultStrengths() []models.StrengthItem {
	return []models.StrengthItem{
		{Title: "独自のネットワーク", Body: "中国現地の工場やサプライヤーと直接提携し、迅速かつ安定した供給ルートを確保。", Icon: "diagram-3-fill"},
		{Title: "厳格な品質管理", Body: "日本の基準に合わせた厳しい品質チェックを、現地と国内の両方で実施。安心して選べる品質を守ります。", Icon: "shield-check"},
		{Title: "柔軟な対応力", Body: "小ロットの輸入から大規模なOEM開発まで、企業規模を問わず柔軟に対応します。", Icon: "arrows-move"},
	}
}

func defaultContactExamples() []string {
	return []string{
		"日本向け：カーアクセサリー／機能パーツの輸入（小ロット〜）",
		"中国向け：Made in Japan用品の輸出・販路開拓",
		"OEM：仕様策定、パッケージ、品質基準、検品設計",
		"貿易実務：通関・輸送手配・納期管理・リスク整理",
	}
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func defaultHome() *models.Home {
	return &models.Home{
		NavBrand:     "EIHO / 衛宝",
		NavTop:       "トップ",
		NavConcept:   "メッセージ",
		NavNews:      "ニュース",
		NavServices:  "事業内容",
		NavStrengths: "強み",
		NavProfile:   "会社概要",
		NavCTA:       "お問合わせ",

		HeroKicker:       "Japan × China | Automotive Trading",
		HeroTitle:        "品質と情熱で、日中のカーライフを繋ぐ架け橋へ",
		HeroSubtitle:     "株式会社衛宝（EIHO Co., Ltd.）は、日本と中国という世界最大級の自動車市場を結ぶ貿易のエキスパートです。\n厳選された高品質な自動車用品の輸入・輸出を通じて、ドライバーの皆様に「安心・快適・楽しさ」をお届けすることを使命としています。",
		HeroPrimaryCTA:   "事業内容を見る",
		HeroSecondaryCTA: "会社概要",
		HeroStatsJSON:    mustJSON(defaultHeroStats()),

		ConceptTitle:      "メッセージ（コンセプト）",
		ConceptSubtitle:   "私たちは「貿易＝運ぶ」だけではなく、「信頼＝つなぐ」ことを重視します。\n現地ネットワークの強みと、日本基準の品質管理を掛け合わせ、安心して選べるカー用品を届け続けます。",
		ConceptPointsJSON: mustJSON(defaultConceptPoints()),
		MissionTitle:      "Mission",
		MissionBody:       "高品質な自動車用品の輸出入を通じて、日中市場の価値循環を加速させます。",
		VisionTitle:       "Vision",
		VisionBody:        "「品質と情熱」で、日中カーライフの架け橋となるグローバル・パートナーへ。",
		ValueTitle:        "Value",

		PresidentLabel:      "President Message",
		PresidentTitle:      "社長メッセージ",
		PresidentRole:       "株式会社 衛宝（EIHO） 代表取締役",
		PresidentPointsJSON: "[]",

		ServicesSectionTitle:     "事業内容（Our Services）",
		ServicesSectionSubtitle:  "輸入・輸出・OEM/コンサルまで、日中ビジネスをトータルに支援します。",
		StrengthsSectionTitle:    "当社の強み（Why Choose Us?）",
		StrengthsSectionSubtitle: "スピード・品質・柔軟性。日中ビジネスに必要な“実務力”で差をつけます。",
		ServicesJSON:             mustJSON(DefaultServices()),
		StrengthsJSON:            mustJSON(defaultStrengths()),

		ProfileTitle:    "会社概要（Company Profile）",
		ProfileSubtitle: "以下はテンプレートです。住所・代表者・設立年月などを差し替えてそのまま使えます。",
		ProfileRowsJSON: "[]",
		CompanyName:     "株式会社 衛宝（EIHO Co., Ltd.）",
		Address:         "〒000-0000 [都道府県・住所を入力]",
		Representative:  "[代表者名を入力]",
		Established:     "[設立年・月を入力]",
		BusinessDesc:    "自動車関連部品および自動車用品、カーアクセサリーの輸出入及び販売\n卸売\nコンサルティング・OEM受託（市場調査／製品開発支援）",
		Clients:         "日本国内のカーショップ、中国国内の製造メーカー、各商社",

		CTATitle:             "日中貿易・OEMのご相談はこちら",
		CTASubtitle:          "小ロットのテスト導入から量産・仕様調整まで。まずは要件だけでもお聞かせください。",
		CTAButtonText:        "メールで問い合わせ",
		CTAPhoneText:         "または：03-0000-0000（平日 9:00–18:00）",
		ContactFormTitle:     "お問い合わせフォーム（ダミー）",
		ContactFormNote:      "※このフォームはデモです（送信は行いません）。実運用ではバックエンド（例：Node/PHP/Django等）に接続してください。",
		ContactExamplesTitle: "対応可能なご相談例",
		ContactExamplesJSON:  mustJSON(defaultContactExamples()),
		AccessTitle:          "アクセス",
		AccessAddress:        "〒000-0000 [都道府県・住所を入力]",

		FooterCopyright:    "EIHO Co., Ltd. All rights reserved.",
		FooterLinkTop:      "TOP",
		FooterLinkServices: "Services",
		FooterLinkProfile:  "Profile",
	}
}
