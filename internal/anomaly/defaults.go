package anomaly

// defaultDefinitions is the store's anomaly list.
var defaultDefinitions = []Definition{
	// Tier 1: 即死・空間変化
	{ID: "S01", Tier: TierLethal, Description: "Shelf Man (擬態)"},
	{ID: "S02", Tier: TierLethal, Description: "Shelf Man (徘徊)"},
	{ID: "S03", Tier: TierLethal, Description: "逆流トイレ"},
	{ID: "S04", Tier: TierLethal, Description: "地下への階段"},
	{ID: "S05", Tier: TierLethal, Description: "突然のT字路"},
	{ID: "S06", Tier: TierLethal, Description: "ブラックアウト"},
	// Tier 2: ホラー・精神的恐怖
	{ID: "H01", Tier: TierHorror, Description: "視線"},
	{ID: "H02", Tier: TierHorror, Description: "監視カメラ"},
	{ID: "H03", Tier: TierHorror, Description: "増殖する店員"},
	{ID: "H04", Tier: TierHorror, Description: "手招き"},
	{ID: "H05", Tier: TierHorror, Description: "高速チャイム"},
	{ID: "H06", Tier: TierHorror, Description: "ポスターの顔"},
	// Tier 3: 違和感・環境変化
	{ID: "E01", Tier: TierEnvironmental, Description: "商品裏返し"},
	{ID: "E02", Tier: TierEnvironmental, Description: "巨大化"},
	{ID: "E03", Tier: TierEnvironmental, Description: "異常な値札"},
	{ID: "E04", Tier: TierEnvironmental, Description: "無限の奥行き"},
	{ID: "E05", Tier: TierEnvironmental, Description: "コピー商品"},
	{ID: "E06", Tier: TierEnvironmental, Description: "水浸し"},
	{ID: "E07", Tier: TierEnvironmental, Description: "異臭（緑の霧）"},
	{ID: "E08", Tier: TierEnvironmental, Description: "照明点滅"},
	{ID: "E09", Tier: TierEnvironmental, Description: "ポップ消失"},
	{ID: "E10", Tier: TierEnvironmental, Description: "赤い床"},
	{ID: "E11", Tier: TierEnvironmental, Description: "位置ズレ"},
	{ID: "E12", Tier: TierEnvironmental, Description: "完全無音"},
	{ID: "E13", Tier: TierEnvironmental, Description: "ロゴ変化"},
	{ID: "E14", Tier: TierEnvironmental, Description: "鏡なし"},
	{ID: "E15", Tier: TierEnvironmental, Description: "空調強風"},
	// Tier 4: ストーリー伏線
	{ID: "M01", Tier: TierStory, Description: "Endlessレシート"},
	{ID: "M02", Tier: TierStory, Description: "時計逆回転"},
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() Catalog {
	c, err := NewCatalog(defaultDefinitions...)
	if err != nil {
		panic(err) // static data
	}
	return c
}
