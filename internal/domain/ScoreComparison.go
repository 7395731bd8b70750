package domain

// MonthlyScore é a média mensal de percentuais e contagens de um mercado
type MonthlyScore struct {
	Timeframe       string  `json:"timeframe"` // Formato MON'YY (ex: APR'24)
	InfluencerPerc  float64 `json:"influencer_perc"`
	DetractorPerc   float64 `json:"detractor_perc"`
	NeutralPerc     float64 `json:"neutral_perc"`
	InfluencerCount int     `json:"influencer_count"`
	DetractorCount  int     `json:"detractor_count"`
	NeutralCount    int     `json:"neutral_count"`
}

// ScoreDifferences é a diferença de percentuais entre o mês pedido e o mês de comparação
type ScoreDifferences struct {
	Timeframe          string  `json:"timeframe"`
	InfluencerPercDiff float64 `json:"influencer_perc_diff"`
	DetractorPercDiff  float64 `json:"detractor_perc_diff"`
	NeutralPercDiff    float64 `json:"neutral_perc_diff"`
}

type ScoreComparison struct {
	CurrentMonth MonthlyScore      `json:"current_month"`
	Differences  *ScoreDifferences `json:"differences"`
}
