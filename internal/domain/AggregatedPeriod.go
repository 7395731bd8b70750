package domain

// Timeframe é a granularidade usada para agrupar o histórico
type Timeframe string

const (
	Monthly   Timeframe = "monthly"
	Quarterly Timeframe = "quarterly"
	Yearly    Timeframe = "yearly"
)

func (t Timeframe) IsValid() bool {
	switch t {
	case Monthly, Quarterly, Yearly:
		return true
	}
	return false
}

// AggregatedPeriod é a média dos percentuais de um período (mês, trimestre ou ano)
type AggregatedPeriod struct {
	PeriodStart    Date    `json:"timeframe"`
	InfluencerPerc float64 `json:"influencer_perc"`
	DetractorPerc  float64 `json:"detractor_perc"`
	NeutralPerc    float64 `json:"neutral_perc"`
	Label          string  `json:"label"` // Ex: JUN'24, Q2'24, 2024
}

// LatestAverage é a média dos percentuais na data de atualização mais recente
type LatestAverage struct {
	InfluencerPerc float64 `json:"influencer_perc"`
	DetractorPerc  float64 `json:"detractor_perc"`
	NeutralPerc    float64 `json:"neutral_perc"`
	UpdateDate     Date    `json:"update_date"`
}
