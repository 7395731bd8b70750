// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// NexScore é uma medição (snapshot) de um mercado/região em uma data.
// Espelha a tabela nex_score.
type NexScore struct {
	ID              int64   `json:"id"`
	Market          string  `json:"market"`
	Region          string  `json:"region"`
	DetractorCount  int     `json:"detractor_count"`
	NeutralCount    int     `json:"neutral_count"`
	InfluencerCount int     `json:"influencer_count"`
	Total           int     `json:"total"`
	DetractorPerc   float64 `json:"detractor_perc"`
	NeutralPerc     float64 `json:"neutral_perc"`
	InfluencerPerc  float64 `json:"influencer_perc"`
	UpdateDate      Date    `json:"update_date"`
}

// NexScoreFilter define filtros de igualdade exata. Campos vazios são ignorados.
type NexScoreFilter struct {
	Region     string
	Market     string
	UpdateDate *Date
}

// MarketRegion é um par distinto de mercado/região usado no dropdown
type MarketRegion struct {
	Region string `json:"region"`
	Market string `json:"market"`
}
