package domain

// ScoreEntry é a projeção do último snapshot de um mercado para um ScoreType
type ScoreEntry struct {
	Label      string  `json:"label"` // Nome do mercado
	Value      float64 `json:"value"`
	Region     string  `json:"region"`
	UpdateDate Date    `json:"update_date"`
	Count      int     `json:"count"`
}

// RegionNode agrupa as entradas de uma região
type RegionNode struct {
	Label    string       `json:"label"` // Nome da região
	Children []ScoreEntry `json:"children"`
}

// LatestScoreResponse é o corpo de GET /nex-score
type LatestScoreResponse struct {
	Data []RegionNode `json:"data"`
	Type string       `json:"type"`
}
