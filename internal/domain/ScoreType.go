package domain

import "strings"

// ScoreType indica qual classe de respondentes (contagem + percentual) é projetada
type ScoreType string

const (
	ScoreInfluencer ScoreType = "influencer"
	ScoreDetractor  ScoreType = "detractor"
	ScoreNeutral    ScoreType = "neutral"
)

// DefaultScoreType é usado quando o parâmetro type não é informado ou não é reconhecido
const DefaultScoreType = ScoreInfluencer

// ParseScoreType converte o parâmetro da requisição sem diferenciar maiúsculas.
// Valores desconhecidos caem em influencer.
func ParseScoreType(raw string) ScoreType {
	switch ScoreType(strings.ToLower(strings.TrimSpace(raw))) {
	case ScoreDetractor:
		return ScoreDetractor
	case ScoreNeutral:
		return ScoreNeutral
	default:
		return DefaultScoreType
	}
}

// Pick retorna a contagem e o percentual do registro correspondentes ao tipo
func (t ScoreType) Pick(s NexScore) (count int, perc float64) {
	switch t {
	case ScoreDetractor:
		return s.DetractorCount, s.DetractorPerc
	case ScoreNeutral:
		return s.NeutralCount, s.NeutralPerc
	default:
		return s.InfluencerCount, s.InfluencerPerc
	}
}
