package scoring

import (
	"github.com/vfg2006/nexscore-api/internal/domain"
	"github.com/vfg2006/nexscore-api/pkg/utils"
)

// AllRegions é o valor enviado pelo front quando nenhuma região está selecionada
const AllRegions = "ALL REGIONS"

// IsRegionFilter indica se region deve de fato restringir a consulta
func IsRegionFilter(region string) bool {
	return region != "" && region != AllRegions
}

type marketRegionKey struct {
	market string
	region string
}

// SelectLatest mantém, para cada par mercado/região, o registro com a maior
// update_date e projeta a contagem/percentual do scoreType. Em caso de empate
// na data vence o maior ID. A ordem de saída segue a primeira ocorrência de
// cada par em records.
func SelectLatest(records []domain.NexScore, scoreType domain.ScoreType, region string) []domain.ScoreEntry {
	latest := make(map[marketRegionKey]domain.NexScore)
	order := make([]marketRegionKey, 0)

	for _, record := range records {
		if IsRegionFilter(region) && record.Region != region {
			continue
		}

		key := marketRegionKey{market: record.Market, region: record.Region}
		current, exists := latest[key]
		if !exists {
			order = append(order, key)
			latest[key] = record
			continue
		}

		if isNewer(record, current) {
			latest[key] = record
		}
	}

	entries := make([]domain.ScoreEntry, 0, len(order))
	for _, key := range order {
		record := latest[key]
		count, perc := scoreType.Pick(record)

		entries = append(entries, domain.ScoreEntry{
			Label:      record.Market,
			Value:      perc,
			Region:     record.Region,
			UpdateDate: record.UpdateDate,
			Count:      count,
		})
	}

	return entries
}

func isNewer(candidate, current domain.NexScore) bool {
	if candidate.UpdateDate.After(current.UpdateDate) {
		return true
	}
	return candidate.UpdateDate.Equal(current.UpdateDate) && candidate.ID > current.ID
}

// AverageLatest calcula a média simples dos três percentuais dos registros de uma
// mesma data de atualização
func AverageLatest(records []domain.NexScore, updateDate domain.Date) domain.LatestAverage {
	influencer := make([]float64, 0, len(records))
	detractor := make([]float64, 0, len(records))
	neutral := make([]float64, 0, len(records))

	for _, record := range records {
		influencer = append(influencer, record.InfluencerPerc)
		detractor = append(detractor, record.DetractorPerc)
		neutral = append(neutral, record.NeutralPerc)
	}

	return domain.LatestAverage{
		InfluencerPerc: utils.RoundWithOneDecimalPlace(utils.Mean(influencer)),
		DetractorPerc:  utils.RoundWithOneDecimalPlace(utils.Mean(detractor)),
		NeutralPerc:    utils.RoundWithOneDecimalPlace(utils.Mean(neutral)),
		UpdateDate:     updateDate,
	}
}
