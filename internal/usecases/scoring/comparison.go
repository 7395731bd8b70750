package scoring

import (
	"sort"
	"strings"

	"github.com/vfg2006/nexscore-api/internal/domain"
	"github.com/vfg2006/nexscore-api/pkg/apiErrors"
	"github.com/vfg2006/nexscore-api/pkg/utils"
)

type monthlyBucket struct {
	percentages
	influencerCount []float64
	detractorCount  []float64
	neutralCount    []float64
}

func (b *monthlyBucket) add(record domain.NexScore) {
	b.percentages.add(record)
	b.influencerCount = append(b.influencerCount, float64(record.InfluencerCount))
	b.detractorCount = append(b.detractorCount, float64(record.DetractorCount))
	b.neutralCount = append(b.neutralCount, float64(record.NeutralCount))
}

// MonthlyAverages calcula as médias mensais de percentuais e contagens.
// O resultado é ordenado pelo rótulo MON'YY como texto (APR'24 < FEB'24 < MAR'24),
// que é a ordem usada por CompareMonth para escolher o mês de comparação.
func MonthlyAverages(records []domain.NexScore) []domain.MonthlyScore {
	buckets := make(map[string]*monthlyBucket)
	for _, record := range sortByDate(records) {
		label := monthLabel(record.UpdateDate)

		bucket, exists := buckets[label]
		if !exists {
			bucket = &monthlyBucket{}
			buckets[label] = bucket
		}
		bucket.add(record)
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	months := make([]domain.MonthlyScore, 0, len(labels))
	for _, label := range labels {
		bucket := buckets[label]

		months = append(months, domain.MonthlyScore{
			Timeframe:       label,
			InfluencerPerc:  utils.RoundWithOneDecimalPlace(utils.Mean(bucket.influencer)),
			DetractorPerc:   utils.RoundWithOneDecimalPlace(utils.Mean(bucket.detractor)),
			NeutralPerc:     utils.RoundWithOneDecimalPlace(utils.Mean(bucket.neutral)),
			InfluencerCount: utils.RoundToInt(utils.Mean(bucket.influencerCount)),
			DetractorCount:  utils.RoundToInt(utils.Mean(bucket.detractorCount)),
			NeutralCount:    utils.RoundToInt(utils.Mean(bucket.neutralCount)),
		})
	}

	return months
}

// CompareMonth devolve as médias do mês pedido (formato MON'YY) e a diferença
// de percentuais para o mês na posição seguinte de MonthlyAverages. Quando o
// mês pedido é o último dessa ordem, Differences fica nil.
func CompareMonth(records []domain.NexScore, month string) (*domain.ScoreComparison, error) {
	target := strings.ToUpper(strings.TrimSpace(month))
	months := MonthlyAverages(records)

	index := -1
	for i, m := range months {
		if m.Timeframe == target {
			index = i
			break
		}
	}

	if index < 0 {
		return nil, NewScoreError(ErrMonthNotFound, apiErrors.ErrMonthNotFound, target)
	}

	current := months[index]
	comparison := &domain.ScoreComparison{CurrentMonth: current}

	if index+1 < len(months) {
		other := months[index+1]
		comparison.Differences = &domain.ScoreDifferences{
			Timeframe:          current.Timeframe,
			InfluencerPercDiff: utils.RoundWithTwoDecimalPlace(current.InfluencerPerc - other.InfluencerPerc),
			DetractorPercDiff:  utils.RoundWithTwoDecimalPlace(current.DetractorPerc - other.DetractorPerc),
			NeutralPercDiff:    utils.RoundWithTwoDecimalPlace(current.NeutralPerc - other.NeutralPerc),
		}
	}

	return comparison, nil
}
