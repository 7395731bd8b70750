package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/nexscore-api/internal/domain"
	"github.com/vfg2006/nexscore-api/pkg/apiErrors"
	"github.com/vfg2006/nexscore-api/pkg/utils"
)

// percentages acumula os percentuais de um período
type percentages struct {
	influencer []float64
	detractor  []float64
	neutral    []float64
}

func (p *percentages) add(record domain.NexScore) {
	p.influencer = append(p.influencer, record.InfluencerPerc)
	p.detractor = append(p.detractor, record.DetractorPerc)
	p.neutral = append(p.neutral, record.NeutralPerc)
}

// Resample agrupa os registros por mês, trimestre ou ano e calcula a média dos
// percentuais (uma casa decimal). Os períodos saem em ordem cronológica.
func Resample(records []domain.NexScore, timeframe domain.Timeframe) ([]domain.AggregatedPeriod, error) {
	if !timeframe.IsValid() {
		return nil, NewScoreError(ErrInvalidTimeframe, apiErrors.ErrInvalidFormat, string(timeframe))
	}

	buckets := make(map[domain.Date]*percentages)
	for _, record := range sortByDate(records) {
		start := periodStart(record.UpdateDate, timeframe)

		bucket, exists := buckets[start]
		if !exists {
			bucket = &percentages{}
			buckets[start] = bucket
		}
		bucket.add(record)
	}

	starts := make([]domain.Date, 0, len(buckets))
	for start := range buckets {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool {
		return starts[i].Before(starts[j])
	})

	periods := make([]domain.AggregatedPeriod, 0, len(starts))
	for _, start := range starts {
		bucket := buckets[start]

		periods = append(periods, domain.AggregatedPeriod{
			PeriodStart:    start,
			InfluencerPerc: utils.RoundWithOneDecimalPlace(utils.Mean(bucket.influencer)),
			DetractorPerc:  utils.RoundWithOneDecimalPlace(utils.Mean(bucket.detractor)),
			NeutralPerc:    utils.RoundWithOneDecimalPlace(utils.Mean(bucket.neutral)),
			Label:          periodLabel(start, timeframe),
		})
	}

	return periods, nil
}

// sortByDate devolve uma cópia ordenada por data. O ID desempata para que a
// soma das médias não dependa da ordem de entrada.
func sortByDate(records []domain.NexScore) []domain.NexScore {
	sorted := make([]domain.NexScore, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].UpdateDate.Equal(sorted[j].UpdateDate) {
			return sorted[i].UpdateDate.Before(sorted[j].UpdateDate)
		}
		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}

// periodStart retorna o primeiro dia do período que contém date
func periodStart(date domain.Date, timeframe domain.Timeframe) domain.Date {
	switch timeframe {
	case domain.Quarterly:
		firstMonth := (date.Month()-1)/3*3 + 1
		return domain.NewDate(date.Year(), firstMonth, 1)
	case domain.Yearly:
		return domain.NewDate(date.Year(), 1, 1)
	default:
		return domain.NewDate(date.Year(), date.Month(), 1)
	}
}

func periodLabel(start domain.Date, timeframe domain.Timeframe) string {
	switch timeframe {
	case domain.Quarterly:
		quarter := (int(start.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d'%02d", quarter, start.Year()%100)
	case domain.Yearly:
		return fmt.Sprintf("%04d", start.Year())
	default:
		return monthLabel(start)
	}
}

// monthLabel formata a data como MON'YY (ex: APR'24)
func monthLabel(date domain.Date) string {
	return strings.ToUpper(date.Format("Jan'06"))
}
