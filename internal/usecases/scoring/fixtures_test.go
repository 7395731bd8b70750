package scoring

import (
	"math"
	"time"

	"github.com/vfg2006/nexscore-api/internal/domain"
)

func date(year int, month time.Month, day int) domain.Date {
	return domain.NewDate(year, month, day)
}

func snapshot(id int64, region, market string, updateDate domain.Date, influencer, detractor, neutral float64) domain.NexScore {
	return domain.NexScore{
		ID:              id,
		Region:          region,
		Market:          market,
		InfluencerPerc:  influencer,
		DetractorPerc:   detractor,
		NeutralPerc:     neutral,
		InfluencerCount: int(math.Round(influencer * 10)),
		DetractorCount:  int(math.Round(detractor * 10)),
		NeutralCount:    int(math.Round(neutral * 10)),
		Total:           1000,
		UpdateDate:      updateDate,
	}
}

// cincinnati reproduz o histórico de CINCINNATI de fevereiro a abril de 2024
func cincinnati() []domain.NexScore {
	return []domain.NexScore{
		snapshot(1, "CENTRAL", "CINCINNATI", date(2024, time.February, 5), 5.5, 60.0, 34.5),
		snapshot(2, "CENTRAL", "CINCINNATI", date(2024, time.March, 4), 5.0, 61.0, 34.0),
		snapshot(3, "CENTRAL", "CINCINNATI", date(2024, time.April, 23), 5.6, 59.4, 35.0),
	}
}
