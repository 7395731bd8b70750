package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScoreType(t *testing.T) {
	assert.Equal(t, ScoreInfluencer, ParseScoreType(""))
	assert.Equal(t, ScoreInfluencer, ParseScoreType("Influencer"))
	assert.Equal(t, ScoreDetractor, ParseScoreType("DETRACTOR"))
	assert.Equal(t, ScoreNeutral, ParseScoreType(" neutral "))
	assert.Equal(t, ScoreInfluencer, ParseScoreType("promoter"))
}

func TestScoreType_Pick(t *testing.T) {
	s := NexScore{
		InfluencerCount: 56, InfluencerPerc: 5.6,
		DetractorCount: 594, DetractorPerc: 59.4,
		NeutralCount: 350, NeutralPerc: 35.0,
	}

	count, perc := ScoreInfluencer.Pick(s)
	assert.Equal(t, 56, count)
	assert.Equal(t, 5.6, perc)

	count, perc = ScoreDetractor.Pick(s)
	assert.Equal(t, 594, count)
	assert.Equal(t, 59.4, perc)

	count, perc = ScoreNeutral.Pick(s)
	assert.Equal(t, 350, count)
	assert.Equal(t, 35.0, perc)
}

func TestTimeframe_IsValid(t *testing.T) {
	assert.True(t, Monthly.IsValid())
	assert.True(t, Quarterly.IsValid())
	assert.True(t, Yearly.IsValid())
	assert.False(t, Timeframe("weekly").IsValid())
	assert.False(t, Timeframe("").IsValid())
}
