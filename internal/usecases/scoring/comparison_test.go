package scoring

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nexscore-api/internal/domain"
	"github.com/vfg2006/nexscore-api/pkg/apiErrors"
)

func TestMonthlyAverages_SortedByLabel(t *testing.T) {
	months := MonthlyAverages(cincinnati())

	require.Len(t, months, 3)
	assert.Equal(t, "APR'24", months[0].Timeframe)
	assert.Equal(t, "FEB'24", months[1].Timeframe)
	assert.Equal(t, "MAR'24", months[2].Timeframe)

	assert.Equal(t, 5.6, months[0].InfluencerPerc)
	assert.Equal(t, 56, months[0].InfluencerCount)
}

func TestMonthlyAverages_RoundsCountsHalfToEven(t *testing.T) {
	records := []domain.NexScore{
		{ID: 1, UpdateDate: date(2024, time.May, 2), InfluencerCount: 10, DetractorCount: 11, NeutralCount: 3},
		{ID: 2, UpdateDate: date(2024, time.May, 20), InfluencerCount: 11, DetractorCount: 12, NeutralCount: 4},
	}

	months := MonthlyAverages(records)

	require.Len(t, months, 1)
	assert.Equal(t, 10, months[0].InfluencerCount) // 10.5
	assert.Equal(t, 12, months[0].DetractorCount)  // 11.5
	assert.Equal(t, 4, months[0].NeutralCount)     // 3.5
}

func TestCompareMonth(t *testing.T) {
	t.Run("compara com o mês seguinte na ordem dos rótulos", func(t *testing.T) {
		comparison, err := CompareMonth(cincinnati(), "APR'24")
		require.NoError(t, err)

		assert.Equal(t, "APR'24", comparison.CurrentMonth.Timeframe)
		assert.Equal(t, 5.6, comparison.CurrentMonth.InfluencerPerc)

		require.NotNil(t, comparison.Differences)
		assert.Equal(t, "APR'24", comparison.Differences.Timeframe)
		assert.Equal(t, 0.1, comparison.Differences.InfluencerPercDiff)
		assert.Equal(t, -0.6, comparison.Differences.DetractorPercDiff)
		assert.Equal(t, 0.5, comparison.Differences.NeutralPercDiff)
	})

	t.Run("mês no meio da ordem", func(t *testing.T) {
		comparison, err := CompareMonth(cincinnati(), "FEB'24")
		require.NoError(t, err)

		require.NotNil(t, comparison.Differences)
		assert.Equal(t, 0.5, comparison.Differences.InfluencerPercDiff)
	})

	t.Run("último rótulo não tem comparação", func(t *testing.T) {
		comparison, err := CompareMonth(cincinnati(), "MAR'24")
		require.NoError(t, err)

		assert.Equal(t, 5.0, comparison.CurrentMonth.InfluencerPerc)
		assert.Nil(t, comparison.Differences)
	})

	t.Run("aceita mês em minúsculas", func(t *testing.T) {
		comparison, err := CompareMonth(cincinnati(), "apr'24")
		require.NoError(t, err)
		assert.Equal(t, "APR'24", comparison.CurrentMonth.Timeframe)
	})

	t.Run("mês inexistente", func(t *testing.T) {
		comparison, err := CompareMonth(cincinnati(), "JAN'24")

		assert.Nil(t, comparison)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMonthNotFound))

		var scoreErr *ScoreError
		require.True(t, errors.As(err, &scoreErr))
		assert.Equal(t, apiErrors.ErrMonthNotFound, scoreErr.Code)
	})

	t.Run("mês único não tem comparação", func(t *testing.T) {
		single := cincinnati()[:1]

		comparison, err := CompareMonth(single, "FEB'24")
		require.NoError(t, err)
		assert.Nil(t, comparison.Differences)
	})
}

func TestCompareMonth_OrderIndependent(t *testing.T) {
	records := cincinnati()
	shuffled := []domain.NexScore{records[2], records[0], records[1]}

	expected, err := CompareMonth(records, "APR'24")
	require.NoError(t, err)

	actual, err := CompareMonth(shuffled, "APR'24")
	require.NoError(t, err)

	assert.Equal(t, expected, actual)
}
