package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nexscore-api/internal/domain"
)

func TestSelectLatest(t *testing.T) {
	records := []domain.NexScore{
		snapshot(1, "CENTRAL", "CINCINNATI", date(2024, time.March, 4), 5.0, 61.0, 34.0),
		snapshot(2, "WEST", "ARIZONA", date(2024, time.April, 1), 7.2, 50.0, 42.8),
		snapshot(3, "CENTRAL", "CINCINNATI", date(2024, time.April, 23), 5.6, 59.4, 35.0),
		snapshot(4, "CENTRAL", "CINCINNATI", date(2024, time.February, 5), 5.5, 60.0, 34.5),
	}

	t.Run("mantém o snapshot mais recente de cada mercado", func(t *testing.T) {
		entries := SelectLatest(records, domain.ScoreInfluencer, "")

		require.Len(t, entries, 2)
		assert.Equal(t, "CINCINNATI", entries[0].Label)
		assert.Equal(t, 5.6, entries[0].Value)
		assert.Equal(t, 56, entries[0].Count)
		assert.True(t, entries[0].UpdateDate.Equal(date(2024, time.April, 23)))

		assert.Equal(t, "ARIZONA", entries[1].Label)
		assert.Equal(t, "WEST", entries[1].Region)
	})

	t.Run("projeta o tipo pedido", func(t *testing.T) {
		entries := SelectLatest(records, domain.ScoreDetractor, "")

		require.Len(t, entries, 2)
		assert.Equal(t, 59.4, entries[0].Value)
		assert.Equal(t, 594, entries[0].Count)
	})

	t.Run("filtra por região", func(t *testing.T) {
		entries := SelectLatest(records, domain.ScoreNeutral, "WEST")

		require.Len(t, entries, 1)
		assert.Equal(t, "ARIZONA", entries[0].Label)
		assert.Equal(t, 42.8, entries[0].Value)
	})

	t.Run("ALL REGIONS não filtra", func(t *testing.T) {
		entries := SelectLatest(records, domain.ScoreInfluencer, AllRegions)
		assert.Len(t, entries, 2)
	})

	t.Run("empate na data vence o maior ID", func(t *testing.T) {
		tied := []domain.NexScore{
			snapshot(10, "CENTRAL", "CINCINNATI", date(2024, time.April, 23), 5.6, 59.4, 35.0),
			snapshot(12, "CENTRAL", "CINCINNATI", date(2024, time.April, 23), 6.0, 59.0, 35.0),
			snapshot(11, "CENTRAL", "CINCINNATI", date(2024, time.April, 23), 4.0, 61.0, 35.0),
		}

		entries := SelectLatest(tied, domain.ScoreInfluencer, "")

		require.Len(t, entries, 1)
		assert.Equal(t, 6.0, entries[0].Value)
	})

	t.Run("entrada vazia", func(t *testing.T) {
		entries := SelectLatest(nil, domain.ScoreInfluencer, "")
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestIsRegionFilter(t *testing.T) {
	assert.False(t, IsRegionFilter(""))
	assert.False(t, IsRegionFilter(AllRegions))
	assert.True(t, IsRegionFilter("CENTRAL"))
}

func TestAverageLatest(t *testing.T) {
	updateDate := date(2024, time.April, 23)
	records := []domain.NexScore{
		snapshot(1, "CENTRAL", "CINCINNATI", updateDate, 5.6, 59.4, 35.0),
		snapshot(2, "WEST", "ARIZONA", updateDate, 7.2, 50.0, 42.8),
	}

	average := AverageLatest(records, updateDate)

	assert.Equal(t, 6.4, average.InfluencerPerc)
	assert.Equal(t, 54.7, average.DetractorPerc)
	assert.Equal(t, 38.9, average.NeutralPerc)
	assert.True(t, average.UpdateDate.Equal(updateDate))
}
