package marketregion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/nexscore-api/infrastructure/repository/mocks"
	"github.com/vfg2006/nexscore-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestDropdownService_GetDropdownValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNexScoreRepository(ctrl)
	service := NewDropdownService(mockRepo)
	ctx := context.Background()

	t.Run("retorna os pares distintos", func(t *testing.T) {
		expected := []domain.MarketRegion{
			{Region: "CENTRAL", Market: "CINCINNATI"},
			{Region: "WEST", Market: "ARIZONA"},
		}
		mockRepo.EXPECT().DistinctMarketRegions(ctx).Return(expected, nil)

		values, err := service.GetDropdownValues(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, values)
	})

	t.Run("tabela vazia retorna lista vazia", func(t *testing.T) {
		mockRepo.EXPECT().DistinctMarketRegions(ctx).Return(nil, nil)

		values, err := service.GetDropdownValues(ctx)
		require.NoError(t, err)
		assert.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("propaga erro do banco", func(t *testing.T) {
		mockRepo.EXPECT().DistinctMarketRegions(ctx).Return(nil, errors.New("connection refused"))

		_, err := service.GetDropdownValues(ctx)
		assert.EqualError(t, err, "connection refused")
	})
}
