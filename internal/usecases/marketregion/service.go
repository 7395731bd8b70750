package marketregion

import (
	"context"

	"github.com/vfg2006/nexscore-api/infrastructure/repository"
	"github.com/vfg2006/nexscore-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type MarketRegionService interface {
	GetDropdownValues(ctx context.Context) ([]domain.MarketRegion, error)
}

type DropdownService struct {
	NexScoreRepository repository.NexScoreRepository
}

func NewDropdownService(nexScoreRepository repository.NexScoreRepository) MarketRegionService {
	return &DropdownService{
		NexScoreRepository: nexScoreRepository,
	}
}

func (s *DropdownService) GetDropdownValues(ctx context.Context) ([]domain.MarketRegion, error) {
	values, err := s.NexScoreRepository.DistinctMarketRegions(ctx)
	if err != nil {
		return nil, err
	}

	if values == nil {
		return []domain.MarketRegion{}, nil
	}
	return values, nil
}
