package scoring

import (
	"context"

	"github.com/vfg2006/nexscore-api/infrastructure/repository"
	"github.com/vfg2006/nexscore-api/internal/domain"
	"github.com/vfg2006/nexscore-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Scorer define as consultas de NexScore expostas pela API
type Scorer interface {
	// GetLatestScores retorna o último snapshot de cada mercado agrupado por região
	GetLatestScores(ctx context.Context, rawType string, region string) (*domain.LatestScoreResponse, error)

	// GetTrends retorna a média dos percentuais por período (mensal, trimestral ou anual)
	GetTrends(ctx context.Context, region, market string, timeframe domain.Timeframe) ([]domain.AggregatedPeriod, error)

	// GetLatestAverage retorna a média dos percentuais na data de atualização mais recente
	GetLatestAverage(ctx context.Context, region string) (*domain.LatestAverage, error)

	// GetScoreComparison compara um mês (MON'YY) de um mercado com o mês seguinte na ordenação por rótulo
	GetScoreComparison(ctx context.Context, region, market, month string) (*domain.ScoreComparison, error)

	// ExportScores retorna os registros brutos para exportação
	ExportScores(ctx context.Context, region, market string) ([]domain.NexScore, error)
}

type Service struct {
	NexScoreRepository repository.NexScoreRepository
}

func NewService(nexScoreRepository repository.NexScoreRepository) Scorer {
	return &Service{
		NexScoreRepository: nexScoreRepository,
	}
}

func (s *Service) GetLatestScores(ctx context.Context, rawType string, region string) (*domain.LatestScoreResponse, error) {
	if rawType == "" {
		rawType = string(domain.DefaultScoreType)
	}
	scoreType := domain.ParseScoreType(rawType)

	regionFilter := ""
	if IsRegionFilter(region) {
		regionFilter = region
	}

	records, err := s.NexScoreRepository.FindLatestPerMarket(ctx, regionFilter)
	if err != nil {
		return nil, NewStoreError(err)
	}

	entries := SelectLatest(records, scoreType, regionFilter)

	log.ForContext(ctx).WithFields(log.Fields{
		"type":    scoreType,
		"region":  region,
		"markets": len(entries),
	}).Debug("nex-score: últimos snapshots selecionados")

	return &domain.LatestScoreResponse{
		Data: GroupByRegion(entries),
		Type: rawType,
	}, nil
}

func (s *Service) GetTrends(ctx context.Context, region, market string, timeframe domain.Timeframe) ([]domain.AggregatedPeriod, error) {
	records, err := s.NexScoreRepository.Find(ctx, domain.NexScoreFilter{
		Region: region,
		Market: market,
	})
	if err != nil {
		return nil, NewStoreError(err)
	}

	// A existência de dados é verificada antes do formato do período
	if len(records) == 0 {
		return nil, newNoDataError()
	}

	return Resample(records, timeframe)
}

func (s *Service) GetLatestAverage(ctx context.Context, region string) (*domain.LatestAverage, error) {
	// A data mais recente é global; o filtro de região é aplicado depois
	latestDate, err := s.NexScoreRepository.MaxUpdateDate(ctx)
	if err != nil {
		return nil, NewStoreError(err)
	}
	if latestDate == nil {
		return nil, newNoDataError()
	}

	records, err := s.NexScoreRepository.Find(ctx, domain.NexScoreFilter{
		Region:     region,
		UpdateDate: latestDate,
	})
	if err != nil {
		return nil, NewStoreError(err)
	}
	if len(records) == 0 {
		return nil, newNoDataError()
	}

	average := AverageLatest(records, *latestDate)
	return &average, nil
}

func (s *Service) GetScoreComparison(ctx context.Context, region, market, month string) (*domain.ScoreComparison, error) {
	switch {
	case region == "":
		return nil, NewMissingParameterError("region")
	case market == "":
		return nil, NewMissingParameterError("market")
	case month == "":
		return nil, NewMissingParameterError("month")
	}

	records, err := s.NexScoreRepository.Find(ctx, domain.NexScoreFilter{
		Region: region,
		Market: market,
	})
	if err != nil {
		return nil, NewStoreError(err)
	}
	if len(records) == 0 {
		return nil, newNoDataError()
	}

	return CompareMonth(records, month)
}

func (s *Service) ExportScores(ctx context.Context, region, market string) ([]domain.NexScore, error) {
	records, err := s.NexScoreRepository.Find(ctx, domain.NexScoreFilter{
		Region: region,
		Market: market,
	})
	if err != nil {
		return nil, NewStoreError(err)
	}
	if len(records) == 0 {
		return nil, newNoDataError()
	}

	return records, nil
}
