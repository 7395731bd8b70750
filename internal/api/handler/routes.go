package handler

import (
	"net/http"

	"github.com/vfg2006/nexscore-api/internal/api/handler/router"
	"github.com/vfg2006/nexscore-api/internal/usecases/marketregion"
	"github.com/vfg2006/nexscore-api/internal/usecases/scoring"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: WelcomeHandler(),
		},
	}
}

func NexScore(service scoring.Scorer) []router.Route {
	return []router.Route{
		{
			Path:    "/nex-score",
			Method:  http.MethodGet,
			Handler: GetLatestScores(service),
		},
		{
			Path:    "/nex-score/trends",
			Method:  http.MethodGet,
			Handler: GetTrends(service),
		},
		{
			Path:    "/nex-score/percentage",
			Method:  http.MethodGet,
			Handler: GetLatestAverage(service),
		},
		{
			Path:    "/nex-score/score-comparison",
			Method:  http.MethodGet,
			Handler: GetScoreComparison(service),
		},
		{
			Path:    "/nex-score/excel",
			Method:  http.MethodGet,
			Handler: ExportScores(service),
		},
	}
}

func MarketRegion(service marketregion.MarketRegionService) []router.Route {
	return []router.Route{
		{
			Path:    "/market-region",
			Method:  http.MethodGet,
			Handler: GetMarketRegionDropdown(service),
		},
	}
}

func Freshness(provider FreshnessStatusProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/freshness/status",
			Method:  http.MethodGet,
			Handler: GetFreshnessStatus(provider),
		},
	}
}
