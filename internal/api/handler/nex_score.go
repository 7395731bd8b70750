package handler

import (
	"net/http"

	"github.com/vfg2006/nexscore-api/internal/domain"
	"github.com/vfg2006/nexscore-api/internal/usecases/scoring"
	"github.com/vfg2006/nexscore-api/pkg/log"
)

// GetLatestScores retorna o último snapshot de cada mercado agrupado por região
func GetLatestScores(service scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		scoreType := query.Get("type")
		region := query.Get("region")

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"type":   scoreType,
			"region": region,
		})

		response, err := service.GetLatestScores(r.Context(), scoreType, region)
		if err != nil {
			writeScoreError(w, logger, err)
			return
		}

		logger.WithField("regions", len(response.Data)).Info("nex-score: últimos snapshots retornados")
		writeJSON(w, logger, http.StatusOK, response)
	})
}

// GetTrends retorna a evolução dos percentuais por período. O timeframe só
// assume "monthly" quando o parâmetro não é enviado.
func GetTrends(service scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		region := query.Get("region")
		market := query.Get("market")

		timeframe := domain.Monthly
		if values, ok := query["timeframe"]; ok {
			timeframe = domain.Timeframe(values[0])
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"region":    region,
			"market":    market,
			"timeframe": timeframe,
		})

		periods, err := service.GetTrends(r.Context(), region, market, timeframe)
		if err != nil {
			writeScoreError(w, logger, err)
			return
		}

		logger.WithField("periods", len(periods)).Info("nex-score/trends: períodos calculados")
		writeJSON(w, logger, http.StatusOK, dataResponse{Data: periods})
	})
}

// GetLatestAverage retorna a média dos percentuais na data de atualização mais recente
func GetLatestAverage(service scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		region := r.URL.Query().Get("region")
		logger := log.ForContext(r.Context()).WithField("region", region)

		average, err := service.GetLatestAverage(r.Context(), region)
		if err != nil {
			writeScoreError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, average)
	})
}

// GetScoreComparison compara um mês (MON'YY) de um mercado com o mês de referência
func GetScoreComparison(service scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		region := query.Get("region")
		market := query.Get("market")
		month := query.Get("month")

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"region": region,
			"market": market,
			"month":  month,
		})

		comparison, err := service.GetScoreComparison(r.Context(), region, market, month)
		if err != nil {
			writeScoreError(w, logger, err)
			return
		}

		logger.WithField("has_differences", comparison.Differences != nil).Info("nex-score/score-comparison: comparação calculada")
		writeJSON(w, logger, http.StatusOK, dataResponse{Data: comparison})
	})
}

// ExportScores retorna os registros brutos usados pelo front para gerar a planilha
func ExportScores(service scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		region := query.Get("region")
		market := query.Get("market")

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"region": region,
			"market": market,
		})

		records, err := service.ExportScores(r.Context(), region, market)
		if err != nil {
			writeScoreError(w, logger, err)
			return
		}

		logger.WithField("records", len(records)).Info("nex-score/excel: registros exportados")
		writeJSON(w, logger, http.StatusOK, records)
	})
}
