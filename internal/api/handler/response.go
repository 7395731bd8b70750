package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/nexscore-api/internal/usecases/scoring"
	"github.com/vfg2006/nexscore-api/pkg/apiErrors"
	"github.com/vfg2006/nexscore-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dataResponse envelopa as respostas que o front espera em {"data": ...}
type dataResponse struct {
	Data any `json:"data"`
}

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

// writeScoreError traduz os erros do scoring para o corpo padronizado da API
func writeScoreError(w http.ResponseWriter, logger log.Logger, err error) {
	var scoreErr *scoring.ScoreError
	if !errors.As(err, &scoreErr) {
		logger.WithError(err).Error("erro inesperado")
		apiErr := apiErrors.FromError(err, apiErrors.ErrInternalServer)
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
		return
	}

	var details any
	switch {
	case scoreErr.Field != "":
		details = map[string]string{"field": scoreErr.Field}
	case scoreErr.Details != "":
		details = scoreErr.Details
	}

	switch {
	case errors.Is(err, scoring.ErrStoreFailure):
		logger.WithError(err).Error("falha ao consultar o banco")
	case errors.Is(err, scoring.ErrNoData), errors.Is(err, scoring.ErrMonthNotFound):
		logger.WithError(err).Info("consulta sem resultado")
	default:
		logger.WithError(err).Warn("requisição inválida")
	}

	apiErrors.WriteError(w, scoreErr.Code, scoreErr.Err.Error(), details)
}
