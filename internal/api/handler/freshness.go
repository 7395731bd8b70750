package handler

import (
	"net/http"

	"github.com/vfg2006/nexscore-api/pkg/log"
)

// FreshnessStatusProvider expõe o último resultado da verificação de atualização
type FreshnessStatusProvider interface {
	GetStatus() map[string]any
}

func GetFreshnessStatus(provider FreshnessStatusProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		writeJSON(w, logger, http.StatusOK, provider.GetStatus())
	})
}
