package handler

import (
	"net/http"

	"github.com/vfg2006/nexscore-api/internal/usecases/marketregion"
	"github.com/vfg2006/nexscore-api/internal/usecases/scoring"
	"github.com/vfg2006/nexscore-api/pkg/log"
)

func GetMarketRegionDropdown(service marketregion.MarketRegionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		values, err := service.GetDropdownValues(r.Context())
		if err != nil {
			writeScoreError(w, logger, scoring.NewStoreError(err))
			return
		}

		writeJSON(w, logger, http.StatusOK, dataResponse{Data: values})
	})
}
