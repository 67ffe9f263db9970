package handler

import (
	"net/http"

	"github.com/vfg2006/payout-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/payout-insights-api/pkg/apiErrors"
)

// GetPlatformRanking retorna o ranking das plataformas por participação na receita
func GetPlatformRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		dateRange, err := resolveDateRange(params.Get("start_date"), params.Get("end_date"), params.Get("preset"))
		if err != nil {
			writeServiceError(w, err, "Erro ao validar período")
			return
		}

		result, err := service.GetPlatformRanking(r.Context(), dateRange)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar ranking das plataformas")
			return
		}

		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum ranking encontrado", nil)
			return
		}

		writeJSON(w, result)
	}
}
