package handler

import (
	"net/http"

	"github.com/vfg2006/payout-insights-api/internal/usecases/insighting"
)

// ListChannels retorna os canais de venda suportados
func ListChannels(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channels, err := service.ListChannels(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar canais")
			return
		}

		writeJSON(w, channels)
	}
}
