package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/payout-insights-api/pkg/apiErrors"
	"github.com/vfg2006/payout-insights-api/pkg/log"
	"github.com/vfg2006/payout-insights-api/pkg/utils"
)

// GetKPIs retorna recebido, previsto e despesas do período com a variação sobre o período anterior
func GetKPIs(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseInsightQuery(r)
		if err != nil {
			writeServiceError(w, err, "Erro ao validar parâmetros")
			return
		}

		kpis, err := service.GetKPIs(r.Context(), query)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular KPIs")
			return
		}

		writeJSON(w, kpis)
	}
}

func GetChart(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseInsightQuery(r)
		if err != nil {
			writeServiceError(w, err, "Erro ao validar parâmetros")
			return
		}

		points, err := service.GetChart(r.Context(), query)
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar dados do gráfico")
			return
		}

		writeJSON(w, map[string]any{
			"interval": intervalOrDefault(query.Interval),
			"data":     points,
		})
	}
}

// GetInsights retorna os seis insights do período, já filtrados por categoria e dispensados
func GetInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseInsightQuery(r)
		if err != nil {
			writeServiceError(w, err, "Erro ao validar parâmetros")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"start_date": utils.DayKey(query.DateRange.StartDate),
			"end_date":   utils.DayKey(query.DateRange.EndDate),
		}).Debug("Gerando insights")

		result, err := service.GetInsights(r.Context(), query)
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar insights")
			return
		}

		writeJSON(w, result)
	}
}

func GetDashboard(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseInsightQuery(r)
		if err != nil {
			writeServiceError(w, err, "Erro ao validar parâmetros")
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), query)
		if err != nil {
			writeServiceError(w, err, "Erro ao montar dashboard")
			return
		}

		writeJSON(w, dashboard)
	}
}

// GetDayTransactions detalha os repasses e despesas de um dia no formato YYYY-MM-DD
func GetDayTransactions(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawDate := httprouter.ParamsFromContext(r.Context()).ByName("date")
		if rawDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data não informada", nil)
			return
		}

		date, err := utils.ParseDate(rawDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		platforms, err := domain.ParsePlatforms(splitList(r.URL.Query()["platforms"]))
		if err != nil {
			writeServiceError(w, err, "Erro ao validar plataformas")
			return
		}

		transactions, err := service.GetDayTransactions(r.Context(), *date, platforms)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar movimentações do dia")
			return
		}

		writeJSON(w, transactions)
	}
}

func intervalOrDefault(interval domain.ChartInterval) domain.ChartInterval {
	if interval == "" {
		return domain.ChartIntervalDaily
	}
	return interval
}

// GetRemoteInsights repassa os insights calculados pela API financeira para o período
func GetRemoteInsights(provider insighting.RemoteInsightProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		dateRange, err := resolveDateRange(params.Get("start_date"), params.Get("end_date"), params.Get("preset"))
		if err != nil {
			writeServiceError(w, err, "Erro ao validar período")
			return
		}

		insights, err := provider.GetRemoteInsights(r.Context(), dateRange)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar insights da API financeira")
			return
		}

		writeJSON(w, map[string]any{
			"insights": insights,
			"source":   "api",
		})
	}
}
