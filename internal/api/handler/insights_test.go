package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/payout-insights-api/internal/api/handler/router"
	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/payout-insights-api/pkg/apiErrors"
	"github.com/vfg2006/payout-insights-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func fixClock(t *testing.T, fixed time.Time) {
	t.Helper()
	previous := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = previous })
}

func serve(t *testing.T, routes []router.Route, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rt := router.New(router.WithRoutes(routes...))
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetKPIs(t *testing.T) {
	fixClock(t, time.Date(2025, 11, 15, 10, 30, 0, 0, time.UTC))

	tests := []struct {
		name         string
		target       string
		setup        func(service *mocks.MockInsighter, captured *domain.InsightQuery)
		expectedCode int
		errorCode    string
		validate     func(t *testing.T, query domain.InsightQuery, body []byte)
	}{
		{
			name:   "Período explícito com plataformas e canais",
			target: "/v1/kpis?start_date=2025-10-01&end_date=2025-10-31&platforms=shopify,Stripe&channel_ids=2",
			setup: func(service *mocks.MockInsighter, captured *domain.InsightQuery) {
				service.EXPECT().GetKPIs(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, query domain.InsightQuery) (*domain.KPIData, error) {
						*captured = query
						return &domain.KPIData{Received: domain.KPIMetric{Total: 1500, Change: 500, ChangePercentage: 50}}, nil
					})
			},
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, query domain.InsightQuery, body []byte) {
				assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), query.DateRange.StartDate)
				assert.Equal(t, "2025-10-31", query.DateRange.EndDate.Format(time.DateOnly))
				assert.Equal(t, 23, query.DateRange.EndDate.Hour())
				assert.Equal(t, []domain.Platform{domain.PlatformShopify, domain.PlatformStripe}, query.Platforms)
				assert.Equal(t, []int{2}, query.ChannelIDs)

				var kpis domain.KPIData
				require.NoError(t, json.Unmarshal(body, &kpis))
				assert.Equal(t, 1500.0, kpis.Received.Total)
				assert.Equal(t, 50.0, kpis.Received.ChangePercentage)
			},
		},
		{
			name:   "Sem datas usa o mês anterior",
			target: "/v1/kpis",
			setup: func(service *mocks.MockInsighter, captured *domain.InsightQuery) {
				service.EXPECT().GetKPIs(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, query domain.InsightQuery) (*domain.KPIData, error) {
						*captured = query
						return &domain.KPIData{}, nil
					})
			},
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, query domain.InsightQuery, _ []byte) {
				assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), query.DateRange.StartDate)
				assert.Equal(t, "2025-10-31", query.DateRange.EndDate.Format(time.DateOnly))
				assert.Empty(t, query.Platforms)
			},
		},
		{
			name:   "Preset de 7 dias",
			target: "/v1/kpis?preset=last_7_days",
			setup: func(service *mocks.MockInsighter, captured *domain.InsightQuery) {
				service.EXPECT().GetKPIs(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, query domain.InsightQuery) (*domain.KPIData, error) {
						*captured = query
						return &domain.KPIData{}, nil
					})
			},
			expectedCode: http.StatusOK,
			validate: func(t *testing.T, query domain.InsightQuery, _ []byte) {
				assert.Equal(t, time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC), query.DateRange.StartDate)
				assert.Equal(t, "2025-11-15", query.DateRange.EndDate.Format(time.DateOnly))
			},
		},
		{
			name:         "Data final sem data inicial",
			target:       "/v1/kpis?end_date=2025-10-31",
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrInvalidDateRange,
		},
		{
			name:         "Data em formato inválido",
			target:       "/v1/kpis?start_date=2025-13-01&end_date=2025-10-31",
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrInvalidDateRange,
		},
		{
			name:         "Período invertido",
			target:       "/v1/kpis?start_date=2025-10-31&end_date=2025-10-01",
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrInvalidDateRange,
		},
		{
			name:         "Preset desconhecido",
			target:       "/v1/kpis?preset=last_year",
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrInvalidDateRange,
		},
		{
			name:         "Plataforma desconhecida",
			target:       "/v1/kpis?platforms=shopify,ebay",
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrUnknownPlatform,
		},
		{
			name:         "Canal não numérico",
			target:       "/v1/kpis?channel_ids=abc",
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Fonte de dados indisponível",
			target: "/v1/kpis",
			setup: func(service *mocks.MockInsighter, _ *domain.InsightQuery) {
				service.EXPECT().GetKPIs(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: timeout", domain.ErrSourceUnavailable))
			},
			expectedCode: http.StatusBadGateway,
			errorCode:    apiErrors.ErrExternalService,
		},
		{
			name:   "Erro inesperado do serviço",
			target: "/v1/kpis",
			setup: func(service *mocks.MockInsighter, _ *domain.InsightQuery) {
				service.EXPECT().GetKPIs(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
			errorCode:    apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockInsighter(ctrl)

			var captured domain.InsightQuery
			if tt.setup != nil {
				tt.setup(service, &captured)
			}

			rec := serve(t, Insights(service), http.MethodGet, tt.target)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.errorCode != "" {
				assert.Equal(t, tt.errorCode, decodeError(t, rec).Code)
				return
			}
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.validate != nil {
				tt.validate(t, captured, rec.Body.Bytes())
			}
		})
	}
}

func TestGetChart(t *testing.T) {
	t.Run("Intervalo semanal é repassado ao serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInsighter(ctrl)

		received := 120.5
		service.EXPECT().GetChart(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, query domain.InsightQuery) ([]domain.ChartDataPoint, error) {
				assert.Equal(t, domain.ChartIntervalWeekly, query.Interval)
				return []domain.ChartDataPoint{{Date: "2025-10-01", Received: &received}}, nil
			})

		rec := serve(t, Insights(service), http.MethodGet, "/v1/chart?start_date=2025-10-01&end_date=2025-10-31&interval=weekly")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Interval string                  `json:"interval"`
			Data     []domain.ChartDataPoint `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "weekly", body.Interval)
		require.Len(t, body.Data, 1)
		assert.Equal(t, 120.5, *body.Data[0].Received)
	})

	t.Run("Sem intervalo responde diário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInsighter(ctrl)
		service.EXPECT().GetChart(gomock.Any(), gomock.Any()).Return([]domain.ChartDataPoint{}, nil)

		rec := serve(t, Insights(service), http.MethodGet, "/v1/chart?start_date=2025-10-01&end_date=2025-10-07")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"interval":"daily"`)
	})

	t.Run("Intervalo não suportado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInsighter(ctrl)

		rec := serve(t, Insights(service), http.MethodGet, "/v1/chart?interval=monthly")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrUnsupportedInterval, decodeError(t, rec).Code)
	})
}

func TestGetInsights(t *testing.T) {
	t.Run("Categorias e dispensados repetidos ou separados por vírgula", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInsighter(ctrl)

		service.EXPECT().GetInsights(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, query domain.InsightQuery) (*domain.InsightsResult, error) {
				assert.Equal(t, []domain.InsightCategory{domain.InsightCategoryAnomalies, domain.InsightCategoryTrendMomentum}, query.Categories)
				assert.Equal(t, []string{"learning_fill_4", "learning_fill_5"}, query.Dismissed)
				return &domain.InsightsResult{
					Insights: []domain.Insight{{ID: "learning_anomalies", Category: domain.InsightCategoryAnomalies}},
					Source:   "mock",
				}, nil
			})

		target := "/v1/insights?start_date=2025-10-01&end_date=2025-10-31" +
			"&categories=anomalies&categories=trend_momentum&dismissed=learning_fill_4,learning_fill_5"
		rec := serve(t, Insights(service), http.MethodGet, target)
		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.InsightsResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Len(t, result.Insights, 1)
		assert.Equal(t, "learning_anomalies", result.Insights[0].ID)
		assert.Equal(t, "mock", result.Source)
	})

	t.Run("Categoria desconhecida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockInsighter(ctrl)

		rec := serve(t, Insights(service), http.MethodGet, "/v1/insights?categories=weather")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockInsighter(ctrl)

	service.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(&domain.Dashboard{
		KPIs:     domain.KPIData{Expenses: domain.KPIMetric{Total: 300}},
		Source:   "api",
		Fallback: true,
	}, nil)

	rec := serve(t, Insights(service), http.MethodGet, "/v1/dashboard?start_date=2025-10-01&end_date=2025-10-31")
	require.Equal(t, http.StatusOK, rec.Code)

	var dashboard domain.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, 300.0, dashboard.KPIs.Expenses.Total)
	assert.True(t, dashboard.Fallback)
}

func TestGetDayTransactions(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		setup        func(service *mocks.MockInsighter)
		expectedCode int
		errorCode    string
	}{
		{
			name:   "Dia com filtro de plataforma",
			target: "/v1/transactions/2025-10-03?platforms=etsy",
			setup: func(service *mocks.MockInsighter) {
				day := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)
				service.EXPECT().GetDayTransactions(gomock.Any(), day, []domain.Platform{domain.PlatformEtsy}).
					Return(&domain.DayTransactions{Date: "2025-10-03", TotalReceived: 250}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Data inválida",
			target:       "/v1/transactions/03-10-2025",
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Plataforma desconhecida",
			target:       "/v1/transactions/2025-10-03?platforms=ebay",
			expectedCode: http.StatusBadRequest,
			errorCode:    apiErrors.ErrUnknownPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockInsighter(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			rec := serve(t, Insights(service), http.MethodGet, tt.target)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.errorCode != "" {
				assert.Equal(t, tt.errorCode, decodeError(t, rec).Code)
				return
			}

			var transactions domain.DayTransactions
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transactions))
			assert.Equal(t, "2025-10-03", transactions.Date)
			assert.Equal(t, 250.0, transactions.TotalReceived)
		})
	}
}

func TestListChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockInsighter(ctrl)

	service.EXPECT().ListChannels(gomock.Any()).Return([]domain.Channel{
		{ID: 1, Name: "Amazon", Platform: domain.PlatformAmazon},
		{ID: 2, Name: "Shopify", Platform: domain.PlatformShopify},
	}, nil)

	rec := serve(t, Channels(service), http.MethodGet, "/v1/channels")
	require.Equal(t, http.StatusOK, rec.Code)

	var channels []domain.Channel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &channels))
	assert.Len(t, channels, 2)
	assert.Equal(t, domain.PlatformShopify, channels[1].Platform)
}

func TestGetRemoteInsights(t *testing.T) {
	t.Run("Sem provedor a rota não existe", func(t *testing.T) {
		assert.Empty(t, RemoteInsights(nil))
	})

	t.Run("Repassa o período ao provedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockRemoteInsightProvider(ctrl)

		provider.EXPECT().GetRemoteInsights(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dateRange domain.DateRange) ([]domain.Insight, error) {
				assert.Equal(t, "2025-10-01", dateRange.StartDate.Format(time.DateOnly))
				return []domain.Insight{{ID: "remote-1", Category: domain.InsightCategoryFeesRefunds}}, nil
			})

		rec := serve(t, RemoteInsights(provider), http.MethodGet, "/v1/insights/remote?start_date=2025-10-01&end_date=2025-10-31")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"remote-1"`)
		assert.Contains(t, rec.Body.String(), `"source":"api"`)
	})

	t.Run("API financeira indisponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockRemoteInsightProvider(ctrl)
		provider.EXPECT().GetRemoteInsights(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: 503", domain.ErrSourceUnavailable))

		rec := serve(t, RemoteInsights(provider), http.MethodGet, "/v1/insights/remote")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, apiErrors.ErrExternalService, decodeError(t, rec).Code)
	})
}
