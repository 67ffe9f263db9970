package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	financedomain "github.com/vfg2006/payout-insights-api/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/payout-insights-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func TestMapPayout(t *testing.T) {
	tests := []struct {
		name     string
		record   financedomain.FinancialRecordDto
		status   domain.PayoutStatus
		validate func(t *testing.T, payout domain.Payout)
	}{
		{
			name: "Receita recebida vira repasse liquidado sem probabilidade",
			record: financedomain.FinancialRecordDto{
				Date:        "2025-10-03T00:00:00",
				Value:       1000,
				ChannelID:   3,
				ChannelName: stringPtr("Stripe"),
			},
			status: domain.PayoutStatusReceived,
			validate: func(t *testing.T, payout domain.Payout) {
				assert.Equal(t, "payout-3-2025-10-03T00:00:00", payout.ID)
				assert.Equal(t, domain.PlatformStripe, payout.Platform)
				assert.Equal(t, domain.PayoutStatusReceived, payout.Status)
				assert.Nil(t, payout.Probability)
				assert.Equal(t, 1000.0, payout.GrossAmount)
				assert.GreaterOrEqual(t, payout.Fees, 30.0)
				assert.LessOrEqual(t, payout.Fees, 50.0)
				assert.InDelta(t, payout.GrossAmount-payout.Fees, payout.NetAmount, 1e-9)
				assert.Equal(t, "TXN-3-1759449600000", payout.TransactionID)
			},
		},
		{
			name: "Receita esperada vira repasse pendente com probabilidade 0.85",
			record: financedomain.FinancialRecordDto{
				Date:        "2025-11-20",
				Value:       -250,
				ChannelID:   1,
				ChannelName: stringPtr("amazon"),
			},
			status: domain.PayoutStatusPending,
			validate: func(t *testing.T, payout domain.Payout) {
				assert.Equal(t, domain.PlatformAmazon, payout.Platform)
				require.NotNil(t, payout.Probability)
				assert.Equal(t, ExpectedPayoutProbability, *payout.Probability)
				assert.Equal(t, 250.0, payout.GrossAmount, "valor negativo deve virar absoluto")
			},
		},
		{
			name: "Canal sem nome cai em Shopify",
			record: financedomain.FinancialRecordDto{
				Date:      "2025-11-20T10:30:00Z",
				Value:     10,
				ChannelID: 9,
			},
			status: domain.PayoutStatusReceived,
			validate: func(t *testing.T, payout domain.Payout) {
				assert.Equal(t, domain.PlatformShopify, payout.Platform)
				assert.Equal(t, "Unknown payout", payout.Description)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payout, err := MapPayout(tt.record, tt.status)
			require.NoError(t, err)
			tt.validate(t, payout)
		})
	}

	t.Run("Data inválida retorna erro", func(t *testing.T) {
		_, err := MapPayout(financedomain.FinancialRecordDto{Date: "03/10/2025"}, domain.PayoutStatusReceived)
		assert.Error(t, err)
	})
}

func TestMapExpense(t *testing.T) {
	expense, err := MapExpense(financedomain.FinancialRecordDto{
		Date:        "2025-09-15T00:00:00",
		Value:       -80.5,
		ChannelID:   4,
		ChannelName: stringPtr("Etsy"),
	})
	require.NoError(t, err)

	assert.Equal(t, "expense-4-2025-09-15T00:00:00", expense.ID)
	assert.Equal(t, 80.5, expense.Amount)
	assert.Equal(t, ExpenseCategory, expense.Category)
	assert.Equal(t, "Expense - Etsy", expense.Description)
	require.NotNil(t, expense.Platform)
	assert.Equal(t, domain.PlatformEtsy, *expense.Platform)
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), expense.Date)

	withoutChannel, err := MapExpense(financedomain.FinancialRecordDto{Date: "2025-09-15", Value: 5})
	require.NoError(t, err)
	assert.Nil(t, withoutChannel.Platform)
}

func TestFeeRate(t *testing.T) {
	first := FeeRate(2, "2025-10-01")
	assert.Equal(t, first, FeeRate(2, "2025-10-01"), "a taxa deve ser determinística")

	for channel := 1; channel <= 4; channel++ {
		for day := 1; day <= 28; day++ {
			rate := FeeRate(channel, time.Date(2025, 10, day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly))
			assert.GreaterOrEqual(t, rate, 0.03)
			assert.LessOrEqual(t, rate, 0.05)
		}
	}
}

func TestMapChannel(t *testing.T) {
	assert.Equal(t, domain.Channel{ID: 2, Name: "Shopify", Platform: domain.PlatformShopify}, MapChannel(financedomain.ChannelDto{ID: 2, Name: stringPtr("Shopify")}))
	assert.Equal(t, domain.Channel{ID: 7, Name: "Unknown", Platform: domain.PlatformShopify}, MapChannel(financedomain.ChannelDto{ID: 7}))
}

func TestMapInsight(t *testing.T) {
	tests := []struct {
		name     string
		dto      financedomain.InsightDto
		expected func(t *testing.T, insight domain.Insight)
	}{
		{
			name: "Campos reconhecidos são normalizados",
			dto: financedomain.InsightDto{
				ID:       stringPtr("remote-1"),
				Category: stringPtr("Platform Performance"),
				Title:    stringPtr("Stripe up"),
				Severity: stringPtr("SUCCESS"),
				Metric:   stringPtr("actualProfit"),
				Value:    12,
			},
			expected: func(t *testing.T, insight domain.Insight) {
				assert.Equal(t, "remote-1", insight.ID)
				assert.Equal(t, domain.InsightCategoryPlatformPerformance, insight.Category)
				assert.Equal(t, domain.InsightSeveritySuccess, insight.Severity)
				assert.Equal(t, domain.InsightMetricActualProfit, insight.Metric)
				assert.Equal(t, []string{}, insight.Evidence)
			},
		},
		{
			name: "Valores desconhecidos usam o padrão",
			dto: financedomain.InsightDto{
				Category: stringPtr("weird"),
				Severity: stringPtr("critical"),
			},
			expected: func(t *testing.T, insight domain.Insight) {
				assert.NotEmpty(t, insight.ID)
				assert.Equal(t, "Insight", insight.Title)
				assert.Equal(t, domain.InsightCategoryAnomalies, insight.Category)
				assert.Equal(t, domain.InsightSeverityInfo, insight.Severity)
				assert.Equal(t, domain.InsightMetricMixed, insight.Metric)
			},
		},
		{
			name: "Categorias com sublinhado e métricas de perda",
			dto: financedomain.InsightDto{
				Category: stringPtr("forecast_whatifs"),
				Metric:   stringPtr("potential_loss"),
				Severity: stringPtr("warn"),
			},
			expected: func(t *testing.T, insight domain.Insight) {
				assert.Equal(t, domain.InsightCategoryForecastWhatIfs, insight.Category)
				assert.Equal(t, domain.InsightMetricPotentialLoss, insight.Metric)
				assert.Equal(t, domain.InsightSeverityWarning, insight.Severity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expected(t, MapInsight(tt.dto))
		})
	}
}
