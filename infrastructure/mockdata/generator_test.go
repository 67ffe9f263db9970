package mockdata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/payout-insights-api/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
}

func TestGenerator(t *testing.T) {
	generator := NewGenerator(Options{Seed: DefaultSeed, PayoutsPerMonth: 40, ExpensesPerMonth: 35, Now: fixedNow})

	payouts, expenses := generator.Generate()

	require.Len(t, payouts, 160)
	require.Len(t, expenses, 140)

	t.Run("repasses respeitam as faixas de valores", func(t *testing.T) {
		for _, payout := range payouts {
			assert.GreaterOrEqual(t, payout.GrossAmount, 100.0)
			assert.LessOrEqual(t, payout.GrossAmount, 5000.0)
			assert.InDelta(t, payout.GrossAmount-payout.Fees, payout.NetAmount, 0.011)
			assert.LessOrEqual(t, payout.Fees, payout.GrossAmount*0.05+0.01)
			assert.NotEmpty(t, payout.TransactionID)
			assert.Equal(t, ChannelIDFor(payout.Platform), payout.ChannelID)

			if payout.Date.After(fixedNow()) {
				assert.NotEqual(t, domain.PayoutStatusReceived, payout.Status, "repasses futuros não podem estar liquidados")
			}

			if payout.Status == domain.PayoutStatusPending {
				require.NotNil(t, payout.Probability)
				assert.GreaterOrEqual(t, *payout.Probability, 0.7)
				assert.LessOrEqual(t, *payout.Probability, 0.95)
			} else {
				assert.Nil(t, payout.Probability)
			}
		}
	})

	t.Run("ordenados por data", func(t *testing.T) {
		for i := 1; i < len(payouts); i++ {
			assert.False(t, payouts[i].Date.Before(payouts[i-1].Date))
		}
	})

	t.Run("despesas com categorias conhecidas", func(t *testing.T) {
		for _, expense := range expenses {
			assert.Contains(t, expenseCategories, expense.Category)
			assert.GreaterOrEqual(t, expense.Amount, 50.0)
			assert.LessOrEqual(t, expense.Amount, 1000.0)
		}
	})

	t.Run("mesma semente gera os mesmos valores", func(t *testing.T) {
		again, againExpenses := NewGenerator(Options{Seed: DefaultSeed, PayoutsPerMonth: 40, ExpensesPerMonth: 35, Now: fixedNow}).Generate()

		require.Len(t, again, len(payouts))
		for i := range payouts {
			assert.Equal(t, payouts[i].GrossAmount, again[i].GrossAmount)
			assert.Equal(t, payouts[i].Date, again[i].Date)
			assert.Equal(t, payouts[i].Status, again[i].Status)
		}
		assert.Equal(t, expenses, againExpenses)
	})
}

func TestCountForDay(t *testing.T) {
	total := 0
	for day := 1; day <= 30; day++ {
		total += countForDay(500, 30, day)
	}

	assert.Equal(t, 500, total)
	assert.Equal(t, 17, countForDay(500, 30, 1))
	assert.Equal(t, 16, countForDay(500, 30, 30))
}

func TestSource(t *testing.T) {
	source := NewSource(NewGenerator(Options{Seed: 7, PayoutsPerMonth: 60, ExpensesPerMonth: 30, Now: fixedNow}))

	channels, err := source.ListChannels(context.Background())
	require.NoError(t, err)
	assert.Len(t, channels, 4)

	filters := domain.FinancialFilters{
		StartDate:  time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 10, 31, 23, 59, 59, 0, time.UTC),
		ChannelIDs: []int{ChannelIDFor(domain.PlatformEtsy)},
	}

	data, err := source.GetFinancialData(context.Background(), filters)
	require.NoError(t, err)

	assert.Equal(t, SourceName, data.Source)
	assert.False(t, data.Fallback)
	assert.NotEmpty(t, data.Payouts)
	for _, payout := range data.Payouts {
		assert.Equal(t, domain.PlatformEtsy, payout.Platform)
		assert.Equal(t, time.October, payout.Date.Month())
	}
	for _, expense := range data.Expenses {
		require.NotNil(t, expense.Platform)
		assert.Equal(t, domain.PlatformEtsy, *expense.Platform)
	}
}
