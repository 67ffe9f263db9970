package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/internal/usecases/analytics"
)

type snapshotStub struct {
	data *domain.FinancialData
	err  error
}

func (s snapshotStub) Snapshot(_ context.Context, _ domain.DateRange, _ []int) (*domain.FinancialData, error) {
	return s.data, s.err
}

func received(platform domain.Platform, amount float64, date time.Time) domain.Payout {
	return domain.Payout{
		Platform:    platform,
		GrossAmount: amount,
		NetAmount:   amount,
		Date:        date,
		Status:      domain.PayoutStatusReceived,
	}
}

func TestPlatformRankingService_GetPlatformRanking(t *testing.T) {
	dateRange := domain.DateRange{
		StartDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 11, 0, 0, 0, 0, time.UTC),
	}
	currentDay := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	previousDay := time.Date(2025, 9, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		payouts  []domain.Payout
		validate func(t *testing.T, ranking []domain.PlatformRankingItem)
	}{
		{
			name: "Ordena por participação e calcula mudança de posição",
			payouts: []domain.Payout{
				received(domain.PlatformStripe, 600, currentDay),
				received(domain.PlatformShopify, 300, currentDay),
				received(domain.PlatformEtsy, 100, currentDay),
				received(domain.PlatformShopify, 700, previousDay),
				received(domain.PlatformStripe, 300, previousDay),
			},
			validate: func(t *testing.T, ranking []domain.PlatformRankingItem) {
				require.Len(t, ranking, 4)

				assert.Equal(t, domain.PlatformStripe, ranking[0].Platform)
				assert.Equal(t, 1, ranking[0].Position)
				assert.Equal(t, 2, ranking[0].PreviousPosition)
				assert.Equal(t, 1, ranking[0].PositionChange)
				assert.InDelta(t, 0.6, ranking[0].Share, 1e-9)
				assert.InDelta(t, 0.3, ranking[0].ShareDelta, 1e-9)
				assert.InDelta(t, 100.0, ranking[0].Growth, 1e-9)
				assert.Equal(t, "Stripe", ranking[0].Label)

				assert.Equal(t, domain.PlatformShopify, ranking[1].Platform)
				assert.Equal(t, -1, ranking[1].PositionChange)

				assert.Equal(t, domain.PlatformEtsy, ranking[2].Platform)
				assert.InDelta(t, 100.0, ranking[2].Growth, 1e-9, "sem participação anterior o crescimento é 100")

				assert.Equal(t, domain.PlatformAmazon, ranking[3].Platform)
				assert.Equal(t, 0.0, ranking[3].Share)
			},
		},
		{
			name:    "Sem repasses mantém a ordem fixa das plataformas",
			payouts: nil,
			validate: func(t *testing.T, ranking []domain.PlatformRankingItem) {
				require.Len(t, ranking, len(domain.Platforms))
				for i, platform := range domain.Platforms {
					assert.Equal(t, platform, ranking[i].Platform)
					assert.Equal(t, i+1, ranking[i].Position)
					assert.Equal(t, 0, ranking[i].PositionChange)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewPlatformRankingService(snapshotStub{data: &domain.FinancialData{Payouts: tt.payouts}}, analytics.NewEngine())

			response, err := service.GetPlatformRanking(context.Background(), dateRange)
			require.NoError(t, err)

			assert.Equal(t, "2025-10-01", response.Period.From)
			assert.Equal(t, "2025-10-11", response.Period.To)
			tt.validate(t, response.Ranking)
		})
	}

	t.Run("Erro do snapshot é propagado", func(t *testing.T) {
		service := NewPlatformRankingService(snapshotStub{err: errors.New("falhou")}, analytics.NewEngine())

		_, err := service.GetPlatformRanking(context.Background(), dateRange)
		assert.Error(t, err)
	})
}
