package ranking

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/internal/usecases/analytics"
	"github.com/vfg2006/payout-insights-api/pkg/utils"
)

// SnapshotProvider entrega repasses e despesas do período e do período anterior
type SnapshotProvider interface {
	Snapshot(ctx context.Context, dateRange domain.DateRange, channelIDs []int) (*domain.FinancialData, error)
}

type RankingService interface {
	GetPlatformRanking(ctx context.Context, dateRange domain.DateRange) (*domain.PlatformRankingResponse, error)
}

type PlatformRankingService struct {
	snapshots SnapshotProvider
	engine    *analytics.Engine
	now       func() time.Time
}

func NewPlatformRankingService(snapshots SnapshotProvider, engine *analytics.Engine) RankingService {
	return &PlatformRankingService{
		snapshots: snapshots,
		engine:    engine,
		now:       time.Now,
	}
}

// GetPlatformRanking ordena as plataformas pela participação na receita do período.
// A posição anterior vem da mesma ordenação aplicada ao período anterior.
func (s *PlatformRankingService) GetPlatformRanking(ctx context.Context, dateRange domain.DateRange) (*domain.PlatformRankingResponse, error) {
	data, err := s.snapshots.Snapshot(ctx, dateRange, nil)
	if err != nil {
		return nil, err
	}

	current := analytics.FilterByDateRange(data.Payouts, dateRange)
	previous := analytics.FilterByDateRange(data.Payouts, analytics.GetPreviousPeriod(dateRange))

	return &domain.PlatformRankingResponse{
		Period: domain.InsightPeriod{
			From: utils.DayKey(dateRange.StartDate),
			To:   utils.DayKey(dateRange.EndDate),
		},
		Ranking:    buildRanking(s.engine.PlatformShares(current, previous)),
		LastUpdate: s.now(),
	}, nil
}

func buildRanking(shares []analytics.PlatformShare) []domain.PlatformRankingItem {
	previousOrder := make([]analytics.PlatformShare, len(shares))
	copy(previousOrder, shares)
	sort.SliceStable(previousOrder, func(i, j int) bool {
		return previousOrder[i].PreviousShare > previousOrder[j].PreviousShare
	})

	previousPositions := make(map[domain.Platform]int, len(previousOrder))
	for i, share := range previousOrder {
		previousPositions[share.Platform] = i + 1
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Share > shares[j].Share
	})

	ranking := make([]domain.PlatformRankingItem, 0, len(shares))
	for i, share := range shares {
		position := i + 1
		previousPosition := previousPositions[share.Platform]

		ranking = append(ranking, domain.PlatformRankingItem{
			Platform:         share.Platform,
			Label:            share.Platform.Label(),
			Color:            share.Platform.Color(),
			Income:           utils.RoundWithTwoDecimalPlace(share.Income),
			Share:            share.Share,
			PreviousShare:    share.PreviousShare,
			ShareDelta:       share.Share - share.PreviousShare,
			Growth:           share.Growth,
			Position:         position,
			PreviousPosition: previousPosition,
			PositionChange:   previousPosition - position,
		})
	}

	return ranking
}
