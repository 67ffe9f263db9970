package analytics

import (
	"time"

	"github.com/vfg2006/payout-insights-api/internal/domain"
)

// Record é qualquer registro datado (repasses e despesas)
type Record interface {
	RecordDate() time.Time
}

// PlatformRecord é qualquer registro que pode estar vinculado a uma plataforma
type PlatformRecord interface {
	RecordPlatform() (domain.Platform, bool)
}

// FilterByDateRange mantém os itens com data dentro de [StartDate, EndDate], inclusive nas duas pontas
func FilterByDateRange[T Record](items []T, dateRange domain.DateRange) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if inRange(item.RecordDate(), dateRange.StartDate, dateRange.EndDate) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterByPlatform mantém os itens das plataformas informadas.
// Uma seleção vazia significa todas as plataformas.
func FilterByPlatform[T PlatformRecord](items []T, platforms []domain.Platform) []T {
	if len(platforms) == 0 {
		return items
	}

	selected := make(map[domain.Platform]struct{}, len(platforms))
	for _, platform := range platforms {
		selected[platform] = struct{}{}
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		platform, ok := item.RecordPlatform()
		if !ok {
			continue
		}
		if _, exists := selected[platform]; exists {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterByStatus mantém os repasses com os status informados. Lista vazia mantém todos.
func FilterByStatus(payouts []domain.Payout, statuses []domain.PayoutStatus) []domain.Payout {
	if len(statuses) == 0 {
		return payouts
	}

	filtered := make([]domain.Payout, 0, len(payouts))
	for _, payout := range payouts {
		for _, status := range statuses {
			if payout.Status == status {
				filtered = append(filtered, payout)
				break
			}
		}
	}
	return filtered
}

// CalculateReceived soma o valor líquido dos repasses recebidos
func CalculateReceived(payouts []domain.Payout) float64 {
	total := 0.0
	for _, payout := range payouts {
		if payout.Status == domain.PayoutStatusReceived {
			total += payout.NetAmount
		}
	}
	return total
}

// CalculateExpected soma o valor líquido dos repasses pendentes ou em processamento,
// ponderado pela probabilidade de cada um.
func (e *Engine) CalculateExpected(payouts []domain.Payout) float64 {
	total := 0.0
	for _, payout := range payouts {
		if !payout.Status.IsExpected() {
			continue
		}

		probability := e.defaultProbability
		if payout.Probability != nil {
			probability = *payout.Probability
		}
		total += payout.NetAmount * probability
	}
	return total
}

func CalculateExpenses(expenses []domain.Expense) float64 {
	total := 0.0
	for _, expense := range expenses {
		total += expense.Amount
	}
	return total
}

func inRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

func inBucket(date, start, end time.Time) bool {
	return !date.Before(start) && date.Before(end)
}
