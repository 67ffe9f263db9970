package analytics

import (
	"github.com/vfg2006/payout-insights-api/internal/domain"
)

// GetPreviousPeriod retorna a janela de mesma duração imediatamente anterior ao início do período.
// O fim da janela anterior coincide com o início da atual.
func GetPreviousPeriod(dateRange domain.DateRange) domain.DateRange {
	duration := dateRange.Duration()

	return domain.DateRange{
		StartDate: dateRange.StartDate.Add(-duration),
		EndDate:   dateRange.EndDate.Add(-duration),
	}
}

func CalculateKPIMetric(current, previous float64) domain.KPIMetric {
	change := current - previous

	changePercentage := 0.0
	if previous != 0 {
		changePercentage = (change / previous) * 100
	}

	return domain.KPIMetric{
		Total:            current,
		Change:           change,
		ChangePercentage: changePercentage,
	}
}

// CalculateKPIData compara recebidos, esperados e despesas do período com o período anterior
func (e *Engine) CalculateKPIData(
	payouts []domain.Payout,
	expenses []domain.Expense,
	dateRange domain.DateRange,
	platforms []domain.Platform,
) domain.KPIData {
	previousPeriod := GetPreviousPeriod(dateRange)

	currentPayouts := FilterByPlatform(FilterByDateRange(payouts, dateRange), platforms)
	currentExpenses := FilterByPlatform(FilterByDateRange(expenses, dateRange), platforms)

	previousPayouts := FilterByPlatform(FilterByDateRange(payouts, previousPeriod), platforms)
	previousExpenses := FilterByPlatform(FilterByDateRange(expenses, previousPeriod), platforms)

	return domain.KPIData{
		Received: CalculateKPIMetric(CalculateReceived(currentPayouts), CalculateReceived(previousPayouts)),
		Expected: CalculateKPIMetric(e.CalculateExpected(currentPayouts), e.CalculateExpected(previousPayouts)),
		Expenses: CalculateKPIMetric(CalculateExpenses(currentExpenses), CalculateExpenses(previousExpenses)),
	}
}
