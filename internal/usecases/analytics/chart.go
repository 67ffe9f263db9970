package analytics

import (
	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/pkg/utils"
)

// GenerateChartData agrupa os registros em baldes diários ou semanais de StartDate até EndDate.
// Cada balde é [início, início+passo), diferente do filtro inclusivo do período.
func (e *Engine) GenerateChartData(
	payouts []domain.Payout,
	expenses []domain.Expense,
	dateRange domain.DateRange,
	platforms []domain.Platform,
	interval domain.ChartInterval,
) []domain.ChartDataPoint {
	filteredPayouts := FilterByPlatform(FilterByDateRange(payouts, dateRange), platforms)
	filteredExpenses := FilterByPlatform(FilterByDateRange(expenses, dateRange), platforms)

	stepDays := 1
	if interval == domain.ChartIntervalWeekly {
		stepDays = 7
	}

	dataPoints := make([]domain.ChartDataPoint, 0)
	for current := dateRange.StartDate; !current.After(dateRange.EndDate); current = current.AddDate(0, 0, stepDays) {
		bucketEnd := current.AddDate(0, 0, stepDays)

		bucketPayouts := make([]domain.Payout, 0)
		for _, payout := range filteredPayouts {
			if inBucket(payout.Date, current, bucketEnd) {
				bucketPayouts = append(bucketPayouts, payout)
			}
		}

		bucketExpenses := make([]domain.Expense, 0)
		for _, expense := range filteredExpenses {
			if inBucket(expense.Date, current, bucketEnd) {
				bucketExpenses = append(bucketExpenses, expense)
			}
		}

		received := CalculateReceived(bucketPayouts)
		expected := e.CalculateExpected(bucketPayouts)
		expensesTotal := CalculateExpenses(bucketExpenses)

		dataPoints = append(dataPoints, domain.ChartDataPoint{
			Date:     utils.DayKey(current),
			Received: &received,
			Expected: &expected,
			Expenses: &expensesTotal,
		})
	}

	return dataPoints
}
