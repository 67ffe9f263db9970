package analytics

import (
	"time"

	"github.com/vfg2006/payout-insights-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
}

func marchRange() domain.DateRange {
	return domain.DateRange{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func payout(platform domain.Platform, net float64, date time.Time, status domain.PayoutStatus) domain.Payout {
	return domain.Payout{
		ID:          "p-" + date.Format(time.DateOnly),
		Platform:    platform,
		GrossAmount: net,
		NetAmount:   net,
		Date:        date,
		Status:      status,
	}
}

func payoutWithFees(platform domain.Platform, gross, fees float64, date time.Time) domain.Payout {
	return domain.Payout{
		Platform:    platform,
		GrossAmount: gross,
		Fees:        fees,
		NetAmount:   gross - fees,
		Date:        date,
		Status:      domain.PayoutStatusReceived,
	}
}

func expense(amount float64, date time.Time, platform *domain.Platform) domain.Expense {
	return domain.Expense{
		Amount:   amount,
		Date:     date,
		Category: "Expense",
		Platform: platform,
	}
}

func platformPtr(p domain.Platform) *domain.Platform {
	return &p
}

func probabilityPtr(p float64) *float64 {
	return &p
}
