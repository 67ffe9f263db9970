// Package mockdata gera repasses e despesas sintéticos de setembro a dezembro de 2025.
// Valores, datas e status são determinísticos para uma mesma semente.
package mockdata

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/pkg/utils"
)

const (
	mockYear = 2025

	DefaultSeed             = 42
	DefaultPayoutsPerMonth  = 500
	DefaultExpensesPerMonth = 300
)

var (
	mockMonths = []time.Month{time.September, time.October, time.November, time.December}

	expenseCategories = []string{
		"Platform Fees",
		"Marketing",
		"Software",
		"Shipping",
		"Supplies",
		"Other",
	}

	// Channels são os canais usados quando a API financeira não responde
	Channels = []domain.Channel{
		{ID: 1, Name: "Amazon", Platform: domain.PlatformAmazon},
		{ID: 2, Name: "Shopify", Platform: domain.PlatformShopify},
		{ID: 3, Name: "Stripe", Platform: domain.PlatformStripe},
		{ID: 4, Name: "Etsy", Platform: domain.PlatformEtsy},
	}
)

type Options struct {
	Seed             int64
	PayoutsPerMonth  int
	ExpensesPerMonth int
	// Now decide se um repasse já foi liquidado; nil usa time.Now
	Now func() time.Time
}

type Generator struct {
	seed             int64
	rng              *rand.Rand
	payoutsPerMonth  int
	expensesPerMonth int
	now              time.Time
}

func NewGenerator(opts Options) *Generator {
	if opts.PayoutsPerMonth <= 0 {
		opts.PayoutsPerMonth = DefaultPayoutsPerMonth
	}
	if opts.ExpensesPerMonth <= 0 {
		opts.ExpensesPerMonth = DefaultExpensesPerMonth
	}

	now := time.Now()
	if opts.Now != nil {
		now = opts.Now()
	}

	return &Generator{
		seed:             opts.Seed,
		payoutsPerMonth:  opts.PayoutsPerMonth,
		expensesPerMonth: opts.ExpensesPerMonth,
		now:              now,
	}
}

// Generate produz repasses e despesas de todos os meses, ordenados por data.
// Cada chamada reinicia a semente, então chamadas repetidas devolvem os mesmos valores.
func (g *Generator) Generate() ([]domain.Payout, []domain.Expense) {
	g.rng = rand.New(rand.NewSource(g.seed))

	payouts := make([]domain.Payout, 0, g.payoutsPerMonth*len(mockMonths))
	for index, month := range mockMonths {
		payouts = append(payouts, g.payoutsForMonth(month, index*g.payoutsPerMonth+1)...)
	}

	expenses := make([]domain.Expense, 0, g.expensesPerMonth*len(mockMonths))
	for index, month := range mockMonths {
		expenses = append(expenses, g.expensesForMonth(month, index*g.expensesPerMonth+1)...)
	}

	sort.SliceStable(payouts, func(i, j int) bool { return payouts[i].Date.Before(payouts[j].Date) })
	sort.SliceStable(expenses, func(i, j int) bool { return expenses[i].Date.Before(expenses[j].Date) })

	logrus.WithFields(logrus.Fields{
		"payouts":  len(payouts),
		"expenses": len(expenses),
	}).Debug("Dados simulados gerados")

	return payouts, expenses
}

func (g *Generator) payoutsForMonth(month time.Month, startID int) []domain.Payout {
	daysInMonth := daysIn(month)
	payouts := make([]domain.Payout, 0, g.payoutsPerMonth)

	for day := 1; day <= daysInMonth; day++ {
		for i := 0; i < countForDay(g.payoutsPerMonth, daysInMonth, day); i++ {
			platform := domain.Platforms[g.rng.Intn(len(domain.Platforms))]
			date := g.randomTimeOfDay(month, day)

			var status domain.PayoutStatus
			if date.Before(g.now) {
				status = domain.PayoutStatusReceived
				if g.rng.Float64() <= 0.1 {
					status = domain.PayoutStatusProcessing
				}
			} else {
				status = domain.PayoutStatusProcessing
				if g.rng.Float64() > 0.5 {
					status = domain.PayoutStatusPending
				}
			}

			grossAmount := g.randomAmount(100, 5000)
			feePercentage := g.randomAmount(0.02, 0.05)
			fees := utils.RoundWithTwoDecimalPlace(grossAmount * feePercentage)

			var probability *float64
			if status == domain.PayoutStatusPending {
				p := g.randomAmount(0.7, 0.95)
				probability = &p
			}

			transactionID, err := utils.GenerateTransactionID()
			if err != nil {
				transactionID = fmt.Sprintf("TXN-%07d", startID+len(payouts))
			}

			payouts = append(payouts, domain.Payout{
				ID:            fmt.Sprintf("payout-%d", startID+len(payouts)),
				Platform:      platform,
				ChannelID:     ChannelIDFor(platform),
				GrossAmount:   grossAmount,
				Fees:          fees,
				NetAmount:     utils.RoundWithTwoDecimalPlace(grossAmount - fees),
				Date:          date,
				Status:        status,
				Probability:   probability,
				TransactionID: transactionID,
				Description:   platform.Label() + " payout",
			})
		}
	}

	return payouts
}

func (g *Generator) expensesForMonth(month time.Month, startID int) []domain.Expense {
	daysInMonth := daysIn(month)
	expenses := make([]domain.Expense, 0, g.expensesPerMonth)

	for day := 1; day <= daysInMonth; day++ {
		for i := 0; i < countForDay(g.expensesPerMonth, daysInMonth, day); i++ {
			category := expenseCategories[g.rng.Intn(len(expenseCategories))]

			var platform *domain.Platform
			if g.rng.Float64() > 0.5 {
				p := domain.Platforms[g.rng.Intn(len(domain.Platforms))]
				platform = &p
			}

			date := g.randomTimeOfDay(month, day)

			description := category
			channelID := 0
			if platform != nil {
				description = fmt.Sprintf("%s - %s", category, *platform)
				channelID = ChannelIDFor(*platform)
			}

			expenses = append(expenses, domain.Expense{
				ID:          fmt.Sprintf("expense-%d", startID+len(expenses)),
				Amount:      g.randomAmount(50, 1000),
				Date:        date,
				Category:    category,
				Description: description,
				Platform:    platform,
				ChannelID:   channelID,
			})
		}
	}

	return expenses
}

func daysIn(month time.Month) int {
	return time.Date(mockYear, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// countForDay reparte total de forma uniforme pelos dias do mês; os primeiros dias recebem o resto
func countForDay(total, daysInMonth, day int) int {
	count := total / daysInMonth
	if day <= total%daysInMonth {
		count++
	}
	return count
}

func (g *Generator) randomTimeOfDay(month time.Month, day int) time.Time {
	return time.Date(mockYear, month, day, g.rng.Intn(24), g.rng.Intn(60), g.rng.Intn(60), 0, time.UTC)
}

func (g *Generator) randomAmount(min, max float64) float64 {
	return utils.RoundWithTwoDecimalPlace(g.rng.Float64()*(max-min) + min)
}

// ChannelIDFor devolve o canal simulado da plataforma
func ChannelIDFor(platform domain.Platform) int {
	for _, channel := range Channels {
		if channel.Platform == platform {
			return channel.ID
		}
	}
	return 0
}
