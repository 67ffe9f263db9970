package mockdata

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/payout-insights-api/internal/domain"
)

const SourceName = "mock"

// Source serve os dados simulados como se fossem uma fonte financeira.
// Os dados são gerados uma única vez e reaproveitados.
type Source struct {
	generator *Generator

	once     sync.Once
	payouts  []domain.Payout
	expenses []domain.Expense
}

func NewSource(generator *Generator) *Source {
	return &Source{generator: generator}
}

func (s *Source) load() {
	s.once.Do(func() {
		s.payouts, s.expenses = s.generator.Generate()
	})
}

func (s *Source) ListChannels(_ context.Context) ([]domain.Channel, error) {
	channels := make([]domain.Channel, len(Channels))
	copy(channels, Channels)
	return channels, nil
}

// GetFinancialData devolve os registros dentro da janela [StartDate, EndDate] dos canais pedidos
func (s *Source) GetFinancialData(_ context.Context, filters domain.FinancialFilters) (*domain.FinancialData, error) {
	s.load()

	return &domain.FinancialData{
		Payouts:  FilterPayouts(s.payouts, filters),
		Expenses: FilterExpenses(s.expenses, filters),
		Source:   SourceName,
	}, nil
}

// FilterPayouts aplica a janela e os canais de filters sobre os repasses
func FilterPayouts(payouts []domain.Payout, filters domain.FinancialFilters) []domain.Payout {
	channels := channelSet(filters.ChannelIDs)

	filtered := make([]domain.Payout, 0)
	for _, payout := range payouts {
		if !withinWindow(payout.RecordDate(), filters) {
			continue
		}
		if channels != nil {
			if _, ok := channels[payout.ChannelID]; !ok {
				continue
			}
		}
		filtered = append(filtered, payout)
	}
	return filtered
}

// FilterExpenses aplica a janela e os canais de filters sobre as despesas
func FilterExpenses(expenses []domain.Expense, filters domain.FinancialFilters) []domain.Expense {
	channels := channelSet(filters.ChannelIDs)

	filtered := make([]domain.Expense, 0)
	for _, expense := range expenses {
		if !withinWindow(expense.RecordDate(), filters) {
			continue
		}
		if channels != nil {
			if _, ok := channels[expense.ChannelID]; !ok {
				continue
			}
		}
		filtered = append(filtered, expense)
	}
	return filtered
}

func withinWindow(date time.Time, filters domain.FinancialFilters) bool {
	if !filters.StartDate.IsZero() && date.Before(filters.StartDate) {
		return false
	}
	if !filters.EndDate.IsZero() && date.After(filters.EndDate) {
		return false
	}
	return true
}

func channelSet(channelIDs []int) map[int]struct{} {
	if len(channelIDs) == 0 {
		return nil
	}

	set := make(map[int]struct{}, len(channelIDs))
	for _, id := range channelIDs {
		set[id] = struct{}{}
	}
	return set
}
