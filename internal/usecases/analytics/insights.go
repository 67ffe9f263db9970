package analytics

import (
	"fmt"
	"sort"

	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/pkg/utils"
)

const learningMessage = "Not enough signal; continue collecting data this period."

// GenerateInsights extrai os sinais do período, pontua os candidatos e devolve exatamente
// InsightLimit insights. As quatro categorias obrigatórias sempre aparecem primeiro.
// kpiData é aceito por paridade com as demais operações e não é consultado.
func (e *Engine) GenerateInsights(
	payouts []domain.Payout,
	expenses []domain.Expense,
	dateRange domain.DateRange,
	_ domain.KPIData,
) []domain.Insight {
	candidates := e.GenerateCandidates(payouts, expenses, dateRange)
	period := insightPeriod(dateRange)

	return SelectInsights(candidates, period)
}

// GenerateCandidates devolve todos os candidatos pontuados, na ordem de geração
func (e *Engine) GenerateCandidates(
	payouts []domain.Payout,
	expenses []domain.Expense,
	dateRange domain.DateRange,
) []Candidate {
	return e.newSignalExtractor(payouts, expenses, dateRange).candidates()
}

func (e *Engine) newSignalExtractor(payouts []domain.Payout, expenses []domain.Expense, dateRange domain.DateRange) *signalExtractor {
	previousPeriod := GetPreviousPeriod(dateRange)

	return &signalExtractor{
		engine: e,
		period: insightPeriod(dateRange),
		current: e.newPeriodTotals(
			FilterByDateRange(payouts, dateRange),
			FilterByDateRange(expenses, dateRange),
		),
		previous: e.newPeriodTotals(
			FilterByDateRange(payouts, previousPeriod),
			FilterByDateRange(expenses, previousPeriod),
		),
	}
}

// SelectInsights aplica a cobertura das categorias obrigatórias, completa por pontuação
// e preenche com insights de aprendizado até InsightLimit.
func SelectInsights(candidates []Candidate, period domain.InsightPeriod) []domain.Insight {
	pool := make([]Candidate, len(candidates), len(candidates)+len(domain.RequiredInsightCategories))
	copy(pool, candidates)

	for _, category := range domain.RequiredInsightCategories {
		if !hasCategory(pool, category) {
			pool = append(pool, learningCandidate(category, period))
		}
	}

	selected := make([]domain.Insight, 0, InsightLimit)
	for _, category := range domain.RequiredInsightCategories {
		if best, ok := bestOfCategory(pool, category); ok {
			selected = append(selected, best.Insight)
		}
	}

	remaining := make([]Candidate, 0, len(pool))
	for _, candidate := range pool {
		if !candidate.Category.IsRequired() {
			remaining = append(remaining, candidate)
		}
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].Score > remaining[j].Score
	})

	for _, candidate := range remaining {
		if len(selected) >= InsightLimit {
			break
		}
		selected = append(selected, candidate.Insight)
	}

	for len(selected) < InsightLimit {
		filler := learningInsight(fmt.Sprintf("learning_fill_%d", len(selected)), domain.InsightCategoryTrendMomentum, period)
		selected = append(selected, filler)
	}

	return selected[:InsightLimit]
}

func hasCategory(candidates []Candidate, category domain.InsightCategory) bool {
	for _, candidate := range candidates {
		if candidate.Category == category {
			return true
		}
	}
	return false
}

// bestOfCategory mantém o primeiro gerado em caso de empate
func bestOfCategory(candidates []Candidate, category domain.InsightCategory) (Candidate, bool) {
	var best Candidate
	found := false
	for _, candidate := range candidates {
		if candidate.Category != category {
			continue
		}
		if !found || candidate.Score > best.Score {
			best = candidate
			found = true
		}
	}
	return best, found
}

func learningCandidate(category domain.InsightCategory, period domain.InsightPeriod) Candidate {
	return Candidate{
		Category: category,
		Insight:  learningInsight("learning_"+string(category), category, period),
		Score:    learningPlaceholderScore,
	}
}

func learningInsight(id string, category domain.InsightCategory, period domain.InsightPeriod) domain.Insight {
	return domain.Insight{
		ID:         id,
		Category:   category,
		Title:      "Learning insight",
		Message:    learningMessage,
		Severity:   domain.InsightSeverityInfo,
		Metric:     domain.InsightMetricMixed,
		Value:      0,
		Delta:      nil,
		Period:     period,
		Confidence: learningConfidence,
		Evidence:   []string{},
	}
}

func insightPeriod(dateRange domain.DateRange) domain.InsightPeriod {
	return domain.InsightPeriod{
		From: utils.DayKey(dateRange.StartDate),
		To:   utils.DayKey(dateRange.EndDate),
	}
}

// IsPlaceholder indica se o insight foi gerado por falta de sinal (confiança de aprendizado)
func IsPlaceholder(insight domain.Insight) bool {
	return insight.Confidence == learningConfidence
}
