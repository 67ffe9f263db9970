package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/pkg/utils"
)

const (
	anomalyZThreshold        = -1.5
	anomalySevereZ           = 3.0
	platformShareShift       = 0.05
	platformGrowthThreshold  = 20.0
	feeRateShiftThreshold    = 0.003
	feeMinSampleSize         = 3
	feeHighRate              = 0.04
	pendingRelianceRatio     = 0.6
	completionWarningRate    = 0.75
	completionAttentionRate  = 0.85
	profitMomentumThreshold  = 0.2
	learningConfidence       = 0.3
	learningFeeImpactWeight  = 1.0
	learningPlaceholderScore = 0.3
)

// Candidate é um insight pontuado que ainda não passou pela seleção
type Candidate struct {
	Category domain.InsightCategory
	Insight  domain.Insight
	Score    float64
}

func newCandidate(insight domain.Insight, impactWeight float64) Candidate {
	return Candidate{
		Category: insight.Category,
		Insight:  insight,
		Score:    impactWeight * RecencyWeight * insight.Confidence,
	}
}

// DailyProfit é o lucro de um dia com atividade: soma do líquido de todos os repasses menos as despesas
type DailyProfit struct {
	Date   string
	Profit float64
}

// DailyProfitSeries agrupa repasses e despesas por dia UTC, em ordem cronológica
func DailyProfitSeries(payouts []domain.Payout, expenses []domain.Expense) []DailyProfit {
	profitByDay := make(map[string]float64)

	for _, payout := range payouts {
		profitByDay[utils.DayKey(payout.Date)] += payout.NetAmount
	}
	for _, expense := range expenses {
		profitByDay[utils.DayKey(expense.Date)] -= expense.Amount
	}

	series := make([]DailyProfit, 0, len(profitByDay))
	for day, profit := range profitByDay {
		series = append(series, DailyProfit{Date: day, Profit: profit})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

// MeanAndStdDev calcula média e desvio padrão populacional da série
func MeanAndStdDev(series []DailyProfit) (float64, float64) {
	if len(series) == 0 {
		return 0, 0
	}

	sum := 0.0
	for _, day := range series {
		sum += day.Profit
	}
	mean := sum / float64(len(series))

	variance := 0.0
	for _, day := range series {
		diff := day.Profit - mean
		variance += diff * diff
	}
	variance /= float64(len(series))

	return mean, math.Sqrt(variance)
}

// PlatformShare é a participação de uma plataforma na receita (recebido + esperado)
type PlatformShare struct {
	Platform      domain.Platform
	Income        float64
	Share         float64
	PreviousShare float64
	Growth        float64
}

// PlatformShares calcula participação e crescimento de todas as plataformas, na ordem fixa
func (e *Engine) PlatformShares(current, previous []domain.Payout) []PlatformShare {
	totalIncome := CalculateReceived(current) + e.CalculateExpected(current)
	previousTotalIncome := CalculateReceived(previous) + e.CalculateExpected(previous)

	shares := make([]PlatformShare, 0, len(domain.Platforms))
	for _, platform := range domain.Platforms {
		platformFilter := []domain.Platform{platform}

		income := e.income(FilterByPlatform(current, platformFilter))
		previousIncome := e.income(FilterByPlatform(previous, platformFilter))

		share := 0.0
		if totalIncome > 0 {
			share = income / totalIncome
		}

		previousShare := 0.0
		if previousTotalIncome > 0 {
			previousShare = previousIncome / previousTotalIncome
		}

		growth := 0.0
		switch {
		case previousShare > 0:
			growth = (share - previousShare) / previousShare * 100
		case share > 0:
			growth = 100
		}

		shares = append(shares, PlatformShare{
			Platform:      platform,
			Income:        income,
			Share:         share,
			PreviousShare: previousShare,
			Growth:        growth,
		})
	}

	return shares
}

func (e *Engine) income(payouts []domain.Payout) float64 {
	return CalculateReceived(payouts) + e.CalculateExpected(payouts)
}

// PlatformFeeStat é a taxa efetiva cobrada por uma plataforma (taxas / bruto)
type PlatformFeeStat struct {
	Platform   domain.Platform
	FeeAmount  float64
	FeeRate    float64
	SampleSize int
}

func FeeStats(payouts []domain.Payout) []PlatformFeeStat {
	stats := make([]PlatformFeeStat, 0, len(domain.Platforms))
	for _, platform := range domain.Platforms {
		stat := PlatformFeeStat{Platform: platform}

		totalGross := 0.0
		for _, payout := range payouts {
			if payout.Platform != platform {
				continue
			}
			stat.FeeAmount += payout.Fees
			totalGross += payout.GrossAmount
			stat.SampleSize++
		}

		if totalGross > 0 {
			stat.FeeRate = stat.FeeAmount / totalGross
		}
		stats = append(stats, stat)
	}
	return stats
}

// periodTotals guarda os registros já filtrados de um período e seus totais
type periodTotals struct {
	payouts  []domain.Payout
	expenses []domain.Expense
	received float64
	expected float64
	spent    float64
}

func (e *Engine) newPeriodTotals(payouts []domain.Payout, expenses []domain.Expense) periodTotals {
	return periodTotals{
		payouts:  payouts,
		expenses: expenses,
		received: CalculateReceived(payouts),
		expected: e.CalculateExpected(payouts),
		spent:    CalculateExpenses(expenses),
	}
}

func (t periodTotals) profit() float64 {
	return t.received - t.spent
}

func (t periodTotals) income() float64 {
	return t.received + t.expected
}

func (t periodTotals) expectedNet() float64 {
	return t.received + t.expected - t.spent
}

type signalExtractor struct {
	engine   *Engine
	period   domain.InsightPeriod
	current  periodTotals
	previous periodTotals
}

// candidates executa todas as famílias de sinais na ordem de geração usada para desempate
func (s *signalExtractor) candidates() []Candidate {
	candidates := make([]Candidate, 0)
	candidates = append(candidates, s.anomalySignal()...)
	candidates = append(candidates, s.platformSignal()...)
	candidates = append(candidates, s.feeSignal()...)
	candidates = append(candidates, s.forecastSignal()...)
	candidates = append(candidates, s.timingSignal()...)
	candidates = append(candidates, s.trendSignal()...)
	return candidates
}

func (s *signalExtractor) anomalySignal() []Candidate {
	series := DailyProfitSeries(s.current.payouts, s.current.expenses)
	if len(series) == 0 {
		return nil
	}

	mean, stdDev := MeanAndStdDev(series)

	var lowest DailyProfit
	lowestZ := math.Inf(1)
	for _, day := range series {
		z := 0.0
		if stdDev > 0 {
			z = (day.Profit - mean) / stdDev
		}
		if z < lowestZ {
			lowest, lowestZ = day, z
		}
	}

	if lowestZ > anomalyZThreshold {
		return nil
	}

	severe := math.Abs(lowestZ) >= anomalySevereZ
	impactWeight := 4.0
	severity := domain.InsightSeverityWarning
	if severe {
		impactWeight = 5
		severity = domain.InsightSeverityDanger
	}

	var actions []string
	if lowest.Profit < 0 {
		actions = []string{"Audit orders and expenses for that date to confirm accuracy."}
	}

	insight := domain.Insight{
		ID:       "anomaly_" + lowest.Date,
		Category: domain.InsightCategoryAnomalies,
		Title:    "Profit anomaly detected",
		Message: fmt.Sprintf("%s profit on %s (z=%.1f) triggers urgent variance review.",
			utils.FormatCurrency(lowest.Profit), lowest.Date, lowestZ),
		Severity:   severity,
		Metric:     domain.InsightMetricActualProfit,
		Value:      lowest.Profit,
		Delta:      floatPtr(lowest.Profit - mean),
		Period:     s.period,
		Confidence: utils.Clamp(float64(len(s.current.payouts))/50, 0.4, 0.9),
		Evidence:   []string{"daily:" + lowest.Date},
		Actions:    actions,
	}

	return []Candidate{newCandidate(insight, impactWeight)}
}

func (s *signalExtractor) platformSignal() []Candidate {
	shares := s.engine.PlatformShares(s.current.payouts, s.previous.payouts)

	leading := shares[0]
	for _, share := range shares[1:] {
		if share.Share > leading.Share {
			leading = share
		}
	}

	if leading.Share <= 0 {
		return nil
	}

	shareDelta := leading.Share - leading.PreviousShare
	label := leading.Platform.Label()

	impactWeight := 1.0
	if math.Abs(shareDelta) >= platformShareShift || leading.Growth >= platformGrowthThreshold {
		impactWeight = 2
	}

	severity := domain.InsightSeverityInfo
	var actions []string
	switch {
	case shareDelta >= platformShareShift:
		severity = domain.InsightSeveritySuccess
		actions = []string{fmt.Sprintf("Allocate inventory to %s to keep momentum.", label)}
	case shareDelta <= -platformShareShift:
		severity = domain.InsightSeverityWarning
		actions = []string{fmt.Sprintf("Review campaigns on %s to stabilise share.", label)}
	}

	insight := domain.Insight{
		ID:       "platform_" + string(leading.Platform),
		Category: domain.InsightCategoryPlatformPerformance,
		Title:    label + " share",
		Message: fmt.Sprintf("%s holds %.0f%% income share, shift %.1fpp vs prior.",
			label, leading.Share*100, shareDelta*100),
		Severity:   severity,
		Metric:     domain.InsightMetricPotentialIncome,
		Value:      leading.Share,
		Delta:      floatPtr(shareDelta),
		Period:     s.period,
		Confidence: utils.Clamp(float64(len(s.current.payouts))/60, 0.5, 0.9),
		Evidence:   []string{"platform:" + string(leading.Platform)},
		Actions:    actions,
	}

	return []Candidate{newCandidate(insight, impactWeight)}
}

func (s *signalExtractor) feeSignal() []Candidate {
	currentStats := FeeStats(s.current.payouts)

	previousRates := make(map[domain.Platform]float64, len(domain.Platforms))
	for _, stat := range FeeStats(s.previous.payouts) {
		previousRates[stat.Platform] = stat.FeeRate
	}

	candidates := make([]Candidate, 0)
	for _, stat := range currentStats {
		delta := stat.FeeRate - previousRates[stat.Platform]
		if math.Abs(delta) < feeRateShiftThreshold || stat.SampleSize < feeMinSampleSize {
			continue
		}

		label := stat.Platform.Label()
		severity := domain.InsightSeverityInfo
		var actions []string
		if stat.FeeRate > feeHighRate {
			severity = domain.InsightSeverityWarning
			actions = []string{fmt.Sprintf("Consider routing %s payments to lower-cost processors.", label)}
		}

		insight := domain.Insight{
			ID:       "fees_" + string(stat.Platform),
			Category: domain.InsightCategoryFeesRefunds,
			Title:    label + " fee shift",
			Message: fmt.Sprintf("%s fee rate %.2f%% (%.2fpp vs prior) needs cost review.",
				label, stat.FeeRate*100, delta*100),
			Severity:   severity,
			Metric:     domain.InsightMetricPotentialLoss,
			Value:      stat.FeeRate,
			Delta:      floatPtr(delta),
			Period:     s.period,
			Confidence: utils.Clamp(float64(stat.SampleSize)/20, 0.5, 0.9),
			Evidence:   []string{"fee_rate:" + string(stat.Platform)},
			Actions:    actions,
		}

		candidates = append(candidates, newCandidate(insight, 3))
	}

	if len(candidates) > 0 {
		return candidates
	}

	// sem variação relevante: acompanha a plataforma com a maior taxa
	highest := currentStats[0]
	for _, stat := range currentStats[1:] {
		if stat.FeeRate > highest.FeeRate {
			highest = stat
		}
	}

	insight := domain.Insight{
		ID:         "fees_learning_" + string(highest.Platform),
		Category:   domain.InsightCategoryFeesRefunds,
		Title:      "Fee learning insight",
		Message:    fmt.Sprintf("Fee data limited; keep monitoring %s processing rate.", highest.Platform.Label()),
		Severity:   domain.InsightSeverityInfo,
		Metric:     domain.InsightMetricPotentialLoss,
		Value:      highest.FeeRate,
		Delta:      nil,
		Period:     s.period,
		Confidence: learningConfidence,
		Evidence:   []string{"fee_rate:" + string(highest.Platform)},
	}

	return []Candidate{newCandidate(insight, learningFeeImpactWeight)}
}

func (s *signalExtractor) forecastSignal() []Candidate {
	expectedNet := s.current.expectedNet()
	payoutCount := float64(len(s.current.payouts))

	if expectedNet < 0 {
		recordCount := payoutCount + float64(len(s.current.expenses))

		insight := domain.Insight{
			ID:       "forecast_shortfall",
			Category: domain.InsightCategoryForecastWhatIfs,
			Title:    "Cash shortfall risk",
			Message: fmt.Sprintf("%s shortfall expected unless discretionary spend is delayed.",
				utils.FormatCurrency(math.Abs(expectedNet))),
			Severity:   domain.InsightSeverityDanger,
			Metric:     domain.InsightMetricMixed,
			Value:      expectedNet,
			Delta:      floatPtr(expectedNet - s.previous.expectedNet()),
			Period:     s.period,
			Confidence: utils.Clamp(recordCount/80, 0.5, 0.85),
			Evidence:   []string{"scenario:expected", "kpis.actual_profit"},
			Actions:    []string{"Delay discretionary spend until major deposits clear."},
		}
		return []Candidate{newCandidate(insight, 5)}
	}

	if s.current.expected <= 0 {
		return nil
	}

	expectedRatio := 0.0
	if totalIncome := s.current.income(); totalIncome > 0 {
		expectedRatio = s.current.expected / totalIncome
	}

	impactWeight := 1.0
	severity := domain.InsightSeverityInfo
	var actions []string
	if expectedRatio > pendingRelianceRatio {
		impactWeight = 2
		severity = domain.InsightSeverityWarning
		actions = []string{"Sequence outbound payments once the largest deposits settle."}
	}

	insight := domain.Insight{
		ID:       "forecast_pending",
		Category: domain.InsightCategoryForecastWhatIfs,
		Title:    "Pending payout reliance",
		Message: fmt.Sprintf("%s still pending this period, %.0f%% of projected income.",
			utils.FormatCurrency(s.current.expected), expectedRatio*100),
		Severity:   severity,
		Metric:     domain.InsightMetricPotentialIncome,
		Value:      s.current.expected,
		Delta:      floatPtr(s.current.expected - s.previous.expected),
		Period:     s.period,
		Confidence: utils.Clamp(payoutCount/70, 0.4, 0.8),
		Evidence:   []string{"scenario:expected"},
		Actions:    actions,
	}

	return []Candidate{newCandidate(insight, impactWeight)}
}

func (s *signalExtractor) timingSignal() []Candidate {
	total := len(s.current.payouts)
	if total == 0 {
		return nil
	}

	pending := 0
	for _, payout := range s.current.payouts {
		if payout.Status.IsExpected() {
			pending++
		}
	}
	completionRate := float64(total-pending) / float64(total)

	impactWeight := 1.0
	severity := domain.InsightSeverityInfo
	var actions []string
	switch {
	case completionRate < completionWarningRate:
		impactWeight = 4
		severity = domain.InsightSeverityWarning
		actions = []string{"Follow up with platforms to confirm pending payout ETAs."}
	case completionRate < completionAttentionRate:
		impactWeight = 3
	}

	insight := domain.Insight{
		ID:       "timing_completion",
		Category: domain.InsightCategoryTimingReliability,
		Title:    "Payout completion",
		Message: fmt.Sprintf("%.0f%% payouts cleared; %d pending need scheduling follow-up.",
			completionRate*100, pending),
		Severity:   severity,
		Metric:     domain.InsightMetricMixed,
		Value:      completionRate,
		Delta:      nil,
		Period:     s.period,
		Confidence: utils.Clamp(float64(total)/40, 0.4, 0.85),
		Evidence:   []string{"timing:completion_rate"},
		Actions:    actions,
	}

	return []Candidate{newCandidate(insight, impactWeight)}
}

func (s *signalExtractor) trendSignal() []Candidate {
	previousProfit := s.previous.profit()
	if previousProfit == 0 {
		return nil
	}

	actualProfit := s.current.profit()
	profitGrowth := (actualProfit - previousProfit) / math.Abs(previousProfit)

	impactWeight := 1.0
	severity := domain.InsightSeverityInfo
	switch {
	case profitGrowth >= profitMomentumThreshold:
		severity = domain.InsightSeveritySuccess
	case profitGrowth <= -profitMomentumThreshold:
		impactWeight = 4
		severity = domain.InsightSeverityDanger
	}

	sign := ""
	if profitGrowth >= 0 {
		sign = "+"
	}

	recordCount := float64(len(s.current.payouts) + len(s.current.expenses))

	insight := domain.Insight{
		ID:       "trend_profit",
		Category: domain.InsightCategoryTrendMomentum,
		Title:    "Profit momentum",
		Message: fmt.Sprintf("Profit %s%.0f%% vs prior period; sustain disciplined reinvestment.",
			sign, profitGrowth*100),
		Severity:   severity,
		Metric:     domain.InsightMetricActualProfit,
		Value:      actualProfit,
		Delta:      floatPtr(actualProfit - previousProfit),
		Period:     s.period,
		Confidence: utils.Clamp(recordCount/100, 0.4, 0.8),
		Evidence:   []string{"kpis.actual_profit"},
	}

	return []Candidate{newCandidate(insight, impactWeight)}
}

func floatPtr(v float64) *float64 {
	return &v
}
