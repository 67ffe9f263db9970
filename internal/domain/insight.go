package domain

type InsightCategory string

const (
	InsightCategoryAnomalies           InsightCategory = "anomalies"
	InsightCategoryPlatformPerformance InsightCategory = "platform_performance"
	InsightCategoryFeesRefunds         InsightCategory = "fees_refunds"
	InsightCategoryForecastWhatIfs     InsightCategory = "forecast_whatifs"
	InsightCategoryTimingReliability   InsightCategory = "timing_reliability"
	InsightCategoryTrendMomentum       InsightCategory = "trend_momentum"
)

// InsightCategories segue a ordem fixa da enumeração
var InsightCategories = []InsightCategory{
	InsightCategoryAnomalies,
	InsightCategoryPlatformPerformance,
	InsightCategoryFeesRefunds,
	InsightCategoryForecastWhatIfs,
	InsightCategoryTimingReliability,
	InsightCategoryTrendMomentum,
}

// RequiredInsightCategories sempre têm um insight na saída, mesmo que seja um placeholder
var RequiredInsightCategories = []InsightCategory{
	InsightCategoryAnomalies,
	InsightCategoryPlatformPerformance,
	InsightCategoryFeesRefunds,
	InsightCategoryForecastWhatIfs,
}

func (c InsightCategory) IsValid() bool {
	for _, category := range InsightCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (c InsightCategory) IsRequired() bool {
	for _, category := range RequiredInsightCategories {
		if c == category {
			return true
		}
	}
	return false
}

type InsightSeverity string

const (
	InsightSeverityInfo    InsightSeverity = "info"
	InsightSeveritySuccess InsightSeverity = "success"
	InsightSeverityWarning InsightSeverity = "warning"
	InsightSeverityDanger  InsightSeverity = "danger"
)

type InsightMetric string

const (
	InsightMetricPotentialIncome InsightMetric = "potential_income"
	InsightMetricPotentialLoss   InsightMetric = "potential_loss"
	InsightMetricActualProfit    InsightMetric = "actual_profit"
	InsightMetricMixed           InsightMetric = "mixed"
)

type InsightPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Insight é uma observação já renderizada, com pontuação de confiança e evidências
type Insight struct {
	ID         string          `json:"id"`
	Category   InsightCategory `json:"category"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Severity   InsightSeverity `json:"severity"`
	Metric     InsightMetric   `json:"metric"`
	Value      float64         `json:"value"`
	Delta      *float64        `json:"delta"`
	Period     InsightPeriod   `json:"period"`
	Confidence float64         `json:"confidence"`
	Evidence   []string        `json:"evidence"`
	Actions    []string        `json:"actions,omitempty"`
}

// InsightsResult é a resposta do caso de uso de insights
type InsightsResult struct {
	Insights []Insight `json:"insights"`
	Source   string    `json:"source"`
	Fallback bool      `json:"fallback"`
}
