package finance

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	financedomain "github.com/vfg2006/payout-insights-api/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/payout-insights-api/internal/domain"
)

const (
	// ExpectedPayoutProbability é atribuída a todo lançamento de receita esperada
	ExpectedPayoutProbability = 0.85
	ExpenseCategory           = "Expense"

	minFeeRate   = 0.03
	feeRateRange = 0.02
)

func MapChannel(dto financedomain.ChannelDto) domain.Channel {
	name := "Unknown"
	if dto.Name != nil && *dto.Name != "" {
		name = *dto.Name
	}

	return domain.Channel{
		ID:       dto.ID,
		Name:     name,
		Platform: mapPlatform(name),
	}
}

// MapPayout converte um lançamento de receita em repasse.
// A API não informa taxas, então a taxa é estimada entre 3% e 5% a partir do canal e da data.
func MapPayout(record financedomain.FinancialRecordDto, status domain.PayoutStatus) (domain.Payout, error) {
	date, err := parseRecordDate(record.Date)
	if err != nil {
		return domain.Payout{}, err
	}

	platform := domain.PlatformShopify
	channelName := "Unknown"
	if record.ChannelName != nil {
		channelName = *record.ChannelName
		platform = mapPlatform(channelName)
	}

	grossAmount := math.Abs(record.Value)
	fees := grossAmount * FeeRate(record.ChannelID, record.Date)

	var probability *float64
	if status == domain.PayoutStatusPending {
		p := ExpectedPayoutProbability
		probability = &p
	}

	return domain.Payout{
		ID:            fmt.Sprintf("payout-%d-%s", record.ChannelID, record.Date),
		Platform:      platform,
		ChannelID:     record.ChannelID,
		GrossAmount:   grossAmount,
		Fees:          fees,
		NetAmount:     grossAmount - fees,
		Date:          date,
		Status:        status,
		Probability:   probability,
		TransactionID: fmt.Sprintf("TXN-%d-%d", record.ChannelID, date.UnixMilli()),
		Description:   channelName + " payout",
	}, nil
}

func MapExpense(record financedomain.FinancialRecordDto) (domain.Expense, error) {
	date, err := parseRecordDate(record.Date)
	if err != nil {
		return domain.Expense{}, err
	}

	var platform *domain.Platform
	channelName := "Unknown"
	if record.ChannelName != nil {
		channelName = *record.ChannelName
		p := mapPlatform(channelName)
		platform = &p
	}

	return domain.Expense{
		ID:          fmt.Sprintf("expense-%d-%s", record.ChannelID, record.Date),
		Amount:      math.Abs(record.Value),
		Date:        date,
		Category:    ExpenseCategory,
		Description: fmt.Sprintf("%s - %s", ExpenseCategory, channelName),
		Platform:    platform,
		ChannelID:   record.ChannelID,
	}, nil
}

// FeeRate é determinística para o par (canal, data), entre 3% e 5%
func FeeRate(channelID int, date string) float64 {
	hash := fnv.New32a()
	_, _ = fmt.Fprintf(hash, "%d|%s", channelID, date)

	return minFeeRate + feeRateRange*float64(hash.Sum32())/float64(math.MaxUint32)
}

// MapInsight normaliza um insight remoto; categorias, severidades e métricas desconhecidas caem no padrão
func MapInsight(dto financedomain.InsightDto) domain.Insight {
	evidence := dto.Evidence
	if evidence == nil {
		evidence = []string{}
	}

	id := stringOr(dto.ID, "")
	if id == "" {
		id = fmt.Sprintf("insight-%d", time.Now().UnixNano())
	}

	return domain.Insight{
		ID:       id,
		Category: mapInsightCategory(stringOr(dto.Category, "")),
		Title:    stringOr(dto.Title, "Insight"),
		Message:  stringOr(dto.Message, ""),
		Severity: mapInsightSeverity(stringOr(dto.Severity, "")),
		Metric:   mapInsightMetric(stringOr(dto.Metric, "")),
		Value:    dto.Value,
		Delta:    dto.Delta,
		Period: domain.InsightPeriod{
			From: stringOr(dto.Period.From, ""),
			To:   stringOr(dto.Period.To, ""),
		},
		Confidence: dto.Confidence,
		Evidence:   evidence,
		Actions:    dto.Actions,
	}
}

func mapPlatform(channelName string) domain.Platform {
	platform, ok := domain.ParsePlatform(channelName)
	if !ok {
		logrus.WithField("channel_name", channelName).Warn("Canal desconhecido, usando Shopify")
	}
	return platform
}

func parseRecordDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida no lançamento: %q", value)
}

func normalizeKey(value string) string {
	return strings.NewReplacer("_", "", " ", "").Replace(strings.ToLower(value))
}

func mapInsightCategory(category string) domain.InsightCategory {
	normalized := normalizeKey(category)

	switch {
	case strings.Contains(normalized, "anomal"):
		return domain.InsightCategoryAnomalies
	case strings.Contains(normalized, "platform"), strings.Contains(normalized, "performance"):
		return domain.InsightCategoryPlatformPerformance
	case strings.Contains(normalized, "fee"), strings.Contains(normalized, "refund"):
		return domain.InsightCategoryFeesRefunds
	case strings.Contains(normalized, "forecast"), strings.Contains(normalized, "whatif"):
		return domain.InsightCategoryForecastWhatIfs
	case strings.Contains(normalized, "timing"), strings.Contains(normalized, "reliab"):
		return domain.InsightCategoryTimingReliability
	case strings.Contains(normalized, "trend"), strings.Contains(normalized, "momentum"):
		return domain.InsightCategoryTrendMomentum
	default:
		return domain.InsightCategoryAnomalies
	}
}

func mapInsightSeverity(severity string) domain.InsightSeverity {
	switch strings.ToLower(severity) {
	case "danger", "error":
		return domain.InsightSeverityDanger
	case "warning", "warn":
		return domain.InsightSeverityWarning
	case "success":
		return domain.InsightSeveritySuccess
	default:
		return domain.InsightSeverityInfo
	}
}

func mapInsightMetric(metric string) domain.InsightMetric {
	normalized := normalizeKey(metric)

	switch {
	case normalized == "":
		return domain.InsightMetricMixed
	case strings.Contains(normalized, "income"), strings.Contains(normalized, "potential") && !strings.Contains(normalized, "loss"):
		return domain.InsightMetricPotentialIncome
	case strings.Contains(normalized, "loss"):
		return domain.InsightMetricPotentialLoss
	case strings.Contains(normalized, "profit"), strings.Contains(normalized, "actual"):
		return domain.InsightMetricActualProfit
	default:
		return domain.InsightMetricMixed
	}
}

func stringOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
