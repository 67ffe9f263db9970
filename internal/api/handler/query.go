package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payout-insights-api/internal/domain"
	"github.com/vfg2006/payout-insights-api/pkg/apiErrors"
	"github.com/vfg2006/payout-insights-api/pkg/utils"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New(validator.WithRequiredStructEnabled())

	// now permite fixar o relógio usado pelos presets nos testes
	now = time.Now
)

type insightQueryParams struct {
	StartDate  string   `validate:"omitempty,datetime=2006-01-02"`
	EndDate    string   `validate:"omitempty,datetime=2006-01-02"`
	Preset     string   `validate:"omitempty,oneof=last_month last_7_days last_30_days last_90_days"`
	Platforms  []string `validate:"dive,required"`
	ChannelIDs []string `validate:"dive,numeric"`
	Interval   string   `validate:"omitempty,oneof=daily weekly"`
	Categories []string `validate:"dive,oneof=anomalies platform_performance fees_refunds forecast_whatifs timing_reliability trend_momentum"`
	Dismissed  []string
}

// requestError carrega o código de API que deve ser devolvido ao cliente
type requestError struct {
	code    string
	message string
}

func (e *requestError) Error() string {
	return e.message
}

func readQueryParams(values url.Values) insightQueryParams {
	return insightQueryParams{
		StartDate:  strings.TrimSpace(values.Get("start_date")),
		EndDate:    strings.TrimSpace(values.Get("end_date")),
		Preset:     strings.TrimSpace(values.Get("preset")),
		Platforms:  splitList(values["platforms"]),
		ChannelIDs: splitList(values["channel_ids"]),
		Interval:   strings.TrimSpace(values.Get("interval")),
		Categories: splitList(values["categories"]),
		Dismissed:  splitList(values["dismissed"]),
	}
}

// splitList aceita tanto parâmetros repetidos quanto valores separados por vírgula
func splitList(values []string) []string {
	items := make([]string, 0, len(values))
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// parseInsightQuery valida a query string e monta a consulta de domínio
func parseInsightQuery(r *http.Request) (domain.InsightQuery, error) {
	params := readQueryParams(r.URL.Query())

	if err := validate.Struct(params); err != nil {
		return domain.InsightQuery{}, validationError(err)
	}

	dateRange, err := resolveDateRange(params.StartDate, params.EndDate, params.Preset)
	if err != nil {
		return domain.InsightQuery{}, err
	}

	platforms, err := domain.ParsePlatforms(params.Platforms)
	if err != nil {
		return domain.InsightQuery{}, &requestError{code: apiErrors.ErrUnknownPlatform, message: err.Error()}
	}

	channelIDs := make([]int, 0, len(params.ChannelIDs))
	for _, raw := range params.ChannelIDs {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return domain.InsightQuery{}, &requestError{code: apiErrors.ErrInvalidFormat, message: fmt.Sprintf("channel_ids inválido: %s", raw)}
		}
		channelIDs = append(channelIDs, id)
	}

	categories := make([]domain.InsightCategory, 0, len(params.Categories))
	for _, category := range params.Categories {
		categories = append(categories, domain.InsightCategory(category))
	}

	return domain.InsightQuery{
		DateRange:  dateRange,
		Platforms:  platforms,
		ChannelIDs: channelIDs,
		Interval:   domain.ChartInterval(params.Interval),
		Categories: categories,
		Dismissed:  params.Dismissed,
	}, nil
}

// resolveDateRange usa as datas explícitas quando informadas, senão o preset.
// A data final cobre o dia inteiro.
func resolveDateRange(startDate, endDate, preset string) (domain.DateRange, error) {
	if startDate == "" && endDate == "" {
		dateRange, err := domain.RangeFromPreset(domain.DateRangePreset(preset), now())
		if err != nil {
			return domain.DateRange{}, &requestError{code: apiErrors.ErrInvalidDateRange, message: err.Error()}
		}
		dateRange.EndDate = utils.EndOfDay(dateRange.EndDate)
		return dateRange, nil
	}

	if startDate == "" || endDate == "" {
		return domain.DateRange{}, &requestError{
			code:    apiErrors.ErrInvalidDateRange,
			message: "start_date e end_date devem ser informados juntos",
		}
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return domain.DateRange{}, &requestError{code: apiErrors.ErrInvalidDateRange, message: "start_date inválido"}
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return domain.DateRange{}, &requestError{code: apiErrors.ErrInvalidDateRange, message: "end_date inválido"}
	}

	dateRange := domain.DateRange{StartDate: *start, EndDate: utils.EndOfDay(*end)}
	if err := dateRange.Validate(); err != nil {
		return domain.DateRange{}, &requestError{code: apiErrors.ErrInvalidDateRange, message: err.Error()}
	}

	return dateRange, nil
}

func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return &requestError{code: apiErrors.ErrInvalidRequest, message: err.Error()}
	}

	fieldError := validationErrors[0]
	field, _, _ := strings.Cut(fieldError.StructField(), "[")

	switch field {
	case "StartDate", "EndDate", "Preset":
		return &requestError{code: apiErrors.ErrInvalidDateRange, message: fmt.Sprintf("valor inválido para %s: %v", field, fieldError.Value())}
	case "Interval":
		return &requestError{code: apiErrors.ErrUnsupportedInterval, message: fmt.Sprintf("intervalo não suportado: %v", fieldError.Value())}
	default:
		return &requestError{code: apiErrors.ErrInvalidFormat, message: fmt.Sprintf("valor inválido para %s: %v", field, fieldError.Value())}
	}
}

// writeServiceError traduz erros de validação e de domínio para o formato padronizado
func writeServiceError(w http.ResponseWriter, err error, message string) {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		apiErrors.WriteError(w, reqErr.code, reqErr.message, nil)
	case errors.Is(err, domain.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
	case errors.Is(err, domain.ErrUnsupportedInterval):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedInterval, err.Error(), nil)
	case errors.Is(err, domain.ErrUnknownPlatform):
		apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, err.Error(), nil)
	case errors.Is(err, domain.ErrSourceUnavailable):
		logrus.WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, message, nil)
	default:
		logrus.WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
