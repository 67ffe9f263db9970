package financeclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	financedomain "github.com/vfg2006/payout-insights-api/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/payout-insights-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	channelsPath         = "/api/Channels"
	receivedIncomePath   = "/api/Financial/received-income"
	expectedIncomePath   = "/api/Financial/expected-income"
	expensesPath         = "/api/Financial/expenses"
	financialInsightPath = "/api/Insights/financial"

	retryBackoff = 200 * time.Millisecond
)

type Client interface {
	GetChannels(ctx context.Context) ([]financedomain.ChannelDto, error)
	GetReceivedIncome(ctx context.Context, params financedomain.FinancialQueryParams) ([]financedomain.FinancialRecordDto, error)
	GetExpectedIncome(ctx context.Context, params financedomain.FinancialQueryParams) ([]financedomain.FinancialRecordDto, error)
	GetExpenses(ctx context.Context, params financedomain.FinancialQueryParams) ([]financedomain.FinancialRecordDto, error)
	GetInsights(ctx context.Context, startDate, endDate time.Time) (financedomain.InsightResponseDto, error)
}

// StatusError é devolvido quando a API responde com status diferente de 200
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API financeira respondeu %d em %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// Retryable indica se vale repetir a chamada. Erros 4xx não mudam com nova tentativa.
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
	retries    int
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) Client {
	apiConfig := cfg.FinanceAPI

	requestsPerSecond := apiConfig.RequestsPerSecond
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5
	}
	burst := int(requestsPerSecond)
	if burst < 1 {
		burst = 1
	}

	breakerFailures := apiConfig.BreakerFailures
	if breakerFailures == 0 {
		breakerFailures = 5
	}

	return &FinanceClient{
		httpClient: &http.Client{
			Timeout: apiConfig.Timeout,
		},
		baseURL: apiConfig.BaseURL,
		retries: apiConfig.Retries,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "finance-api",
			Timeout: apiConfig.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerFailures
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logrus.WithFields(logrus.Fields{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Warn("Circuit breaker da API financeira mudou de estado")
			},
		}),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

func (c *FinanceClient) GetChannels(ctx context.Context) ([]financedomain.ChannelDto, error) {
	var channels []financedomain.ChannelDto
	if err := c.get(ctx, channelsPath, nil, &channels); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar canais")
	}
	return channels, nil
}

func (c *FinanceClient) GetReceivedIncome(ctx context.Context, params financedomain.FinancialQueryParams) ([]financedomain.FinancialRecordDto, error) {
	return c.getRecords(ctx, receivedIncomePath, params)
}

func (c *FinanceClient) GetExpectedIncome(ctx context.Context, params financedomain.FinancialQueryParams) ([]financedomain.FinancialRecordDto, error) {
	return c.getRecords(ctx, expectedIncomePath, params)
}

func (c *FinanceClient) GetExpenses(ctx context.Context, params financedomain.FinancialQueryParams) ([]financedomain.FinancialRecordDto, error) {
	return c.getRecords(ctx, expensesPath, params)
}

func (c *FinanceClient) GetInsights(ctx context.Context, startDate, endDate time.Time) (financedomain.InsightResponseDto, error) {
	var response financedomain.InsightResponseDto

	query := url.Values{}
	setDateRange(query, startDate, endDate)

	if err := c.get(ctx, financialInsightPath, query, &response); err != nil {
		return response, errors.Wrap(err, "erro ao buscar insights financeiros")
	}
	return response, nil
}

func (c *FinanceClient) getRecords(ctx context.Context, endpoint string, params financedomain.FinancialQueryParams) ([]financedomain.FinancialRecordDto, error) {
	query := url.Values{}
	setDateRange(query, params.StartDate, params.EndDate)
	for _, id := range params.ChannelIDs {
		query.Add("channelIds", strconv.Itoa(id))
	}

	var records []financedomain.FinancialRecordDto
	if err := c.get(ctx, endpoint, query, &records); err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar %s", endpoint)
	}
	return records, nil
}

func setDateRange(query url.Values, startDate, endDate time.Time) {
	if !startDate.IsZero() {
		query.Set("startDate", startDate.UTC().Format(time.RFC3339))
	}
	if !endDate.IsZero() {
		query.Set("endDate", endDate.UTC().Format(time.RFC3339))
	}
}

// get executa o GET passando por limitador, circuit breaker e novas tentativas
func (c *FinanceClient) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "contexto cancelado entre tentativas")
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "limite de requisições")
		}

		body, err := c.breaker.Execute(func() (interface{}, error) {
			return c.do(ctx, endpoint, query)
		})
		if err == nil {
			if err := json.Unmarshal(body.([]byte), out); err != nil {
				return errors.Wrap(err, "erro ao decodificar a resposta")
			}
			return nil
		}

		lastErr = err
		if !retryable(err) {
			break
		}

		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"attempt":  attempt + 1,
		}).WithError(err).Warn("Falha ao chamar a API financeira")
	}

	return lastErr
}

func (c *FinanceClient) do(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	requestURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	requestURL.Path = path.Join(requestURL.Path, endpoint)
	if query != nil {
		requestURL.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Endpoint: endpoint, Body: string(body)}
	}

	return body, nil
}

func retryable(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}

	var statusErr *StatusError
	if errors.As(errors.Cause(err), &statusErr) {
		return statusErr.Retryable()
	}

	return true
}
