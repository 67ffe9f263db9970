package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DataSourceAPI      = "api"
	DataSourcePostgres = "postgres"
	DataSourceMock     = "mock"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	FinanceAPI   FinanceAPI   `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	MockData     MockData     `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
}

type App struct {
	LogLevel   string `mapstructure:"log_level"`
	Env        string `mapstructure:"app_env"`
	DataSource string `mapstructure:"data_source"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type FinanceAPI struct {
	BaseURL           string        `mapstructure:"finance_api_base_url"`
	Timeout           time.Duration `mapstructure:"finance_api_timeout"`
	Retries           int           `mapstructure:"finance_api_retries"`
	UseMockFallback   bool          `mapstructure:"finance_api_use_mock_fallback"`
	RequestsPerSecond float64       `mapstructure:"finance_api_requests_per_second"`
	BreakerFailures   uint32        `mapstructure:"finance_api_breaker_failures"`
	BreakerTimeout    time.Duration `mapstructure:"finance_api_breaker_timeout"`
}

type Analytics struct {
	DefaultProbability float64       `mapstructure:"analytics_default_probability"`
	CacheTTL           time.Duration `mapstructure:"insights_cache_ttl"`
}

type MockData struct {
	Seed             int64 `mapstructure:"mock_data_seed"`
	PayoutsPerMonth  int   `mapstructure:"mock_payouts_per_month"`
	ExpensesPerMonth int   `mapstructure:"mock_expenses_per_month"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_SOURCE", DataSourceMock)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/payouts?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("FINANCE_API_BASE_URL", "http://localhost:5000")
	viper.SetDefault("FINANCE_API_TIMEOUT", "10s")
	viper.SetDefault("FINANCE_API_RETRIES", 2)
	viper.SetDefault("FINANCE_API_USE_MOCK_FALLBACK", true)
	viper.SetDefault("FINANCE_API_REQUESTS_PER_SECOND", 5)
	viper.SetDefault("FINANCE_API_BREAKER_FAILURES", 5)
	viper.SetDefault("FINANCE_API_BREAKER_TIMEOUT", "30s")

	viper.SetDefault("ANALYTICS_DEFAULT_PROBABILITY", 0.8)
	viper.SetDefault("INSIGHTS_CACHE_TTL", "2m")

	viper.SetDefault("MOCK_DATA_SEED", 42)
	viper.SetDefault("MOCK_PAYOUTS_PER_MONTH", 500)
	viper.SetDefault("MOCK_EXPENSES_PER_MONTH", 300)

	// Atualização do snapshot em cache
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	c.App.DataSource = strings.ToLower(strings.TrimSpace(c.App.DataSource))

	switch c.App.DataSource {
	case DataSourceAPI, DataSourcePostgres, DataSourceMock:
	default:
		return fmt.Errorf("DATA_SOURCE inválido: %q (use api, postgres ou mock)", c.App.DataSource)
	}

	if c.Analytics.DefaultProbability < 0 || c.Analytics.DefaultProbability > 1 {
		return fmt.Errorf("ANALYTICS_DEFAULT_PROBABILITY deve estar entre 0 e 1: %v", c.Analytics.DefaultProbability)
	}

	return nil
}

// IsDevelopment indica se o processo roda em ambiente local
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "" || c.App.Env == "development"
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
