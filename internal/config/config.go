package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Meta              Meta              `mapstructure:",squash"`
	TikTok            TikTok            `mapstructure:",squash"`
	YouTube           YouTube           `mapstructure:",squash"`
	OpenAI            OpenAI            `mapstructure:",squash"`
	Publishing        Publishing        `mapstructure:",squash"`
	JobCleanup        JobCleanup        `mapstructure:",squash"`
	CredentialRefresh CredentialRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Meta struct {
	BaseURL   string `mapstructure:"meta_base_url"`
	URL       string `mapstructure:"meta_url"`
	Version   string `mapstructure:"meta_version"`
	AppID     string `mapstructure:"meta_app_id"`
	AppSecret string `mapstructure:"meta_app_secret"`
}

type TikTok struct {
	BaseURL string `mapstructure:"tiktok_base_url"`
}

type YouTube struct {
	BaseURL       string `mapstructure:"youtube_base_url"`
	PrivacyStatus string `mapstructure:"youtube_privacy_status"`
}

type OpenAI struct {
	APIKey  string        `mapstructure:"openai_api_key"`
	BaseURL string        `mapstructure:"openai_base_url"`
	Model   string        `mapstructure:"openai_model"`
	Timeout time.Duration `mapstructure:"openai_timeout"`
}

type Publishing struct {
	MaxRetries           int           `mapstructure:"publishing_max_retries"`
	RetryDelayBase       time.Duration `mapstructure:"publishing_retry_delay_base"`
	TokenCostPerPlatform int           `mapstructure:"publishing_token_cost_per_platform"`
	HTTPTimeout          time.Duration `mapstructure:"publishing_http_timeout"`
}

type JobCleanup struct {
	CronSchedule string `mapstructure:"job_cleanup_cron"`
	Enabled      bool   `mapstructure:"job_cleanup_enabled"`
}

type CredentialRefresh struct {
	CronSchedule string `mapstructure:"credential_refresh_cron"`
	WindowDays   int    `mapstructure:"credential_refresh_window_days"`
	Enabled      bool   `mapstructure:"credential_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/publisher")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")

	viper.SetDefault("TIKTOK_BASE_URL", "https://open.tiktokapis.com")

	viper.SetDefault("YOUTUBE_BASE_URL", "https://www.googleapis.com")
	viper.SetDefault("YOUTUBE_PRIVACY_STATUS", "public")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4.1-mini")
	viper.SetDefault("OPENAI_TIMEOUT", "30s")

	// Defaults da fila de publicação
	viper.SetDefault("PUBLISHING_MAX_RETRIES", 3)             // 3 tentativas por job
	viper.SetDefault("PUBLISHING_RETRY_DELAY_BASE", "5s")     // 5s, 10s, 15s...
	viper.SetDefault("PUBLISHING_TOKEN_COST_PER_PLATFORM", 0) // 0 desativa a cobrança
	viper.SetDefault("PUBLISHING_HTTP_TIMEOUT", "60s")        // timeout das chamadas às plataformas

	viper.SetDefault("JOB_CLEANUP_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("JOB_CLEANUP_ENABLED", true)

	viper.SetDefault("CREDENTIAL_REFRESH_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("CREDENTIAL_REFRESH_WINDOW_DAYS", 7)    // renova tokens que expiram em até 7 dias
	viper.SetDefault("CREDENTIAL_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	if config.Publishing.MaxRetries < 1 {
		logrus.Warnf("PUBLISHING_MAX_RETRIES inválido (%d), usando 3", config.Publishing.MaxRetries)
		config.Publishing.MaxRetries = 3
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
