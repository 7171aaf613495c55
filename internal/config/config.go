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

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	Render           Render           `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	Avatars          Avatars          `mapstructure:",squash"`
	CredentialHealth CredentialHealth `mapstructure:",squash"`
	Bedrock          Bedrock          `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"meta_url"`
	Version string `mapstructure:"meta_version"`

	AccessToken string `mapstructure:"meta_access_token"`

	// Substring procurada em actions[].action_type para contar leads
	LeadActionType string `mapstructure:"meta_lead_action_type"`

	// Data inicial usada quando date_preset=maximum (YYYY-MM-DD)
	MaximumPresetSince string `mapstructure:"meta_maximum_preset_since"`

	PageSize              int           `mapstructure:"meta_page_size"`
	MaxPages              int           `mapstructure:"meta_max_pages"`
	RequestTimeout        time.Duration `mapstructure:"meta_request_timeout"`
	MaxConcurrentAccounts int           `mapstructure:"meta_max_concurrent_accounts"`
	MaxRetries            int           `mapstructure:"meta_max_retries"`
	InitialBackoff        time.Duration `mapstructure:"meta_initial_backoff"`
	MaxBackoff            time.Duration `mapstructure:"meta_max_backoff"`
	RequestsPerSecond     float64       `mapstructure:"meta_requests_per_second"`
	Burst                 int           `mapstructure:"meta_burst"`
	MaxConnsPerHost       int           `mapstructure:"meta_max_conns_per_host"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Avatars struct {
	// Formato: act_123=https://...,456=https://...
	AccountAvatars []string `mapstructure:"account_avatars"`
}

type CredentialHealth struct {
	CronSchedule string `mapstructure:"credential_health_cron"`
	Enabled      bool   `mapstructure:"credential_health_enabled"`
}

type Bedrock struct {
	Enabled   bool   `mapstructure:"bedrock_enabled"`
	Region    string `mapstructure:"bedrock_region"`
	ModelID   string `mapstructure:"bedrock_model_id"`
	MaxTokens int    `mapstructure:"bedrock_max_tokens"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ad_dash?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_LEAD_ACTION_TYPE", "onsite_conversion.messaging_conversation_started_7d")
	viper.SetDefault("META_MAXIMUM_PRESET_SINCE", "2025-06-01")
	viper.SetDefault("META_PAGE_SIZE", 500)
	viper.SetDefault("META_MAX_PAGES", 20)
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("META_MAX_CONCURRENT_ACCOUNTS", 5)
	viper.SetDefault("META_MAX_RETRIES", 2)
	viper.SetDefault("META_INITIAL_BACKOFF", "500ms")
	viper.SetDefault("META_MAX_BACKOFF", "5s")
	viper.SetDefault("META_REQUESTS_PER_SECOND", 10)
	viper.SetDefault("META_BURST", 10)
	viper.SetDefault("META_MAX_CONNS_PER_HOST", 20)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://ad-dash-frontend-production.up.railway.app")
	viper.SetDefault("ACCOUNT_AVATARS", "")

	viper.SetDefault("CREDENTIAL_HEALTH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("CREDENTIAL_HEALTH_ENABLED", true)

	viper.SetDefault("BEDROCK_ENABLED", false)
	viper.SetDefault("BEDROCK_REGION", "us-east-1")
	viper.SetDefault("BEDROCK_MODEL_ID", "anthropic.claude-3-5-sonnet-20240620-v1:0")
	viper.SetDefault("BEDROCK_MAX_TOKENS", 2000)

	viper.SetDefault("LOG_LEVEL", "debug")
}

// NewConfig carrega a configuração do .env e das variáveis de ambiente
func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("config: using environment loaded by godotenv: ", err)
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

	config.finalize()

	return config, nil
}

// ResolveSecrets preenche o token do Meta a partir do secret store quando ele
// não veio do ambiente
func (c *Config) ResolveSecrets(storage SecretStorage) error {
	if c.Meta.AccessToken != "" || c.Render.ServiceID == "" {
		return nil
	}

	secretsByCode, err := storage.ListSecrets(c.Render.ServiceID)
	if err != nil {
		return err
	}

	if token, ok := secretsByCode[metaAccessTokenSecret]; ok {
		c.Meta.AccessToken = strings.TrimSpace(token)
	}

	return nil
}

func (c *Config) finalize() {
	c.Meta.BaseURL = strings.TrimRight(c.Meta.BaseURL, "/")
	c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Validate verifica as chaves obrigatórias para falar com o Meta
func (c *Config) Validate() error {
	return c.Meta.Ready()
}

// Ready devolve ConfigurationError quando falta algo para chamar o Graph API
func (m Meta) Ready() error {
	var missing []string

	if m.AccessToken == "" {
		missing = append(missing, "META_ACCESS_TOKEN")
	}
	if m.LeadActionType == "" {
		missing = append(missing, "META_LEAD_ACTION_TYPE")
	}
	if m.Version == "" {
		missing = append(missing, "META_VERSION")
	}
	if _, err := time.Parse(time.DateOnly, m.MaximumPresetSince); err != nil {
		missing = append(missing, "META_MAXIMUM_PRESET_SINCE")
	}

	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}

	return nil
}

// MaximumSince retorna a data âncora do preset "maximum"
func (m Meta) MaximumSince() time.Time {
	since, err := time.Parse(time.DateOnly, m.MaximumPresetSince)
	if err != nil {
		return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
	return since
}

// AvatarMap converte ACCOUNT_AVATARS em mapa id -> url
func (a Avatars) AvatarMap() map[string]string {
	avatars := make(map[string]string, len(a.AccountAvatars))
	for _, pair := range a.AccountAvatars {
		id, url, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || id == "" || url == "" {
			continue
		}
		avatars[strings.TrimSpace(id)] = strings.TrimSpace(url)
	}
	return avatars
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, relying on process environment")
}
