package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full process configuration, read from the environment.
type Config struct {
	Server      Server      `envPrefix:"SERVER_"`
	Database    Database    `envPrefix:"DB_"`
	Kafka       Kafka       `envPrefix:"KAFKA_"`
	Redis       RedisConfig `envPrefix:"REDIS_"`
	Clients     Clients
	Auth        Auth `envPrefix:"AUTH_"`
	Cronjob     Cronjob
	ElectorPath string `env:"ELECTOR_PATH"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	Environment     string        `env:"ENV" envDefault:"local"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsLocal reports whether the process runs on a developer machine.
func (s Server) IsLocal() bool {
	return s.Environment == "local"
}

type Database struct {
	DSN             string        `env:"DSN"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

type Kafka struct {
	Brokers            []string      `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	TLSEnabled         bool          `env:"TLS_ENABLED" envDefault:"false"`
	CertificatePath    string        `env:"CERTIFICATE_PATH"`
	PrivateKeyPath     string        `env:"PRIVATE_KEY_PATH"`
	CAPath             string        `env:"CA_PATH"`
	ClientID           string        `env:"CLIENT_ID" envDefault:"ismanglendemedvirkning"`
	CreateTopics       bool          `env:"CREATE_TOPICS" envDefault:"false"`
	VurderingTopic     string        `env:"VURDERING_TOPIC" envDefault:"teamsykefravr.manglende-medvirkning-vurdering"`
	VarselTopic        string        `env:"VARSEL_TOPIC" envDefault:"team-esyfo.varselbus"`
	IdenthendelseTopic string        `env:"IDENTHENDELSE_TOPIC" envDefault:"pdl.aktor-v2"`
	ConsumerGroup      string        `env:"CONSUMER_GROUP" envDefault:"ismanglendemedvirkning-v1"`
	ErrorBackoff       time.Duration `env:"ERROR_BACKOFF" envDefault:"60s"`
	DeliveryTimeout    time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"10s"`
}

// RedisConfig configures the display-name cache. An empty URL disables it.
type RedisConfig struct {
	URL          string        `env:"URL"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
	NameTTL      time.Duration `env:"NAME_TTL" envDefault:"1h"`
}

// Clients groups the external HTTP collaborators.
type Clients struct {
	PDL      Client  `envPrefix:"PDL_"`
	Dokarkiv Client  `envPrefix:"DOKARKIV_"`
	PdfGen   Client  `envPrefix:"ISPDFGEN_"`
	AzureAD  AzureAD `envPrefix:"AZURE_"`
}

type Client struct {
	BaseURL string        `env:"URL"`
	Scope   string        `env:"SCOPE"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// AzureAD holds the client-credentials settings used for system tokens.
type AzureAD struct {
	ClientID      string `env:"APP_CLIENT_ID"`
	ClientSecret  string `env:"APP_CLIENT_SECRET"`
	TokenEndpoint string `env:"OPENID_CONFIG_TOKEN_ENDPOINT"`
}

// Auth configures validation of caseworker bearer tokens.
type Auth struct {
	JWTSigningKey string `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	Issuer        string `env:"JWT_ISSUER"`
	Audience      string `env:"JWT_AUDIENCE"`
}

type Cronjob struct {
	// JournalforingEnabled registers the filing job at all.
	JournalforingEnabled bool `env:"JOURNALFORING_CRONJOB_ENABLED" envDefault:"true"`
	// JournalforingRetryEnabled=false maps filing failures to the sentinel
	// journalpost id instead of retrying. Lower environments only.
	JournalforingRetryEnabled bool `env:"JOURNALFORING_RETRY_ENABLED" envDefault:"true"`
}

// FromEnv loads the optional .env files and parses the environment.
func FromEnv(envFiles ...string) (Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Parse reads configuration from the given map instead of the process
// environment.
func Parse(environment map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// Validate reports every required value that is missing for a non-local run.
func (c Config) Validate() error {
	var errs []error
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("DB_DSN is required"))
	}
	if len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required"))
	}
	if c.Server.IsLocal() {
		return errors.Join(errs...)
	}
	if c.ElectorPath == "" {
		errs = append(errs, errors.New("ELECTOR_PATH is required"))
	}
	if c.Clients.PDL.BaseURL == "" {
		errs = append(errs, errors.New("PDL_URL is required"))
	}
	if c.Clients.Dokarkiv.BaseURL == "" {
		errs = append(errs, errors.New("DOKARKIV_URL is required"))
	}
	if c.Clients.PdfGen.BaseURL == "" {
		errs = append(errs, errors.New("ISPDFGEN_URL is required"))
	}
	if c.Clients.AzureAD.TokenEndpoint == "" {
		errs = append(errs, errors.New("AZURE_OPENID_CONFIG_TOKEN_ENDPOINT is required"))
	}
	return errors.Join(errs...)
}
