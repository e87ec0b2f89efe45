// Package config provides the structures and loader for the service
// configuration. All secrets (database credentials, provider API keys, SMTP
// credentials) come from the config file or environment, never from source.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING" env-required:"true"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	HTTPServer              `yaml:"http_server"`
	FootballData            `yaml:"football_data"`
	APISports               `yaml:"api_sports"`
	SMTP                    `yaml:"smtp"`
	JWTToken                `yaml:"jwttoken"`
	Reset                   `yaml:"reset"`
}

// HTTPServer holds the listener settings.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"ADDRESS_HTTP" env-default:":3000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	CORSOrigin  string        `yaml:"cors_origin" env:"CORS_ORIGIN" env-default:"*"`
}

// FootballData configures the football-data.org client (Provider A).
type FootballData struct {
	FootballDataAPIKey  string        `yaml:"api_key" env:"FOOTBALL_DATA_API_KEY" env-required:"true"`
	FootballDataBaseURL string        `yaml:"base_url" env-default:"https://api.football-data.org/v4"`
	FootballDataTimeout time.Duration `yaml:"timeout" env-default:"10s"`
}

// APISports configures the api-sports.io client (Provider B).
type APISports struct {
	APISportsAPIKey  string        `yaml:"api_key" env:"API_SPORTS_KEY" env-required:"true"`
	APISportsBaseURL string        `yaml:"base_url" env-default:"https://v3.football.api-sports.io"`
	APISportsTimeout time.Duration `yaml:"timeout" env-default:"10s"`
}

// SMTP configures the mail relay used for password-reset emails.
type SMTP struct {
	SMTPHost string `yaml:"host" env:"SMTP_HOST"`
	SMTPPort string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	SMTPUser string `yaml:"user" env:"SMTP_USER"`
	SMTPPass string `yaml:"pass" env:"SMTP_PASS"`
}

// JWTToken configures the login session token.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// Reset configures the password-reset flow.
type Reset struct {
	ResetURL      string        `yaml:"url" env:"RESET_URL" env-default:"http://localhost:5500/restablecer-contrasena.html"`
	ResetTokenTTL time.Duration `yaml:"token_ttl" env-default:"1h"`
}

// MustLoad loads the config from CONFIG_PATH and exits on failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
