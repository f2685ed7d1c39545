package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
	"github.com/riskibarqy/fantasy-hockey/internal/usecase"
)

const (
	DefaultSeason      = 2026
	DefaultESPNBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fhl"
	DefaultEnvFile     = ".env"
)

// Config stores runtime configuration for one CLI invocation. It is read once
// at startup and never mutated.
type Config struct {
	ServiceName    string        `validate:"required"`
	ServiceVersion string        `validate:"required"`
	LeagueID       int64         `validate:"required,gt=0"`
	SWID           string        `validate:"required"`
	ESPNS2         string        `validate:"required"`
	Season         int           `validate:"gte=2000,lte=2100"`
	ESPNBaseURL    string        `validate:"required,url"`
	ESPNTimeout    time.Duration `validate:"gt=0"`
	UptraceEnabled bool
	UptraceDSN     string `validate:"required_if=UptraceEnabled true"`
	LogLevel       logging.Level
}

var envNameByField = map[string]string{
	"ServiceName":    "APP_SERVICE_NAME",
	"ServiceVersion": "APP_SERVICE_VERSION",
	"LeagueID":       "ESPN_LEAGUE_ID",
	"SWID":           "ESPN_SWID",
	"ESPNS2":         "ESPN_S2",
	"Season":         "ESPN_YEAR",
	"ESPNBaseURL":    "ESPN_BASE_URL",
	"ESPNTimeout":    "ESPN_TIMEOUT",
	"UptraceDSN":     "UPTRACE_DSN",
}

var validate = validator.New()

// Load reads the optional dotenv file named by ENV_FILE (default .env) and then
// the process environment. Variables already set in the environment win.
func Load() (Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", DefaultEnvFile)); err != nil {
		return Config{}, err
	}

	leagueID, err := getEnvAsInt64("ESPN_LEAGUE_ID", 0)
	if err != nil {
		return Config{}, configError(fmt.Errorf("parse ESPN_LEAGUE_ID: %w", err))
	}
	season, err := getEnvAsInt("ESPN_YEAR", DefaultSeason)
	if err != nil {
		return Config{}, configError(fmt.Errorf("parse ESPN_YEAR: %w", err))
	}
	espnTimeout, err := time.ParseDuration(getEnv("ESPN_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, configError(fmt.Errorf("parse ESPN_TIMEOUT: %w", err))
	}
	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, configError(fmt.Errorf("parse UPTRACE_ENABLED: %w", err))
	}

	cfg := Config{
		ServiceName:    getEnv("APP_SERVICE_NAME", "fantasy-hockey"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LeagueID:       leagueID,
		SWID:           strings.TrimSpace(getEnv("ESPN_SWID", "")),
		ESPNS2:         strings.TrimSpace(getEnv("ESPN_S2", "")),
		Season:         season,
		ESPNBaseURL:    strings.TrimRight(strings.TrimSpace(getEnv("ESPN_BASE_URL", DefaultESPNBaseURL)), "/"),
		ESPNTimeout:    espnTimeout,
		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "warn")),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every invalid field by its environment variable name.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return configError(fmt.Errorf("validate config: %w", err))
	}

	missing := make([]string, 0, len(fieldErrs))
	invalid := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := envNameByField[fe.StructField()]
		if name == "" {
			name = fe.StructField()
		}
		switch fe.Tag() {
		case "required", "required_if":
			missing = append(missing, name)
		default:
			invalid = append(invalid, fmt.Sprintf("%s (%s=%s)", name, fe.Tag(), fe.Param()))
		}
	}

	parts := make([]string, 0, 2)
	if len(missing) > 0 {
		parts = append(parts, "missing environment variable(s): "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid environment variable(s): "+strings.Join(invalid, ", "))
	}
	return configError(errors.New(strings.Join(parts, "; ")))
}

func configError(err error) error {
	return crerr.Mark(err, usecase.ErrConfiguration)
}

func loadEnvFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return configError(fmt.Errorf("load env file %s: %w", path, err))
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "info":
		return logging.LevelInfo
	case "error":
		return logging.LevelError
	default:
		return logging.LevelWarn
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseInt(value, 10, 64)
}
