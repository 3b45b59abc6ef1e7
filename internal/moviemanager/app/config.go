package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aussiebroadwan/moviemanager/internal/moviemanager/swapi"
	"github.com/aussiebroadwan/moviemanager/pkg/cryptox"
	"github.com/aussiebroadwan/moviemanager/pkg/jwtx"

	"github.com/spf13/viper"
)

// DefaultConfigFile is read when present; CONFIG_FILE points elsewhere.
const DefaultConfigFile = "appsettings.json"

// JWTConfig holds everything needed to mint and check session tokens. It is
// built once at startup and passed by value.
type JWTConfig struct {
	Key      []byte
	Issuer   string
	Audience string
	Duration time.Duration
}

type Config struct {
	JWT                 JWTConfig
	DatabaseFile        string        // SQLite database path (default: moviemanager.db)
	StarWarsBaseURL     string        // Star Wars API base, ends with a slash
	BcryptCost          int           // bcrypt work factor (default: 11)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5285)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	// EphemeralKey is set when no JWT key was configured in dev and a random
	// one was generated. Tokens do not survive a restart.
	EphemeralKey bool
}

// Setting keys and the environment variables that override them.
var envBindings = map[string]string{
	"config_file":             "CONFIG_FILE",
	"jwt.key":                 "JWT_KEY",
	"jwt.issuer":              "JWT_ISSUER",
	"jwt.audience":            "JWT_AUDIENCE",
	"jwt.duration_in_minutes": "JWT_DURATION_IN_MINUTES",
	"database.file":           "DATABASE_FILE",
	"external_api.star_wars":  "EXTERNAL_API_STAR_WARS",
	"bcrypt.cost":             "BCRYPT_COST",
	"port":                    "PORT",
	"env":                     "ENV",
	"log.level":               "LOG_LEVEL",
	"log.format":              "LOG_FORMAT",
	"shutdown_grace_period":   "SHUTDOWN_GRACE_PERIOD",
}

var (
	ErrMissingIssuer   = errors.New("config: jwt.issuer (JWT_ISSUER) is required")
	ErrMissingAudience = errors.New("config: jwt.audience (JWT_AUDIENCE) is required")
	ErrMissingKey      = errors.New("config: jwt.key (JWT_KEY) is required outside dev")
	ErrBadDuration     = errors.New("config: jwt.duration_in_minutes must be positive")
	ErrBadPort         = errors.New("config: port must be between 1 and 65535")
)

// LoadConfig layers defaults, the optional JSON settings file and the
// environment, in increasing precedence, and validates the result.
func LoadConfig() (Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (Config, error) {
	v.SetDefault("config_file", DefaultConfigFile)
	v.SetDefault("jwt.duration_in_minutes", int(jwtx.DefaultTokenTTL/time.Minute))
	v.SetDefault("database.file", "moviemanager.db")
	v.SetDefault("external_api.star_wars", swapi.DefaultBaseURL)
	v.SetDefault("bcrypt.cost", cryptox.DefaultBcryptCost)
	v.SetDefault("port", 5285)
	v.SetDefault("env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("shutdown_grace_period", 10*time.Second)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	cfg := Config{
		JWT: JWTConfig{
			Key:      []byte(v.GetString("jwt.key")),
			Issuer:   v.GetString("jwt.issuer"),
			Audience: v.GetString("jwt.audience"),
			Duration: time.Duration(v.GetInt("jwt.duration_in_minutes")) * time.Minute,
		},
		DatabaseFile:        v.GetString("database.file"),
		StarWarsBaseURL:     v.GetString("external_api.star_wars"),
		BcryptCost:          v.GetInt("bcrypt.cost"),
		Env:                 v.GetString("env"),
		LogLevel:            v.GetString("log.level"),
		LogFormat:           v.GetString("log.format"),
		Port:                v.GetInt("port"),
		ShutdownGracePeriod: v.GetDuration("shutdown_grace_period"),
	}

	if len(cfg.JWT.Key) == 0 && cfg.Env == "dev" {
		key, err := cryptox.GenerateToken(cryptox.KeySize256)
		if err != nil {
			return Config{}, fmt.Errorf("config: generate dev jwt key: %w", err)
		}
		cfg.JWT.Key = []byte(key)
		cfg.EphemeralKey = true
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readConfigFile merges the JSON settings file. The default file is
// optional; a file named explicitly through CONFIG_FILE must exist.
func readConfigFile(v *viper.Viper) error {
	path := v.GetString("config_file")
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigFile {
			return nil
		}
		return fmt.Errorf("config: %s: %w", path, err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// Validate reports the first setting that would stop the service from
// running correctly.
func (c Config) Validate() error {
	switch {
	case c.JWT.Issuer == "":
		return ErrMissingIssuer
	case c.JWT.Audience == "":
		return ErrMissingAudience
	case len(c.JWT.Key) == 0:
		return ErrMissingKey
	case len(c.JWT.Key) < jwtx.MinKeySize:
		return fmt.Errorf("config: jwt.key: %w", jwtx.ErrKeyTooShort)
	case c.JWT.Duration <= 0:
		return ErrBadDuration
	case c.Port < 1 || c.Port > 65535:
		return ErrBadPort
	}
	return nil
}
