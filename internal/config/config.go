package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/GearRepair_Go/internal/domain"
	"github.com/osse101/GearRepair_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
	APIKey      string // API key for authentication

	// Proxies whose X-Forwarded-For header is trusted for client IPs
	TrustedProxies []string `validate:"dive,ip"`

	DBUser     string
	DBPassword string
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBName     string `validate:"required"`
	DBMaxConns int    `validate:"min=1"`

	MaterialsConfigPath string `validate:"required"`
	MigrationsDir       string `validate:"required"`
	ShutdownTimeout     time.Duration

	// A repair factor of 0 disables that repair context
	RepairFactorQuick float64 `validate:"gte=0,lte=1"`
	RepairFactorAnvil float64 `validate:"gte=0,lte=1"`

	KitTiers map[string]domain.KitTier `validate:"required,min=1,dive"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:           strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment:         getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:         getEnv("SERVICE_NAME", DefaultServiceName),
		Version:             getEnv("VERSION", DefaultVersion),
		APIKey:              getEnv("API_KEY", ""),
		TrustedProxies:      getEnvAsList("TRUSTED_PROXIES"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:          getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		MaterialsConfigPath: getEnv("MATERIALS_CONFIG_PATH", ConfigPathMaterials),
		MigrationsDir:       getEnv("MIGRATIONS_DIR", MigrationsDir),
		ShutdownTimeout:     getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if cfg.RepairFactorQuick, err = getEnvAsFloat("REPAIR_FACTOR_QUICK", DefaultRepairFactorQuick); err != nil {
		return nil, err
	}
	if cfg.RepairFactorAnvil, err = getEnvAsFloat("REPAIR_FACTOR_ANVIL", DefaultRepairFactorAnvil); err != nil {
		return nil, err
	}
	if cfg.KitTiers, err = ParseKitTiers(getEnv("REPAIR_KIT_TIERS", DefaultKitTiers)); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseKitTiers parses "name:capacity:efficiency" entries separated by commas.
// Tier names are lower-cased.
func ParseKitTiers(raw string) (map[string]domain.KitTier, error) {
	tiers := make(map[string]domain.KitTier)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf(ErrMsgInvalidKitTierFmt, entry)
		}

		name := strings.ToLower(strings.TrimSpace(parts[0]))
		capacity, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidKitTierSpec, entry, err)
		}
		efficiency, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidKitTierSpec, entry, err)
		}

		if _, ok := tiers[name]; ok {
			return nil, fmt.Errorf(ErrMsgDuplicateKitTier, name)
		}
		tiers[name] = domain.KitTier{Name: name, Capacity: capacity, Efficiency: efficiency}
	}

	if len(tiers) == 0 {
		return nil, errors.New(ErrMsgNoKitTiers)
	}
	return tiers, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the integer value of key, or the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the duration value of key, or the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var values []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

// getEnvAsFloat parses key as a float. Unlike the other helpers an invalid
// value is an error rather than the default.
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidFloatFmt, key, raw, err)
	}
	return value, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// LoggerConfig returns the logger settings for this configuration
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.Environment == logger.EnvironmentDev)
}
