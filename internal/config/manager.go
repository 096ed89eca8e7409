// Package config provides environment-sourced configuration management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"lingo-gate/internal/types"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Constants for configuration limits and defaults
const (
	minPort           = 1
	maxPort           = 65535
	defaultPort       = 3000
	defaultHost       = "127.0.0.1"
	defaultModelsDir  = "models"
	defaultWorkers    = 1
	defaultDSN        = "data/lingo-gate.db"
	defaultCacheTTL   = 300
	defaultMaxInUse   = 100
	defaultTimeoutSec = 60
)

// Config represents the application configuration loaded from the environment.
type Config struct {
	Server      types.ServerConfig      `json:"server"`
	Engine      types.EngineConfig      `json:"engine"`
	Auth        types.AuthConfig        `json:"auth"`
	CORS        types.CORSConfig        `json:"cors"`
	Performance types.PerformanceConfig `json:"performance"`
	Log         types.LogConfig         `json:"log"`
	Database    types.DatabaseConfig    `json:"database"`
}

// Manager implements the types.ConfigManager interface.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new configuration manager from the process environment.
// A .env file in the working directory is honored when present.
func NewManager() (types.ConfigManager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	manager := &Manager{}
	if err := manager.ReloadConfig(); err != nil {
		return nil, err
	}

	return manager, nil
}

// ReloadConfig re-reads the environment into a fresh Config and validates it.
func (m *Manager) ReloadConfig() error {
	config := &Config{
		Server: types.ServerConfig{
			Port:                    parseInteger(os.Getenv("PORT"), defaultPort),
			Host:                    getEnvOrDefault("HOST", defaultHost),
			ReadTimeout:             parseInteger(os.Getenv("SERVER_READ_TIMEOUT"), defaultTimeoutSec),
			WriteTimeout:            parseInteger(os.Getenv("SERVER_WRITE_TIMEOUT"), defaultTimeoutSec*10),
			IdleTimeout:             parseInteger(os.Getenv("SERVER_IDLE_TIMEOUT"), 120),
			GracefulShutdownTimeout: parseInteger(os.Getenv("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT"), 10),
		},
		Engine: types.EngineConfig{
			ModelsDir:       getEnvOrDefault("MODELS_DIR", defaultModelsDir),
			Workers:         parseInteger(os.Getenv("NUM_WORKERS"), defaultWorkers),
			CacheTTLSeconds: parseInteger(os.Getenv("TRANSLATION_CACHE_TTL"), defaultCacheTTL),
		},
		Auth: types.AuthConfig{
			Key: os.Getenv("AUTH_KEY"),
		},
		CORS: types.CORSConfig{
			Enabled:          parseBoolean(os.Getenv("ENABLE_CORS"), true),
			AllowedOrigins:   parseArray(os.Getenv("ALLOWED_ORIGINS"), []string{"*"}),
			AllowedMethods:   parseArray(os.Getenv("ALLOWED_METHODS"), []string{"GET", "POST", "OPTIONS"}),
			AllowedHeaders:   parseArray(os.Getenv("ALLOWED_HEADERS"), []string{"*"}),
			AllowCredentials: parseBoolean(os.Getenv("ALLOW_CREDENTIALS"), false),
		},
		Performance: types.PerformanceConfig{
			MaxConcurrentRequests: parseInteger(os.Getenv("MAX_CONCURRENT_REQUESTS"), defaultMaxInUse),
		},
		Log: types.LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			EnableFile: parseBoolean(os.Getenv("LOG_ENABLE_FILE"), false),
			FilePath:   getEnvOrDefault("LOG_FILE_PATH", "logs/app.log"),
		},
		Database: types.DatabaseConfig{
			DSN: databaseDSN(),
		},
	}

	m.mu.Lock()
	m.config = config
	m.mu.Unlock()

	return m.Validate()
}

// Validate checks the configuration for invalid values.
func (m *Manager) Validate() error {
	m.mu.RLock()
	config := m.config
	m.mu.RUnlock()

	var validationErrors []string

	if config.Server.Port < minPort || config.Server.Port > maxPort {
		validationErrors = append(validationErrors, fmt.Sprintf("port must be between %d-%d", minPort, maxPort))
	}

	if config.Engine.Workers < 1 {
		validationErrors = append(validationErrors, "worker count cannot be less than 1")
	}

	if config.Engine.ModelsDir == "" {
		validationErrors = append(validationErrors, "models directory cannot be empty")
	}

	if config.Performance.MaxConcurrentRequests < 1 {
		validationErrors = append(validationErrors, "max concurrent requests cannot be less than 1")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(validationErrors, "; "))
	}

	return nil
}

// GetAuthConfig returns authentication configuration
func (m *Manager) GetAuthConfig() types.AuthConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Auth
}

// GetCORSConfig returns CORS configuration
func (m *Manager) GetCORSConfig() types.CORSConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.CORS
}

// GetPerformanceConfig returns performance configuration
func (m *Manager) GetPerformanceConfig() types.PerformanceConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Performance
}

// GetLogConfig returns logging configuration
func (m *Manager) GetLogConfig() types.LogConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Log
}

// GetDatabaseConfig returns request-log database configuration
func (m *Manager) GetDatabaseConfig() types.DatabaseConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Database
}

// GetEngineConfig returns translation engine configuration
func (m *Manager) GetEngineConfig() types.EngineConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Engine
}

// GetEffectiveServerConfig returns the server configuration
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Server
}

// DisplayServerConfig logs the effective configuration at startup.
func (m *Manager) DisplayServerConfig() {
	m.mu.RLock()
	config := m.config
	m.mu.RUnlock()

	authMode := "open (no AUTH_KEY configured)"
	if config.Auth.Key != "" {
		authMode = "shared key"
	}
	requestLog := "disabled"
	if config.Database.DSN != "" {
		requestLog = config.Database.DSN
	}

	logrus.Info("Server configuration:")
	logrus.Infof("  Listen address: %s:%d", config.Server.Host, config.Server.Port)
	logrus.Infof("  Models directory: %s", config.Engine.ModelsDir)
	logrus.Infof("  Engine workers: %d", config.Engine.Workers)
	logrus.Infof("  Authentication: %s", authMode)
	logrus.Infof("  Request log: %s", requestLog)
	logrus.Infof("  Max concurrent requests: %d", config.Performance.MaxConcurrentRequests)
}

// databaseDSN reads DATABASE_DSN, distinguishing unset from explicitly
// empty. An explicitly empty value disables request logging.
func databaseDSN() string {
	if value, ok := os.LookupEnv("DATABASE_DSN"); ok {
		return value
	}
	return defaultDSN
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseInteger parses an integer from a string with a default fallback
func parseInteger(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return defaultValue
}

// parseBoolean parses a boolean from a string with a default fallback
func parseBoolean(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed
	}
	return defaultValue
}

// parseArray parses a comma-separated string into a slice
func parseArray(value string, defaultValue []string) []string {
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
