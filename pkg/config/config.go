// Package config загружает настройки клиента Phoenix Lab из config.yaml.
//
// Файл необязателен: клиент должен запускаться без конфигурации,
// поэтому каждая секция имеет GetDefaults().
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvAPIURL переопределяет backend.base_url.
const EnvAPIURL = "PHOENIX_API_URL"

// DefaultBaseURL — адрес backend по умолчанию.
const DefaultBaseURL = "http://localhost:5000"

// AppConfig — корневая структура конфигурации.
type AppConfig struct {
	Backend BackendConfig `yaml:"backend"`
	Rewrite RewriteConfig `yaml:"rewrite"`
	UI      UIConfig      `yaml:"ui"`
	Prefs   PrefsConfig   `yaml:"prefs"`
	Archive ArchiveConfig `yaml:"archive"`
	App     AppSpecific   `yaml:"app"`
}

// BackendConfig — параметры HTTP API backend сервера.
type BackendConfig struct {
	BaseURL    string `yaml:"base_url"`    // Базовый URL (например, "http://localhost:5000")
	Timeout    string `yaml:"timeout"`     // Timeout для HTTP запросов ("30s")
	RateLimit  int    `yaml:"rate_limit"`  // Запросов в минуту на endpoint
	BurstLimit int    `yaml:"burst_limit"` // Burst для rate limiter
}

// GetDefaults возвращает копию с дефолтными значениями для незаполненных полей.
func (c *BackendConfig) GetDefaults() BackendConfig {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = DefaultBaseURL
	}
	result.BaseURL = strings.TrimRight(result.BaseURL, "/")
	if result.Timeout == "" {
		result.Timeout = "30s"
	}
	if result.RateLimit == 0 {
		result.RateLimit = 60
	}
	if result.BurstLimit == 0 {
		result.BurstLimit = 3
	}

	return result
}

// TimeoutDuration парсит Timeout. Ожидает уже применённые дефолты.
func (c BackendConfig) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid backend.timeout format: %w", err)
	}
	return d, nil
}

// Режимы рерайта.
const (
	RewriteModeAPI  = "api"
	RewriteModeMock = "mock"
)

// RewriteConfig — выбор реализации рерайта.
type RewriteConfig struct {
	Mode      string        `yaml:"mode"`       // "api" (по умолчанию) или "mock"
	MockDelay time.Duration `yaml:"mock_delay"` // Задержка mock режима ("2s")
}

// GetDefaults возвращает копию с дефолтными значениями.
func (c *RewriteConfig) GetDefaults() RewriteConfig {
	result := *c
	if result.Mode == "" {
		result.Mode = RewriteModeAPI
	}
	if result.MockDelay == 0 {
		result.MockDelay = 2 * time.Second
	}
	return result
}

// UIConfig — настройки терминального интерфейса.
type UIConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// GetDefaults возвращает копию с дефолтными значениями.
func (c *UIConfig) GetDefaults() UIConfig {
	result := *c
	if result.Title == "" {
		result.Title = "Phoenix Lab"
	}
	if result.Subtitle == "" {
		result.Subtitle = "AI Рерайт Статей"
	}
	return result
}

// PrefsConfig — локальное хранилище пользовательских настроек (тема).
type PrefsConfig struct {
	Path string `yaml:"path"` // Путь к sqlite файлу
}

// GetDefaults возвращает копию с дефолтными значениями.
//
// По умолчанию файл лежит в пользовательском config каталоге,
// при его отсутствии в текущей директории.
func (c *PrefsConfig) GetDefaults() PrefsConfig {
	result := *c
	if result.Path == "" {
		result.Path = "phoenix-prefs.db"
		if dir, err := os.UserConfigDir(); err == nil {
			result.Path = dir + string(os.PathSeparator) + "phoenix-lab" + string(os.PathSeparator) + "prefs.db"
		}
	}
	return result
}

// ArchiveConfig — архив отправленных статей в S3-совместимом хранилище.
type ArchiveConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	AccessKey string `yaml:"access_key"` // Поддерживает ${VAR}
	SecretKey string `yaml:"secret_key"` // Поддерживает ${VAR}
	UseSSL    bool   `yaml:"use_ssl"`
}

// AppSpecific — общие настройки приложения.
type AppSpecific struct {
	Debug  bool   `yaml:"debug"`
	LogDir string `yaml:"log_dir"`
}

// Default возвращает конфигурацию, которая используется без config.yaml.
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

// Load читает YAML файл, подставляет ENV переменные и возвращает готовую структуру.
//
// Пустой путь означает работу без config.yaml: возвращаются дефолты.
// Явно указанный, но отсутствующий файл является ошибкой.
func Load(path string) (*AppConfig, error) {
	if path == "" {
		return Default(), nil
	}

	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// os.ExpandEnv заменяет ${VAR} или $VAR на значение из системы.
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	c.Backend = c.Backend.GetDefaults()
	c.Rewrite = c.Rewrite.GetDefaults()
	c.UI = c.UI.GetDefaults()
	c.Prefs = c.Prefs.GetDefaults()
}

// applyEnv применяет переопределения из окружения.
func (c *AppConfig) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.Backend.BaseURL = strings.TrimRight(v, "/")
	}
}

// validate проверяет согласованность полей.
func (c *AppConfig) validate() error {
	if _, err := c.Backend.TimeoutDuration(); err != nil {
		return err
	}
	if c.Backend.RateLimit < 0 || c.Backend.BurstLimit < 0 {
		return fmt.Errorf("backend.rate_limit and backend.burst_limit must be positive")
	}
	switch c.Rewrite.Mode {
	case RewriteModeAPI, RewriteModeMock:
	default:
		return fmt.Errorf("rewrite.mode must be %q or %q, got %q", RewriteModeAPI, RewriteModeMock, c.Rewrite.Mode)
	}
	if c.Archive.Enabled {
		if c.Archive.Endpoint == "" {
			return fmt.Errorf("archive.endpoint is required when archive is enabled")
		}
		if c.Archive.Bucket == "" {
			return fmt.Errorf("archive.bucket is required when archive is enabled")
		}
	}
	return nil
}
