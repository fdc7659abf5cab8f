package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar points at an optional YAML file layered between defaults and env.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultSessionSecret only signs cookies in debug and test runs.
const DefaultSessionSecret = "potatolake-dev-secret"

// DefaultConfigPaths are probed in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr         string `koanf:"listen_addr"`
	Port               string `koanf:"port"`
	DatabasePath       string `koanf:"database_path"`
	DatabaseURL        string `koanf:"database_url"`
	SessionSecret      string `koanf:"session_secret"`
	GinMode            string `koanf:"gin_mode"`
	UploadDir          string `koanf:"upload_dir"`
	UploadURLPath      string `koanf:"upload_url_path"`
	BlobDriver         string `koanf:"blob_driver"`
	BlobBaseURL        string `koanf:"blob_base_url"`
	BlobPublicURL      string `koanf:"blob_public_url"`
	BlobToken          string `koanf:"blob_token"`
	AdminUserName      string `koanf:"admin_username"`
	AdminPassword      string `koanf:"admin_password"`
	SiteBaseURL        string `koanf:"site_base_url"`
	LogLevel           string `koanf:"log_level"`
	LogFormat          string `koanf:"log_format"`
	LoginRatePerMinute int    `koanf:"login_rate_per_minute"`
}

func defaults() AppConfig {
	return AppConfig{
		Port:               "8080",
		DatabasePath:       "potatolake.db",
		SessionSecret:      DefaultSessionSecret,
		GinMode:            "release",
		UploadDir:          "web/static/uploads",
		UploadURLPath:      "/static/uploads",
		BlobDriver:         "local",
		SiteBaseURL:        "https://potatolake.org",
		LogLevel:           "info",
		LogFormat:          "json",
		LoginRatePerMinute: 10,
	}
}

// Load 依次读取默认值、可选的 YAML 文件与环境变量。
func Load() (AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return AppConfig{}, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return AppConfig{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return AppConfig{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

var knownKeys = map[string]struct{}{
	"listen_addr": {}, "port": {}, "database_path": {}, "database_url": {},
	"session_secret": {}, "gin_mode": {}, "upload_dir": {}, "upload_url_path": {},
	"blob_driver": {}, "blob_base_url": {}, "blob_public_url": {}, "blob_token": {},
	"admin_username": {}, "admin_password": {}, "site_base_url": {},
	"log_level": {}, "log_format": {}, "login_rate_per_minute": {},
}

// envKey maps PORT -> port and drops everything the app does not own.
func envKey(key string) string {
	lowered := strings.ToLower(strings.TrimSpace(key))
	if _, ok := knownKeys[lowered]; !ok {
		return ""
	}
	return lowered
}

// envValue skips empty variables so they never mask file or default values.
func envValue(key, value string) (string, interface{}) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return envKey(key), value
}

func findConfigFile() string {
	if path := strings.TrimSpace(os.Getenv(ConfigPathEnvVar)); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (c *AppConfig) normalize() {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "8080"
	}
	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	if c.ListenAddr == "" {
		c.ListenAddr = ":" + c.Port
	}
	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	c.BlobDriver = strings.ToLower(strings.TrimSpace(c.BlobDriver))
	if c.BlobDriver == "" {
		c.BlobDriver = "local"
	}
	c.UploadURLPath = "/" + strings.Trim(strings.TrimSpace(c.UploadURLPath), "/")
	c.AdminUserName = strings.TrimSpace(c.AdminUserName)
	c.GinMode = strings.ToLower(strings.TrimSpace(c.GinMode))
	if c.LoginRatePerMinute <= 0 {
		c.LoginRatePerMinute = 10
	}
}

// Validate rejects combinations the server cannot start with.
func (c AppConfig) Validate() error {
	switch c.BlobDriver {
	case "local":
		if strings.TrimSpace(c.UploadDir) == "" {
			return fmt.Errorf("config: upload_dir is required for the local blob driver")
		}
	case "http":
		if strings.TrimSpace(c.BlobBaseURL) == "" {
			return fmt.Errorf("config: blob_base_url is required for the http blob driver")
		}
	default:
		return fmt.Errorf("config: unknown blob_driver %q", c.BlobDriver)
	}
	if strings.TrimSpace(c.SessionSecret) == "" {
		return fmt.Errorf("config: session_secret must not be empty")
	}
	if c.SessionSecret == DefaultSessionSecret && !c.DevMode() {
		return fmt.Errorf("config: session_secret must be set in release mode")
	}
	return nil
}

// DevMode reports whether gin runs in debug or test mode. Anything else starts as release.
func (c AppConfig) DevMode() bool {
	return c.GinMode == "debug" || c.GinMode == "test"
}

// UsesPostgres reports whether DATABASE_URL selects the postgres driver.
func (c AppConfig) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}
