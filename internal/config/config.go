// Package config предоставялет структуры и функции для парсинга и загрузки конфига
// прокси-сервера и консоли администратора.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	Upstream        `yaml:"upstream"`
	Console         `yaml:"console"`
	RedisConnection `yaml:"redis_connection"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT"`
}

// Upstream структура с базовыми адресами внешнего API для каждой области (scope).
// UpstreamTimeout равный нулю означает отсутствие таймаута.
type Upstream struct {
	AdminURL        string        `yaml:"admin_url" env:"UPSTREAM_ADMIN_URL" env-default:"https://atmt.jinzmedia.com/api/v1/admin"`
	AutomationURL   string        `yaml:"automation_url" env:"UPSTREAM_AUTOMATION_URL" env-default:"https://atmt.jinzmedia.com/api/v1/admin"`
	UpstreamTimeout time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
}

// Console структура для настройки консольного клиента adminctl
type Console struct {
	ProxyURL   string `yaml:"proxy_url" env:"ADMIN_PROXY_URL" env-default:"http://localhost:8080"`
	TokenStore string `yaml:"token_store" env:"ADMIN_TOKEN_STORE" env-default:"file"`
	TokenPath  string `yaml:"token_path" env:"ADMIN_TOKEN_PATH"`
	TokenKey   string `yaml:"token_key" env:"ADMIN_TOKEN_KEY" env-default:"adminToken"`
}

// RedisConnection структура для настройки подключения к redis (хранилище токена)
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// MustLoad загружает конфиг из файла, указанного в CONFIG_PATH, и завершает процесс при ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает конфиг из файла path. Если path пустой, настройки берутся
// только из переменных окружения и значений по умолчанию.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

func (c *Config) String() string {
	password := ""
	if c.Password != "" {
		password = "***"
	}
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Upstream:\n"+
			"  Admin: %s\n"+
			"  Automation: %s\n"+
			"  Timeout: %s\n"+
			"Console:\n"+
			"  ProxyURL: %s\n"+
			"  TokenStore: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  Password: %s\n"+
			"  DB: %d\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.AdminURL,
		c.AutomationURL,
		c.UpstreamTimeout,
		c.ProxyURL,
		c.TokenStore,
		c.AddressRedis,
		password,
		c.DB,
	)
}
