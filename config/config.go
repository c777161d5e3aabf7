// Package config 从 YAML 文件和环境变量加载服务配置
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"bcdiag/logger"
)

// Config 服务配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Model  ModelConfig  `yaml:"model"`
}

// ServerConfig HTTP服务器配置
type ServerConfig struct {
	Port           int           `yaml:"port" validate:"min=1,max=65535"`
	ReadTimeout    time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout" validate:"gt=0"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" validate:"gt=0"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" validate:"gt=0"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string        `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string        `yaml:"format" validate:"omitempty,oneof=json console"`
	File   LogFileConfig `yaml:"file"`
}

// LogFileConfig 滚动日志文件配置，Path 为空时只输出到标准输出
type LogFileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

// ModelConfig 分类器选择。演示模式编译期固定，不能在此关闭
type ModelConfig struct {
	Type string `yaml:"type" validate:"omitempty,oneof=heuristic"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    120 * time.Second,
			MaxUploadBytes: 16 << 20,
			AllowedOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			File: LogFileConfig{
				MaxSizeMB:  100,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
		Model: ModelConfig{Type: "heuristic"},
	}
}

// Load 在默认配置上读取 path 并应用环境变量覆盖。文件不存在不算错误
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		c.Server.Port = p
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	return nil
}

var validate = validator.New()

// Validate 校验配置，报告所有非法字段而不只是第一个
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var combined error
	for _, fe := range fieldErrs {
		combined = multierr.Append(combined, fmt.Errorf("%s: %s", fe.Namespace(), validationMessage(fe)))
	}
	return combined
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	default:
		return "is invalid"
	}
}

// Addr HTTP服务器监听地址
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// LoggerConfig 转换为 logger 包的配置
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		File: logger.FileConfig{
			Path:       c.Log.File.Path,
			MaxSizeMB:  c.Log.File.MaxSizeMB,
			MaxBackups: c.Log.File.MaxBackups,
			MaxAgeDays: c.Log.File.MaxAgeDays,
			Compress:   c.Log.File.Compress,
		},
	}
}
