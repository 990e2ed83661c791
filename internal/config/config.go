// Package config 提供配置加载和管理功能
package config

import (
	"time"
)

// Config 应用配置根结构
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	LLM           LLMConfig           `yaml:"llm" mapstructure:"llm"`
	Generation    GenerationConfig    `yaml:"generation" mapstructure:"generation"`
	Pacing        PacingConfig        `yaml:"pacing" mapstructure:"pacing"`
	Output        OutputConfig        `yaml:"output" mapstructure:"output"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
}

// LLMConfig LLM 配置
type LLMConfig struct {
	DefaultProvider string                    `yaml:"default_provider" mapstructure:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers" mapstructure:"providers"`
}

// ProviderConfig LLM 提供商配置
type ProviderConfig struct {
	APIKey      string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Model       string        `yaml:"model" mapstructure:"model"`
	MaxTokens   int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// GenerationConfig 生成策略配置
type GenerationConfig struct {
	// Language 目标写作语言
	Language string `yaml:"language" mapstructure:"language"`
	// MaxAttempts 单章最多生成次数（含首次）
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
	// ContextTailRunes 续写上下文保留上一章末尾的字符数
	ContextTailRunes int `yaml:"context_tail_runes" mapstructure:"context_tail_runes"`
}

// PacingConfig 任务间限速配置
type PacingConfig struct {
	// Mode 限速模式：fixed 或 redis
	Mode string `yaml:"mode" mapstructure:"mode"`
	// Interval fixed 模式下每个任务执行前的固定间隔
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
	Redis    RedisPacing   `yaml:"redis" mapstructure:"redis"`
}

// RedisPacing redis 模式滑动窗口限速配置
type RedisPacing struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	Password     string        `yaml:"password" mapstructure:"password"`
	DB           int           `yaml:"db" mapstructure:"db"`
	Key          string        `yaml:"key" mapstructure:"key"`
	Limit        int           `yaml:"limit" mapstructure:"limit"`
	Window       time.Duration `yaml:"window" mapstructure:"window"`
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`
}

// OutputConfig 输出配置
type OutputConfig struct {
	// Dir 文档输出根目录，每次运行在其下创建时间戳子目录
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Port    int    `yaml:"port" mapstructure:"port"`
	Path    string `yaml:"path" mapstructure:"path"`
}
