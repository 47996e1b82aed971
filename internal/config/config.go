// Package config 加载 mdkloc 的可选配置文件。
// 配置只提供默认值：命令行 flag 显式给出的值永远优先。
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config 是 .mdkloc.yaml 的完整结构。
type Config struct {
	Workers      int      `mapstructure:"workers"`
	Format       string   `mapstructure:"format"`
	Output       string   `mapstructure:"output"`
	Ignore       []string `mapstructure:"ignore"`
	Filespec     string   `mapstructure:"filespec"`
	MaxDepth     int      `mapstructure:"max_depth"`
	MaxEntries   int      `mapstructure:"max_entries"`
	NonRecursive bool     `mapstructure:"non_recursive"`
	Roles        bool     `mapstructure:"roles"`
	Profiles     string   `mapstructure:"profiles"`
}

// Load 按“工作目录 → 用户主目录”的顺序查找 .mdkloc.yaml。
// 找不到配置文件不是错误，返回内置默认值。
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".mdkloc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return loadFrom(v)
}

// LoadFile 从显式指定的路径读取配置，路径无效时报错。
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return loadFrom(v)
}

// loadFrom 反序列化并补齐默认值。
func loadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(v, cfg)

	if cfg.Format != "table" && cfg.Format != "json" {
		return nil, fmt.Errorf("config: unsupported format %q", cfg.Format)
	}

	return cfg, nil
}

// applyDefaults 给未设置的字段填充默认值。
// 数值字段用 IsSet 区分“未配置”和“显式写 0”，显式零值原样保留。
func applyDefaults(v *viper.Viper, cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = "table"
	}
	if cfg.Output == "" {
		cfg.Output = "output.json"
	}
	if !v.IsSet("max_depth") && cfg.MaxDepth == 0 {
		cfg.MaxDepth = 100
	}
	if !v.IsSet("max_entries") && cfg.MaxEntries == 0 {
		cfg.MaxEntries = 1000000
	}
}
