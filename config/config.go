// Package config 通过 Viper 读取生成器配置 (TOML 文件 + URM_ 环境变量)。
package config

import (
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	envPrefix        = "URM"
	configName       = "urm"
	configType       = "toml"
	DefaultPresenter = "plantuml"
)

// Config 是一次生成所需的全部配置
type Config struct {
	ShowParameterNames bool         `mapstructure:"show_parameter_names"`
	Presenter          string       `mapstructure:"presenter"`
	Workers            int          `mapstructure:"workers"`
	Source             SourceConfig `mapstructure:"source"`
	Output             OutputConfig `mapstructure:"output"`
	Log                LogConfig    `mapstructure:"log"`
}

type SourceConfig struct {
	Roots    []string `mapstructure:"roots"`
	Packages []string `mapstructure:"packages"`
	Ignore   []string `mapstructure:"ignore"`
	Manifest string   `mapstructure:"manifest"`
	// IncludeInnerClasses 为 false 时嵌套类型不进入图
	IncludeInnerClasses bool `mapstructure:"include_inner_classes"`
}

type OutputConfig struct {
	// Path 为空时输出到 stdout
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults 写入全部默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("show_parameter_names", true)
	v.SetDefault("presenter", DefaultPresenter)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("source.roots", []string{"."})
	v.SetDefault("source.packages", []string{})
	v.SetDefault("source.ignore", []string{})
	v.SetDefault("source.manifest", "")
	v.SetDefault("source.include_inner_classes", true)
	v.SetDefault("output.path", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// New 创建带默认值与环境变量绑定的 Viper 实例。
// configPath 非空时必须能读到该文件；为空时在当前目录查找 urm.toml，找不到不算错误。
func New(configPath string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType(configType)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
		}
		return v, nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read urm.toml")
		}
	}
	return v, nil
}

// Load 读取配置并解码
func Load(configPath string) (*Config, error) {
	v, err := New(configPath)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper 从已有的 Viper 实例解码配置 (命令行 flag 绑定后使用)
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查取值范围
func (c *Config) Validate() error {
	if c.Presenter == "" {
		return errors.New("presenter must not be empty")
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if len(c.Source.Roots) == 0 && c.Source.Manifest == "" {
		return errors.WithHint(errors.New("no source roots configured"),
			"set source.roots in urm.toml or pass --source")
	}
	return nil
}
