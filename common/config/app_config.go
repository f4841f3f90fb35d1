package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	mu   sync.RWMutex
	Conf = Default()
)

type ScorerConfiguration struct {
	AppName  string       `mapstructure:"appName"`
	Log      LogConf      `mapstructure:"log"`
	Engine   string       `mapstructure:"engine"`
	Workers  int          `mapstructure:"workers"`
	Cache    CacheConf    `mapstructure:"cache"`
	Defaults DefaultsConf `mapstructure:"defaults"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

type CacheConf struct {
	Enabled bool  `mapstructure:"enabled"`
	MaxCost int64 `mapstructure:"maxCost"`
	TTL     int   `mapstructure:"ttl"` // 单位是秒
}

// TTLDuration 0 表示不过期
func (c CacheConf) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// DefaultsConf 请求里没有给出场况时使用
type DefaultsConf struct {
	SeatWind       string `mapstructure:"seatWind"`
	PrevailingWind string `mapstructure:"prevailingWind"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("appName", "scorer")
	v.SetDefault("log.level", "info")
	v.SetDefault("engine", "hongkong")
	v.SetDefault("workers", 4)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.maxCost", 1<<14)
	v.SetDefault("cache.ttl", 300)
	v.SetDefault("defaults.seatWind", "east")
	v.SetDefault("defaults.prevailingWind", "east")
}

// Default 不读文件时的配置
func Default() ScorerConfiguration {
	v := viper.New()
	setDefaults(v)
	var cfg ScorerConfiguration
	// 只有默认值，不会出错
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Get 返回当前配置的副本
func Get() ScorerConfiguration {
	mu.RLock()
	defer mu.RUnlock()
	return Conf
}

func set(cfg ScorerConfiguration) {
	mu.Lock()
	Conf = cfg
	mu.Unlock()
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func decode(v *viper.Viper) (ScorerConfiguration, error) {
	var cfg ScorerConfiguration
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("解析配置文件出错: %w", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

// Load 读取配置文件，configFile 为空时只使用默认值和环境变量
func Load(configFile string) error {
	v := newViper(configFile)
	if configFile != "" {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("读取配置文件出错: %w", err)
		}
	}
	cfg, err := decode(v)
	if err != nil {
		return err
	}
	set(cfg)
	return nil
}

// Watch 监听配置文件变化，重新解析后回调 onChange
// 解析失败时保留旧配置，把错误交给 onError
func Watch(configFile string, onChange func(ScorerConfiguration), onError func(error)) error {
	v := newViper(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("读取配置文件出错: %w", err)
	}
	v.OnConfigChange(func(in fsnotify.Event) {
		if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		set(cfg)
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
	return nil
}
