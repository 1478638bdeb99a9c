// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/rapidaai/gujarati-frontend/pkg/commons"
	"github.com/rapidaai/gujarati-frontend/pkg/utils"
)

type RedisConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	DB       int    `mapstructure:"db" validate:"min=0"`
	Password string `mapstructure:"password"`
}

type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TtlSeconds int  `mapstructure:"ttl_seconds" validate:"min=1"`
}

type NormalizerConfig struct {
	// Rules is a comma separated subset of rule names; empty selects every rule.
	Rules string `mapstructure:"rules"`
}

type CorsConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// Application config structure
type AppConfig struct {
	Name             string           `mapstructure:"service_name" validate:"required"`
	Version          string           `mapstructure:"version" validate:"required"`
	Env              string           `mapstructure:"env" validate:"required"`
	Host             string           `mapstructure:"host" validate:"required"`
	Port             int              `mapstructure:"port" validate:"required,min=1,max=65535"`
	LogLevel         string           `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFile          string           `mapstructure:"log_file"`
	BatchConcurrency int              `mapstructure:"batch_concurrency" validate:"required,min=1"`
	RedisConfig      RedisConfig      `mapstructure:"redis" validate:"required"`
	CacheConfig      CacheConfig      `mapstructure:"cache" validate:"required"`
	NormalizerConfig NormalizerConfig `mapstructure:"normalizer"`
	CorsConfig       CorsConfig       `mapstructure:"cors"`
}

func (cfg *AppConfig) IsDevelopment() bool {
	return utils.FromEnvironmentStr(cfg.Env) == utils.DEVELOPMENT
}

func (cfg *AppConfig) CacheTTL() time.Duration {
	return time.Duration(cfg.CacheConfig.TtlSeconds) * time.Second
}

// NormalizerRules splits NORMALIZER__RULES into names, dropping blanks.
func (cfg *AppConfig) NormalizerRules() []string {
	return splitList(cfg.NormalizerConfig.Rules)
}

// AllowedOrigins returns the CORS origins; empty means any origin.
func (cfg *AppConfig) AllowedOrigins() []string {
	return splitList(cfg.CorsConfig.AllowedOrigins)
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, commons.SEPARATOR) {
		if !utils.IsEmpty(part) {
			out = append(out, strings.TrimSpace(part))
		}
	}
	return out
}

// reading config and intializing configs for application
func InitConfig() (*viper.Viper, error) {
	vConfig := viper.NewWithOptions(viper.KeyDelimiter("__"))

	vConfig.AddConfigPath(".")
	vConfig.SetConfigName(".env")
	path := os.Getenv("ENV_PATH")
	if path != "" {
		log.Printf("env path %v", path)
		vConfig.SetConfigFile(path)
	}
	vConfig.SetConfigType("env")
	vConfig.AutomaticEnv()

	setDefault(vConfig)
	if err := vConfig.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !(errors.As(err, &notFound) || os.IsNotExist(err)) {
			return nil, err
		}
		log.Printf("Reading from env variables.")
	}
	return vConfig, nil
}

func setDefault(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "gujarati-frontend")
	v.SetDefault("VERSION", "0.0.1")
	v.SetDefault("ENV", utils.DEVELOPMENT.Get())
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 9090)
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("BATCH_CONCURRENCY", 4)

	v.SetDefault("REDIS__HOST", "localhost")
	v.SetDefault("REDIS__PORT", 6379)
	v.SetDefault("REDIS__DB", 0)
	v.SetDefault("REDIS__PASSWORD", "")

	v.SetDefault("CACHE__ENABLED", false)
	v.SetDefault("CACHE__TTL_SECONDS", 3600)

	v.SetDefault("NORMALIZER__RULES", "")
	v.SetDefault("CORS__ALLOWED_ORIGINS", "")
}

// Getting application config from viper
func GetApplicationConfig(v *viper.Viper) (*AppConfig, error) {
	var config AppConfig
	err := v.Unmarshal(&config)
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}

	// valdating the app config
	validate := validator.New()
	err = validate.Struct(&config)
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}
	return &config, nil
}
