package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        int
	Environment string
	LogLevel    string

	DatabaseDbPath       string
	DatabaseCacheAddress string
	DatabaseCachePort    int

	AuthJwksURL  string
	AuthIssuer   string
	AuthAudience string
}

func InitConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("port", 3001)
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("database.db_path", "data/pap.db")
	v.SetDefault("database.cache_address", "localhost")
	v.SetDefault("database.cache_port", 6379)
	v.SetDefault("auth.jwks_url", "")
	v.SetDefault("auth.issuer", "pap-identity")
	v.SetDefault("auth.audience", "pap-api")

	v.SetEnvPrefix("PAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; env vars and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		Port:                 v.GetInt("port"),
		Environment:          v.GetString("environment"),
		LogLevel:             v.GetString("log_level"),
		DatabaseDbPath:       v.GetString("database.db_path"),
		DatabaseCacheAddress: v.GetString("database.cache_address"),
		DatabaseCachePort:    v.GetInt("database.cache_port"),
		AuthJwksURL:          v.GetString("auth.jwks_url"),
		AuthIssuer:           v.GetString("auth.issuer"),
		AuthAudience:         v.GetString("auth.audience"),
	}, nil
}
