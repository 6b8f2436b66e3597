package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Port                   string `mapstructure:"PORT"`
	ServiceName            string `mapstructure:"SERVICE_NAME"`
	AccountServiceURL      string `mapstructure:"ACCOUNT_SERVICE_URL"`
	ItemStoreURL           string `mapstructure:"ITEM_STORE_URL"`
	UpstreamTimeoutSeconds int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`
	WebhookTimeoutSeconds  int    `mapstructure:"WEBHOOK_TIMEOUT_SECONDS"`
	RabbitMQURL            string `mapstructure:"RABBITMQ_URL"`
}

func Read() *AppConfig {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	bindEnvVariables()
	setDefaults()

	var appConfig AppConfig
	err := viper.Unmarshal(&appConfig)
	if err != nil {
		panic(fmt.Errorf("fatal error unmarshalling config: %w", err))
	}

	return &appConfig
}

func bindEnvVariables() {
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("SERVICE_NAME")
	_ = viper.BindEnv("ACCOUNT_SERVICE_URL")
	_ = viper.BindEnv("ITEM_STORE_URL")
	_ = viper.BindEnv("UPSTREAM_TIMEOUT_SECONDS")
	_ = viper.BindEnv("WEBHOOK_TIMEOUT_SECONDS")
	_ = viper.BindEnv("RABBITMQ_URL")
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SERVICE_NAME", "gateway")
	viper.SetDefault("ACCOUNT_SERVICE_URL", "http://localhost:8081")
	viper.SetDefault("ITEM_STORE_URL", "http://localhost:8082")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 5)
	viper.SetDefault("WEBHOOK_TIMEOUT_SECONDS", 5)
}
