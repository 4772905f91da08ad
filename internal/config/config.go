package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Cashfree CashfreeConfig
	Hunt     HuntConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
	AppURL       string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// CashfreeConfig holds payment-gateway-specific configuration
type CashfreeConfig struct {
	BaseURL   string
	AppID     string
	SecretKey string
	MockAPI   bool
}

// HuntConfig holds hunt-specific configuration
type HuntConfig struct {
	FeeAmount  float64
	Currency   string
	TotalItems int
	PerkItems  int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("Server.AppURL", "http://localhost:3000")
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "scavenger-hunt")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("LogLevel", "info")
	viper.SetDefault("Cashfree.BaseURL", "https://sandbox.cashfree.com/pg/orders")
	viper.SetDefault("Cashfree.MockAPI", true)
	viper.SetDefault("Hunt.FeeAmount", 20)
	viper.SetDefault("Hunt.Currency", "INR")
	viper.SetDefault("Hunt.TotalItems", 5)
	viper.SetDefault("Hunt.PerkItems", 3)
}
