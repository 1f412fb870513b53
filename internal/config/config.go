package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Payment  PaymentConfig
	SMS      SMSConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
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

// PaymentConfig holds payment-gateway configuration
type PaymentConfig struct {
	BaseURL     string
	APIKey      string
	MerchantID  string
	MockGateway bool
}

// SMSConfig holds SMS gateway configuration
type SMSConfig struct {
	BaseURL        string
	APIKey         string
	SenderID       string
	MockSMSGateway bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", GetEnv("PORT", "4000"))
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", GetEnv("MONGODB_URI", "mongodb://localhost:27017"))
	viper.SetDefault("MongoDB.Database", "homestay-portal")
	viper.SetDefault("JWT.Secret", GetEnv("JWT_SECRET", "dev-secret-change-me"))
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("LogLevel", "info")
	viper.SetDefault("Payment.MockGateway", true)
	viper.SetDefault("SMS.SenderID", "HPTOUR")
	viper.SetDefault("SMS.MockSMSGateway", true)
}
