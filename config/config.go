package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	EMR       EMRConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Queue     QueueConfig
	Messaging MessagingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// EMRConfig points at the remote record store that owns appointments,
// bills and patients.
type EMRConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type QueueConfig struct {
	PageSize int
}

type MessagingConfig struct {
	// WhatsAppCountryCode is prefixed to local phone numbers when building
	// wa.me deep links.
	WhatsAppCountryCode string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	emrTimeout, err := time.ParseDuration(viper.GetString("EMR_TIMEOUT"))
	if err != nil {
		emrTimeout = 15 * time.Second
	}

	pageSize := viper.GetInt("QUEUE_PAGE_SIZE")
	if pageSize <= 0 {
		pageSize = 10
	}

	countryCode := viper.GetString("WHATSAPP_COUNTRY_CODE")
	if countryCode == "" {
		countryCode = "91"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		EMR: EMRConfig{
			BaseURL: viper.GetString("EMR_BASE_URL"),
			APIKey:  viper.GetString("EMR_API_KEY"),
			Timeout: emrTimeout,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Queue: QueueConfig{
			PageSize: pageSize,
		},
		Messaging: MessagingConfig{
			WhatsAppCountryCode: countryCode,
		},
	}

	return config, nil
}
