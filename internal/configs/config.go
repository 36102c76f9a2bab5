package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	ChairURL  string
	EstateURL string
}

type RESTconfig struct {
	PORT string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

type RabbitMQConfig struct {
	URL     string
	Enabled bool
}

type CatalogConfig struct {
	SQLDir              string
	ChairConditionPath  string
	EstateConditionPath string
}

// AppConfig holds the full application configuration.
type AppConfig struct {
	Database     DatabaseConfig
	Rest         RESTconfig
	FluentBit    FluentBitConfig
	RabbitMQ     RabbitMQConfig
	Catalog      CatalogConfig
	AppName      string
	StdoutLogger StdoutLogConfig
}

// LoadConfig reads configuration from the environment. A missing .env file is
// not an error; the shard URLs are the only hard requirements.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "listing-service")

	cfg.Database.ChairURL = os.Getenv("CHAIR_DATABASE_URL")
	if cfg.Database.ChairURL == "" {
		return nil, fmt.Errorf("CHAIR_DATABASE_URL environment variable is required")
	}
	cfg.Database.EstateURL = os.Getenv("ESTATE_DATABASE_URL")
	if cfg.Database.EstateURL == "" {
		return nil, fmt.Errorf("ESTATE_DATABASE_URL environment variable is required")
	}

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")

	cfg.Catalog.SQLDir = getEnvAsString("SQL_DIR", "db")
	cfg.Catalog.ChairConditionPath = getEnvAsString("CHAIR_CONDITION_PATH", "fixture/chair_condition.json")
	cfg.Catalog.EstateConditionPath = getEnvAsString("ESTATE_CONDITION_PATH", "fixture/estate_condition.json")

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			log.Println("WARNING: RABBITMQ_ENABLED is true, but RABBITMQ_URL is not set. Disabling event publishing.")
			cfg.RabbitMQ.Enabled = false
		}
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueBool
}
