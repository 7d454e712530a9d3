package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}

	Database struct {
		Host     string
		Port     int32
		User     string
		Password string
		Name     string
	}

	Auth struct {
		// JWTSecret signs every issued token. It must stay stable across
		// restarts or previously issued tokens stop verifying.
		JWTSecret   string
		TokenExpiry time.Duration
		BcryptCost  int
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// DSN builds the MySQL connection string for the configured database.
func (d Database) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 4000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Database defaults
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 3306)
	v.SetDefault("db_user", "root")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "contactbook")

	// Auth defaults
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_expiry", "24h")
	v.SetDefault("bcrypt_cost", 12) // bcrypt cost factor

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt32("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Auth: Auth{
			JWTSecret:   v.GetString("JWT_SECRET"),
			TokenExpiry: v.GetDuration("TOKEN_EXPIRY"),
			BcryptCost:  v.GetInt("BCRYPT_COST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
