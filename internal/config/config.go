package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Auth   AuthConfig
	Seed   SeedConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

type AuthConfig struct {
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	AdminEmail      string
	AdminPassword   string
	MockProviders   bool
	// Providers maps a social provider name to the fixed identity its mock
	// sign-in fabricates, e.g. google -> google_user@example.com.
	Providers   map[string]string
	GoogleOAuth GoogleOAuthConfig
}

type GoogleOAuthConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

type SeedConfig struct {
	InitialQuestions bool `yaml:"initial_questions"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../")
		viper.AddConfigPath("../../config")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Auth: AuthConfig{
			JWTSecretKey:    viper.GetString("auth.jwt_secret"),
			AccessTokenTTL:  viper.GetDuration("auth.access_token_ttl"),
			RefreshTokenTTL: viper.GetDuration("auth.refresh_token_ttl"),
			AdminEmail:      viper.GetString("auth.admin_email"),
			AdminPassword:   viper.GetString("auth.admin_password"),
			MockProviders:   viper.GetBool("auth.mock_providers"),
			Providers:       viper.GetStringMapString("auth.providers"),
			GoogleOAuth: GoogleOAuthConfig{
				ClientID:     viper.GetString("auth.google_oauth.client_id"),
				ClientSecret: viper.GetString("auth.google_oauth.client_secret"),
				RedirectURL:  viper.GetString("auth.google_oauth.redirect_url"),
			},
		},
		Seed: SeedConfig{
			InitialQuestions: viper.GetBool("seed.initial_questions"),
		},
	}

	// Override with environment variables if set
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecretKey = secret
	}
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		config.Auth.AdminEmail = email
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		config.Auth.AdminPassword = password
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}

	return config, nil
}
