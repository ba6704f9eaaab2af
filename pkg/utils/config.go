package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	Auth  AuthConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type StoreConfig struct {
	DataDir string
}

type AuthConfig struct {
	BcryptCost int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "airline-reservation")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DATA_DIR", "data/")
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BCRYPT_COST", 10)

	// A missing .env is fine, defaults and environment variables still apply
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			DataDir: viper.GetString("DATA_DIR"),
		},
		Auth: AuthConfig{
			BcryptCost: viper.GetInt("BCRYPT_COST"),
		},
	}

	return config, nil
}
