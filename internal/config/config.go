package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
	LogFile   string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Game      Game   `yaml:"game"`
	Redis     Redis  `yaml:"redis"`
}

type Game struct {
	Mode string `yaml:"mode" env:"TICTACTOE_GAME_MODE" env-default:"cpu" validate:"oneof=user cpu cpueasy"`
	Mark string `yaml:"mark" env:"TICTACTOE_GAME_MARK" env-default:"x" validate:"oneof=x o X O"`
	// Seed feeds the easy opponent; 0 picks one from the clock.
	Seed int64 `yaml:"seed" env:"TICTACTOE_GAME_SEED" env-default:"0"`
}

type Redis struct {
	Enabled        bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host           string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost" validate:"required_if=Enabled true"`
	Port           string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379" validate:"required_if=Enabled true"`
	Channel        string        `yaml:"channel" env:"TICTACTOE_REDIS_CHANNEL" env-default:"tictactoe:events" validate:"required_if=Enabled true"`
	PublishTimeout time.Duration `yaml:"publish-timeout" env:"TICTACTOE_REDIS_PUBLISH_TIMEOUT" env-default:"2s" validate:"gt=0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads path when it exists, falls back to environment variables
// and defaults otherwise, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case path == "" || errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
