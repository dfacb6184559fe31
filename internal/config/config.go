package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	ModeRandom = "random"
	ModeHuman  = "human"
)

const defaultBoardSize = 3

// Config holds the game settings. A zero Seed means one is derived at startup and logged.
type Config struct {
	LogLevel      string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize     int    `yaml:"board-size" env:"BOARD_SIZE"`
	Seed          int64  `yaml:"seed" env:"SEED"`
	Mode          string `yaml:"mode" env:"MODE" env-default:"random"`
	Color         bool   `yaml:"color" env:"COLOR"`
	SkipSelfCheck bool   `yaml:"skip-self-check" env:"SKIP_SELF_CHECK"`
}

// MustLoad - load configuration from the yml file at path, or from the environment
// alone when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config. cleanenv only fills env-default into zero fields, so the
// board size default is set up front to let an explicit 0 reach Validate.
func Load(path string) (*Config, error) {
	config := &Config{BoardSize: defaultBoardSize}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, os.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks the values cleanenv cannot.
func (that *Config) Validate() error {
	if that.BoardSize <= 0 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, that.BoardSize)
	}

	switch that.Mode {
	case ModeRandom, ModeHuman:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, that.Mode)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownLogLevel, that.LogLevel)
	}
}
