package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

var (
	configPath    = "./config.yml"
	boardSize     = 3
	seed          int64
	mode          = config.ModeRandom
	color         bool
	logLevel      = "info"
	skipSelfCheck bool
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to the yml config file")
	pflag.IntVarP(&boardSize, "size", "n", boardSize, "board size N")
	pflag.Int64VarP(&seed, "seed", "s", seed, "random move source seed, 0 derives one from the clock and logs it for replay")
	pflag.StringVarP(&mode, "mode", "m", mode, "move source: random or human")
	pflag.BoolVar(&color, "color", color, "color the board when writing to a terminal")
	pflag.StringVarP(&logLevel, "log-level", "l", logLevel, "debug, info, warn or error")
	pflag.BoolVar(&skipSelfCheck, "skip-self-check", skipSelfCheck, "do not run the scripted self-check")
	pflag.Parse()
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config. Flags given on the command line win over the file and the environment.
func initConfig() *config.Config {
	path := configPath
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}
		path = filepath.Join(baseDir, path)
	}

	conf := config.MustLoad(path)

	if pflag.CommandLine.Changed("size") {
		conf.BoardSize = boardSize
	}
	if pflag.CommandLine.Changed("seed") {
		conf.Seed = seed
	}
	if pflag.CommandLine.Changed("mode") {
		conf.Mode = mode
	}
	if pflag.CommandLine.Changed("color") {
		conf.Color = color
	}
	if pflag.CommandLine.Changed("log-level") {
		conf.LogLevel = logLevel
	}
	if pflag.CommandLine.Changed("skip-self-check") {
		conf.SkipSelfCheck = skipSelfCheck
	}

	if err := conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return conf
}

// initialize logger. Logs go to stderr, stdout carries the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
