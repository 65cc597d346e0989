package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/muesli/termenv"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/arena"
	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/mcts"
	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/players"
)

// main - is the entry point of the application. It initializes the
// configuration, logger and plays the configured match series.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if conf.Seed != 0 {
		seed := conf.Seed
		mcts.SetSeedGeneratorFn(func() int64 { return seed })
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, conf); err != nil {
		panic(fmt.Errorf("match run failed: %w", err))
	}
}

func run(ctx context.Context, logger *slog.Logger, conf *Config) error {
	p1, err := playerFactory(conf.Player1)
	if err != nil {
		return fmt.Errorf("player1: %w", err)
	}
	p2, err := playerFactory(conf.Player2)
	if err != nil {
		return fmt.Errorf("player2: %w", err)
	}

	logger.Info("starting match series",
		"depth", conf.Depth, "games", conf.Games,
		"player1", conf.Player1.Type, "player2", conf.Player2.Type)

	a := arena.New(logger, conf.Depth, conf.Games, p1, p2).
		WithNames(conf.Player1.Type, conf.Player2.Type)
	if err := a.Run(ctx); err != nil {
		return err
	}

	printSummary(a.Summary())
	return nil
}

func playerFactory(conf PlayerConfig) (arena.PlayerFactory, error) {
	switch conf.Type {
	case "random":
		return func() players.Player { return players.NewRandom() }, nil
	case "human":
		return func() players.Player { return players.NewHuman(os.Stdin, os.Stdout) }, nil
	case "mcts":
		iterations := conf.Iterations
		return func() players.Player { return players.NewMonteCarloSync(iterations) }, nil
	case "mcts-ponder":
		think := time.Duration(conf.ThinkMs) * time.Millisecond
		return func() players.Player { return players.NewMonteCarloAsync(think) }, nil
	default:
		return nil, fmt.Errorf("unknown player type %q", conf.Type)
	}
}

func printSummary(s arena.Summary) {
	out := termenv.NewOutput(os.Stdout)

	fmt.Fprintf(out, "\nPlayed %d games:\n", s.TotalGames)
	fmt.Fprintf(out, "  %s\n", out.String(fmt.Sprintf("%s wins: %d", s.P1Name, s.P1Wins)).Foreground(termenv.ANSIRed))
	fmt.Fprintf(out, "  %s\n", out.String(fmt.Sprintf("%s wins: %d", s.P2Name, s.P2Wins)).Foreground(termenv.ANSIGreen))
	fmt.Fprintf(out, "  %s\n", out.String(fmt.Sprintf("draws: %d", s.Draws)).Foreground(termenv.ANSIYellow))
	fmt.Fprintf(out, "  first mover wins: %d, second mover wins: %d\n", s.FirstToMoveWins, s.SecondToMoveWins)
}

// initialize config.
func initConfig() *Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *Config) *slog.Logger {
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
