package main

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type PlayerConfig struct {
	// Type is one of random, human, mcts, mcts-ponder.
	Type       string `yaml:"type" env-default:"mcts"`
	Iterations uint32 `yaml:"iterations" env-default:"10000"`
	ThinkMs    int    `yaml:"think-ms" env-default:"1000"`
}

type Config struct {
	LogLevel string       `yaml:"log-level" env-default:"info"`
	Depth    int          `yaml:"depth" env-default:"1"`
	Games    int          `yaml:"games" env-default:"10"`
	Seed     int64        `yaml:"seed" env-default:"0"`
	Player1  PlayerConfig `yaml:"player1"`
	Player2  PlayerConfig `yaml:"player2"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
