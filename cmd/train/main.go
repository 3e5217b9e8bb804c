package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/agent"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/config"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/events"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/events/subscribers"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/game"
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/training"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	episodes := flag.Int("episodes", -1, "Number of self-play episodes (-1 to use config default)")
	alpha := flag.Float64("alpha", -1, "Learning rate (-1 to use config default)")
	epsilon := flag.Float64("epsilon", -1, "Exploration rate (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *episodes == -1 {
		*episodes = cfg.Training.Episodes
	}
	if *alpha == -1 {
		*alpha = cfg.Agent.Alpha
	}
	if *epsilon == -1 {
		*epsilon = cfg.Agent.Epsilon
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}

	setupLogging(*logLevel, cfg.Log.Format)

	log.Info().
		Int("episodes", *episodes).
		Float64("alpha", *alpha).
		Float64("epsilon", *epsilon).
		Ints("piles", cfg.Game.Piles).
		Msg("Starting training run")

	bus := events.NewEventBus()
	eventLogger := subscribers.NewLoggerSubscriber("trainer_event_log", log.Logger, zerolog.DebugLevel)
	bus.Subscribe(eventLogger)

	a := agent.New(*alpha, *epsilon, nil)
	trainer := training.NewTrainer(a, game.State(cfg.Game.Piles), nil, bus)
	trainer.ProgressInterval = cfg.Training.ProgressInterval
	trainer.Train(*episodes)

	stats := trainer.Stats()
	log.Info().
		Int("episodes", stats.Episodes).
		Int("player_0_wins", stats.Wins[0]).
		Int("player_1_wins", stats.Wins[1]).
		Int("table_size", stats.TableSize).
		Msg("Training run finished")
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" || os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
