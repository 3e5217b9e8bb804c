package main

import (
	"errors"
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
	"github.com/mitchelldurbincs/NimReinforcementLearning/internal/ui"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	episodes := flag.Int("episodes", -1, "Training episodes before play (-1 to use config default)")
	humanPlayer := flag.Int("human-player", ui.RandomSide, "Side the human plays: 0, 1, or -1 for random")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	if *episodes == -1 {
		*episodes = cfg.Training.Episodes
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}

	setupLogging(*logLevel, cfg.Log.Format)

	piles := game.State(cfg.Game.Piles)

	bus := events.NewEventBus()
	eventLogger := subscribers.NewLoggerSubscriber("play_event_log", log.Logger, zerolog.DebugLevel)
	bus.Subscribe(eventLogger)

	// Train a fresh agent, then hand it the greedy side of the table.
	a := agent.New(cfg.Agent.Alpha, cfg.Agent.Epsilon, nil)
	trainer := training.NewTrainer(a, piles, nil, bus)
	trainer.ProgressInterval = cfg.Training.ProgressInterval
	trainer.Train(*episodes)

	console := ui.NewConsoleGame(a, piles, *humanPlayer, nil, os.Stdin, os.Stdout)
	console.SetMoveDelay(time.Duration(cfg.Play.MoveDelayMs) * time.Millisecond)

	if _, err := console.Run(); err != nil {
		if errors.Is(err, ui.ErrInputClosed) {
			log.Info().Msg("Input closed, exiting")
			return
		}
		log.Fatal().Err(err).Msg("Interactive game failed")
	}
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
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
