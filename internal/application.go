package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/bot"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/events"
	"github.com/rocketscienceinc/tictactoe/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs the terminal game until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dialog := tui.NewDialog()
	notifiers := events.Fanout{dialog}

	if conf.Redis.Enabled {
		publisher, err := redis.New(ctx, logger, conf.Redis.GetRedisAddr(), conf.Redis.Channel, conf.Redis.PublishTimeout)
		if err != nil {
			return fmt.Errorf("could not start event publisher: %w", err)
		}

		defer func() {
			if err = publisher.Close(); err != nil {
				log.Error("could not close event publisher", "error", err)
			}
		}()

		log.Info("publishing events", "addr", conf.Redis.GetRedisAddr(), "channel", conf.Redis.Channel)
		notifiers = append(notifiers, publisher)
	}

	mode, err := entity.ParseMode(conf.Game.Mode)
	if err != nil {
		return fmt.Errorf("could not read game mode: %w", err)
	}

	mark, err := entity.ParseMark(conf.Game.Mark)
	if err != nil {
		return fmt.Errorf("could not read game mark: %w", err)
	}

	seed := uint64(conf.Game.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	controller := usecase.NewSessionController(logger, notifiers, bot.NewFactory(rand.New(rand.NewPCG(seed, seed))))
	model := tui.NewModel(logger, controller, dialog, mode, mark)

	log.Info("starting game", "mode", mode, "mark", mark, "seed", seed)

	if _, err = tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("received signal, shutting down")
			return nil
		}

		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("game closed")

	return nil
}
