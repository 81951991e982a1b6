package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-server/internal/config"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository"
	"github.com/rocketscienceinc/tictactoe-server/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-server/internal/service"
	"github.com/rocketscienceinc/tictactoe-server/transport/rest"
	"github.com/rocketscienceinc/tictactoe-server/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	postgresStorage, err := storage.NewPostgres(ctx, conf.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("could not connect to postgres storage: %w", err)
	}

	defer func() {
		if err = postgresStorage.Close(); err != nil {
			log.Error("could not close postgres storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage)
	playerRepo := repository.NewPlayerRepository(postgresStorage)

	hub := websocket.NewHub(logger)

	gamePlay := service.NewGamePlayService(
		logger,
		service.NewGameService(gameRepo),
		service.NewPlayerService(playerRepo, conf.Game.LeaderboardSize),
		service.NewBotService(logger),
		hub,
	)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gamePlay), conf.ShutdownTimeout)
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, hub, gamePlay)
		wsErrCh <- wsServer.Start(ctx, conf.SocketPort, conf.ShutdownTimeout)
	}()

	var runErr error
	httpDone, wsDone := false, false

	select {
	case err = <-httpErrCh:
		httpDone = true
		if err != nil {
			runErr = fmt.Errorf("HTTP server error: %w", err)
		}
	case err = <-wsErrCh:
		wsDone = true
		if err != nil {
			runErr = fmt.Errorf("WebSocket server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	cancel()

	// wait for the remaining servers to finish their graceful shutdown
	if !httpDone {
		if httpErr := <-httpErrCh; httpErr != nil {
			log.Error("HTTP server shutdown error", "error", httpErr)
		}
	}
	if !wsDone {
		if wsErr := <-wsErrCh; wsErr != nil {
			log.Error("WebSocket server shutdown error", "error", wsErr)
		}
	}

	return runErr
}
