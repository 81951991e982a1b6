package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the game API routes.
func NewRouter(logger *slog.Logger, gamePlay gamePlayUseCase) http.Handler {
	h := &handlers{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.ping)
	r.Get("/leaderboard", h.leaderboard)
	r.Get("/players/{id}", h.getPlayer)

	r.Route("/games", func(r chi.Router) {
		r.Post("/", h.createGame)
		r.Get("/", h.listGames)
		r.Get("/open", h.listOpenGames)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getGame)
			r.Post("/join", h.joinGame)
			r.Post("/moves/{cell}", h.makeMove)
			r.Post("/undo", h.undoMove)
		})
	})

	return r
}

// Start serves handler on port until ctx is canceled, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
