package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type gameGetter interface {
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
}

// Server streams game updates to watchers over websocket connections.
type Server struct {
	logger *slog.Logger
	hub    *Hub
	games  gameGetter

	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, hub *Hub, games gameGetter) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		hub:    hub,
		games:  games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (that *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/ws/games/{id}", that.watchGame)

	return r
}

// Start serves watchers on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
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

	// hijacked connections are not tracked by Shutdown, their writers stop once the watcher disconnects
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// watchGame sends the current state of the game and then every update until either side goes away.
func (that *Server) watchGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	log := that.logger.With("method", "watchGame", "gameID", gameID)

	// subscribe first so that no update between loading and streaming is lost
	sub := that.hub.Subscribe(gameID)
	defer sub.Close()

	game, err := that.games.GetGame(r.Context(), gameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("watcher connected")

	initial, err := gameUpdate(game)
	if err != nil {
		log.Error("failed to encode game", "error", err)
		return
	}

	if err = that.write(conn, initial); err != nil {
		log.Debug("failed to send initial state", "error", err)
		return
	}

	done := make(chan struct{})
	go that.readPump(conn, done)

	that.writePump(conn, sub, done)

	log.Info("watcher disconnected")
}

// readPump discards client messages and closes done when the connection is gone.
func (that *Server) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (that *Server) writePump(conn *websocket.Conn, sub *Subscription, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-sub.C:
			if !ok {
				// dropped by the hub
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too slow"), time.Now().Add(writeWait))
				return
			}

			if err := that.write(conn, message); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (that *Server) write(conn *websocket.Conn, message []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
