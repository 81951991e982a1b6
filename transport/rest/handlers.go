package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

// PlayerHeader carries the acting identity of a request.
const PlayerHeader = "X-Player-ID"

type gamePlayUseCase interface {
	CreateGame(ctx context.Context, creator entity.PlayerID, vsComputer bool, difficulty string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID string, player entity.PlayerID) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, player entity.PlayerID, cell int) (*entity.Game, error)
	UndoMove(ctx context.Context, gameID string, player entity.PlayerID) (*entity.Game, error)

	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	ListGamesForPlayer(ctx context.Context, player entity.PlayerID) ([]*entity.Game, error)
	ListOpenGames(ctx context.Context, player entity.PlayerID) ([]*entity.Game, error)

	GetPlayer(ctx context.Context, player entity.PlayerID) (*entity.Player, error)
	Leaderboard(ctx context.Context) ([]*entity.Player, error)
}

type handlers struct {
	logger   *slog.Logger
	gamePlay gamePlayUseCase
}

type createGameRequest struct {
	VsComputer bool   `json:"vsComputer"`
	Difficulty string `json:"difficulty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}

	game, err := that.gamePlay.CreateGame(r.Context(), playerID(r), req.VsComputer, req.Difficulty)
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game.View())
}

func (that *handlers) listGames(w http.ResponseWriter, r *http.Request) {
	games, err := that.gamePlay.ListGamesForPlayer(r.Context(), playerID(r))
	if err != nil {
		that.writeError(w, "listGames", err)
		return
	}

	that.writeJSON(w, http.StatusOK, views(games))
}

func (that *handlers) listOpenGames(w http.ResponseWriter, r *http.Request) {
	games, err := that.gamePlay.ListOpenGames(r.Context(), playerID(r))
	if err != nil {
		that.writeError(w, "listOpenGames", err)
		return
	}

	that.writeJSON(w, http.StatusOK, views(games))
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game.View())
}

func (that *handlers) joinGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.JoinGame(r.Context(), chi.URLParam(r, "id"), playerID(r))
	if err != nil {
		that.writeError(w, "joinGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game.View())
}

func (that *handlers) makeMove(w http.ResponseWriter, r *http.Request) {
	cell, err := strconv.Atoi(chi.URLParam(r, "cell"))
	if err != nil {
		that.writeError(w, "makeMove", apperror.ErrOutOfRange)
		return
	}

	game, err := that.gamePlay.MakeTurn(r.Context(), chi.URLParam(r, "id"), playerID(r), cell)
	if err != nil {
		that.writeError(w, "makeMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game.View())
}

func (that *handlers) undoMove(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.UndoMove(r.Context(), chi.URLParam(r, "id"), playerID(r))
	if err != nil {
		that.writeError(w, "undoMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game.View())
}

func (that *handlers) getPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.gamePlay.GetPlayer(r.Context(), entity.PlayerID(chi.URLParam(r, "id")))
	if err != nil {
		that.writeError(w, "getPlayer", err)
		return
	}

	that.writeJSON(w, http.StatusOK, player)
}

func (that *handlers) leaderboard(w http.ResponseWriter, r *http.Request) {
	players, err := that.gamePlay.Leaderboard(r.Context())
	if err != nil {
		that.writeError(w, "leaderboard", err)
		return
	}

	that.writeJSON(w, http.StatusOK, players)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrOutOfRange), errors.Is(err, apperror.ErrCellOccupied):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrNotJoinable):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidIdentity):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func playerID(r *http.Request) entity.PlayerID {
	return entity.PlayerID(r.Header.Get(PlayerHeader))
}

func views(games []*entity.Game) []entity.View {
	result := make([]entity.View, 0, len(games))
	for _, game := range games {
		result = append(result, game.View())
	}

	return result
}
