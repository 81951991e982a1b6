package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/tictactoe"
)

type gameService interface {
	CreateGame(ctx context.Context, creator entity.PlayerID, vsComputer bool, difficulty string) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error

	ListGamesForPlayer(ctx context.Context, player entity.PlayerID) ([]*entity.Game, error)
	ListOpenGames(ctx context.Context, player entity.PlayerID) ([]*entity.Game, error)
}

type playerService interface {
	RecordOutcome(ctx context.Context, game *entity.Game) error
	GetPlayerByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error)
	Leaderboard(ctx context.Context) ([]*entity.Player, error)
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

type publisher interface {
	Publish(game *entity.Game)
}

// GamePlayService runs the game flow: permission checks, moves, computer replies, undo and outcome bookkeeping.
// Every read-modify-write of a game happens under that game's lock.
type GamePlayService struct {
	logger *slog.Logger

	gameService   gameService
	playerService playerService
	botService    botService
	publisher     publisher

	locker *KeyedLocker
}

func NewGamePlayService(
	logger *slog.Logger,
	gameService gameService,
	playerService playerService,
	botService botService,
	publisher publisher,
) *GamePlayService {
	return &GamePlayService{
		logger:        logger.With("component", "gameplay"),
		gameService:   gameService,
		playerService: playerService,
		botService:    botService,
		publisher:     publisher,
		locker:        NewKeyedLocker(),
	}
}

func (that *GamePlayService) CreateGame(ctx context.Context, creator entity.PlayerID, vsComputer bool, difficulty string) (*entity.Game, error) {
	if creator == "" {
		return nil, apperror.ErrInvalidIdentity
	}

	game, err := that.gameService.CreateGame(ctx, creator, vsComputer, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created",
		"gameID", game.ID, "player", creator, "vsComputer", vsComputer, "difficulty", game.Difficulty.String())

	return game, nil
}

func (that *GamePlayService) JoinGame(ctx context.Context, gameID string, player entity.PlayerID) (*entity.Game, error) {
	if player == "" {
		return nil, apperror.ErrInvalidIdentity
	}

	unlock := that.locker.Lock(gameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.Join(player); err != nil {
		return game, fmt.Errorf("failed to join game: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("player joined game", "gameID", game.ID, "player", player)
	that.publisher.Publish(game)

	return game, nil
}

// MakeTurn applies the human move and, in a computer game that is still open, the computer's reply.
// A rejected move returns the unchanged game together with the error.
func (that *GamePlayService) MakeTurn(ctx context.Context, gameID string, player entity.PlayerID, cell int) (*entity.Game, error) {
	if player == "" {
		return nil, apperror.ErrInvalidIdentity
	}

	unlock := that.locker.Lock(gameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = tictactoe.AuthorizeMove(game, player); err != nil {
		return game, err
	}

	if _, err = game.MakeTurn(game.CurrentPlayer, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.VsComputer && !game.IsFinished() && game.CurrentPlayer == tictactoe.Computer {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("failed to make computer turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.finishGame(ctx, game)
	}

	that.publisher.Publish(game)

	return game, nil
}

// UndoMove takes back the last human move. Against the computer its reply is taken back as well,
// so that control returns to the human.
func (that *GamePlayService) UndoMove(ctx context.Context, gameID string, player entity.PlayerID) (*entity.Game, error) {
	if player == "" {
		return nil, apperror.ErrInvalidIdentity
	}

	unlock := that.locker.Lock(gameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = tictactoe.AuthorizeUndo(game, player); err != nil {
		return game, err
	}

	if !game.UndoMove() {
		return game, nil
	}

	if game.VsComputer && game.CurrentPlayer == tictactoe.Computer {
		game.UndoMove()
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("move undone", "gameID", game.ID, "player", player, "moves", len(game.MoveHistory))
	that.publisher.Publish(game)

	return game, nil
}

func (that *GamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *GamePlayService) ListGamesForPlayer(ctx context.Context, player entity.PlayerID) ([]*entity.Game, error) {
	if player == "" {
		return nil, apperror.ErrInvalidIdentity
	}

	games, err := that.gameService.ListGamesForPlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}

func (that *GamePlayService) ListOpenGames(ctx context.Context, player entity.PlayerID) ([]*entity.Game, error) {
	games, err := that.gameService.ListOpenGames(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to list open games: %w", err)
	}

	return games, nil
}

func (that *GamePlayService) GetPlayer(ctx context.Context, player entity.PlayerID) (*entity.Player, error) {
	stats, err := that.playerService.GetPlayerByID(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return stats, nil
}

func (that *GamePlayService) Leaderboard(ctx context.Context) ([]*entity.Player, error) {
	players, err := that.playerService.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return players, nil
}

// finishGame emits the outcome of a game that has just finished. Failures are logged, the move stands.
func (that *GamePlayService) finishGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	if err := that.playerService.RecordOutcome(ctx, game); err != nil {
		log.Error("failed to record outcome", "error", err)
	}

	log.Info("game finished", "winner", game.Winner.String())
}
