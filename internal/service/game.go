package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)

	ListByPlayer(ctx context.Context, playerID entity.PlayerID) ([]*entity.Game, error)
	ListWaiting(ctx context.Context) ([]*entity.Game, error)
}

// GameService creates, loads and stores games.
type GameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) *GameService {
	return &GameService{
		gameRepo: gameRepo,
	}
}

// CreateGame seats creator as X. Computer games start right away, the others wait for an opponent.
func (that *GameService) CreateGame(ctx context.Context, creator entity.PlayerID, vsComputer bool, difficulty string) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())
	game.PlayerX = creator
	game.VsComputer = vsComputer
	game.Difficulty = entity.ParseDifficulty(difficulty)

	if vsComputer {
		game.Status = entity.StatusInProgress
	} else {
		game.Status = entity.StatusWaiting
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	return game, nil
}

func (that *GameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *GameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameService) ListGamesForPlayer(ctx context.Context, player entity.PlayerID) ([]*entity.Game, error) {
	games, err := that.gameRepo.ListByPlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to list games of player: %w", err)
	}

	return games, nil
}

// ListOpenGames returns the games waiting for an opponent, except the ones player created.
func (that *GameService) ListOpenGames(ctx context.Context, player entity.PlayerID) ([]*entity.Game, error) {
	waiting, err := that.gameRepo.ListWaiting(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting games: %w", err)
	}

	games := make([]*entity.Game, 0, len(waiting))
	for _, game := range waiting {
		if game.PlayerX != player {
			games = append(games, game)
		}
	}

	return games, nil
}
