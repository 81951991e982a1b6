package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const waitingGamesKey = "games:waiting"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error

	ListByPlayer(ctx context.Context, playerID entity.PlayerID) ([]*entity.Game, error)
	ListWaiting(ctx context.Context) ([]*entity.Game, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func playerGamesKey(playerID entity.PlayerID) string {
	return "player:" + string(playerID) + ":games"
}

// CreateOrUpdate stores the game document together with its player and waiting indexes in one transaction.
func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)

		for _, player := range []entity.PlayerID{game.PlayerX, game.PlayerO} {
			if player != "" {
				pipe.SAdd(ctx, playerGamesKey(player), game.ID)
			}
		}

		if game.IsWaiting() {
			pipe.SAdd(ctx, waitingGamesKey, game.ID)
		} else {
			pipe.SRem(ctx, waitingGamesKey, game.ID)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

// DeleteByID removes the game and its index entries.
func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	game, err := that.GetByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, gameKey(id))
		pipe.SRem(ctx, waitingGamesKey, id)

		for _, player := range []entity.PlayerID{game.PlayerX, game.PlayerO} {
			if player != "" {
				pipe.SRem(ctx, playerGamesKey(player), id)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	return nil
}

func (that *dbGame) ListByPlayer(ctx context.Context, playerID entity.PlayerID) ([]*entity.Game, error) {
	ids, err := that.client.SMembers(ctx, playerGamesKey(playerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list games of player: %w", err)
	}

	return that.getMany(ctx, ids)
}

func (that *dbGame) ListWaiting(ctx context.Context) ([]*entity.Game, error) {
	ids, err := that.client.SMembers(ctx, waitingGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting games: %w", err)
	}

	games, err := that.getMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	// the document is the source of truth, a stale index entry is skipped
	waiting := games[:0]
	for _, game := range games {
		if game.IsWaiting() {
			waiting = append(waiting, game)
		}
	}

	return waiting, nil
}

// getMany loads the documents for ids in one round trip. Ids without a document are skipped.
func (that *dbGame) getMany(ctx context.Context, ids []string) ([]*entity.Game, error) {
	if len(ids) == 0 {
		return []*entity.Game{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, gameKey(id))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*entity.Game, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(raw), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game: %w", err)
		}

		games = append(games, &game)
	}

	return games, nil
}
