package service

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameRepo) ListByPlayer(ctx context.Context, playerID entity.PlayerID) ([]*entity.Game, error) {
	args := m.Called(ctx, playerID)
	games, _ := args.Get(0).([]*entity.Game)
	return games, args.Error(1)
}

func (m *mockGameRepo) ListWaiting(ctx context.Context) ([]*entity.Game, error) {
	args := m.Called(ctx)
	games, _ := args.Get(0).([]*entity.Game)
	return games, args.Error(1)
}

type mockPlayerRepo struct {
	mock.Mock
}

func (m *mockPlayerRepo) RecordWin(ctx context.Context, id entity.PlayerID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPlayerRepo) RecordLoss(ctx context.Context, id entity.PlayerID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPlayerRepo) RecordTie(ctx context.Context, id entity.PlayerID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPlayerRepo) GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error) {
	args := m.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (m *mockPlayerRepo) Top(ctx context.Context, limit int) ([]*entity.Player, error) {
	args := m.Called(ctx, limit)
	players, _ := args.Get(0).([]*entity.Player)
	return players, args.Error(1)
}

type mockPlayerService struct {
	mock.Mock
}

func (m *mockPlayerService) RecordOutcome(ctx context.Context, game *entity.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *mockPlayerService) GetPlayerByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error) {
	args := m.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (m *mockPlayerService) Leaderboard(ctx context.Context) ([]*entity.Player, error) {
	args := m.Called(ctx)
	players, _ := args.Get(0).([]*entity.Player)
	return players, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(game *entity.Game) {
	m.Called(game)
}

// memoryGameRepo stores copies, so concurrent callers never share a *entity.Game.
type memoryGameRepo struct {
	mu    sync.Mutex
	games map[string]*entity.Game
}

func newMemoryGameRepo(games ...*entity.Game) *memoryGameRepo {
	repo := &memoryGameRepo{games: make(map[string]*entity.Game)}
	for _, game := range games {
		repo.games[game.ID] = game.Clone()
	}

	return repo
}

func (that *memoryGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = game.Clone()
	return nil
}

func (that *memoryGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}
	return game.Clone(), nil
}

func (that *memoryGameRepo) ListByPlayer(_ context.Context, playerID entity.PlayerID) ([]*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var games []*entity.Game
	for _, game := range that.games {
		if game.IsParticipant(playerID) {
			games = append(games, game.Clone())
		}
	}
	return games, nil
}

func (that *memoryGameRepo) ListWaiting(_ context.Context) ([]*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var games []*entity.Game
	for _, game := range that.games {
		if game.IsWaiting() {
			games = append(games, game.Clone())
		}
	}
	return games, nil
}
