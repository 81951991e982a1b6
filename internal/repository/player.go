package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type PlayerRepository interface {
	RecordWin(ctx context.Context, id entity.PlayerID) error
	RecordLoss(ctx context.Context, id entity.PlayerID) error
	RecordTie(ctx context.Context, id entity.PlayerID) error

	GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error)
	Top(ctx context.Context, limit int) ([]*entity.Player, error)
}

type dbPlayer struct {
	db *sql.DB
}

func NewPlayerRepository(db *sql.DB) PlayerRepository {
	return &dbPlayer{
		db: db,
	}
}

const (
	recordWinQuery = `
	INSERT INTO players (id, wins, games_played) VALUES ($1, 1, 1)
	ON CONFLICT (id) DO UPDATE SET wins = players.wins + 1, games_played = players.games_played + 1`

	recordLossQuery = `
	INSERT INTO players (id, losses, games_played) VALUES ($1, 1, 1)
	ON CONFLICT (id) DO UPDATE SET losses = players.losses + 1, games_played = players.games_played + 1`

	recordTieQuery = `
	INSERT INTO players (id, ties, games_played) VALUES ($1, 1, 1)
	ON CONFLICT (id) DO UPDATE SET ties = players.ties + 1, games_played = players.games_played + 1`

	getPlayerQuery = `SELECT id, wins, losses, ties, games_played FROM players WHERE id = $1`

	topPlayersQuery = `
	SELECT id, wins, losses, ties, games_played FROM players
	ORDER BY wins DESC, games_played ASC, id ASC
	LIMIT $1`
)

func (that *dbPlayer) RecordWin(ctx context.Context, id entity.PlayerID) error {
	return that.record(ctx, recordWinQuery, id)
}

func (that *dbPlayer) RecordLoss(ctx context.Context, id entity.PlayerID) error {
	return that.record(ctx, recordLossQuery, id)
}

func (that *dbPlayer) RecordTie(ctx context.Context, id entity.PlayerID) error {
	return that.record(ctx, recordTieQuery, id)
}

func (that *dbPlayer) record(ctx context.Context, query string, id entity.PlayerID) error {
	if _, err := that.db.ExecContext(ctx, query, string(id)); err != nil {
		return fmt.Errorf("failed to update stats of player %s: %w", id, err)
	}

	return nil
}

// GetByID returns zero counters for an identity that has not finished a game yet.
func (that *dbPlayer) GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error) {
	var player entity.Player

	err := that.db.QueryRowContext(ctx, getPlayerQuery, string(id)).
		Scan(&player.ID, &player.Wins, &player.Losses, &player.Ties, &player.GamesPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.Player{ID: id}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return &player, nil
}

func (that *dbPlayer) Top(ctx context.Context, limit int) ([]*entity.Player, error) {
	rows, err := that.db.QueryContext(ctx, topPlayersQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	players := make([]*entity.Player, 0, limit)
	for rows.Next() {
		var player entity.Player
		if err = rows.Scan(&player.ID, &player.Wins, &player.Losses, &player.Ties, &player.GamesPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}

		players = append(players, &player)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	return players, nil
}
