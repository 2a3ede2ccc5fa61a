// Package storage persists the high score, the leaderboard and the game
// history behind a small key-value interface.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// KV is a string key-value store. A missing key is reported with ok == false,
// not an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GameResult is one finished game in the history.
type GameResult struct {
	ID        int64
	Player    string
	Score     int
	Reason    string // step result that ended the game, e.g. "hit_wall"
	CreatedAt time.Time
}

// Stats aggregates the game history.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// History is implemented by stores that keep every finished game.
type History interface {
	RecordGame(ctx context.Context, r GameResult) (int64, error)
	RecentGames(ctx context.Context, limit int) ([]GameResult, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Open picks a backend from dsn:
//
//	redis://...             Redis
//	postgres://..., postgresql://...   PostgreSQL
//	memory:                 in-process map, nothing persisted
//	anything else           SQLite file path (~ is expanded)
func Open(dsn string) (KV, error) {
	switch {
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return OpenRedis(dsn)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgres(dsn)
	case dsn == "memory:" || dsn == ":memory:":
		return NewMemoryStore(), nil
	case dsn == "":
		return nil, fmt.Errorf("storage: empty database path")
	default:
		return OpenSQLite(dsn)
	}
}
