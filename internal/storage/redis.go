package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

// RedisStore keeps values in Redis so several servers can share one leaderboard.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to the Redis server at connectURL and checks it responds.
// See github.com/go-redis/redis options.go for the URL format.
func OpenRedis(connectURL string) (*RedisStore, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot parse redis URL: %w", err)
	}

	client := redis.NewClient(o)
	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis: %w", err)
	}

	return &RedisStore{client: client, prefix: "tui-snake:"}, nil
}

var (
	_ KV      = (*RedisStore)(nil)
	_ History = (*RedisStore)(nil)
)

func (r *RedisStore) Get(_ context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(r.prefix + key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisStore) Set(_ context.Context, key, value string) error {
	if err := r.client.Set(r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: cannot set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(_ context.Context, key string) error {
	if err := r.client.Del(r.prefix + key).Err(); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection pool.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// redisGame is the JSON form of a GameResult in the history list.
type redisGame struct {
	ID        int64  `json:"id"`
	Player    string `json:"player"`
	Score     int    `json:"score"`
	Reason    string `json:"reason"`
	CreatedAt int64  `json:"created_at"` // Unix milliseconds
}

func (r *RedisStore) gamesKey() string { return r.prefix + "games" }

// RecordGame pushes a finished game onto the head of the history list.
func (r *RedisStore) RecordGame(_ context.Context, g GameResult) (int64, error) {
	id, err := r.client.Incr(r.prefix + "games:id").Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot allocate game id: %w", err)
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}

	data, err := json.Marshal(redisGame{
		ID:        id,
		Player:    g.Player,
		Score:     g.Score,
		Reason:    g.Reason,
		CreatedAt: g.CreatedAt.UnixMilli(),
	})
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode game: %w", err)
	}
	if err := r.client.LPush(r.gamesKey(), data).Err(); err != nil {
		return 0, fmt.Errorf("storage: cannot record game: %w", err)
	}
	return id, nil
}

// RecentGames returns the latest finished games, newest first.
func (r *RedisStore) RecentGames(_ context.Context, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.games(int64(limit - 1))
}

// Stats aggregates the whole game history.
func (r *RedisStore) Stats(_ context.Context) (*Stats, error) {
	games, err := r.games(-1)
	if err != nil {
		return nil, err
	}

	stats := &Stats{GamesCount: len(games)}
	for _, g := range games {
		stats.TotalScore += int64(g.Score)
		stats.HighScore = max(stats.HighScore, g.Score)
	}
	if len(games) > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(len(games))
		stats.LastPlayed = games[0].CreatedAt
	}
	return stats, nil
}

// ClearHistory deletes every recorded game.
func (r *RedisStore) ClearHistory(_ context.Context) error {
	if err := r.client.Del(r.gamesKey(), r.prefix+"games:id").Err(); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

func (r *RedisStore) games(stop int64) ([]GameResult, error) {
	items, err := r.client.LRange(r.gamesKey(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}

	results := make([]GameResult, 0, len(items))
	for _, item := range items {
		var g redisGame
		if err := json.Unmarshal([]byte(item), &g); err != nil {
			continue
		}
		results = append(results, GameResult{
			ID:        g.ID,
			Player:    g.Player,
			Score:     g.Score,
			Reason:    g.Reason,
			CreatedAt: time.UnixMilli(g.CreatedAt),
		})
	}
	return results, nil
}
