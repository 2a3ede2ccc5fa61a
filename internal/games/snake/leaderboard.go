package snake

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// LeaderboardSize is the number of entries kept.
const LeaderboardSize = 5

// DefaultPlayerName is used when no name is given.
const DefaultPlayerName = "Player"

// Entry is one leaderboard row. Timestamp is in Unix milliseconds.
type Entry struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Timestamp int64  `json:"timestamp"`
}

// Insert adds e and returns the top LeaderboardSize entries ordered by score
// descending; on equal scores the earlier timestamp ranks first.
// The input slice is not modified.
func Insert(lb []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(lb)+1)
	out = append(out, lb...)
	out = append(out, e)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score == out[j].Score {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].Score > out[j].Score
	})

	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	return out
}

// DecodeLeaderboard parses a stored leaderboard.
// Anything that is not a JSON array yields an empty board; elements without
// a string name and a non-negative numeric score are skipped.
func DecodeLeaderboard(raw string) []Entry {
	if strings.TrimSpace(raw) == "" {
		return []Entry{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []Entry{}
	}

	entries := make([]Entry, 0, min(len(items), LeaderboardSize))
	for _, item := range items {
		if e, ok := decodeEntry(item); ok {
			entries = append(entries, e)
		}
		if len(entries) == LeaderboardSize {
			break
		}
	}
	return entries
}

func decodeEntry(item json.RawMessage) (Entry, bool) {
	var fields map[string]any
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return Entry{}, false
	}

	name, ok := fields["name"].(string)
	if !ok {
		return Entry{}, false
	}
	score, ok := fields["score"].(float64)
	if !ok || score < 0 || math.IsInf(score, 0) {
		return Entry{}, false
	}

	var ts int64
	if v, ok := fields["timestamp"].(float64); ok {
		ts = int64(v)
	}
	return Entry{Name: name, Score: int(score), Timestamp: ts}, true
}

// EncodeLeaderboard serializes entries as a JSON array.
func EncodeLeaderboard(entries []Entry) string {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeHighScore parses a stored high score; malformed or negative values read as 0.
func DecodeHighScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// EncodeHighScore formats a high score for storage.
func EncodeHighScore(score int) string {
	return strconv.Itoa(score)
}

// PlayerName trims raw and falls back to DefaultPlayerName when empty.
func PlayerName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return DefaultPlayerName
	}
	return name
}
