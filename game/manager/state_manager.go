package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const maxHistory = 50

// SessionRecord summarises one finished session
type SessionRecord struct {
	Session  string        `json:"session"`
	Level    int           `json:"level"`
	Score    int           `json:"score"`
	Reason   string        `json:"reason"`
	Duration time.Duration `json:"duration"`
	EndedAt  time.Time     `json:"endedAt"`
}

type GameStats struct {
	GamesPlayed  int             `json:"gamesPlayed"`
	HighScore    int             `json:"highScore"`
	ScoreHistory []SessionRecord `json:"scoreHistory"`
}

// StateManager keeps a small rolling history of finished sessions on disk.
// Write failures are logged and otherwise ignored.
type StateManager struct {
	path   string
	stats  GameStats
	logger *slog.Logger
}

func NewStateManager(path string, logger *slog.Logger) *StateManager {
	if logger == nil {
		logger = slog.Default()
	}
	sm := &StateManager{
		path:   path,
		stats:  GameStats{ScoreHistory: make([]SessionRecord, 0)},
		logger: logger,
	}

	if path == "" {
		return sm
	}
	if err := sm.LoadStats(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("could not load session stats", "path", path, "err", err)
	}
	return sm
}

func (sm *StateManager) LoadStats() error {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("decode %s: %w", sm.path, err)
	}
	if stats.ScoreHistory == nil {
		stats.ScoreHistory = make([]SessionRecord, 0)
	}
	sm.stats = stats
	return nil
}

func (sm *StateManager) SaveStats() error {
	if sm.path == "" {
		return nil
	}
	if dir := filepath.Dir(sm.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(sm.path, data, 0644)
}

// AddToHistory records a finished session and persists the stats
func (sm *StateManager) AddToHistory(rec SessionRecord) {
	sm.stats.GamesPlayed++
	if rec.Score > sm.stats.HighScore {
		sm.stats.HighScore = rec.Score
	}
	if len(sm.stats.ScoreHistory) >= maxHistory {
		sm.stats.ScoreHistory = sm.stats.ScoreHistory[1:]
	}
	sm.stats.ScoreHistory = append(sm.stats.ScoreHistory, rec)

	if err := sm.SaveStats(); err != nil {
		sm.logger.Error("could not save session stats", "path", sm.path, "err", err)
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.stats.HighScore
}

func (sm *StateManager) GamesPlayed() int {
	return sm.stats.GamesPlayed
}

// GetScoreHistory returns the recorded sessions, oldest first
func (sm *StateManager) GetScoreHistory() []SessionRecord {
	out := make([]SessionRecord, len(sm.stats.ScoreHistory))
	copy(out, sm.stats.ScoreHistory)
	return out
}
