// Package app ties the controller to the score table, the session history and
// the sound cues. Frontends drive an App from their own loop.
package app

import (
	"errors"
	"log/slog"
	"time"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/scores"
	"gridsnake/game/types"
)

type App struct {
	Game   *game.Game
	Scores *scores.Table
	Stats  *manager.StateManager

	sound  audio.Player
	logger *slog.Logger

	// showScores is set after a name is recorded and cleared when the
	// frontend dismisses the table
	showScores bool
}

func New(g *game.Game, table *scores.Table, stats *manager.StateManager, sound audio.Player, logger *slog.Logger) *App {
	if sound == nil {
		sound = audio.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Game:   g,
		Scores: table,
		Stats:  stats,
		sound:  sound,
		logger: logger,
	}
}

// Step runs one controller tick and reacts to what it reported
func (a *App) Step() {
	for _, ev := range a.Game.Tick() {
		a.handle(ev)
	}
}

func (a *App) handle(ev game.Event) {
	switch ev.Kind {
	case game.EventFoodEaten:
		a.sound.Play(audio.CueEat)
	case game.EventHazardSpawned:
		a.logger.Debug("hazard spawned", "session", ev.Session)
		a.sound.Play(audio.CueHazard)
	case game.EventHazardExpired:
		a.logger.Debug("hazard expired", "session", ev.Session)
	case game.EventSessionEnded:
		if ev.Reason.Terminal() {
			a.sound.Play(audio.CueCrash)
		}
		if a.Stats != nil {
			a.Stats.AddToHistory(manager.SessionRecord{
				Session:  ev.Session,
				Level:    ev.Level,
				Score:    ev.Score,
				Reason:   ev.Reason.String(),
				Duration: ev.Duration,
				EndedAt:  time.Now(),
			})
		}
	}
}

// Start begins a session on the selected level. It does nothing while a
// session is already in progress.
func (a *App) Start() {
	err := a.Game.StartGame()
	switch {
	case errors.Is(err, game.ErrInProgress):
		return
	case err != nil:
		a.logger.Error("could not start session", "level", a.Game.Level(), "err", err)
	}
	a.showScores = false
	a.drain()
}

// Stop ends the current session; its score becomes pending like any other end
func (a *App) Stop() {
	a.Game.StopGame()
	a.drain()
}

func (a *App) Pause() {
	a.Game.PauseGame()
}

func (a *App) Steer(dir types.Direction) {
	a.Game.SetDirection(dir)
}

// SelectLevel switches level between sessions. Invalid or infeasible levels
// are logged and leave the current level in place.
func (a *App) SelectLevel(n int) {
	if err := a.Game.SelectLevel(n); err != nil {
		a.logger.Warn("level not selected", "level", n, "err", err)
	}
}

// SubmitName records the pending score under name. Returns whether the table
// changed.
func (a *App) SubmitName(name string) bool {
	score, ok := a.Game.TakePendingScore()
	if !ok {
		return false
	}
	recorded := a.Scores.Record(name, score)
	if recorded {
		a.logger.Info("high score recorded", "name", name, "score", score)
		a.showScores = true
	}
	return recorded
}

// DismissScore drops the pending score without recording it
func (a *App) DismissScore() {
	a.Game.TakePendingScore()
}

// ShowingScores reports whether the high score table should be on screen
func (a *App) ShowingScores() bool {
	return a.showScores
}

func (a *App) HideScores() {
	a.showScores = false
}

// drain handles events produced by control calls outside Tick
func (a *App) drain() {
	for _, ev := range a.Game.Events() {
		a.handle(ev)
	}
}
