package ui

import (
	"time"

	"gridsnake/app"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and drives a until it is closed. The controller is
// stepped at a fixed interval independent of the frame rate.
func Run(a *app.App, assetsDir string) {
	cfg := a.Game.Config()

	assets := NewAssets(assetsDir, nil)
	renderer := NewRenderer(assets, cfg.Grid)
	input := &Input{}

	w, h := renderer.WindowSize()
	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	defer assets.Unload()

	rl.SetExitKey(0) // Esc is used by the score prompt
	rl.SetTargetFPS(60)

	lastUpdate := time.Now()
	for !rl.WindowShouldClose() {
		input.Poll(a, renderer)

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= cfg.TickPeriod {
			a.Step()
			lastUpdate = time.Now()
		}

		renderer.Draw(a.Game.Scene(), a.Scores.Entries(), a.ShowingScores(), input.Name())
	}
}
