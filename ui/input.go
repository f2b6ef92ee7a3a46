package ui

import (
	"unicode"

	"gridsnake/app"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxNameLen = 16

// arrowKeys is checked in a fixed order so two presses in one frame are
// applied the same way every time
var arrowKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
}

var levelKeys = map[int32]int{
	rl.KeyOne:   1,
	rl.KeyTwo:   2,
	rl.KeyThree: 3,
}

// Input turns key presses and button clicks into App calls
type Input struct {
	name []rune
}

// Name is what has been typed into the score prompt
func (in *Input) Name() string {
	return string(in.name)
}

// Poll reads this frame's input. While a score waits for a name, keys feed
// the prompt instead of the game.
func (in *Input) Poll(a *app.App, r *Renderer) {
	if a.ShowingScores() {
		if rl.GetKeyPressed() != 0 || rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			a.HideScores()
		}
		return
	}

	if a.Game.AwaitingScore() {
		in.pollName(a)
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if label, ok := r.ButtonAt(rl.GetMousePosition()); ok {
			pressButton(a, label)
		}
	}

	for _, k := range arrowKeys {
		if rl.IsKeyPressed(k.key) {
			a.Steer(k.dir)
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyP):
		a.Pause()
	case rl.IsKeyPressed(rl.KeyX):
		a.Stop()
	case rl.IsKeyPressed(rl.KeyEnter):
		if !a.Game.InProgress() {
			a.Start()
		}
	}

	if !a.Game.InProgress() {
		for key, n := range levelKeys {
			if rl.IsKeyPressed(key) {
				a.SelectLevel(n)
			}
		}
	}
}

func (in *Input) pollName(a *app.App) {
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		in.name = appendNameRune(in.name, rune(c))
	}

	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) && len(in.name) > 0:
		in.name = in.name[:len(in.name)-1]
	case rl.IsKeyPressed(rl.KeyEnter):
		a.SubmitName(string(in.name))
		in.name = in.name[:0]
	case rl.IsKeyPressed(rl.KeyEscape):
		a.DismissScore()
		in.name = in.name[:0]
	}
}

// appendNameRune adds r to a player name if it is printable and the name
// has room
func appendNameRune(name []rune, r rune) []rune {
	if len(name) >= maxNameLen || !unicode.IsPrint(r) {
		return name
	}
	return append(name, r)
}

func pressButton(a *app.App, label string) {
	switch label {
	case "Start":
		a.Start()
	case "Stop":
		a.Stop()
	case "Pause":
		a.Pause()
	}
}
