package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/scores"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelHeight = 60 // button strip under the board
	buttonW     = 110
	buttonH     = 36
)

// button is one of the Start / Stop / Pause controls in the bottom panel
type button struct {
	label string
	rect  rl.Rectangle
}

type Renderer struct {
	assets      *Assets
	boardWidth  int32
	boardHeight int32
	buttons     []button
}

func NewRenderer(assets *Assets, grid types.Grid) *Renderer {
	r := &Renderer{
		assets:      assets,
		boardWidth:  int32(grid.Width),
		boardHeight: int32(grid.Height),
	}

	labels := []string{"Start", "Stop", "Pause"}
	gap := float32(20)
	total := float32(len(labels))*buttonW + float32(len(labels)-1)*gap
	x := (float32(r.boardWidth) - total) / 2
	y := float32(r.boardHeight) + (panelHeight-buttonH)/2
	for _, l := range labels {
		r.buttons = append(r.buttons, button{label: l, rect: rl.NewRectangle(x, y, buttonW, buttonH)})
		x += buttonW + gap
	}
	return r
}

// WindowSize is the board plus the button panel
func (r *Renderer) WindowSize() (int32, int32) {
	return r.boardWidth, r.boardHeight + panelHeight
}

// ButtonAt returns the label of the button under p, if any
func (r *Renderer) ButtonAt(p rl.Vector2) (string, bool) {
	for _, b := range r.buttons {
		if rl.CheckCollisionPointRec(p, b.rect) {
			return b.label, true
		}
	}
	return "", false
}

// Draw renders one frame. name is the text typed so far in the score prompt.
func (r *Renderer) Draw(sc game.Scene, table []scores.Entry, showScores bool, name string) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawBackground(sc.Background)

	switch sc.Screen {
	case game.ScreenPlaying:
		for _, s := range sc.Sprites {
			r.drawSprite(s, sc.Heading)
		}
		rl.DrawText(fmt.Sprintf("Score: %d", sc.Score), 20, 20, 30, rl.Magenta)
		rl.DrawText(fmt.Sprintf("Level %d", sc.Level), r.boardWidth-120, 26, 20, rl.RayWhite)
		if sc.Hazard != nil {
			r.drawSprite(*sc.Hazard, sc.Heading)
		}
		if sc.Paused {
			r.drawCentered("PAUSED", r.boardHeight/2-20, 40, rl.Yellow)
		}
	case game.ScreenGameOver:
		r.drawCentered("GAME OVER", r.boardHeight/3, 48, rl.RayWhite)
		r.drawCentered(fmt.Sprintf("Score: %d", sc.LastScore), r.boardHeight/3+60, 28, rl.RayWhite)
		if sc.AwaitingScore {
			r.drawNamePrompt(name)
		} else {
			r.drawCentered("Press Enter to play again", r.boardHeight/3+110, 20, rl.LightGray)
		}
	default:
		r.drawCentered("SNAKE", r.boardHeight/3, 64, rl.Lime)
		r.drawCentered(fmt.Sprintf("Level %d  (1-3 to change)", sc.Level), r.boardHeight/3+90, 22, rl.RayWhite)
		r.drawCentered("Enter or Start to play, arrows to steer", r.boardHeight/3+124, 20, rl.LightGray)
	}

	if showScores {
		r.drawScoreTable(table)
	}
	r.drawPanel(sc)
	rl.EndDrawing()
}

func (r *Renderer) drawBackground(ref types.AssetRef) {
	if tex, ok := r.assets.Texture(ref); ok {
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		dst := rl.NewRectangle(0, 0, float32(r.boardWidth), float32(r.boardHeight))
		rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
		return
	}
	rl.DrawRectangle(0, 0, r.boardWidth, r.boardHeight, fallbackColor(ref))
}

// drawSprite draws s at its rectangle. The head image faces right and is
// rotated to the current heading.
func (r *Renderer) drawSprite(s game.Sprite, heading types.Direction) {
	tex, ok := r.assets.Texture(s.Asset)
	if !ok {
		rl.DrawRectangle(int32(s.Rect.X), int32(s.Rect.Y), int32(s.Rect.W), int32(s.Rect.H), fallbackColor(s.Asset))
		return
	}

	var rotation float32
	if s.Asset.Kind == types.AssetSnakeHead {
		rotation = headingRotation(heading)
	}
	w, h := float32(s.Rect.W), float32(s.Rect.H)
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(s.Rect.X)+w/2, float32(s.Rect.Y)+h/2, w, h)
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{X: w / 2, Y: h / 2}, rotation, rl.White)
}

func headingRotation(d types.Direction) float32 {
	switch d {
	case types.Down:
		return 90
	case types.Left:
		return 180
	case types.Up:
		return 270
	}
	return 0
}

func (r *Renderer) drawCentered(text string, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (r.boardWidth-w)/2, y, size, color)
}

func (r *Renderer) drawNamePrompt(name string) {
	y := r.boardHeight/3 + 110
	r.drawCentered("Enter your name:", y, 22, rl.RayWhite)

	boxW := int32(320)
	boxX := (r.boardWidth - boxW) / 2
	rl.DrawRectangle(boxX, y+32, boxW, 36, rl.Fade(rl.Black, 0.7))
	rl.DrawRectangleLines(boxX, y+32, boxW, 36, rl.RayWhite)
	rl.DrawText(name+"_", boxX+10, y+40, 22, rl.Yellow)
	r.drawCentered("Enter to save, Esc to skip", y+80, 18, rl.LightGray)
}

func (r *Renderer) drawScoreTable(table []scores.Entry) {
	w, h := int32(300), int32(60+24*scores.MaxEntries)
	x, y := (r.boardWidth-w)/2, (r.boardHeight-h)/2
	rl.DrawRectangle(x, y, w, h, rl.Fade(rl.DarkGray, 0.95))
	rl.DrawRectangleLines(x, y, w, h, rl.RayWhite)
	rl.DrawText("Player's Name", x+12, y+10, 18, rl.RayWhite)
	rl.DrawText("Score", x+w-80, y+10, 18, rl.RayWhite)

	for i, e := range table {
		rowY := y + 40 + int32(i)*24
		rl.DrawText(e.Name, x+12, rowY, 18, rl.LightGray)
		rl.DrawText(fmt.Sprintf("%d", e.Score), x+w-80, rowY, 18, rl.LightGray)
	}
	rl.DrawText("press any key", x+12, y+h-22, 14, rl.Gray)
}

func (r *Renderer) drawPanel(sc game.Scene) {
	rl.DrawRectangle(0, r.boardHeight, r.boardWidth, panelHeight, rl.DarkGray)
	mouse := rl.GetMousePosition()
	for _, b := range r.buttons {
		bg := rl.Gray
		if rl.CheckCollisionPointRec(mouse, b.rect) {
			bg = rl.LightGray
		}
		label := b.label
		if label == "Pause" && sc.Paused {
			label = "Resume"
		}
		rl.DrawRectangleRec(b.rect, bg)
		rl.DrawRectangleLinesEx(b.rect, 1, rl.Black)
		tw := rl.MeasureText(label, 20)
		rl.DrawText(label, int32(b.rect.X)+(buttonW-tw)/2, int32(b.rect.Y)+(buttonH-20)/2, 20, rl.Black)
	}
}
