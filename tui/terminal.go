// Package tui is a terminal frontend. It draws the same Scene as the window
// frontend with one character pair per tile.
package tui

import (
	"fmt"
	"time"

	"gridsnake/app"
	"gridsnake/game"
	"gridsnake/game/scores"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellsPerTile = 2
	maxNameLen   = 16
)

type Terminal struct {
	s        tcell.Screen
	defStyle tcell.Style
	name     []rune
}

func New() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	defStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	s.SetStyle(defStyle)
	s.HideCursor()
	return &Terminal{s: s, defStyle: defStyle}, nil
}

// Run drives a until the player quits with q or Ctrl-C
func (t *Terminal) Run(a *app.App) {
	defer t.s.Fini()

	evChan := make(chan tcell.Event, 100)
	quitChan := make(chan struct{}, 1)
	go t.s.ChannelEvents(evChan, quitChan)
	ticker := time.NewTicker(a.Game.Config().TickPeriod)
	defer ticker.Stop()

EvLoop:
	for {
		t.draw(a)
		select {
		case <-ticker.C:
			a.Step()
		case ev := <-evChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.s.Sync()
			case *tcell.EventKey:
				if !t.handleKey(a, ev) {
					break EvLoop
				}
			}
		}
	}
	close(quitChan)
}

// handleKey applies one key press. Returns false when the player quits.
func (t *Terminal) handleKey(a *app.App, ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if a.ShowingScores() {
		a.HideScores()
		return true
	}

	if a.Game.AwaitingScore() {
		switch ev.Key() {
		case tcell.KeyEnter:
			a.SubmitName(string(t.name))
			t.name = t.name[:0]
		case tcell.KeyEscape:
			a.DismissScore()
			t.name = t.name[:0]
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(t.name) > 0 {
				t.name = t.name[:len(t.name)-1]
			}
		case tcell.KeyRune:
			if len(t.name) < maxNameLen {
				t.name = append(t.name, ev.Rune())
			}
		}
		return true
	}

	if dir, ok := keyDirection(ev); ok {
		a.Steer(dir)
		return true
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		if !a.Game.InProgress() {
			a.Start()
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			a.Pause()
		case 'x':
			a.Stop()
		case '1', '2', '3':
			if !a.Game.InProgress() {
				a.SelectLevel(int(ev.Rune() - '0'))
			}
		}
	}
	return true
}

// keyDirection maps arrow keys and hjkl to headings
func keyDirection(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return types.Up, true
		case 'j':
			return types.Down, true
		case 'h':
			return types.Left, true
		case 'l':
			return types.Right, true
		}
	}
	return 0, false
}

func (t *Terminal) draw(a *app.App) {
	sc := a.Game.Scene()
	grid := a.Game.Config().Grid
	cols, rows := grid.Width/types.TileSize, grid.Height/types.TileSize

	t.s.Clear()
	t.drawFrame(cols, rows)

	switch sc.Screen {
	case game.ScreenPlaying:
		for _, sp := range sc.Sprites {
			t.drawSprite(sp, sc.Heading)
		}
		status := fmt.Sprintf(" Score: %d  Level %d ", sc.Score, sc.Level)
		if sc.Paused {
			status += " PAUSED "
		}
		t.text(2, 0, status, t.defStyle.Foreground(tcell.ColorFuchsia))
		if sc.Hazard != nil {
			t.drawSprite(*sc.Hazard, sc.Heading)
		}
	case game.ScreenGameOver:
		t.centered(cols, rows/3, "GAME OVER", t.defStyle.Bold(true))
		t.centered(cols, rows/3+2, fmt.Sprintf("Score: %d", sc.LastScore), t.defStyle)
		if sc.AwaitingScore {
			t.centered(cols, rows/3+4, "Enter your name: "+string(t.name)+"_", t.defStyle.Foreground(tcell.ColorYellow))
			t.centered(cols, rows/3+6, "Enter to save, Esc to skip", t.defStyle.Foreground(tcell.ColorGray))
		} else {
			t.centered(cols, rows/3+4, "Enter to play again, q to quit", t.defStyle.Foreground(tcell.ColorGray))
		}
	default:
		t.centered(cols, rows/3, "SNAKE", t.defStyle.Foreground(tcell.ColorLime).Bold(true))
		t.centered(cols, rows/3+2, fmt.Sprintf("Level %d  (1-3 to change)", sc.Level), t.defStyle)
		t.centered(cols, rows/3+4, "Enter to play, arrows or hjkl to steer, p pause, x stop, q quit", t.defStyle.Foreground(tcell.ColorGray))
	}

	if a.ShowingScores() {
		t.drawScoreTable(cols, a.Scores.Entries())
	}
	t.s.Show()
}

// drawFrame outlines the board. Tile (0,0) is drawn at screen cell (1,1).
func (t *Terminal) drawFrame(cols, rows int) {
	w := cols*cellsPerTile + 2
	h := rows + 2
	style := t.defStyle.Foreground(tcell.ColorGray)
	for x := 0; x < w; x++ {
		t.s.SetContent(x, 0, tcell.RuneHLine, nil, style)
		t.s.SetContent(x, h-1, tcell.RuneHLine, nil, style)
	}
	for y := 0; y < h; y++ {
		t.s.SetContent(0, y, tcell.RuneVLine, nil, style)
		t.s.SetContent(w-1, y, tcell.RuneVLine, nil, style)
	}
	t.s.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	t.s.SetContent(w-1, 0, tcell.RuneURCorner, nil, style)
	t.s.SetContent(0, h-1, tcell.RuneLLCorner, nil, style)
	t.s.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, style)
}

func (t *Terminal) drawSprite(sp game.Sprite, heading types.Direction) {
	g := spriteGlyph(sp.Asset, heading)
	// hazard positions are not tile aligned; round to the nearest tile
	col := (sp.Rect.X + types.TileSize/2) / types.TileSize
	row := (sp.Rect.Y + types.TileSize/2) / types.TileSize
	style := t.defStyle.Foreground(g.color)
	x := 1 + col*cellsPerTile
	t.s.SetContent(x, 1+row, g.r[0], nil, style)
	t.s.SetContent(x+1, 1+row, g.r[1], nil, style)
}

type glyph struct {
	r     [cellsPerTile]rune
	color tcell.Color
}

func spriteGlyph(ref types.AssetRef, heading types.Direction) glyph {
	switch ref.Kind {
	case types.AssetSnakeHead:
		arrows := map[types.Direction]rune{types.Up: '▲', types.Down: '▼', types.Left: '◀', types.Right: '▶'}
		return glyph{r: [2]rune{arrows[heading], ' '}, color: tcell.ColorLime}
	case types.AssetSnakeBody:
		return glyph{r: [2]rune{'█', '█'}, color: tcell.ColorGreen}
	case types.AssetFood:
		return glyph{r: [2]rune{'<', '>'}, color: tcell.ColorGold}
	case types.AssetBrick:
		return glyph{r: [2]rune{'▓', '▓'}, color: tcell.ColorMaroon}
	case types.AssetHazard:
		return glyph{r: [2]rune{'(', ')'}, color: tcell.ColorRed}
	}
	return glyph{r: [2]rune{'?', '?'}, color: tcell.ColorFuchsia}
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Terminal) centered(cols, row int, s string, style tcell.Style) {
	w := cols*cellsPerTile + 2
	x := (w - len([]rune(s))) / 2
	if x < 1 {
		x = 1
	}
	t.text(x, 1+row, s, style)
}

func (t *Terminal) drawScoreTable(cols int, table []scores.Entry) {
	top := 4
	t.centered(cols, top, "  High Scores  ", t.defStyle.Reverse(true))
	for i, e := range table {
		t.centered(cols, top+2+i, fmt.Sprintf("%2d. %-16s %6d", i+1, e.Name, e.Score), t.defStyle)
	}
	t.centered(cols, top+3+scores.MaxEntries, "press any key", t.defStyle.Foreground(tcell.ColorGray))
}
