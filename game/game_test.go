package game

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := NewGame(cfg, rand.New(rand.NewSource(1)), quietLogger())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// startClear starts a session and clears the snake's row so the only thing
// it can hit is the right wall
func startClear(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t, DefaultConfig())
	if err := g.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	g.Events()
	g.obstacles = entity.NewObstacles(1, nil)
	g.GetFood().Position = types.Point{X: 0, Y: 0}
	return g
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func TestTickBeforeStart(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	if ev := g.Tick(); ev != nil {
		t.Errorf("events before start: %v", ev)
	}
	if g.Clock() != 0 || g.State() != NotStarted {
		t.Errorf("clock %v state %v", g.Clock(), g.State())
	}
	if g.Scene().Screen != ScreenStart {
		t.Error("expected start screen")
	}
}

func TestStartGame(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	if err := g.StartGame(); err != nil {
		t.Fatal(err)
	}
	if g.State() != Running || g.UUID == "" {
		t.Fatalf("state %v session %q", g.State(), g.UUID)
	}
	if g.GetObstacles().Len() != 8 {
		t.Errorf("level 1 has %d obstacles", g.GetObstacles().Len())
	}
	e, ok := findEvent(g.Events(), EventSessionStarted)
	if !ok || e.Session != g.UUID || e.Level != 1 {
		t.Errorf("start event %+v", e)
	}

	first := g.UUID
	g.StopGame()
	g.StartGame()
	if g.UUID == first {
		t.Error("new session reused the previous id")
	}
}

func TestTickMovesSnake(t *testing.T) {
	g := startClear(t)
	g.Tick()

	want := []types.Point{{X: 320, Y: 300}, {X: 300, Y: 300}, {X: 280, Y: 300}}
	for i, p := range want {
		if g.GetSnake().Body[i] != p {
			t.Fatalf("body %v, want %v", g.GetSnake().Body, want)
		}
	}
	if g.Clock() != g.Config().TickPeriod {
		t.Errorf("clock %v", g.Clock())
	}
}

// scriptedRand replays vals, reduced into range
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestTickFeeding(t *testing.T) {
	g := startClear(t)
	// variant, column, row: first on the tile ahead of the head, then at (40,60)
	rng := &scriptedRand{vals: []int{0, 16, 15, 5, 2, 3}}
	g.foodMgr = manager.NewFoodManager(g.cfg.Grid, rng, g.collisionMgr)
	if p := g.GetFood().Position; p != (types.Point{X: 320, Y: 300}) {
		t.Fatalf("food placed at %v", p)
	}

	e, ok := findEvent(g.Tick(), EventFoodEaten)
	if !ok || e.Score != entity.PointsPerFood {
		t.Fatalf("food event %+v, %v", e, ok)
	}
	s := g.GetSnake()
	if s.Score != 10 || s.Size != 4 {
		t.Errorf("score %d size %d", s.Score, s.Size)
	}
	if f := g.GetFood(); f.Position != (types.Point{X: 40, Y: 60}) || f.Variant != 5 {
		t.Errorf("food not moved after eating: %+v", *f)
	}

	g.GetFood().Position = types.Point{X: 0, Y: 0}
	g.Tick()
	if len(s.Body) != 4 {
		t.Errorf("body did not grow: %v", s.Body)
	}
}

func TestTickOutOfBounds(t *testing.T) {
	g := startClear(t)

	var events []Event
	for i := 0; i < 30 && g.InProgress(); i++ {
		events = append(events, g.Tick()...)
	}
	if g.State() != Ended || g.LastReason() != types.OutOfBounds {
		t.Fatalf("state %v reason %v", g.State(), g.LastReason())
	}
	if head := g.GetSnake().GetHead(); head.X != 780 {
		t.Errorf("head left at %v", head)
	}
	e, ok := findEvent(events, EventSessionEnded)
	if !ok || e.Reason != types.OutOfBounds || e.Duration != 25*g.Config().TickPeriod {
		t.Errorf("end event %+v", e)
	}
	if g.AwaitingScore() {
		t.Error("zero score should not be pending")
	}
	if g.Scene().Screen != ScreenStart {
		t.Error("zero score should return to the start screen")
	}
}

func TestTickSelfCollision(t *testing.T) {
	g := startClear(t)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 300, Y: 300}, {X: 320, Y: 300}, {X: 320, Y: 280}, {X: 300, Y: 280}, {X: 280, Y: 280}}
	s.Size = len(s.Body)
	s.Direction = types.Up

	g.Tick()
	if g.LastReason() != types.SelfCollision {
		t.Errorf("reason %v", g.LastReason())
	}
}

func TestTickObstacleCollision(t *testing.T) {
	g := startClear(t)
	g.obstacles = entity.NewObstacles(1, []types.Point{{X: 320, Y: 300}})

	g.Tick()
	if g.LastReason() != types.ObstacleCollision {
		t.Errorf("reason %v", g.LastReason())
	}
}

func TestTickFoodBeforeObstacle(t *testing.T) {
	g := startClear(t)
	g.GetFood().Position = types.Point{X: 320, Y: 300}
	g.obstacles = entity.NewObstacles(1, []types.Point{{X: 320, Y: 300}})
	g.GetHazard().Active = true
	g.GetHazard().Position = types.Point{X: 320, Y: 300}

	events := g.Tick()
	if g.LastReason() != types.ObstacleCollision || g.LastScore() != entity.PointsPerFood {
		t.Fatalf("reason %v score %d", g.LastReason(), g.LastScore())
	}
	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	if len(kinds) != 2 || kinds[0] != EventFoodEaten || kinds[1] != EventSessionEnded {
		t.Errorf("events %v, want food then end", kinds)
	}
	if !g.GetHazard().Active {
		t.Error("hazard handled after the obstacle ended the session")
	}
}

func TestTickHazardCollision(t *testing.T) {
	g := startClear(t)
	g.GetHazard().Active = true
	g.GetHazard().Position = types.Point{X: 320, Y: 300}

	g.Tick()
	if g.LastReason() != types.HazardCollision {
		t.Fatalf("reason %v", g.LastReason())
	}
	if g.GetHazard().Active {
		t.Error("hazard still active after hitting the snake")
	}
}

func TestTickHazardSpawn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickPeriod = entity.HazardMaxDelay + time.Second
	g := newTestGame(t, cfg)
	g.StartGame()
	g.obstacles = entity.NewObstacles(1, nil)
	g.GetFood().Position = types.Point{X: 0, Y: 0}

	if _, ok := findEvent(g.Tick(), EventHazardSpawned); !ok {
		t.Fatal("hazard did not spawn after the longest delay")
	}
	if !g.GetHazard().Active && g.LastReason() != types.HazardCollision {
		t.Error("spawned hazard is not active")
	}
}

func TestPause(t *testing.T) {
	g := startClear(t)
	g.PauseGame()
	if g.State() != Paused || !g.Scene().Paused {
		t.Fatalf("state %v", g.State())
	}

	head := g.GetSnake().GetHead()
	g.Tick()
	if g.GetSnake().GetHead() != head || g.Clock() != 0 {
		t.Error("paused game advanced")
	}

	g.PauseGame()
	g.Tick()
	if g.GetSnake().GetHead() == head {
		t.Error("resumed game did not move")
	}
}

func TestStopKeepsScore(t *testing.T) {
	g := startClear(t)
	g.GetFood().Position = types.Point{X: 320, Y: 300}
	g.Tick()
	g.GetFood().Position = types.Point{X: 0, Y: 0}
	g.Tick()
	g.StopGame()

	if g.State() != Ended || g.LastReason() != types.Stopped {
		t.Fatalf("state %v reason %v", g.State(), g.LastReason())
	}
	e, ok := findEvent(g.Events(), EventSessionEnded)
	if !ok || e.Score != 10 || e.Duration != 2*g.Config().TickPeriod {
		t.Errorf("end event %+v", e)
	}

	sc := g.Scene()
	if sc.Screen != ScreenGameOver || !sc.AwaitingScore || sc.LastScore != 10 {
		t.Errorf("scene %+v", sc)
	}
	if score, ok := g.TakePendingScore(); !ok || score != 10 {
		t.Errorf("TakePendingScore() = %d, %v", score, ok)
	}
	if _, ok := g.TakePendingScore(); ok {
		t.Error("pending score taken twice")
	}

	g.StopGame()
	if ev := g.Events(); ev != nil {
		t.Errorf("stopping an ended game produced %v", ev)
	}
}

func TestStartDiscardsPendingScore(t *testing.T) {
	g := startClear(t)
	g.GetFood().Position = types.Point{X: 320, Y: 300}
	g.Tick()
	g.StopGame()
	if !g.AwaitingScore() {
		t.Fatal("score should be pending")
	}
	g.StartGame()
	if g.AwaitingScore() {
		t.Error("new session kept the previous pending score")
	}
}

func TestDoubleTurnCannotReverse(t *testing.T) {
	g := startClear(t)
	if !g.SetDirection(types.Up) {
		t.Fatal("turn up rejected")
	}
	if g.SetDirection(types.Left) {
		t.Error("left accepted before the turn up was taken")
	}

	g.Tick()
	if g.State() != Running {
		t.Fatalf("state %v reason %v body %v", g.State(), g.LastReason(), g.GetSnake().Body)
	}
	if head := g.GetSnake().GetHead(); head != (types.Point{X: 300, Y: 280}) {
		t.Errorf("head %v", head)
	}
	if !g.SetDirection(types.Left) {
		t.Error("left rejected after moving up")
	}
}

func TestStartWhileRunning(t *testing.T) {
	g := startClear(t)
	g.Tick()
	id, head := g.UUID, g.GetSnake().GetHead()

	if err := g.StartGame(); !errors.Is(err, ErrInProgress) {
		t.Fatalf("StartGame while running = %v", err)
	}
	g.PauseGame()
	if err := g.StartGame(); !errors.Is(err, ErrInProgress) {
		t.Fatalf("StartGame while paused = %v", err)
	}
	if g.UUID != id || g.GetSnake().GetHead() != head || g.State() != Paused {
		t.Error("running session was restarted")
	}
	if ev := g.Events(); ev != nil {
		t.Errorf("events %v", ev)
	}
}

func TestSetDirection(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	if g.SetDirection(types.Up) {
		t.Error("steering accepted before start")
	}
	g.StartGame()
	if g.SetDirection(types.Left) {
		t.Error("reverse accepted")
	}
	if !g.SetDirection(types.Down) || g.GetSnake().Direction != types.Down {
		t.Error("turn rejected")
	}
}

func TestSelectLevel(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	if err := g.SelectLevel(3); err != nil {
		t.Fatal(err)
	}
	if g.Level() != 3 || g.GetObstacles().Len() != 10 {
		t.Errorf("level %d obstacles %d", g.Level(), g.GetObstacles().Len())
	}

	if err := g.SelectLevel(7); !errors.Is(err, manager.ErrInvalidLevel) {
		t.Errorf("SelectLevel(7) = %v", err)
	}
	if g.Level() != 3 {
		t.Error("invalid level changed the selection")
	}

	g.StartGame()
	if err := g.SelectLevel(1); !errors.Is(err, ErrInProgress) {
		t.Errorf("SelectLevel mid-session = %v", err)
	}
}

func TestNewGameInvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = 0
	if _, err := NewGame(cfg, rand.New(rand.NewSource(1)), quietLogger()); !errors.Is(err, manager.ErrInvalidLevel) {
		t.Errorf("NewGame level 0 = %v", err)
	}
}

func TestScenePlaying(t *testing.T) {
	g := startClear(t)
	g.obstacles = entity.NewObstacles(2, []types.Point{{X: 100, Y: 100}, {X: 700, Y: 500}})

	sc := g.Scene()
	if sc.Screen != ScreenPlaying || sc.Background.Kind != types.AssetBackground {
		t.Fatalf("screen %v background %v", sc.Screen, sc.Background)
	}
	kinds := []types.AssetKind{
		types.AssetSnakeHead, types.AssetSnakeBody, types.AssetSnakeBody,
		types.AssetFood, types.AssetBrick, types.AssetBrick,
	}
	if len(sc.Sprites) != len(kinds) {
		t.Fatalf("%d sprites, want %d", len(sc.Sprites), len(kinds))
	}
	for i, k := range kinds {
		if sc.Sprites[i].Asset.Kind != k {
			t.Errorf("sprite %d is %v, want %v", i, sc.Sprites[i].Asset.Kind, k)
		}
	}
	if sc.Sprites[4].Asset.Key() != "brick-2" {
		t.Errorf("brick asset %q", sc.Sprites[4].Asset.Key())
	}
	if sc.Hazard != nil {
		t.Error("inactive hazard in scene")
	}
	if sc.Heading != types.Right || sc.Level != 1 {
		t.Errorf("heading %v level %d", sc.Heading, sc.Level)
	}
}
