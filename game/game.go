package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
)

// ErrInProgress is returned by calls that need the current session to be over
var ErrInProgress = errors.New("session in progress")

// State is where the controller is in a session's lifecycle
type State int

const (
	NotStarted State = iota
	Running
	Paused
	Ended
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Config holds the simulation parameters
type Config struct {
	Grid        types.Grid
	TickPeriod  time.Duration
	Level       int
	Clearance   int // per-axis distance obstacles keep from the spawn head
	MaxAttempts int // obstacle candidates drawn per clearance level
}

func DefaultConfig() Config {
	return Config{
		Grid:        types.DefaultGrid(),
		TickPeriod:  100 * time.Millisecond,
		Level:       1,
		Clearance:   manager.DefaultClearance,
		MaxAttempts: manager.DefaultMaxAttempts,
	}
}

// Game is the controller. It owns every entity and the simulation clock and
// is driven from a single goroutine: the frontend calls Tick once per period
// and forwards input through StartGame, StopGame, PauseGame and SetDirection.
type Game struct {
	UUID string // current session

	cfg    Config
	rng    types.Rand
	logger *slog.Logger

	state     State
	clock     time.Duration // advances only while running
	startedAt time.Duration
	level     manager.Level

	snake     *entity.Snake
	obstacles *entity.Obstacles
	hazard    *entity.Hazard

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	obstacleMgr  *manager.ObstacleManager

	lastScore    int
	lastReason   types.EndReason
	pendingScore bool

	events []Event
}

// NewGame builds a controller and generates obstacles for cfg.Level. rng is
// the only randomness source the simulation uses.
func NewGame(cfg Config, rng types.Rand, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = DefaultConfig().TickPeriod
	}
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		cfg.Grid = types.DefaultGrid()
	}

	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	g := &Game{
		cfg:          cfg,
		rng:          rng,
		logger:       logger,
		state:        NotStarted,
		snake:        entity.NewSnake(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng, collisionMgr),
		obstacleMgr:  manager.NewObstacleManager(cfg.Grid, rng, collisionMgr, cfg.Clearance, cfg.MaxAttempts, logger),
	}

	if err := g.SelectLevel(cfg.Level); err != nil {
		return nil, err
	}
	g.hazard = entity.NewHazard(rng, cfg.Grid, g.level.HazardSpeed, g.clock)
	return g, nil
}

// SelectLevel switches level and generates its obstacles. It is refused while
// a session is in progress.
func (g *Game) SelectLevel(n int) error {
	if g.InProgress() {
		return fmt.Errorf("select level %d: %w", n, ErrInProgress)
	}
	level, err := manager.LookupLevel(n)
	if err != nil {
		return err
	}
	obstacles, err := g.obstacleMgr.Generate(level, g.snake.GetHead())
	if err != nil {
		return err
	}
	g.level = level
	g.obstacles = obstacles
	return nil
}

// StartGame begins a new session on the selected level. Any score still
// waiting for a name is discarded. It returns ErrInProgress while a session
// is running or paused.
func (g *Game) StartGame() error {
	if g.InProgress() {
		return ErrInProgress
	}
	g.snake.Reset()
	obstacles, err := g.obstacleMgr.Generate(g.level, g.snake.GetHead())
	if err != nil {
		return err
	}
	g.obstacles = obstacles
	g.foodMgr.Reset()
	g.hazard = entity.NewHazard(g.rng, g.cfg.Grid, g.level.HazardSpeed, g.clock)

	g.UUID = uuid.NewString()
	g.state = Running
	g.startedAt = g.clock
	g.pendingScore = false
	g.lastReason = types.NotEnded

	g.logger.Info("session started", "session", g.UUID, "level", g.level.Number,
		"obstacles", g.obstacles.Len())
	g.emit(Event{Kind: EventSessionStarted, Session: g.UUID, Level: g.level.Number})
	return nil
}

// StopGame ends the running or paused session as if it had hit a terminal
// condition, so its score can still be recorded
func (g *Game) StopGame() {
	if !g.InProgress() {
		return
	}
	g.end(types.Stopped)
}

// PauseGame toggles pause while a session is in progress
func (g *Game) PauseGame() {
	switch g.state {
	case Running:
		g.state = Paused
	case Paused:
		g.state = Running
	}
}

// SetDirection forwards a heading request to the snake. The change is seen
// by the next move. Returns whether it was accepted.
func (g *Game) SetDirection(dir types.Direction) bool {
	if !g.InProgress() {
		return false
	}
	return g.snake.SetDirection(dir)
}

// Tick advances the simulation by one period and returns the events it
// produced. It does nothing unless a session is running.
func (g *Game) Tick() []Event {
	if g.state != Running {
		return g.drain()
	}
	g.clock += g.cfg.TickPeriod

	if !g.snake.Move(g.cfg.Grid) {
		g.end(types.OutOfBounds)
		return g.drain()
	}

	if g.foodMgr.Update(g.snake) {
		g.emit(Event{Kind: EventFoodEaten, Session: g.UUID, Score: g.snake.Score, Level: g.level.Number})
	}

	if g.collisionMgr.IsSelfCollision(g.snake) {
		g.end(types.SelfCollision)
		return g.drain()
	}

	if g.collisionMgr.IsObstacleCollision(g.snake, g.obstacles) {
		g.end(types.ObstacleCollision)
		return g.drain()
	}

	if g.hazard.MaybeActivate(g.rng, g.clock) {
		g.emit(Event{Kind: EventHazardSpawned, Session: g.UUID, Level: g.level.Number})
	}
	if g.hazard.Advance(g.rng, g.clock) {
		g.emit(Event{Kind: EventHazardExpired, Session: g.UUID, Level: g.level.Number})
	}
	if g.collisionMgr.IsHazardCollision(g.snake, g.hazard) {
		g.hazard.Deactivate(g.rng, g.clock)
		g.end(types.HazardCollision)
	}
	return g.drain()
}

func (g *Game) end(reason types.EndReason) {
	g.state = Ended
	g.lastReason = reason
	g.lastScore = g.snake.Score
	g.pendingScore = g.lastScore > 0

	g.logger.Info("session ended", "session", g.UUID, "level", g.level.Number,
		"score", g.lastScore, "reason", reason.String(), "elapsed", g.clock-g.startedAt)
	g.emit(Event{
		Kind:     EventSessionEnded,
		Session:  g.UUID,
		Score:    g.lastScore,
		Level:    g.level.Number,
		Reason:   reason,
		Duration: g.clock - g.startedAt,
	})
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Events returns events raised by control calls since the last Tick
func (g *Game) Events() []Event {
	return g.drain()
}

func (g *Game) drain() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := g.events
	g.events = nil
	return out
}

// TakePendingScore returns the score of the session that just ended if it is
// still waiting to be recorded, and clears it
func (g *Game) TakePendingScore() (int, bool) {
	if !g.pendingScore {
		return 0, false
	}
	g.pendingScore = false
	return g.lastScore, true
}

// AwaitingScore reports whether the last session's score has not been
// recorded or dismissed yet
func (g *Game) AwaitingScore() bool {
	return g.pendingScore
}

// InProgress reports whether a session is running or paused
func (g *Game) InProgress() bool {
	return g.state == Running || g.state == Paused
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.foodMgr.GetFood()
}

func (g *Game) GetObstacles() *entity.Obstacles {
	return g.obstacles
}

func (g *Game) GetHazard() *entity.Hazard {
	return g.hazard
}

func (g *Game) Level() int {
	return g.level.Number
}

func (g *Game) LastScore() int {
	return g.lastScore
}

func (g *Game) LastReason() types.EndReason {
	return g.lastReason
}

// Clock is simulated time spent running, across all sessions
func (g *Game) Clock() time.Duration {
	return g.clock
}

func (g *Game) Config() Config {
	return g.cfg
}
