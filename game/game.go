package game

import (
	"context"

	"the-snake/game/entity"
	"the-snake/game/input"
	"the-snake/game/manager"
	"the-snake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// InputSource yields the events that arrived since the last poll.
type InputSource interface {
	Poll() []input.Event
}

// Display is a frontend: something to draw on and read keys from.
type Display interface {
	types.Surface
	InputSource
	// Present flushes the frame drawn since the last call.
	Present() error
}

// StatusWriter is implemented by displays that can show a line of text.
type StatusWriter interface {
	SetStatus(status string)
}

// StepResult describes one simulation step.
type StepResult struct {
	Outcome   entity.Outcome
	Ate       bool
	Placement entity.Placement
}

type Game struct {
	UUID   string
	Config Config
	Grid   types.Grid

	snake        *entity.Snake
	food         *entity.Food
	drawables    []entity.Drawable
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	input        *input.Handler
}

// New builds a game from cfg. rng drives food placement and respawn
// headings.
func New(cfg Config, rng types.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	grid := cfg.Grid()
	snake := entity.NewSnake(grid, rng)
	food := entity.NewFood(grid, rng, snake.Body()...)
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         uuid.New().String(),
		Config:       cfg,
		Grid:         grid,
		snake:        snake,
		food:         food,
		drawables:    []entity.Drawable{snake, food},
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, food, collisionMgr),
		stateMgr:     manager.NewStateManager(),
		input:        input.NewHandler(),
	}
	return g, nil
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return g.foodMgr.Food()
}

func (g *Game) Stats() manager.GameStats {
	return g.stateMgr.Stats()
}

// Step advances the snake and handles eating, including on the tick the
// snake respawns.
func (g *Game) Step() StepResult {
	g.stateMgr.RecordTick()

	res := StepResult{Outcome: g.snake.Advance()}
	if res.Outcome == entity.Collided {
		g.stateMgr.RecordReset()
		glog.V(1).Infof("session %s: snake collided with itself, respawned heading %v", g.UUID, g.snake.Direction())
	}

	// The respawn cell may hold the food, so eating is checked either way.
	if g.foodMgr.IsEaten(g.snake.Head()) {
		g.snake.Grow()
		res.Ate = true
		res.Placement = g.foodMgr.Relocate(g.snake.Body())
		g.stateMgr.RecordMeal(g.snake.Length(), g.foodMgr.BoardFull())
		glog.V(1).Infof("session %s: food eaten, length %d", g.UUID, g.snake.Length())
	}
	return res
}

// Render draws a full frame onto s. The food goes last so a relocation
// onto the cell the tail just left stays visible.
func (g *Game) Render(s types.Surface) {
	s.Fill(types.BackgroundColor)
	for _, d := range g.drawables {
		d.Draw(s)
	}
	if sw, ok := s.(StatusWriter); ok {
		sw.SetStatus(g.stateMgr.Status())
	}
}

// Run drives the loop until a quit event or ctx is done: wait for the
// tick, apply input, step, draw.
func (g *Game) Run(ctx context.Context, d Display, p Pacer) error {
	glog.Infof("session %s: %dx%d cells at %d ticks/s", g.UUID, g.Grid.Columns(), g.Grid.Rows(), g.Config.TicksPerSecond)
	defer func() {
		st := g.stateMgr.Stats()
		glog.Infof("session %s over: %d ticks, %d meals, %d resets, best length %d", g.UUID, st.Ticks, st.Meals, st.Resets, st.BestLength)
	}()

	g.Render(d)
	if err := d.Present(); err != nil {
		return errors.Wrap(err, "present first frame")
	}

	for {
		if err := p.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "wait for tick")
		}

		if g.input.Apply(d.Poll(), g.snake) {
			return nil
		}

		g.Step()

		g.Render(d)
		if err := d.Present(); err != nil {
			return errors.Wrap(err, "present frame")
		}
	}
}
