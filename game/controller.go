package game

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	gameOverMessage = "GAME OVER"
	wonMessage      = "YOU WIN"
)

// Controller drives one game session: it reads keys, advances the grid,
// keeps score and level, and renders changes to the surface.
type Controller struct {
	config   GameConfig
	grid     *GridState
	surface  Surface
	director Director

	score  int
	level  int
	ticks  int
	status GameStatus
	reason EndReason
}

type Summary struct {
	Score  int
	Level  int
	Length int
	Ticks  int
	Reason EndReason
}

// NewController validates the config against the surface and builds the
// starting grid. Nothing is drawn if the config or surface is unusable.
func NewController(config GameConfig, surface Surface) (*Controller, error) {
	seed := config.Seed
	if config.Snapshot != nil {
		config.Height, config.Width = config.Snapshot.Height, config.Snapshot.Width
		if seed == 0 {
			seed = config.Snapshot.Seed
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	rows, cols := surface.Size()
	needRows, needCols := config.requiredSurface()
	if rows < needRows || cols < needCols {
		return nil, newConfigError("terminal size of %dx%d is required, have only %dx%d", needRows, needCols, rows, cols)
	}

	config.Seed = seed
	grid, err := config.createGrid(rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	controller := &Controller{
		config:   config,
		grid:     grid,
		surface:  surface,
		director: config.Director,
		status:   Playing,
	}

	if controller.director != nil {
		controller.director.Init(grid)
	}

	surface.Layout(grid.Height(), grid.Width())
	controller.drawChanges()
	controller.refresh()

	log.WithFields(log.Fields{
		"height": config.Height,
		"width":  config.Width,
		"length": grid.Len(),
		"food":   grid.FoodCount(),
		"seed":   seed,
	}).Info("game started")

	return controller, nil
}

func (controller *Controller) Grid() *GridState {
	return controller.grid
}

func (controller *Controller) Score() int {
	return controller.score
}

func (controller *Controller) Level() int {
	return controller.level
}

func (controller *Controller) Status() GameStatus {
	return controller.status
}

func (controller *Controller) Reason() EndReason {
	return controller.reason
}

// Delay is the pause between ticks at the current level
func (controller *Controller) Delay() time.Duration {
	return controller.config.Levels.Delay(controller.level)
}

func (controller *Controller) Summary() Summary {
	return Summary{
		Score:  controller.score,
		Level:  controller.level,
		Length: controller.grid.Len(),
		Ticks:  controller.ticks,
		Reason: controller.reason,
	}
}

// Run ticks until the game is over, shows the end banner for EndDelay, then
// waits for any key.
func (controller *Controller) Run() Summary {
	for controller.status != GameOver {
		controller.Tick()
	}

	controller.surface.Sleep(controller.config.EndDelay)
	controller.surface.ReadKey(true)

	return controller.Summary()
}

// Tick performs one iteration of the game loop. While paused it blocks for
// the pause key. Unrecognized keys return at once without moving or
// sleeping. Once the game is over, Tick does nothing.
func (controller *Controller) Tick() {
	switch controller.status {
	case GameOver:
		return
	case Paused:
		controller.awaitResume()
		return
	}

	command, dir := CommandMove, DirNone
	if event, ok := controller.surface.ReadKey(false); ok {
		command, dir = MapKey(event)
	}

	switch command {
	case CommandIgnore:
		return
	case CommandMove:
		if controller.director != nil {
			dir = controller.director.Act()
		}
		controller.step(dir)
	case CommandPause:
		controller.status = Paused
		log.WithField("score", controller.score).Info("paused")
	case CommandQuit:
		controller.end(Quit)
	}

	if controller.status != GameOver {
		controller.surface.Sleep(controller.Delay())
	}
}

func (controller *Controller) awaitResume() {
	event, ok := controller.surface.ReadKey(true)
	if !ok {
		return
	}
	if command, _ := MapKey(event); command == CommandPause {
		controller.status = Playing
		log.Info("resumed")
	}
}

func (controller *Controller) step(dir Direction) {
	result := controller.grid.Advance(dir)
	controller.ticks++
	controller.drawChanges()

	switch result {
	case Ate:
		controller.addScore(controller.config.ScoreIncrement)
	case OutOfBounds:
		controller.end(HitWall)
	case SelfCollision:
		controller.end(HitSelf)
	}

	controller.refresh()
}

func (controller *Controller) addScore(points int) {
	controller.score += points

	level := controller.config.Levels.LevelFor(controller.score)
	if level <= controller.level {
		return
	}

	controller.level = level
	log.WithFields(log.Fields{
		"level": level,
		"score": controller.score,
		"delay": controller.Delay(),
	}).Info("level up")

	if level == controller.config.Levels.Last() {
		controller.end(Won)
	}
}

func (controller *Controller) end(reason EndReason) {
	if controller.status == GameOver {
		return
	}
	controller.status = GameOver
	controller.reason = reason

	if controller.director != nil {
		controller.director.End()
	}

	message := gameOverMessage
	if reason == Won {
		message = wonMessage
	}
	row := (controller.grid.Height() + 1) / 2
	col := (controller.grid.Width()+1)/2 - len(message)/2
	controller.surface.DisplayMessage(message, row, col)
	controller.surface.Refresh()

	log.WithFields(log.Fields{
		"reason": reason,
		"score":  controller.score,
		"level":  controller.level,
		"length": controller.grid.Len(),
		"ticks":  controller.ticks,
	}).Info("game over")

	if log.GetLevel() >= log.DebugLevel {
		snapshot := controller.grid.snapshot()
		snapshot.Seed = controller.config.Seed
		log.Debugf("final board:\n%s", snapshot.Render())
		log.Debugf("final snapshot:\n%s", snapshot.Serialize())
	}
}

func (controller *Controller) drawChanges() {
	for _, cell := range controller.grid.Changes() {
		controller.surface.DrawGlyph(cell, controller.grid.Glyph(cell))
	}
}

func (controller *Controller) refresh() {
	controller.surface.DisplayScore(controller.score)
	controller.surface.DisplayLevel(controller.level)
	controller.surface.Refresh()
}
