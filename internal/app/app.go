//go:build ebiten

package app

import (
	"image/color"

	"lifescope/internal/core"
	"lifescope/internal/life"
	"lifescope/internal/render"
	"lifescope/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// backgroundColor doubles as the border color for viewport samples that
// fall off the board.
var backgroundColor = color.RGBA{R: 38, G: 38, B: 77, A: 255}

// Held pan/zoom keys repeat at a fixed cadence, in ticks.
const (
	repeatDelay    = 18
	repeatInterval = 3
)

// Generation rate bounds for the speed keys.
const (
	minSimTPS = 1
	maxSimTPS = 240
)

// backend advances the board one generation and exposes the committed
// state as a texture.
type backend interface {
	Step()
	Reset(cells []uint8) error
	Frame() *ebiten.Image
}

// cpuBackend runs the step engine on the CPU and uploads the committed
// state each frame.
type cpuBackend struct {
	grid    *core.Grid
	engine  *life.Engine
	painter *render.GridPainter
}

func newCPUBackend(cfg *Config, cells []uint8) (*cpuBackend, error) {
	grid, err := core.NewSeededGrid(cfg.Width, cfg.Height, cells)
	if err != nil {
		return nil, err
	}
	return &cpuBackend{
		grid:    grid,
		engine:  life.NewEngine(grid, cfg.Workers),
		painter: render.NewGridPainter(cfg.Width, cfg.Height),
	}, nil
}

func (b *cpuBackend) Step()                     { b.engine.Step() }
func (b *cpuBackend) Reset(cells []uint8) error { return b.grid.Load(cells) }
func (b *cpuBackend) Frame() *ebiten.Image      { return b.painter.Upload(b.grid.Current()) }

// Game wires input, simulation stepping and presentation into the ebiten
// game loop. All mutable state lives here rather than in package globals.
type Game struct {
	cfg       *Config
	backend   backend
	presenter *render.Presenter
	hud       *ui.HUD

	view  core.Viewport
	run   core.RunState
	clock *core.FixedStep

	seedCells  []uint8
	generation uint64
}

// New builds the game from a validated config and seed cells.
func New(cfg *Config, cells []uint8) (*Game, error) {
	presenter, err := render.NewPresenter(backgroundColor)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:       cfg,
		presenter: presenter,
		hud:       ui.NewHUD(),
		view:      core.NewViewport(),
		clock:     core.NewFixedStep(cfg.SimTPS),
		seedCells: append([]uint8(nil), cells...),
	}
	g.run.Running = !cfg.Paused

	switch cfg.Backend {
	case BackendCPU:
		g.backend, err = newCPUBackend(cfg, cells)
	default:
		g.backend, err = render.NewPipeline(cfg.Width, cfg.Height, cells)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Reset restores the initial seed state.
func (g *Game) Reset() error {
	g.generation = 0
	return g.backend.Reset(g.seedCells)
}

// Update handles input and advances the simulation when due. Order within
// a frame is fixed: input, at most one step, then Draw presents the
// committed state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.run.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.run.QueueStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	if keyActive(ebiten.KeyW) || keyActive(ebiten.KeyArrowUp) {
		g.view.Pan(0, -core.PanStep)
	}
	if keyActive(ebiten.KeyS) || keyActive(ebiten.KeyArrowDown) {
		g.view.Pan(0, core.PanStep)
	}
	if keyActive(ebiten.KeyA) || keyActive(ebiten.KeyArrowLeft) {
		g.view.Pan(-core.PanStep, 0)
	}
	if keyActive(ebiten.KeyD) || keyActive(ebiten.KeyArrowRight) {
		g.view.Pan(core.PanStep, 0)
	}
	if keyActive(ebiten.KeyEqual) {
		g.view.Zoom(core.ZoomStep)
	}
	if keyActive(ebiten.KeyMinus) {
		g.view.Zoom(-core.ZoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.setSimTPS(g.cfg.SimTPS * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.setSimTPS(g.cfg.SimTPS / 2)
	}

	if g.run.ShouldStep(g.clock.ShouldStep()) {
		g.backend.Step()
		g.generation++
	}
	return nil
}

// Draw presents the committed generation under the current viewport.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.presenter.Draw(screen, g.backend.Frame(), g.view)
	g.hud.Draw(screen, ui.Status{
		Generation: g.generation,
		Running:    g.run.Running,
		Scale:      g.view.Scale,
		OffsetX:    g.view.OffsetX,
		OffsetY:    g.view.OffsetY,
		TPS:        g.cfg.SimTPS,
		Backend:    g.cfg.Backend,
	})
}

// Layout matches the logical screen to the window so the board always
// stretches over the whole surface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) setSimTPS(tps int) {
	if tps < minSimTPS {
		tps = minSimTPS
	}
	if tps > maxSimTPS {
		tps = maxSimTPS
	}
	g.cfg.SimTPS = tps
	g.clock.SetTPS(tps)
}

// keyActive reports a discrete press event for held keys: the initial
// press, then repeats after a short delay, matching key-down/key-repeat
// semantics (key-up never fires).
func keyActive(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
