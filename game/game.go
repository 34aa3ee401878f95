// Package game runs the layout simulation behind a raylib window or headless.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/constellation/camera"
	"github.com/pthm-cable/constellation/config"
	"github.com/pthm-cable/constellation/layout"
	"github.com/pthm-cable/constellation/relations"
	"github.com/pthm-cable/constellation/scene"
	"github.com/pthm-cable/constellation/telemetry"
	"github.com/pthm-cable/constellation/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	Table *relations.Table
	Nodes []layout.NodeSpec // nil displays every label in Table
}

// Game holds the complete viewer state.
type Game struct {
	cfg *config.Config

	sim   *layout.Simulation
	table *relations.Table
	nodes []layout.NodeSpec

	scene  *scene.Scene
	drag   *scene.Drag
	camera *camera.Camera

	// UI
	hud       *ui.HUD
	controls  *ui.ControlsPanel
	perfPanel *ui.PerfPanel
	nodePanel *ui.NodePanel
	overlays  *ui.OverlayRegistry

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// State
	paused         bool
	stepsPerUpdate int
	showPerf       bool
	hovered        string

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game from the global config and the given options.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()
	if opts.Table == nil {
		return nil, fmt.Errorf("no relationship table")
	}

	nodes := opts.Nodes
	if nodes == nil {
		nodes = relations.AllNodes(opts.Table)
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		cfg:            cfg,
		table:          opts.Table,
		nodes:          nodes,
		stepsPerUpdate: steps,
		logStats:       opts.LogStats,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
		collector:      telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g.sim = layout.New(cfg.LayoutParams(), opts.Table, cfg.Bounds(), rng)
	g.sim.Reset(nodes)

	g.scene = scene.New(float32(cfg.Layout.NodeRadius))
	g.drag = scene.NewDrag(g.scene)
	g.scene.Sync(g.sim)

	if !opts.Headless {
		g.camera = camera.New(g.screenWidth, g.screenHeight, g.screenWidth, g.screenHeight)
		g.overlays = ui.NewOverlayRegistry()
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlsPanel(int32(g.screenWidth)-230, 10, 220, g.overlays)
		g.perfPanel = ui.NewPerfPanel(10, 130)
		g.nodePanel = ui.NewNodePanel(10, int32(g.screenHeight)-260, 260)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	g.collector.Restart(g.sim)

	slog.Info("layout initialized",
		"seed", opts.Seed,
		"nodes", len(g.sim.Bodies()),
		"labels", opts.Table.Len(),
		"pairs", len(opts.Table.Pairs()),
	)

	return g, nil
}

// SetStatsCallback registers a function called with every flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Update handles input and advances the simulation.
func (g *Game) Update() {
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	if !g.paused {
		for i := 0; i < g.stepsPerUpdate; i++ {
			// Re-pin before every step so a held node stays under the cursor.
			g.reapplyDrag()
			g.step()
		}
	}

	g.perfCollector.StartPhase(telemetry.PhaseSceneSync)
	g.scene.Sync(g.sim)
	g.perfCollector.EndTick()
}

// UpdateHeadless advances the simulation without graphics or input.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.perfCollector.StartTick()
		g.step()
		g.perfCollector.EndTick()
	}
}

// step runs one layout tick and flushes telemetry when a window ends.
func (g *Game) step() {
	g.perfCollector.StartPhase(telemetry.PhaseLayout)
	g.sim.Tick()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
}

// Disrupt kicks the layout out of its current configuration.
func (g *Game) Disrupt() {
	g.sim.Disrupt()
	slog.Info("disrupt",
		"tick", g.sim.TickCount(),
		"temperature", g.sim.Temperature(),
		"disruptions", g.sim.Annealer().Disruptions(),
	)
}

// Reset scatters the nodes again and restarts annealing.
func (g *Game) Reset() {
	g.drag.Cancel()
	g.sim.Reset(g.nodes)
	g.scene.Sync(g.sim)
	g.collector.Restart(g.sim)
	slog.Info("reset", "nodes", len(g.sim.Bodies()))
}

// Resize changes the layout extent to match a new window size.
func (g *Game) Resize(width, height float32) {
	if width == g.screenWidth && height == g.screenHeight {
		return
	}
	g.screenWidth = width
	g.screenHeight = height
	g.sim.SetBounds(float64(width), float64(height))

	if g.camera != nil {
		g.camera.Resize(width, height, width, height)
	}
	if g.controls != nil {
		g.controls.SetPosition(int32(width)-230, 10)
	}
	if g.nodePanel != nil {
		g.nodePanel.SetPosition(10, int32(height)-260)
	}
}

// Simulation exposes the underlying layout simulation.
func (g *Game) Simulation() *layout.Simulation {
	return g.sim
}

// Tick returns the number of ticks since the last reset.
func (g *Game) Tick() int64 {
	return g.sim.TickCount()
}

// Unload flushes and closes the output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
