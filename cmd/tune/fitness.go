package main

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/constellation/config"
	"github.com/pthm-cable/constellation/layout"
	"github.com/pthm-cable/constellation/relations"
)

// Settling criteria: a run counts as settled once the mean kinetic energy per
// body stays below settleEnergy for settleGraceTicks consecutive ticks.
const (
	settleEnergy     = 0.01
	settleGraceTicks = 30

	// settleWeight scales how much a slow settle inflates the stress score.
	settleWeight = 0.2
)

// PlacedNode is a body position in the best layout found.
type PlacedNode struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// FitnessEvaluator runs headless layouts and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int64
	seeds      []int64
	baseConfig *config.Config
	table      *relations.Table
	nodes      []layout.NodeSpec

	// Best run tracking
	mu          sync.Mutex
	bestFitness float64
	bestLayout  []PlacedNode
	lastSettle  float64 // mean settle fraction from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator. A nil nodes slice lays out every
// label in the table.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []int64, baseCfg *config.Config, table *relations.Table, nodes []layout.NodeSpec) *FitnessEvaluator {
	if nodes == nil {
		nodes = relations.AllNodes(table)
	}
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		table:       table,
		nodes:       nodes,
		bestFitness: math.Inf(1),
	}
}

// BestLayout returns the final positions from the best evaluation.
func (fe *FitnessEvaluator) BestLayout() []PlacedNode {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestLayout
}

// LastSettle returns the mean settle fraction from the most recent evaluation.
func (fe *FitnessEvaluator) LastSettle() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSettle
}

// runResult holds the results from a single layout run.
type runResult struct {
	stress     float64
	settleTick int64 // first tick of the settled streak, maxTicks if never settled
	placed     []PlacedNode
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the final layout stress, inflated by up to settleWeight for runs
// that take the whole budget to come to rest.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Run all seeds in parallel
	results := make([]*runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runLayout(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	fitness := make([]float64, len(results))
	settle := make([]float64, len(results))
	bestSeed := 0
	for i, r := range results {
		settle[i] = fe.settleFraction(r)
		fitness[i] = fe.computeFitness(r)
		if fitness[i] < fitness[bestSeed] {
			bestSeed = i
		}
	}

	avgFitness := stat.Mean(fitness, nil)

	fe.mu.Lock()
	if avgFitness < fe.bestFitness {
		fe.bestFitness = avgFitness
		fe.bestLayout = results[bestSeed].placed
	}
	fe.lastSettle = stat.Mean(settle, nil)
	fe.mu.Unlock()

	return avgFitness
}

// runLayout executes a single headless layout run of maxTicks ticks.
// The relationship table is only read, so runs share it.
func (fe *FitnessEvaluator) runLayout(cfg *config.Config, seed int64) *runResult {
	sim := layout.New(cfg.LayoutParams(), fe.table, cfg.Bounds(), rand.New(rand.NewSource(seed)))
	sim.Reset(fe.nodes)

	result := &runResult{settleTick: fe.maxTicks}
	n := len(sim.Bodies())
	var calm int64

	// An empty layout never ticks, so it has nothing to run.
	for n > 0 && sim.TickCount() < fe.maxTicks {
		sim.Tick()

		if sim.KineticEnergy()/float64(n) < settleEnergy {
			calm++
		} else {
			calm = 0
		}
		if calm == settleGraceTicks && result.settleTick == fe.maxTicks {
			result.settleTick = sim.TickCount() - settleGraceTicks + 1
		}
		if calm == 0 {
			result.settleTick = fe.maxTicks
		}
	}

	result.stress = sim.Stress()
	for _, b := range sim.Bodies() {
		result.placed = append(result.placed, PlacedNode{Label: b.Label, X: b.Pos.X, Y: b.Pos.Y})
	}
	return result
}

// copyConfig creates a copy of the base config. Config holds only value
// fields, so a struct copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// settleFraction returns how much of the tick budget a run took to settle, in [0, 1].
func (fe *FitnessEvaluator) settleFraction(r *runResult) float64 {
	if fe.maxTicks <= 0 {
		return 0
	}
	return clamp01(float64(r.settleTick) / float64(fe.maxTicks))
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: stress × (1 + settleWeight × settleFraction)
func (fe *FitnessEvaluator) computeFitness(r *runResult) float64 {
	return r.stress * (1 + settleWeight*fe.settleFraction(r))
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
