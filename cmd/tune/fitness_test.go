package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/constellation/config"
	"github.com/pthm-cable/constellation/relations"
)

func newTestEvaluator(t *testing.T, maxTicks int64) *FitnessEvaluator {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	table := relations.NewTable()
	table.Set("a", "b", 0.9)
	table.Set("b", "c", 0.6)
	table.Set("a", "c", -0.4)
	table.Set("c", "d", 0.8)

	return NewFitnessEvaluator(NewParamVector(), maxTicks, []int64{42, 1042}, cfg, table, nil)
}

func TestEvaluateDeterministic(t *testing.T) {
	fe := newTestEvaluator(t, 200)
	x := fe.params.DefaultVector()

	first := fe.Evaluate(x)
	second := fe.Evaluate(x)

	if math.IsNaN(first) || math.IsInf(first, 0) {
		t.Fatalf("fitness = %v, want finite", first)
	}
	if first < 0 {
		t.Errorf("fitness = %v, want >= 0", first)
	}
	if first != second {
		t.Errorf("same seeds gave %v then %v", first, second)
	}
}

func TestEvaluateTracksBestLayout(t *testing.T) {
	fe := newTestEvaluator(t, 100)
	if fe.BestLayout() != nil {
		t.Fatal("best layout set before any evaluation")
	}

	fe.Evaluate(fe.params.DefaultVector())

	placed := fe.BestLayout()
	if len(placed) != 4 {
		t.Fatalf("best layout has %d nodes, want 4", len(placed))
	}
	if s := fe.LastSettle(); s < 0 || s > 1 {
		t.Errorf("settle fraction = %v, want in [0,1]", s)
	}
}

func TestEvaluateLeavesBaseConfig(t *testing.T) {
	fe := newTestEvaluator(t, 10)
	before := fe.baseConfig.Layout.SpringConstant

	x := fe.params.DefaultVector()
	x[0] = fe.params.Specs[0].Max
	fe.Evaluate(x)

	if fe.baseConfig.Layout.SpringConstant != before {
		t.Errorf("base spring constant changed to %v", fe.baseConfig.Layout.SpringConstant)
	}
}

func TestComputeFitness(t *testing.T) {
	fe := &FitnessEvaluator{maxTicks: 100}

	tests := []struct {
		name string
		r    runResult
		want float64
	}{
		{"settled at once", runResult{stress: 2, settleTick: 0}, 2},
		{"never settled", runResult{stress: 2, settleTick: 100}, 2 * (1 + settleWeight)},
		{"halfway", runResult{stress: 1, settleTick: 50}, 1 + settleWeight/2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fe.computeFitness(&tt.r); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("computeFitness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateEmptyLayout(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fe := NewFitnessEvaluator(NewParamVector(), 50, []int64{42}, cfg, relations.NewTable(), nil)

	if got := fe.Evaluate(fe.params.DefaultVector()); got != 0 {
		t.Errorf("empty layout fitness = %v, want 0", got)
	}
}
