package vns_test

import (
	"fmt"
	"math"
	"math/rand"

	"hyperVNS/internal/hh"
	"hyperVNS/internal/vns"
)

// fakeDomain - детерминированная проблемная область для тестов контроллера.
// Без rng все эвристики не ухудшают решение (v-0.5, но не ниже 0);
// с rng значение случайно сдвигается в обе стороны.
type fakeDomain struct {
	cats  map[hh.HeuristicType][]int
	total int

	initValue func(i int) float64
	rng       *rand.Rand

	values []float64
	ready  []bool

	inits      []int
	applies    int
	crossovers int
	calls      []string
	violations []string

	// failOn - номер вызова ApplyHeuristic (с 1), который вернёт failErr.
	failOn  int
	failErr error
	// badValue - значение, которое вернёт вызов failOn вместо ошибки.
	badValue *float64
}

func newFakeDomain(total int, cats map[hh.HeuristicType][]int) *fakeDomain {
	return &fakeDomain{
		cats:      cats,
		total:     total,
		initValue: func(i int) float64 { return float64(100 + i) },
	}
}

func (d *fakeDomain) SetMemorySize(n int) error {
	d.values = make([]float64, n)
	d.ready = make([]bool, n)
	return nil
}

func (d *fakeDomain) InitialiseSolution(i int) error {
	d.inits = append(d.inits, i)
	d.calls = append(d.calls, fmt.Sprintf("init %d", i))
	d.values[i] = d.initValue(i)
	d.ready[i] = true
	return nil
}

func (d *fakeDomain) FunctionValue(i int) (float64, error) {
	if !d.ready[i] {
		d.violations = append(d.violations, fmt.Sprintf("read of slot %d before init", i))
	}
	return d.values[i], nil
}

func (d *fakeDomain) HeuristicsOfType(t hh.HeuristicType) []int { return d.cats[t] }

func (d *fakeDomain) NumberOfHeuristics() int { return d.total }

func (d *fakeDomain) ApplyHeuristic(h, src, dst int) (float64, error) {
	d.applies++
	d.calls = append(d.calls, fmt.Sprintf("apply %d %d->%d", h, src, dst))
	if d.failOn > 0 && d.applies == d.failOn {
		if d.badValue != nil {
			return *d.badValue, nil
		}
		return 0, d.failErr
	}
	if !d.ready[src] {
		d.violations = append(d.violations, fmt.Sprintf("apply from slot %d before init", src))
	}
	d.values[dst] = d.next(d.values[src])
	d.ready[dst] = true
	return d.values[dst], nil
}

func (d *fakeDomain) ApplyCrossover(h, p1, p2, dst int) (float64, error) {
	d.crossovers++
	d.calls = append(d.calls, fmt.Sprintf("cross %d %d,%d->%d", h, p1, p2, dst))
	if p1 == p2 {
		d.violations = append(d.violations, "crossover with identical parents")
	}
	if !d.ready[p1] || !d.ready[p2] {
		d.violations = append(d.violations, "crossover from uninitialised parent")
	}
	d.values[dst] = d.next(math.Min(d.values[p1], d.values[p2]))
	d.ready[dst] = true
	return d.values[dst], nil
}

func (d *fakeDomain) next(v float64) float64 {
	if d.rng == nil {
		return math.Max(0, v-0.5)
	}
	return v + d.rng.Float64()*4 - 2
}

// countdown истекает после limit успешных проверок.
type countdown struct {
	limit int
	calls int
	// onExpire вызывается при первом ответе true.
	onExpire func()
	expired  bool
}

func (c *countdown) HasTimeExpired() bool {
	c.calls++
	if c.calls > c.limit {
		if !c.expired && c.onExpire != nil {
			c.onExpire()
		}
		c.expired = true
		return true
	}
	return false
}

// recorder собирает события контроллера.
type recorder struct {
	phases []vns.Phase
	snaps  []vns.Snapshot
	moves  map[vns.Move]int
}

func newRecorder() *recorder {
	return &recorder{moves: make(map[vns.Move]int)}
}

func (r *recorder) PhaseDone(p vns.Phase, s vns.Snapshot) {
	r.phases = append(r.phases, p)
	r.snaps = append(r.snaps, s)
}

func (r *recorder) HeuristicApplied(m vns.Move, _ int, _ float64) {
	r.moves[m]++
}

func (r *recorder) snapshotsOf(p vns.Phase) []vns.Snapshot {
	var out []vns.Snapshot
	for i, ph := range r.phases {
		if ph == p {
			out = append(out, r.snaps[i])
		}
	}
	return out
}
