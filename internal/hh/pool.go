package hh

import (
	"math"

	"go.trai.ch/zerr"
)

// Pool - пул решений фиксированного размера. Пул хранит только индексы и
// закэшированные значения целевой функции; сами решения живут в области.
type Pool struct {
	p      ProblemDomain
	values []float64
	ready  []bool
}

// NewPool резервирует n ячеек памяти области.
func NewPool(p ProblemDomain, n int) (*Pool, error) {
	if n < 1 {
		return nil, zerr.With(zerr.Wrap(ErrPoolSize, "create pool"), "size", n)
	}
	if err := p.SetMemorySize(n); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "set memory size"), "size", n)
	}
	return &Pool{p: p, values: make([]float64, n), ready: make([]bool, n)}, nil
}

// Size - число ячеек пула.
func (pl *Pool) Size() int { return len(pl.values) }

// Ready сообщает, инициализирована ли ячейка i.
func (pl *Pool) Ready(i int) bool {
	return i >= 0 && i < len(pl.ready) && pl.ready[i]
}

// Value возвращает закэшированное значение ячейки i без обращения к области.
// Неинициализированная ячейка читается как +Inf.
func (pl *Pool) Value(i int) float64 {
	if !pl.Ready(i) {
		return math.Inf(1)
	}
	return pl.values[i]
}

// Values возвращает копию кэша значений.
func (pl *Pool) Values() []float64 {
	out := make([]float64, len(pl.values))
	for i := range out {
		out[i] = pl.Value(i)
	}
	return out
}

// Initialize строит решение в ячейке i с нуля и кэширует его значение.
func (pl *Pool) Initialize(i int) (float64, error) {
	if err := pl.checkRange("initialise", i); err != nil {
		return 0, err
	}
	if err := pl.p.InitialiseSolution(i); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "initialise solution"), "slot", i)
	}
	v, err := pl.p.FunctionValue(i)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "read function value"), "slot", i)
	}
	return v, pl.store("initialise", i, v)
}

// Apply применяет одноместную эвристику: src -> dst (dst может совпадать с src).
func (pl *Pool) Apply(heuristic, src, dst int) (float64, error) {
	if err := pl.checkSource("apply", src); err != nil {
		return 0, err
	}
	if err := pl.checkRange("apply", dst); err != nil {
		return 0, err
	}
	v, err := pl.p.ApplyHeuristic(heuristic, src, dst)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "apply heuristic"), "heuristic", heuristic)
		err = zerr.With(err, "src", src)
		return 0, zerr.With(err, "dst", dst)
	}
	return v, pl.store("apply", dst, v)
}

// Crossover применяет двуместную эвристику: (p1, p2) -> dst.
func (pl *Pool) Crossover(heuristic, p1, p2, dst int) (float64, error) {
	if err := pl.checkSource("crossover", p1); err != nil {
		return 0, err
	}
	if err := pl.checkSource("crossover", p2); err != nil {
		return 0, err
	}
	if err := pl.checkRange("crossover", dst); err != nil {
		return 0, err
	}
	v, err := pl.p.ApplyCrossover(heuristic, p1, p2, dst)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "apply crossover"), "heuristic", heuristic)
		err = zerr.With(err, "parent1", p1)
		err = zerr.With(err, "parent2", p2)
		return 0, zerr.With(err, "dst", dst)
	}
	return v, pl.store("crossover", dst, v)
}

// store записывает значение в кэш. Нечисловое значение не записывается:
// кэшу после такого ответа области доверять нельзя.
func (pl *Pool) store(op string, i int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		err := zerr.With(zerr.Wrap(ErrNonFinite, op), "slot", i)
		return zerr.With(err, "value", v)
	}
	pl.values[i] = v
	pl.ready[i] = true
	return nil
}

func (pl *Pool) checkRange(op string, i int) error {
	if i < 0 || i >= len(pl.values) {
		err := zerr.With(zerr.Wrap(ErrSlotRange, op), "slot", i)
		return zerr.With(err, "size", len(pl.values))
	}
	return nil
}

func (pl *Pool) checkSource(op string, i int) error {
	if err := pl.checkRange(op, i); err != nil {
		return err
	}
	if !pl.ready[i] {
		return zerr.With(zerr.Wrap(ErrSlotNotReady, op), "slot", i)
	}
	return nil
}
