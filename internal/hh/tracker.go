package hh

import (
	"math"

	"go.trai.ch/zerr"
)

// Tracker хранит индекс и значение лучшего решения пула.
// Инвариант: Value == pool.Value(Index) и Value <= pool.Value(i) для всех i.
type Tracker struct {
	Index int
	Value float64
}

// Rescan - полный проход по пулу. При равенстве побеждает меньший индекс.
func (t *Tracker) Rescan(pl *Pool) {
	t.Index = 0
	t.Value = math.Inf(1)
	for i := 0; i < pl.Size(); i++ {
		if v := pl.Value(i); v < t.Value {
			t.Index = i
			t.Value = v
		}
	}
}

// Observe обновляет трекер после записи в ячейку i.
func (t *Tracker) Observe(pl *Pool, i int) {
	v := pl.Value(i)
	switch {
	case i == t.Index && v > t.Value:
		// Лучшее решение испорчено - минимум мог переехать куда угодно
		t.Rescan(pl)
	case i == t.Index:
		t.Value = v
	case v < t.Value:
		t.Index = i
		t.Value = v
	}
}

// Check проверяет инвариант трекера.
func (t *Tracker) Check(pl *Pool) error {
	if t.Index < 0 || t.Index >= pl.Size() {
		return zerr.With(zerr.Wrap(ErrTrackerStale, "index out of range"), "index", t.Index)
	}
	if pl.Value(t.Index) != t.Value {
		err := zerr.With(zerr.Wrap(ErrTrackerStale, "cached value mismatch"), "index", t.Index)
		err = zerr.With(err, "tracked", t.Value)
		return zerr.With(err, "pool", pl.Value(t.Index))
	}
	for i := 0; i < pl.Size(); i++ {
		if pl.Value(i) < t.Value {
			err := zerr.With(zerr.Wrap(ErrTrackerStale, "better slot exists"), "index", i)
			return zerr.With(err, "value", pl.Value(i))
		}
	}
	return nil
}
