// Package budget реализует ограничение времени запуска гиперэвристики.
// Каждая проверка до истечения лимита фиксирует лучшее значение области -
// только эти значения идут в оценку запуска.
package budget

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"

	"hyperVNS/internal/hh"
)

var (
	// ErrInvalidLimit is returned for a non-positive time limit.
	ErrInvalidLimit = zerr.New("time limit must be > 0")

	// ErrNilReporter is returned when no best-value reporter is given.
	ErrNilReporter = zerr.New("best reporter is required")
)

// Checkpoint - значение, зафиксированное при проверке времени.
type Checkpoint struct {
	Elapsed time.Duration
	Best    float64
}

// Deadline - TimeAuthority с ограничением по настенному времени.
// Отсчёт начинается при создании.
type Deadline struct {
	limit    time.Duration
	reporter hh.BestReporter
	clock    clockwork.Clock
	start    time.Time

	checks      int
	expired     bool
	checkpoints []Checkpoint
}

var _ hh.TimeAuthority = (*Deadline)(nil)

// NewDeadline создаёт ограничение; clock == nil означает реальные часы.
func NewDeadline(limit time.Duration, reporter hh.BestReporter, clock clockwork.Clock) (*Deadline, error) {
	if limit <= 0 {
		return nil, zerr.With(zerr.Wrap(ErrInvalidLimit, "create deadline"), "limit", limit.String())
	}
	if reporter == nil {
		return nil, ErrNilReporter
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Deadline{
		limit:    limit,
		reporter: reporter,
		clock:    clock,
		start:    clock.Now(),
	}, nil
}

// HasTimeExpired фиксирует лучшее значение, если лимит ещё не исчерпан.
// После истечения значения не записываются: улучшения за пределами
// лимита в оценку не попадают.
func (d *Deadline) HasTimeExpired() bool {
	d.checks++
	if d.expired {
		return true
	}
	elapsed := d.clock.Since(d.start)
	if elapsed >= d.limit {
		d.expired = true
		return true
	}
	d.checkpoints = append(d.checkpoints, Checkpoint{Elapsed: elapsed, Best: d.reporter.BestSolutionValue()})
	return false
}

// Best - последнее зафиксированное значение (+Inf, если проверок не было).
func (d *Deadline) Best() float64 {
	if len(d.checkpoints) == 0 {
		return math.Inf(1)
	}
	return d.checkpoints[len(d.checkpoints)-1].Best
}

// Checks - число вызовов HasTimeExpired.
func (d *Deadline) Checks() int { return d.checks }

// Elapsed - время с момента создания.
func (d *Deadline) Elapsed() time.Duration { return d.clock.Since(d.start) }

// Checkpoints возвращает копию записанных значений.
func (d *Deadline) Checkpoints() []Checkpoint {
	return append([]Checkpoint(nil), d.checkpoints...)
}
