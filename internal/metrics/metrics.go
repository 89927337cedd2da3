// Package metrics публикует ход поиска VNS в Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/zerr"

	"hyperVNS/internal/vns"
)

const namespace = "hypervns"

// ErrNilRegisterer is returned when no registerer is supplied.
var ErrNilRegisterer = zerr.New("prometheus registerer is required")

// Collector реализует vns.Observer. Безопасен для параллельных запусков:
// счётчики суммируются, gauges хранят значение последнего события.
type Collector struct {
	// PhaseTotal - завершённые фазы. Labels: phase.
	PhaseTotal *prometheus.CounterVec
	// HeuristicCalls - применённые ходы. Labels: move, heuristic.
	HeuristicCalls *prometheus.CounterVec
	// Improvements - итерации, на которых локальный поиск улучшил лучшее решение.
	Improvements prometheus.Counter
	BestValue    prometheus.Gauge
	Incumbent    prometheus.Gauge

	names func(int) string
}

var _ vns.Observer = (*Collector)(nil)

// NewCollector регистрирует метрики в reg. names переводит номер
// эвристики в метку; nil - используется номер.
func NewCollector(reg prometheus.Registerer, names func(int) string) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	c := &Collector{
		PhaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_total",
			Help:      "Completed controller phases.",
		}, []string{"phase"}),
		HeuristicCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heuristic_calls_total",
			Help:      "Moves applied by the controller.",
		}, []string{"move", "heuristic"}),
		Improvements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "improvements_total",
			Help:      "Iterations where intensification improved the best solution.",
		}),
		BestValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_value",
			Help:      "Objective value of the tracked best pool slot.",
		}),
		Incumbent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "incumbent_value",
			Help:      "Best objective value committed at neighborhood change.",
		}),
		names: names,
	}
	for _, m := range []prometheus.Collector{c.PhaseTotal, c.HeuristicCalls, c.Improvements, c.BestValue, c.Incumbent} {
		if err := reg.Register(m); err != nil {
			return nil, zerr.Wrap(err, "register metric")
		}
	}
	return c, nil
}

func (c *Collector) PhaseDone(phase vns.Phase, snap vns.Snapshot) {
	c.PhaseTotal.WithLabelValues(phase.String()).Inc()
	c.BestValue.Set(snap.BestValue)
	c.Incumbent.Set(snap.Incumbent)
	if snap.Improved {
		c.Improvements.Inc()
	}
}

func (c *Collector) HeuristicApplied(move vns.Move, heuristic int, _ float64) {
	c.HeuristicCalls.WithLabelValues(move.String(), c.label(heuristic)).Inc()
}

func (c *Collector) label(h int) string {
	switch {
	case h < 0:
		return "none"
	case c.names != nil:
		return c.names(h)
	default:
		return strconv.Itoa(h)
	}
}

// Observers объединяет несколько наблюдателей в один.
type Observers []vns.Observer

func (o Observers) PhaseDone(phase vns.Phase, snap vns.Snapshot) {
	for _, x := range o {
		x.PhaseDone(phase, snap)
	}
}

func (o Observers) HeuristicApplied(move vns.Move, heuristic int, value float64) {
	for _, x := range o {
		x.HeuristicApplied(move, heuristic, value)
	}
}
