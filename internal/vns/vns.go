// Package vns реализует гиперэвристику "поиск с чередующимися окрестностями"
// (VNS) над пулом решений: инициализация, встряска (переход, мутация,
// кроссовер), локальный поиск от лучшего решения и смена окрестности.
package vns

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"go.trai.ch/zerr"

	"hyperVNS/internal/hh"
)

var (
	// ErrNilRng is returned when the solver has no random generator.
	ErrNilRng = zerr.New("генератор случайных чисел не инициализирован (nil)")

	// ErrNilCollaborator is returned when Solve gets a nil domain or time authority.
	ErrNilCollaborator = zerr.New("problem domain and time authority are required")
)

// errExpired сворачивает стек при истечении времени посреди фазы.
var errExpired = errors.New("time expired")

var _ hh.Strategy = (*Solver)(nil)

// Solver - контроллер VNS. Все случайные выборы делаются из Rng.
type Solver struct {
	Cfg Config
	Rng *rand.Rand

	Logger   *slog.Logger
	Observer Observer
}

// New возвращает новый VNS-солвер с валидацией конфигурации.
// Используется в фабриках.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRng
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

// String - имя стратегии.
func (s *Solver) String() string {
	if s.Cfg.Init == InitGreedy {
		return "Greedy Randomized - Variable Neighborhood Search"
	}
	return "Greedy Variable Neighborhood Search"
}

// run - состояние одного запуска Solve.
type run struct {
	s   *Solver
	ctx context.Context
	ta  hh.TimeAuthority
	log *slog.Logger
	obs Observer

	cat  *hh.Catalog
	pool *hh.Pool
	best hh.Tracker

	ref       int
	incumbent float64
	iter      int
}

// Solve выполняет поиск до истечения времени. Ошибки настройки и ошибки
// вызовов области фатальны и возвращаются без повторов.
func (s *Solver) Solve(ctx context.Context, p hh.ProblemDomain, ta hh.TimeAuthority) error {
	if err := s.Cfg.Validate(); err != nil {
		return err
	}
	if s.Rng == nil {
		return ErrNilRng
	}
	if p == nil || ta == nil {
		return ErrNilCollaborator
	}

	log := s.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With("strategy", s.String())

	cat, err := hh.NewCatalog(p)
	if err != nil {
		return zerr.Wrap(err, "setup failed")
	}
	pool, err := hh.NewPool(p, s.Cfg.PoolSize)
	if err != nil {
		return zerr.Wrap(err, "setup failed")
	}

	r := &run{s: s, ctx: ctx, ta: ta, log: log, obs: s.Observer, cat: cat, pool: pool}

	log.Info("vns started",
		"pool_size", pool.Size(),
		"shake_steps", s.Cfg.shakeSteps(),
		"init", string(s.Cfg.Init),
		"local_search", len(cat.Heuristics(hh.LocalSearch)),
		"mutation", len(cat.Heuristics(hh.Mutation)),
		"crossover", len(cat.Heuristics(hh.Crossover)),
		"total", cat.Total(),
	)

	if err := r.initialize(); err != nil {
		return err
	}

	err = r.loop()
	if errors.Is(err, errExpired) {
		err = nil
	}
	if err != nil {
		log.Error("vns aborted", "error", err, "iterations", r.iter)
		return err
	}

	// Останов после применения эвристики мог пропустить NEIGHBORHOOD_CHANGE
	r.best.Rescan(r.pool)
	log.Info("vns finished",
		"iterations", r.iter,
		"best_index", r.best.Index,
		"best_value", r.best.Value,
		"incumbent", r.incumbent,
	)
	return nil
}

// loop - основной цикл; время проверяется в начале каждой итерации.
func (r *run) loop() error {
	for {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if r.ta.HasTimeExpired() {
			return nil
		}
		r.iter++

		if err := r.shake(); err != nil {
			return err
		}
		idx, prev, err := r.intensify()
		if err != nil {
			return err
		}
		r.neighborhoodChange(idx, prev)
	}
}

// initialize заполняет все N ячеек и устанавливает трекер.
func (r *run) initialize() error {
	n := r.pool.Size()
	for i := 0; i < n; i++ {
		v, err := r.pool.Initialize(i)
		if err != nil {
			return err
		}
		r.notify(MoveInit, -1, v)
	}
	r.best.Rescan(r.pool)

	if r.s.Cfg.Init == InitGreedy {
		if err := r.greedySweep(); err != nil {
			return err
		}
	}

	r.ref = r.best.Index
	r.incumbent = r.best.Value
	r.phaseDone(PhaseInit, false)
	return nil
}

// greedySweep - жадно-рандомизированное улучшение начального пула.
// На шаге k список кандидатов (RCL) - это N-k лучших ячеек; из него
// равновероятно выбирается ячейка и к ней применяется локальный поиск.
// Окно сужается, и выбор становится всё более жадным.
func (r *run) greedySweep() error {
	n := r.pool.Size()
	order := make([]int, n)
	for k := 0; k < n; k++ {
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return r.pool.Value(order[a]) < r.pool.Value(order[b])
		})

		window := n - k
		slot := order[r.s.Rng.Intn(window)]
		h := r.cat.Pick(hh.LocalSearch, r.s.Rng)
		v, err := r.pool.Apply(h, slot, slot)
		if err != nil {
			return err
		}
		r.best.Observe(r.pool, slot)
		r.notify(MoveLocalSearch, h, v)
	}
	return nil
}

// shake - встряска: shakeSteps случайных ходов трёх видов.
func (r *run) shake() error {
	n := r.pool.Size()
	rng := r.s.Rng
	for step := 0; step < r.s.Cfg.shakeSteps(); step++ {
		switch rng.Intn(3) {
		case 0:
			// Переход: меняется только опорная ячейка
			r.ref = rng.Intn(n)
			r.notify(MoveJump, -1, r.pool.Value(r.ref))

		case 1:
			h := r.cat.Pick(hh.Mutation, rng)
			v, err := r.pool.Apply(h, r.ref, r.ref)
			if err != nil {
				return err
			}
			r.best.Observe(r.pool, r.ref)
			if err := r.applied(MoveMutation, h, v); err != nil {
				return err
			}

		case 2:
			// Без второго различного родителя или без кроссоверов ход пропускается
			if n < 2 || !r.cat.Has(hh.Crossover) {
				continue
			}
			i := rng.Intn(n)
			j := rng.Intn(n - 1)
			if j >= i {
				j++
			}
			h := r.cat.Pick(hh.Crossover, rng)
			v, err := r.pool.Crossover(h, i, j, i)
			if err != nil {
				return err
			}
			r.best.Observe(r.pool, i)
			if err := r.applied(MoveCrossover, h, v); err != nil {
				return err
			}
		}
	}
	r.phaseDone(PhaseShake, false)
	return nil
}

// intensify применяет локальный поиск к текущему лучшему решению.
// Возвращает индекс ячейки и значение лучшего до применения.
func (r *run) intensify() (int, float64, error) {
	idx, prev := r.best.Index, r.best.Value
	h := r.cat.Pick(hh.LocalSearch, r.s.Rng)
	v, err := r.pool.Apply(h, idx, idx)
	if err != nil {
		return idx, prev, err
	}
	return idx, prev, r.applied(MoveLocalSearch, h, v)
}

// neighborhoodChange принимает улучшение и возвращает поиск к первой
// окрестности; иначе трекер не меняется, пока лучшая ячейка не ухудшилась.
func (r *run) neighborhoodChange(idx int, prev float64) {
	improved := r.pool.Value(idx) < prev
	if improved {
		// Полный проход: встряска могла сделать другую ячейку ещё лучше
		r.best.Rescan(r.pool)
		r.ref = r.best.Index
		r.log.Debug("improvement",
			"iteration", r.iter,
			"best_index", r.best.Index,
			"best_value", r.best.Value,
		)
	} else {
		r.best.Observe(r.pool, idx)
	}
	r.incumbent = math.Min(r.incumbent, r.best.Value)
	r.phaseDone(PhaseNeighborhoodChange, improved)
}

// applied сообщает о ходе и при необходимости опрашивает TimeAuthority.
func (r *run) applied(m Move, h int, v float64) error {
	r.notify(m, h, v)
	if !r.s.Cfg.CheckEveryApply {
		return nil
	}
	if err := r.ctx.Err(); err != nil {
		return err
	}
	if r.ta.HasTimeExpired() {
		return errExpired
	}
	return nil
}

func (r *run) notify(m Move, h int, v float64) {
	if r.obs != nil {
		r.obs.HeuristicApplied(m, h, v)
	}
}

func (r *run) phaseDone(p Phase, improved bool) {
	if r.obs == nil {
		return
	}
	r.obs.PhaseDone(p, Snapshot{
		Iteration: r.iter,
		BestIndex: r.best.Index,
		BestValue: r.best.Value,
		Incumbent: r.incumbent,
		Reference: r.ref,
		Values:    r.pool.Values(),
		Improved:  improved,
	})
}
