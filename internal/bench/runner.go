// Package bench - экспериментальный стенд: повторные запуски стратегий
// гиперэвристики на экземплярах flow-shop с ограничением времени.
package bench

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"hyperVNS/internal/budget"
	"hyperVNS/internal/flowshop"
	"hyperVNS/internal/hh"
)

var (
	// ErrInvalidRunner is returned for a runner with no runs or no time limit.
	ErrInvalidRunner = zerr.New("invalid runner settings")

	// ErrInvalidResult is returned when a run leaves no valid best solution.
	ErrInvalidResult = zerr.New("invalid run result")
)

// Algorithm - именованная фабрика стратегий. Фабрика вызывается
// на каждый запуск со своим сидом.
type Algorithm struct {
	Name    string
	Factory func(seed int64) (hh.Strategy, error)
}

type Case struct {
	Jobs         int
	Machines     int
	InstanceSeed int64
}

// Record - итог серии запусков одного алгоритма на одном экземпляре.
type Record struct {
	Batch    string
	Algo     string
	Jobs     int
	Machines int
	Runs     int

	LowerBound int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	MakespanBest int
	MakespanMean float64
	MakespanStd  float64

	// GapMeanPct - среднее отклонение от нижней оценки, %.
	GapMeanPct float64
	ChecksMean float64
}

type Runner struct {
	Runs     int
	BaseSeed int64
	// TimeLimit - бюджет одного запуска (TimeAuthority).
	TimeLimit time.Duration
	// PerRunTimeout - жёсткий таймаут контекста; 0 - без ограничения.
	PerRunTimeout time.Duration
	// Parallel - число одновременных запусков; <= 1 - последовательно.
	Parallel int

	// MinTime, MaxTime - диапазон времён обработки генерируемых экземпляров.
	MinTime, MaxTime int
	Domain           []flowshop.Option

	Batch  string
	Clock  clockwork.Clock
	Logger *slog.Logger
}

// runResult - итог одного запуска.
type runResult struct {
	makespan int
	timeMs   float64
	checks   int
}

func (r Runner) validate() error {
	if r.Runs <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidRunner, "runs must be > 0"), "runs", r.Runs)
	}
	if r.TimeLimit <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidRunner, "time limit must be > 0"), "time_limit", r.TimeLimit.String())
	}
	return nil
}

// RunCase генерирует экземпляр по сиду случая и выполняет Runs запусков.
// Каждый запуск получает свою область, генератор и ограничение времени.
func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	if err := r.validate(); err != nil {
		return Record{}, err
	}
	inst, err := flowshop.RandomInstance(c.Jobs, c.Machines, r.MinTime, r.MaxTime, randForSeed(c.InstanceSeed))
	if err != nil {
		return Record{}, zerr.With(zerr.Wrap(err, "generate instance"), "seed", c.InstanceSeed)
	}

	log := r.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With("algo", algo.Name, "jobs", c.Jobs, "machines", c.Machines)

	results := make([]runResult, r.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.Parallel))
	for i := 0; i < r.Runs; i++ {
		g.Go(func() error {
			res, err := r.runOnce(gctx, inst, algo, r.BaseSeed+int64(i))
			if err != nil {
				return zerr.With(err, "run", i)
			}
			results[i] = res
			log.Debug("run finished", "run", i, "makespan", res.makespan, "time_ms", res.timeMs, "checks", res.checks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Record{}, err
	}

	lb := inst.LowerBound()
	makespans := make([]int, r.Runs)
	timesMs := make([]float64, r.Runs)
	gaps := make([]float64, r.Runs)
	checks := make([]int, r.Runs)
	for i, res := range results {
		makespans[i] = res.makespan
		timesMs[i] = res.timeMs
		checks[i] = res.checks
		if lb > 0 {
			gaps[i] = 100 * float64(res.makespan-lb) / float64(lb)
		}
	}

	msStats := CalcStats(makespans)
	tStats := CalcStats(timesMs)

	return Record{
		Batch:    r.Batch,
		Algo:     algo.Name,
		Jobs:     c.Jobs,
		Machines: c.Machines,
		Runs:     r.Runs,

		LowerBound: lb,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		MakespanBest: msStats.Best,
		MakespanMean: msStats.Mean,
		MakespanStd:  msStats.Std,

		GapMeanPct: CalcStats(gaps).Mean,
		ChecksMean: CalcStats(checks).Mean,
	}, nil
}

// runOnce выполняет один запуск. Оценка - лучшее значение, зафиксированное
// ограничением времени до истечения лимита.
func (r Runner) runOnce(ctx context.Context, inst *flowshop.Instance, algo Algorithm, seed int64) (runResult, error) {
	// Сиды области и стратегии различаются, чтобы их случайные потоки не совпадали
	domain, err := flowshop.NewDomain(inst, randForSeed(seed^domainSeedMask), r.Domain...)
	if err != nil {
		return runResult{}, zerr.Wrap(err, "create domain")
	}
	strategy, err := algo.Factory(seed)
	if err != nil {
		return runResult{}, zerr.Wrap(err, "create strategy")
	}
	deadline, err := budget.NewDeadline(r.TimeLimit, domain, r.Clock)
	if err != nil {
		return runResult{}, zerr.Wrap(err, "create deadline")
	}

	runCtx := ctx
	cancel := func() {}
	if r.PerRunTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
	}
	defer cancel()

	if err := strategy.Solve(runCtx, domain, deadline); err != nil {
		return runResult{}, zerr.Wrap(err, "solve")
	}

	score := deadline.Best()
	if math.IsInf(score, 1) {
		// Лимит истёк до первой проверки: берётся лучшее решение области
		score = domain.BestSolutionValue()
	}

	eval, err := flowshop.NewEvaluator(inst)
	if err != nil {
		return runResult{}, zerr.Wrap(err, "create evaluator")
	}
	ms, err := eval.Makespan(domain.BestSolution())
	if err != nil {
		return runResult{}, zerr.With(zerr.Wrap(ErrInvalidResult, "best solution is not a valid permutation"), "cause", err.Error())
	}
	if float64(ms) > score {
		err := zerr.With(zerr.Wrap(ErrInvalidResult, "recorded score is better than best solution"), "score", score)
		return runResult{}, zerr.With(err, "makespan", ms)
	}

	return runResult{
		makespan: int(score),
		timeMs:   float64(deadline.Elapsed().Microseconds()) / 1000.0,
		checks:   deadline.Checks(),
	}, nil
}

const domainSeedMask = 0x5bd1e995

func randForSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
