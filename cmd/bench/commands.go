package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"hyperVNS/internal/bench"
	"hyperVNS/internal/flowshop"
	"hyperVNS/internal/metrics"
	"hyperVNS/internal/vns"
)

// runFlags - флаги команды run; непустые значения переопределяют план.
type runFlags struct {
	config        string
	pairs         string
	variants      string
	disable       string
	runs          int
	seed          int64
	instanceSeed  int64
	timeLimit     time.Duration
	perRunTimeout time.Duration
	parallel      int
	poolSize      int
	out           string
	metricsAddr   string
	verbose       bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "bench",
		Short:         "Эксперименты VNS-гиперэвристики на задаче flow-shop",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newRunCmd(stdout, stderr))
	root.AddCommand(newPlanCmd(stdout))
	return root
}

func newPlanCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Вывести план по умолчанию в формате YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(bench.DefaultPlan())
			if err != nil {
				return zerr.Wrap(err, "marshal plan")
			}
			_, err = stdout.Write(data)
			return err
		},
	}
}

func newRunCmd(stdout, stderr io.Writer) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Запустить эксперимент",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := buildPlan(cmd, f)
			if err != nil {
				return err
			}
			return runPlan(cmd.Context(), plan, f, stdout, stderr)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML-файл плана эксперимента")
	fl.StringVar(&f.pairs, "pairs", "", "конфигурации: количество работ Х количество станков (через запятую)")
	fl.StringVar(&f.variants, "variants", "", "варианты инициализации: uniform, greedy (через запятую)")
	fl.StringVar(&f.disable, "disable", "", "отключаемые категории эвристик (через запятую)")
	fl.IntVar(&f.runs, "runs", 0, "количество запусков каждого алгоритма (с разными сидами)")
	fl.Int64Var(&f.seed, "seed", 0, "базовый сид для запусков алгоритмов")
	fl.Int64Var(&f.instanceSeed, "instance_seed", 0, "базовый сид для генерации экземпляров задачи")
	fl.DurationVar(&f.timeLimit, "time_limit", 0, "ограничение времени одного запуска")
	fl.DurationVar(&f.perRunTimeout, "per_run_timeout", 0, "жёсткий таймаут одного запуска; 0 - без ограничения")
	fl.IntVar(&f.parallel, "parallel", 0, "количество одновременных запусков")
	fl.IntVar(&f.poolSize, "pool_size", 0, "размер пула решений VNS")
	fl.StringVar(&f.out, "out", "", "путь к выходному CSV-файлу")
	fl.StringVar(&f.metricsAddr, "metrics_addr", "", "адрес HTTP для метрик Prometheus (пусто - не публиковать)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "подробный журнал (debug)")
	return cmd
}

// buildPlan загружает план и применяет явно заданные флаги.
func buildPlan(cmd *cobra.Command, f runFlags) (bench.Plan, error) {
	plan := bench.DefaultPlan()
	if f.config != "" {
		loaded, err := bench.LoadPlan(f.config)
		if err != nil {
			return bench.Plan{}, err
		}
		plan = loaded
	}

	changed := cmd.Flags().Changed
	if changed("pairs") {
		plan.Pairs = bench.SplitCSV(f.pairs)
	}
	if changed("variants") {
		plan.Variants = plan.Variants[:0]
		for _, v := range bench.SplitCSV(f.variants) {
			plan.Variants = append(plan.Variants, vns.InitMode(v))
		}
	}
	if changed("disable") {
		plan.Disable = bench.SplitCSV(f.disable)
	}
	if changed("runs") {
		plan.Runs = f.runs
	}
	if changed("seed") {
		plan.Seed = f.seed
	}
	if changed("instance_seed") {
		plan.InstanceSeed = f.instanceSeed
	}
	if changed("time_limit") {
		plan.TimeLimit = f.timeLimit
	}
	if changed("per_run_timeout") {
		plan.PerRunTimeout = f.perRunTimeout
	}
	if changed("parallel") {
		plan.Parallel = f.parallel
	}
	if changed("pool_size") {
		plan.VNS.PoolSize = f.poolSize
	}
	if changed("out") {
		plan.Out = f.out
	}

	if err := plan.Validate(); err != nil {
		return bench.Plan{}, err
	}
	return plan, nil
}

func runPlan(ctx context.Context, plan bench.Plan, f runFlags, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cases, err := plan.Cases()
	if err != nil {
		return err
	}
	domainOpts, err := plan.DomainOptions()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	names := flowshop.HeuristicNames(domainOpts...)
	collector, err := metrics.NewCollector(reg, func(h int) string {
		if h < len(names) {
			return names[h]
		}
		return "unknown"
	})
	if err != nil {
		return err
	}
	if f.metricsAddr != "" {
		stop, err := serveMetrics(f.metricsAddr, reg, log)
		if err != nil {
			return err
		}
		defer stop()
	}

	batch := uuid.NewString()
	runner, err := plan.Runner(batch, log, nil)
	if err != nil {
		return err
	}
	algos := plan.Algorithms(log, collector)

	log.Info("batch started", "batch", batch, "cases", len(cases), "algorithms", len(algos), "runs", plan.Runs)

	var records []bench.Record
	for _, c := range cases {
		for _, a := range algos {
			_, _ = fmt.Fprintf(stdout, "Запущен алгоритм %s; %d работ %d машин (общее кол-во запусков=%d)...\n",
				a.Name, c.Jobs, c.Machines, runner.Runs)

			rec, err := runner.RunCase(ctx, c, a)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "run case"), "algo", a.Name)
			}
			records = append(records, rec)

			_, _ = fmt.Fprintf(stdout, "  Значение целевой функции: лучшее=%d среднее=%.2f стандартное отклонение=%.2f (нижняя оценка=%d, отклонение=%.2f%%) | Время: среднее=%.2fms\n",
				rec.MakespanBest, rec.MakespanMean, rec.MakespanStd,
				rec.LowerBound, rec.GapMeanPct,
				rec.TimeMeanMs,
			)
		}
	}

	if err := bench.WriteCSV(plan.Out, records); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(stdout, "Сохранено:", plan.Out)
	return nil
}

// serveMetrics публикует реестр по HTTP до вызова stop.
func serveMetrics(addr string, reg *prometheus.Registry, log *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "listen metrics"), "addr", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", "error", err)
		}
	}()
	log.Info("metrics server started", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
