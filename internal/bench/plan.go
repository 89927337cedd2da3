package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"hyperVNS/internal/flowshop"
	"hyperVNS/internal/hh"
	"hyperVNS/internal/vns"
)

var (
	// ErrInvalidPlan is returned when a plan fails validation.
	ErrInvalidPlan = zerr.New("invalid bench plan")

	// ErrInvalidPair is returned for a malformed "JOBSxMACHINES" pair.
	ErrInvalidPair = zerr.New("invalid jobs x machines pair")
)

// Plan - описание эксперимента. Загружается из YAML; флаги CLI
// переопределяют отдельные поля.
type Plan struct {
	Pairs         []string       `yaml:"pairs" validate:"min=1,dive,required"`
	Variants      []vns.InitMode `yaml:"variants" validate:"min=1,dive,oneof=uniform greedy"`
	Runs          int            `yaml:"runs" validate:"gte=1"`
	Seed          int64          `yaml:"seed"`
	InstanceSeed  int64          `yaml:"instance_seed"`
	TimeLimit     time.Duration  `yaml:"time_limit" validate:"gt=0"`
	PerRunTimeout time.Duration  `yaml:"per_run_timeout" validate:"gte=0"`
	Parallel      int            `yaml:"parallel" validate:"gte=1"`

	MinTime int `yaml:"min_time" validate:"gte=0"`
	MaxTime int `yaml:"max_time" validate:"gtefield=MinTime"`

	// Disable - категории эвристик, убираемые из области.
	Disable []string `yaml:"disable,omitempty"`

	Out string `yaml:"out" validate:"required"`

	VNS    vns.Config       `yaml:"vns"`
	Domain flowshop.Options `yaml:"domain"`
}

func DefaultPlan() Plan {
	return Plan{
		Pairs:        []string{"20x5", "50x10", "100x20"},
		Variants:     []vns.InitMode{vns.InitUniform, vns.InitGreedy},
		Runs:         10,
		Seed:         1000,
		InstanceSeed: 777,
		TimeLimit:    time.Second,
		Parallel:     1,
		MinTime:      1,
		MaxTime:      99,
		Out:          "artifacts/results.csv",
		VNS:          vns.DefaultConfig(),
		Domain:       flowshop.DefaultOptions(),
	}
}

// LoadPlan читает YAML поверх DefaultPlan: отсутствующие поля сохраняют
// значения по умолчанию.
func LoadPlan(path string) (Plan, error) {
	plan := DefaultPlan()
	// #nosec G304 -- путь задаёт пользователь CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, zerr.With(zerr.Wrap(err, "read plan"), "path", path)
	}
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, zerr.With(zerr.Wrap(err, "parse plan"), "path", path)
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, zerr.With(err, "path", path)
	}
	return plan, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (p Plan) Validate() error {
	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return zerr.With(zerr.Wrap(ErrInvalidPlan, "ошибка валидации"), "cause", err.Error())
		}
		fe := fieldErrs[0]
		e := zerr.With(zerr.Wrap(ErrInvalidPlan, "некорректное значение поля"), "field", fe.Namespace())
		e = zerr.With(e, "rule", fe.Tag())
		return zerr.With(e, "value", fmt.Sprint(fe.Value()))
	}
	if _, err := p.Cases(); err != nil {
		return zerr.Wrap(ErrInvalidPlan, err.Error())
	}
	if _, err := p.disabled(); err != nil {
		return zerr.Wrap(ErrInvalidPlan, err.Error())
	}
	return nil
}

// Cases разбирает пары "работы x станки" в случаи с фиксированными сидами.
func (p Plan) Cases() ([]Case, error) {
	return ParsePairs(p.Pairs, p.InstanceSeed)
}

func (p Plan) disabled() ([]hh.HeuristicType, error) {
	out := make([]hh.HeuristicType, 0, len(p.Disable))
	for _, name := range p.Disable {
		t, err := hh.ParseHeuristicType(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// DomainOptions переводит параметры плана в опции проблемной области.
func (p Plan) DomainOptions() ([]flowshop.Option, error) {
	disabled, err := p.disabled()
	if err != nil {
		return nil, err
	}
	return []flowshop.Option{
		flowshop.WithRuinFraction(p.Domain.RuinFraction),
		flowshop.WithDescent(p.Domain.DescentSamples, p.Domain.DescentRounds),
		flowshop.WithoutCategories(disabled...),
	}, nil
}

// Runner строит стенд по плану.
func (p Plan) Runner(batch string, log *slog.Logger, clock clockwork.Clock) (Runner, error) {
	opts, err := p.DomainOptions()
	if err != nil {
		return Runner{}, err
	}
	return Runner{
		Runs:          p.Runs,
		BaseSeed:      p.Seed,
		TimeLimit:     p.TimeLimit,
		PerRunTimeout: p.PerRunTimeout,
		Parallel:      p.Parallel,
		MinTime:       p.MinTime,
		MaxTime:       p.MaxTime,
		Domain:        opts,
		Batch:         batch,
		Clock:         clock,
		Logger:        log,
	}, nil
}

// Algorithms строит по стратегии VNS на каждый вариант инициализации.
func (p Plan) Algorithms(log *slog.Logger, obs vns.Observer) []Algorithm {
	out := make([]Algorithm, 0, len(p.Variants))
	for _, v := range p.Variants {
		cfg := p.VNS
		cfg.Init = v
		out = append(out, VNSAlgorithm(cfg, log, obs))
	}
	return out
}

// VNSAlgorithm - фабрика солверов VNS с общей конфигурацией.
// obs вызывается из всех запусков и должен быть потокобезопасным при Parallel > 1.
func VNSAlgorithm(cfg vns.Config, log *slog.Logger, obs vns.Observer) Algorithm {
	name := "GVNS"
	if cfg.Init == vns.InitGreedy {
		name = "GRVNS"
	}
	return Algorithm{
		Name: name,
		Factory: func(seed int64) (hh.Strategy, error) {
			s, err := vns.New(cfg, rand.New(rand.NewSource(seed)))
			if err != nil {
				return nil, err
			}
			s.Logger = log
			s.Observer = obs
			return s, nil
		},
	}
}

// ParsePairs разбирает пары вида "50x10". Сид экземпляра зависит от
// базового сида, позиции пары и её размеров.
func ParsePairs(pairs []string, baseInstanceSeed int64) ([]Case, error) {
	cases := make([]Case, 0, len(pairs))
	for i, p := range pairs {
		jm := strings.Split(strings.TrimSpace(p), "x")
		if len(jm) != 2 {
			return nil, zerr.With(zerr.Wrap(ErrInvalidPair, "пара невалидной схемы, пример: 50x10"), "pair", p)
		}
		jobs, err := strconv.Atoi(strings.TrimSpace(jm[0]))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(ErrInvalidPair, "ошибка парсинга количества работ"), "pair", p)
		}
		machines, err := strconv.Atoi(strings.TrimSpace(jm[1]))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(ErrInvalidPair, "ошибка парсинга количества машин"), "pair", p)
		}
		if jobs <= 0 || machines <= 0 {
			return nil, zerr.With(zerr.Wrap(ErrInvalidPair, "количество работ и машин должно быть > 0"), "pair", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(jobs)*100 + int64(machines)
		cases = append(cases, Case{Jobs: jobs, Machines: machines, InstanceSeed: seed})
	}
	return cases, nil
}

// SplitCSV разбивает список через запятую, отбрасывая пустые элементы.
func SplitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
