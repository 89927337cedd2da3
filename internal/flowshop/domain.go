package flowshop

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"

	"hyperVNS/internal/hh"
)

var (
	ErrMemorySize       = zerr.New("memory size must be >= 1")
	ErrIndex            = zerr.New("solution index out of range")
	ErrUnknownHeuristic = zerr.New("unknown heuristic")
	ErrNotInitialised   = zerr.New("solution is not initialised")
	ErrInvalidOptions   = zerr.New("invalid domain options")
)

// Номера операторов до отключения категорий.
const (
	opSwap = iota
	opInsert
	opOrderCrossover
	opRuinRecreate
	opInsertDescent
	opAdjacentSwap
	numOps
)

var opTypes = [numOps]hh.HeuristicType{
	opSwap:           hh.Mutation,
	opInsert:         hh.Mutation,
	opOrderCrossover: hh.Crossover,
	opRuinRecreate:   hh.RuinRecreate,
	opInsertDescent:  hh.LocalSearch,
	opAdjacentSwap:   hh.LocalSearch,
}

var opNames = [numOps]string{
	opSwap:           "swap",
	opInsert:         "insert",
	opOrderCrossover: "order_crossover",
	opRuinRecreate:   "ruin_recreate",
	opInsertDescent:  "insert_descent",
	opAdjacentSwap:   "adjacent_swap",
}

// Options - параметры низкоуровневых эвристик.
type Options struct {
	// RuinFraction - доля работ, удаляемых ruin-recreate (не меньше одной).
	RuinFraction float64 `yaml:"ruin_fraction" validate:"gt=0,lte=1"`
	// DescentSamples - число случайных insert-ходов на шаг спуска.
	DescentSamples int `yaml:"descent_samples" validate:"gte=1"`
	// DescentRounds - предел шагов спуска за один вызов.
	DescentRounds int `yaml:"descent_rounds" validate:"gte=1"`

	Disabled []hh.HeuristicType `yaml:"-"`
}

func DefaultOptions() Options {
	return Options{
		RuinFraction:   0.1,
		DescentSamples: 32,
		DescentRounds:  16,
	}
}

type Option func(*Options)

// WithoutCategories убирает эвристики указанных категорий из области.
func WithoutCategories(types ...hh.HeuristicType) Option {
	return func(o *Options) { o.Disabled = append(o.Disabled, types...) }
}

func WithRuinFraction(f float64) Option {
	return func(o *Options) { o.RuinFraction = f }
}

func WithDescent(samples, rounds int) Option {
	return func(o *Options) {
		o.DescentSamples = samples
		o.DescentRounds = rounds
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		wrapped := zerr.With(zerr.Wrap(ErrInvalidOptions, "option "+fe.Field()+" failed "+fe.Tag()), "field", fe.Field())
		return zerr.With(wrapped, "value", fmt.Sprint(fe.Value()))
	}
	return zerr.Wrap(err, "validate domain options")
}

// Domain - проблемная область flow-shop для гиперэвристики.
// Значение решения - makespan. Не потокобезопасна: один запуск - одна область.
type Domain struct {
	inst *Instance
	eval *Evaluator
	opts Options
	rng  *rand.Rand

	// ops[h] - оператор эвристики с публичным номером h.
	ops    []int
	byType map[hh.HeuristicType][]int

	memory [][]int
	values []float64
	ready  []bool

	best      []int
	bestValue float64

	// Рабочие буферы операторов
	work    []int
	trial   []int
	partial []int
	removed []int
	mark    []int
	stamp   int
}

var (
	_ hh.ProblemDomain = (*Domain)(nil)
	_ hh.BestReporter  = (*Domain)(nil)
)

func NewDomain(inst *Instance, rng *rand.Rand, options ...Option) (*Domain, error) {
	if rng == nil {
		return nil, ErrNilRng
	}
	eval, err := NewEvaluator(inst)
	if err != nil {
		return nil, err
	}
	opts := DefaultOptions()
	for _, o := range options {
		o(&opts)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	d := &Domain{
		inst:      inst,
		eval:      eval,
		opts:      opts,
		rng:       rng,
		byType:    make(map[hh.HeuristicType][]int),
		bestValue: math.Inf(1),
		work:      make([]int, inst.Jobs),
		trial:     make([]int, 0, inst.Jobs),
		partial:   make([]int, 0, inst.Jobs),
		removed:   make([]int, inst.Jobs),
		mark:      make([]int, inst.Jobs),
	}
	for op := 0; op < numOps; op++ {
		if opts.disabled(opTypes[op]) {
			continue
		}
		h := len(d.ops)
		d.ops = append(d.ops, op)
		d.byType[opTypes[op]] = append(d.byType[opTypes[op]], h)
	}
	return d, nil
}

// HeuristicNames - имена эвристик области с заданными опциями в порядке номеров.
func HeuristicNames(options ...Option) []string {
	opts := DefaultOptions()
	for _, o := range options {
		o(&opts)
	}
	var names []string
	for op := 0; op < numOps; op++ {
		if !opts.disabled(opTypes[op]) {
			names = append(names, opNames[op])
		}
	}
	return names
}

func (o Options) disabled(t hh.HeuristicType) bool {
	for _, x := range o.Disabled {
		if x == t {
			return true
		}
	}
	return false
}

func (d *Domain) String() string {
	return fmt.Sprintf("FlowShop(%dx%d)", d.inst.Jobs, d.inst.Machines)
}

// HeuristicName - имя эвристики для логов и метрик.
func (d *Domain) HeuristicName(h int) string {
	if h < 0 || h >= len(d.ops) {
		return "unknown"
	}
	return opNames[d.ops[h]]
}

func (d *Domain) SetMemorySize(n int) error {
	if n < 1 {
		return zerr.With(zerr.Wrap(ErrMemorySize, "set memory size"), "size", n)
	}
	backing := make([]int, n*d.inst.Jobs)
	d.memory = make([][]int, n)
	for i := range d.memory {
		d.memory[i] = backing[i*d.inst.Jobs : (i+1)*d.inst.Jobs]
	}
	d.values = make([]float64, n)
	d.ready = make([]bool, n)
	return nil
}

// InitialiseSolution записывает в ячейку случайную перестановку.
func (d *Domain) InitialiseSolution(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	initPermutation(d.work)
	shufflePermutation(d.work, d.rng)
	d.commit(i, d.eval.makespan(d.work))
	return nil
}

func (d *Domain) FunctionValue(i int) (float64, error) {
	if err := d.checkSource(i); err != nil {
		return 0, err
	}
	return d.values[i], nil
}

func (d *Domain) HeuristicsOfType(t hh.HeuristicType) []int {
	hs := d.byType[t]
	if len(hs) == 0 {
		return nil
	}
	return append([]int(nil), hs...)
}

func (d *Domain) NumberOfHeuristics() int { return len(d.ops) }

// ApplyHeuristic применяет эвристику к решению src и пишет результат в dst.
// Кроссовер с одним родителем копирует src.
func (d *Domain) ApplyHeuristic(h, src, dst int) (float64, error) {
	op, err := d.op(h)
	if err != nil {
		return 0, err
	}
	if err := d.checkSource(src); err != nil {
		return 0, err
	}
	if err := d.checkIndex(dst); err != nil {
		return 0, err
	}

	copy(d.work, d.memory[src])
	ms := int(d.values[src])
	switch op {
	case opSwap:
		swapRandom(d.work, d.rng)
		ms = d.eval.makespan(d.work)
	case opInsert:
		insertRandom(d.work, d.rng)
		ms = d.eval.makespan(d.work)
	case opOrderCrossover:
	case opRuinRecreate:
		ms = d.ruinRecreate(d.work)
	case opInsertDescent:
		ms = d.insertDescent(d.work, ms)
	case opAdjacentSwap:
		ms = d.adjacentSwap(d.work, ms)
	}
	d.commit(dst, ms)
	return d.values[dst], nil
}

// ApplyCrossover скрещивает p1 и p2 в dst. Некроссоверная эвристика
// применяется к p1.
func (d *Domain) ApplyCrossover(h, p1, p2, dst int) (float64, error) {
	op, err := d.op(h)
	if err != nil {
		return 0, err
	}
	if op != opOrderCrossover {
		if err := d.checkSource(p2); err != nil {
			return 0, err
		}
		return d.ApplyHeuristic(h, p1, dst)
	}
	if err := d.checkSource(p1); err != nil {
		return 0, err
	}
	if err := d.checkSource(p2); err != nil {
		return 0, err
	}
	if err := d.checkIndex(dst); err != nil {
		return 0, err
	}
	orderCrossover(d.memory[p1], d.memory[p2], d.work, d.rng, d.mark, &d.stamp)
	d.commit(dst, d.eval.makespan(d.work))
	return d.values[dst], nil
}

// BestSolutionValue - лучший makespan за всё время (+Inf до первой инициализации).
func (d *Domain) BestSolutionValue() float64 { return d.bestValue }

// BestSolution возвращает копию лучшей перестановки.
func (d *Domain) BestSolution() []int {
	return append([]int(nil), d.best...)
}

// Solution возвращает копию решения в ячейке i.
func (d *Domain) Solution(i int) ([]int, error) {
	if err := d.checkSource(i); err != nil {
		return nil, err
	}
	return append([]int(nil), d.memory[i]...), nil
}

func (d *Domain) commit(dst, ms int) {
	copy(d.memory[dst], d.work)
	d.values[dst] = float64(ms)
	d.ready[dst] = true
	if v := float64(ms); v < d.bestValue {
		d.bestValue = v
		d.best = append(d.best[:0], d.work...)
	}
}

func (d *Domain) op(h int) (int, error) {
	if h < 0 || h >= len(d.ops) {
		return 0, zerr.With(zerr.Wrap(ErrUnknownHeuristic, "apply heuristic"), "heuristic", h)
	}
	return d.ops[h], nil
}

func (d *Domain) checkIndex(i int) error {
	if i < 0 || i >= len(d.memory) {
		err := zerr.With(zerr.Wrap(ErrIndex, "solution memory"), "index", i)
		return zerr.With(err, "size", len(d.memory))
	}
	return nil
}

func (d *Domain) checkSource(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if !d.ready[i] {
		return zerr.With(zerr.Wrap(ErrNotInitialised, "read solution"), "index", i)
	}
	return nil
}

// ruinRecreate удаляет случайные работы и жадно вставляет каждую
// в позицию с минимальным makespan (в случайном порядке удаления).
func (d *Domain) ruinRecreate(p []int) int {
	n := len(p)
	k := int(math.Round(d.opts.RuinFraction * float64(n)))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	// Частичный Фишер-Йетс: первые k элементов removed - удаляемые работы
	copy(d.removed, p)
	for i := 0; i < k; i++ {
		j := i + d.rng.Intn(n-i)
		d.removed[i], d.removed[j] = d.removed[j], d.removed[i]
	}
	d.stamp++
	for _, job := range d.removed[:k] {
		d.mark[job] = d.stamp
	}
	d.partial = d.partial[:0]
	for _, job := range p {
		if d.mark[job] != d.stamp {
			d.partial = append(d.partial, job)
		}
	}

	ms := 0
	for _, job := range d.removed[:k] {
		bestPos, bestMs := 0, math.MaxInt
		for pos := 0; pos <= len(d.partial); pos++ {
			d.trial = append(d.trial[:0], d.partial[:pos]...)
			d.trial = append(d.trial, job)
			d.trial = append(d.trial, d.partial[pos:]...)
			if v := d.eval.makespan(d.trial); v < bestMs {
				bestPos, bestMs = pos, v
			}
		}
		d.partial = append(d.partial, 0)
		copy(d.partial[bestPos+1:], d.partial[bestPos:])
		d.partial[bestPos] = job
		ms = bestMs
	}
	copy(p, d.partial)
	return ms
}

// insertDescent - спуск по выборочной insert-окрестности: на каждом шаге
// оценивается DescentSamples случайных ходов, лучший принимается, если
// улучшает решение.
func (d *Domain) insertDescent(p []int, ms int) int {
	n := len(p)
	if n < 2 {
		return ms
	}
	for round := 0; round < d.opts.DescentRounds; round++ {
		bestFrom, bestTo, bestMs := -1, -1, ms
		for s := 0; s < d.opts.DescentSamples; s++ {
			from := d.rng.Intn(n)
			to := d.rng.Intn(n - 1)
			if to >= from {
				to++
			}
			d.trial = append(d.trial[:0], p...)
			applyInsert(d.trial, from, to)
			if v := d.eval.makespan(d.trial); v < bestMs {
				bestFrom, bestTo, bestMs = from, to, v
			}
		}
		if bestFrom < 0 {
			break
		}
		applyInsert(p, bestFrom, bestTo)
		ms = bestMs
	}
	return ms
}

// adjacentSwap - один проход обменов соседних работ с первым улучшением.
func (d *Domain) adjacentSwap(p []int, ms int) int {
	for i := 0; i+1 < len(p); i++ {
		p[i], p[i+1] = p[i+1], p[i]
		if v := d.eval.makespan(p); v < ms {
			ms = v
			continue
		}
		p[i], p[i+1] = p[i+1], p[i]
	}
	return ms
}
