// Package hh описывает контракты гиперэвристики: проблемную область,
// источник ограничения по времени и стратегию, а также общие структуры
// контроллера (каталог эвристик, пул решений, трекер лучшего решения).
package hh

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// HeuristicType - категория низкоуровневой эвристики.
type HeuristicType int

const (
	Mutation HeuristicType = iota
	Crossover
	RuinRecreate
	LocalSearch
	Other
)

// HeuristicTypes перечисляет все категории в порядке опроса каталога.
var HeuristicTypes = []HeuristicType{Mutation, Crossover, RuinRecreate, LocalSearch, Other}

func (t HeuristicType) String() string {
	switch t {
	case Mutation:
		return "MUTATION"
	case Crossover:
		return "CROSSOVER"
	case RuinRecreate:
		return "RUIN_RECREATE"
	case LocalSearch:
		return "LOCAL_SEARCH"
	case Other:
		return "OTHER"
	default:
		return fmt.Sprintf("HeuristicType(%d)", int(t))
	}
}

// ParseHeuristicType разбирает имя категории в форме String(), без учёта регистра.
func ParseHeuristicType(s string) (HeuristicType, error) {
	for _, t := range HeuristicTypes {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownType, "parse heuristic type"), "name", s)
}

// ProblemDomain - проблемная область, с которой работает контроллер.
// Содержимое решений принадлежит области; контроллер оперирует только
// индексами ячеек памяти и значениями целевой функции (минимизация).
//
//go:generate mockgen -source=hh.go -destination=mocks/mock_hh.go -package=mocks
type ProblemDomain interface {
	SetMemorySize(n int) error
	InitialiseSolution(index int) error
	FunctionValue(index int) (float64, error)
	// HeuristicsOfType возвращает пустой срез, если категории нет.
	HeuristicsOfType(t HeuristicType) []int
	NumberOfHeuristics() int
	ApplyHeuristic(heuristic, src, dst int) (float64, error)
	ApplyCrossover(heuristic, parent1, parent2, dst int) (float64, error)
}

// TimeAuthority решает, когда запуск должен остановиться. Каждый вызов
// HasTimeExpired фиксирует лучшее на данный момент значение для оценки.
type TimeAuthority interface {
	HasTimeExpired() bool
}

// BestReporter отдаёт лучшее значение целевой функции, полученное областью.
type BestReporter interface {
	BestSolutionValue() float64
}

// Strategy - стратегия гиперэвристики. Solve работает до истечения времени;
// лучшее решение остаётся в памяти проблемной области.
type Strategy interface {
	fmt.Stringer
	Solve(ctx context.Context, p ProblemDomain, ta TimeAuthority) error
}
