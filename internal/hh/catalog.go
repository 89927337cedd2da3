package hh

import (
	"math/rand"

	"go.trai.ch/zerr"
)

// Catalog - неизменяемая классификация эвристик области по категориям.
// Строится один раз до начала поиска.
type Catalog struct {
	byType map[HeuristicType][]int
	total  int
}

// NewCatalog опрашивает область по всем категориям.
// Пустая категория - не ошибка.
func NewCatalog(p ProblemDomain) (*Catalog, error) {
	total := p.NumberOfHeuristics()
	if total <= 0 {
		return nil, zerr.With(zerr.Wrap(ErrNoHeuristics, "build catalog"), "total", total)
	}

	c := &Catalog{byType: make(map[HeuristicType][]int, len(HeuristicTypes)), total: total}
	for _, t := range HeuristicTypes {
		ids := p.HeuristicsOfType(t)
		if len(ids) == 0 {
			continue
		}
		for _, id := range ids {
			if id < 0 || id >= total {
				err := zerr.With(zerr.Wrap(ErrInvalidHeuristic, "build catalog"), "category", t.String())
				err = zerr.With(err, "heuristic", id)
				return nil, zerr.With(err, "total", total)
			}
		}
		// Копия, чтобы область не могла изменить каталог задним числом
		c.byType[t] = append([]int(nil), ids...)
	}
	return c, nil
}

// Has сообщает, есть ли в области эвристики категории t.
func (c *Catalog) Has(t HeuristicType) bool {
	return len(c.byType[t]) > 0
}

// Heuristics возвращает копию списка категории t (nil, если её нет).
func (c *Catalog) Heuristics(t HeuristicType) []int {
	ids := c.byType[t]
	if len(ids) == 0 {
		return nil
	}
	return append([]int(nil), ids...)
}

// Total - общее число эвристик области.
func (c *Catalog) Total() int { return c.total }

// Pick выбирает эвристику категории t равновероятно; если категории нет -
// равновероятно среди всех эвристик области.
func (c *Catalog) Pick(t HeuristicType, rng *rand.Rand) int {
	ids := c.byType[t]
	if len(ids) == 0 {
		return rng.Intn(c.total)
	}
	return ids[rng.Intn(len(ids))]
}
