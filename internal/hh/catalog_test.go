package hh_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hyperVNS/internal/hh"
	"hyperVNS/internal/hh/mocks"
)

// expectCategories настраивает мок области на заданные категории.
func expectCategories(p *mocks.MockProblemDomain, total int, cats map[hh.HeuristicType][]int) {
	p.EXPECT().NumberOfHeuristics().Return(total).AnyTimes()
	p.EXPECT().HeuristicsOfType(gomock.Any()).DoAndReturn(func(t hh.HeuristicType) []int {
		return cats[t]
	}).AnyTimes()
}

func TestNewCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProblemDomain(ctrl)
	expectCategories(p, 5, map[hh.HeuristicType][]int{
		hh.LocalSearch: {3, 4},
		hh.Mutation:    {0, 1},
	})

	c, err := hh.NewCatalog(p)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Total())
	assert.True(t, c.Has(hh.LocalSearch))
	assert.True(t, c.Has(hh.Mutation))
	assert.False(t, c.Has(hh.Crossover))
	assert.Equal(t, []int{3, 4}, c.Heuristics(hh.LocalSearch))
	assert.Nil(t, c.Heuristics(hh.Crossover))
}

func TestNewCatalog_CopiesDomainSlices(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProblemDomain(ctrl)
	ls := []int{2}
	expectCategories(p, 3, map[hh.HeuristicType][]int{hh.LocalSearch: ls})

	c, err := hh.NewCatalog(p)
	require.NoError(t, err)

	ls[0] = 0
	got := c.Heuristics(hh.LocalSearch)
	assert.Equal(t, []int{2}, got)

	got[0] = 1
	assert.Equal(t, []int{2}, c.Heuristics(hh.LocalSearch))
}

func TestNewCatalog_SetupErrors(t *testing.T) {
	t.Run("no heuristics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p := mocks.NewMockProblemDomain(ctrl)
		p.EXPECT().NumberOfHeuristics().Return(0)

		_, err := hh.NewCatalog(p)
		require.ErrorIs(t, err, hh.ErrNoHeuristics)
	})

	t.Run("id out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p := mocks.NewMockProblemDomain(ctrl)
		expectCategories(p, 2, map[hh.HeuristicType][]int{hh.Mutation: {0, 2}})

		_, err := hh.NewCatalog(p)
		require.ErrorIs(t, err, hh.ErrInvalidHeuristic)
	})
}

func TestCatalog_Pick(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProblemDomain(ctrl)
	expectCategories(p, 6, map[hh.HeuristicType][]int{hh.Mutation: {1, 4}})

	c, err := hh.NewCatalog(p)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	seenAll := make(map[int]bool)
	for i := 0; i < 500; i++ {
		assert.Contains(t, []int{1, 4}, c.Pick(hh.Mutation, rng))

		h := c.Pick(hh.Crossover, rng)
		require.GreaterOrEqual(t, h, 0)
		require.Less(t, h, 6)
		seenAll[h] = true
	}
	// Отсутствующая категория - равномерно по всем эвристикам
	assert.Len(t, seenAll, 6)
}
