package hh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hyperVNS/internal/hh"
	"hyperVNS/internal/hh/mocks"
)

func newTestPool(t *testing.T, p *mocks.MockProblemDomain, n int) *hh.Pool {
	t.Helper()
	p.EXPECT().SetMemorySize(n).Return(nil)
	pl, err := hh.NewPool(p, n)
	require.NoError(t, err)
	return pl
}

func TestNewPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProblemDomain(ctrl)

	_, err := hh.NewPool(p, 0)
	require.ErrorIs(t, err, hh.ErrPoolSize)

	memErr := errors.New("out of memory")
	p.EXPECT().SetMemorySize(4).Return(memErr)
	_, err = hh.NewPool(p, 4)
	require.ErrorIs(t, err, memErr)

	pl := newTestPool(t, p, 3)
	assert.Equal(t, 3, pl.Size())
	for i := 0; i < 3; i++ {
		assert.False(t, pl.Ready(i))
		assert.True(t, math.IsInf(pl.Value(i), 1))
	}
}

func TestPool_InitializeAndValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProblemDomain(ctrl)
	pl := newTestPool(t, p, 2)

	gomock.InOrder(
		p.EXPECT().InitialiseSolution(1).Return(nil),
		p.EXPECT().FunctionValue(1).Return(12.5, nil),
	)

	v, err := pl.Initialize(1)
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)
	assert.True(t, pl.Ready(1))

	// Value не обращается к области и идемпотентен
	assert.Equal(t, 12.5, pl.Value(1))
	assert.Equal(t, 12.5, pl.Value(1))
	assert.Equal(t, []float64{math.Inf(1), 12.5}, pl.Values())
}

func TestPool_ApplyUpdatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProblemDomain(ctrl)
	pl := newTestPool(t, p, 3)

	p.EXPECT().InitialiseSolution(gomock.Any()).Return(nil).Times(2)
	p.EXPECT().FunctionValue(0).Return(10.0, nil)
	p.EXPECT().FunctionValue(1).Return(20.0, nil)
	_, err := pl.Initialize(0)
	require.NoError(t, err)
	_, err = pl.Initialize(1)
	require.NoError(t, err)

	p.EXPECT().ApplyHeuristic(3, 0, 2).Return(7.0, nil)
	v, err := pl.Apply(3, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, 7.0, pl.Value(2))
	assert.Equal(t, 10.0, pl.Value(0))

	p.EXPECT().ApplyCrossover(1, 0, 1, 0).Return(9.0, nil)
	v, err = pl.Crossover(1, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
	assert.Equal(t, 9.0, pl.Value(0))
}

func TestPool_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProblemDomain(ctrl)
	pl := newTestPool(t, p, 2)

	_, err := pl.Initialize(2)
	require.ErrorIs(t, err, hh.ErrSlotRange)

	_, err = pl.Apply(0, 0, 0)
	require.ErrorIs(t, err, hh.ErrSlotNotReady)

	p.EXPECT().InitialiseSolution(0).Return(nil)
	p.EXPECT().FunctionValue(0).Return(5.0, nil)
	_, err = pl.Initialize(0)
	require.NoError(t, err)

	_, err = pl.Crossover(0, 0, 1, 0)
	require.ErrorIs(t, err, hh.ErrSlotNotReady)

	_, err = pl.Apply(0, 0, -1)
	require.ErrorIs(t, err, hh.ErrSlotRange)

	domainErr := errors.New("heuristic exploded")
	p.EXPECT().ApplyHeuristic(1, 0, 0).Return(0.0, domainErr)
	_, err = pl.Apply(1, 0, 0)
	require.ErrorIs(t, err, domainErr)
	assert.Equal(t, 5.0, pl.Value(0))

	p.EXPECT().ApplyHeuristic(1, 0, 1).Return(math.NaN(), nil)
	_, err = pl.Apply(1, 0, 1)
	require.ErrorIs(t, err, hh.ErrNonFinite)
	assert.False(t, pl.Ready(1))

	p.EXPECT().ApplyHeuristic(1, 0, 0).Return(math.Inf(-1), nil)
	_, err = pl.Apply(1, 0, 0)
	require.ErrorIs(t, err, hh.ErrNonFinite)
	assert.Equal(t, 5.0, pl.Value(0))
}

func TestPool_InitializeDomainErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProblemDomain(ctrl)
	pl := newTestPool(t, p, 1)

	initErr := errors.New("cannot build")
	p.EXPECT().InitialiseSolution(0).Return(initErr)
	_, err := pl.Initialize(0)
	require.ErrorIs(t, err, initErr)

	readErr := errors.New("cannot evaluate")
	p.EXPECT().InitialiseSolution(0).Return(nil)
	p.EXPECT().FunctionValue(0).Return(0.0, readErr)
	_, err = pl.Initialize(0)
	require.ErrorIs(t, err, readErr)
	assert.False(t, pl.Ready(0))
}
