package hh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hyperVNS/internal/hh"
	"hyperVNS/internal/hh/mocks"
)

// filledPool создаёт пул с заданными начальными значениями.
func filledPool(t *testing.T, values ...float64) (*hh.Pool, *mocks.MockProblemDomain) {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := mocks.NewMockProblemDomain(ctrl)
	pl := newTestPool(t, p, len(values))
	for i, v := range values {
		p.EXPECT().InitialiseSolution(i).Return(nil)
		p.EXPECT().FunctionValue(i).Return(v, nil)
		_, err := pl.Initialize(i)
		require.NoError(t, err)
	}
	return pl, p
}

func TestTracker_Rescan(t *testing.T) {
	pl, _ := filledPool(t, 4, 2, 3, 2)

	var tr hh.Tracker
	tr.Rescan(pl)
	assert.Equal(t, 1, tr.Index)
	assert.Equal(t, 2.0, tr.Value)
	require.NoError(t, tr.Check(pl))
}

func TestTracker_Observe(t *testing.T) {
	tests := []struct {
		name      string
		slot      int
		newValue  float64
		wantIndex int
		wantValue float64
	}{
		{name: "tracked slot worsens -> rescan", slot: 1, newValue: 9, wantIndex: 2, wantValue: 3},
		{name: "tracked slot improves", slot: 1, newValue: 1, wantIndex: 1, wantValue: 1},
		{name: "other slot beats best", slot: 0, newValue: 0.5, wantIndex: 0, wantValue: 0.5},
		{name: "other slot ties best", slot: 3, newValue: 2, wantIndex: 1, wantValue: 2},
		{name: "other slot worsens", slot: 2, newValue: 8, wantIndex: 1, wantValue: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl, p := filledPool(t, 4, 2, 3, 5)
			var tr hh.Tracker
			tr.Rescan(pl)

			p.EXPECT().ApplyHeuristic(0, tt.slot, tt.slot).Return(tt.newValue, nil)
			_, err := pl.Apply(0, tt.slot, tt.slot)
			require.NoError(t, err)

			tr.Observe(pl, tt.slot)
			assert.Equal(t, tt.wantIndex, tr.Index)
			assert.Equal(t, tt.wantValue, tr.Value)
			require.NoError(t, tr.Check(pl))
		})
	}
}

func TestTracker_CheckDetectsStale(t *testing.T) {
	pl, _ := filledPool(t, 4, 2)

	tr := hh.Tracker{Index: 0, Value: 4}
	require.ErrorIs(t, tr.Check(pl), hh.ErrTrackerStale)

	tr = hh.Tracker{Index: 1, Value: 1}
	require.ErrorIs(t, tr.Check(pl), hh.ErrTrackerStale)

	tr = hh.Tracker{Index: 7, Value: 2}
	require.ErrorIs(t, tr.Check(pl), hh.ErrTrackerStale)
}
