package solver

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/tensor"
)

func TestShuffleIndices(t *testing.T) {
	idx := ShuffleIndices(20, random.New(3))
	sorted := append([]int(nil), idx...)
	sort.Ints(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}

	assert.Equal(t, ShuffleIndices(20, random.New(9)), ShuffleIndices(20, random.New(9)))
}

func TestBatches(t *testing.T) {
	// Row i is [i, 10*i] with target i, so alignment is checkable.
	x := tensor.NewMatrix(7, 2)
	y := tensor.NewVector(7)
	for i := 0; i < 7; i++ {
		require.NoError(t, x.Set(i, 0, float64(i)))
		require.NoError(t, x.Set(i, 1, float64(10*i)))
		require.NoError(t, y.Set(i, float64(i)))
	}

	batches, err := Batches(x, y, 3, random.New(5))
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, 3, batches[0].X.Rows())
	assert.Equal(t, 3, batches[1].X.Rows())
	assert.Equal(t, 1, batches[2].X.Rows(), "last chunk is shorter")

	var seen []int
	for _, b := range batches {
		assert.Equal(t, 2, b.X.Cols())
		require.Equal(t, b.X.Rows(), b.Y.Len())
		for r := 0; r < b.X.Rows(); r++ {
			f0, _ := b.X.Get(r, 0)
			f1, _ := b.X.Get(r, 1)
			target, _ := b.Y.Get(r)
			assert.Equal(t, f0, target)
			assert.Equal(t, 10*f0, f1)
			seen = append(seen, int(target))
		}
	}
	sort.Ints(seen)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, seen)

	batches[0].X.Data()[0] = -100
	assert.NotContains(t, x.Data(), -100.0, "batches must not alias the source")
}

func TestBatchesFullSize(t *testing.T) {
	x := tensor.MatrixOnes(4, 3)
	batches, err := Batches(x, tensor.Ones(4), 4, random.New(1))
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, 4, batches[0].X.Rows())

	batches, err = Batches(x, tensor.Ones(4), 10, random.New(1))
	require.NoError(t, err)
	require.Len(t, batches, 1)
}

func TestBatchesErrors(t *testing.T) {
	_, err := Batches(tensor.NewMatrix(3, 2), tensor.Zeros(2), 1, random.New(1))
	assert.ErrorIs(t, err, tensor.ErrMatDimensionMismatch)

	_, err = Batches(tensor.NewMatrix(3, 2), tensor.Zeros(3), 0, random.New(1))
	assert.Error(t, err)
}

func TestShouldStop(t *testing.T) {
	counter := 0

	assert.False(t, ShouldStop(0, false, 10, 1, &counter), "first epoch never stops")
	assert.Equal(t, 0, counter)

	assert.False(t, ShouldStop(10, true, 9, 2, &counter))
	assert.Equal(t, 0, counter)

	assert.False(t, ShouldStop(9, true, 9, 2, &counter), "equal is not an improvement")
	assert.Equal(t, 1, counter)

	assert.True(t, ShouldStop(9, true, 11, 2, &counter))
	assert.Equal(t, 2, counter)

	counter = 0
	assert.False(t, ShouldStop(0, false, 2, 0, &counter), "patience 0 still skips the first epoch")
	assert.False(t, ShouldStop(2, true, 1, 0, &counter))
	assert.True(t, ShouldStop(1, true, 1, 0, &counter), "patience 0 stops at the first non-improving epoch")
	assert.Equal(t, 1, counter)
}

func TestEarlyStopping(t *testing.T) {
	es := EarlyStopping{Patience: 2}

	_, ok := es.Best()
	assert.False(t, ok)

	assert.False(t, es.Observe(3))
	assert.False(t, es.Observe(4))
	best, ok := es.Best()
	require.True(t, ok)
	assert.Equal(t, 3.0, best, "best is the minimum so far")
	assert.Equal(t, 1, es.NoImprove())

	assert.False(t, es.Observe(2))
	assert.Equal(t, 0, es.NoImprove())
	assert.False(t, es.Observe(2))
	assert.True(t, es.Observe(5))

	es.Reset()
	_, ok = es.Best()
	assert.False(t, ok)
	assert.Equal(t, 0, es.NoImprove())
}
