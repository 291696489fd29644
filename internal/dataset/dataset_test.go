package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/tensor"
)

const planeCSV = `x1, x2, y
# y = 2*x1 + 3*x2 + 1
0, 1, 4
1, 0, 3
1, 1, 6
2, 1, 8
1, 2, 9
`

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(planeCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"x1", "x2", "y"}, table.Header)
	assert.Equal(t, 5, table.NumRows())
	assert.Equal(t, []tensor.Scalar{2, 1, 8}, table.Rows[3])
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"header only", "a,b\n"},
		{"not a number", "a,b\n1,x\n"},
		{"ragged", "a,b\n1,2\n3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plane.csv")
	require.NoError(t, os.WriteFile(path, []byte(planeCSV), 0o600))

	table, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 5, table.NumRows())

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestXY(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(planeCSV))
	require.NoError(t, err)

	x, y, err := table.XY("", nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{Rows: 5, Cols: 2}, x.Shape())
	assert.Equal(t, []tensor.Scalar{4, 3, 6, 8, 9}, y.Data())

	// Target in the middle: remaining columns keep header order.
	x, y, err = table.XY("x2", nil)
	require.NoError(t, err)
	assert.Equal(t, []tensor.Scalar{1, 0, 1, 1, 2}, y.Data())
	row, ok := x.Row(3)
	require.True(t, ok)
	assert.Equal(t, []tensor.Scalar{2, 8}, row.Data())
	names, err := table.FeatureNames("x2", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "y"}, names)

	_, _, err = table.XY("nope", nil)
	assert.Error(t, err)
}

func TestXYSelectedFeatures(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("a,b,c,y\n1,2,3,4\n5,6,7,8\n"))
	require.NoError(t, err)

	// Listed order sets the matrix column order; unlisted columns are dropped.
	x, y, err := table.XY("y", []string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{Rows: 2, Cols: 2}, x.Shape())
	assert.Equal(t, []tensor.Scalar{3, 1, 7, 5}, x.Data())
	assert.Equal(t, []tensor.Scalar{4, 8}, y.Data())

	names, err := table.FeatureNames("y", []string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, names)

	tests := []struct {
		name     string
		features []string
	}{
		{"unknown", []string{"a", "z"}},
		{"target as feature", []string{"a", "y"}},
		{"duplicate", []string{"a", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := table.XY("y", tt.features)
			assert.Error(t, err)
		})
	}
}

func TestTrainTestSplit(t *testing.T) {
	x := tensor.NewMatrix(10, 2)
	y := tensor.NewVector(10)
	for i := 0; i < 10; i++ {
		require.NoError(t, x.Set(i, 0, float64(i)))
		require.NoError(t, x.Set(i, 1, float64(-i)))
		require.NoError(t, y.Set(i, float64(i)))
	}

	split, err := TrainTestSplit(x, y, 0.3, random.New(11))
	require.NoError(t, err)
	assert.Equal(t, 7, split.TrainX.Rows())
	assert.Equal(t, 3, split.TestX.Rows())
	assert.Equal(t, 7, split.TrainY.Len())
	assert.Equal(t, 3, split.TestY.Len())

	seen := map[tensor.Scalar]bool{}
	for _, part := range []struct {
		x *tensor.Matrix
		y *tensor.Vector
	}{{split.TrainX, split.TrainY}, {split.TestX, split.TestY}} {
		for i := 0; i < part.x.Rows(); i++ {
			f, _ := part.x.Get(i, 0)
			target, _ := part.y.Get(i)
			assert.Equal(t, f, target, "rows stay aligned with targets")
			seen[target] = true
		}
	}
	assert.Len(t, seen, 10, "every row lands in exactly one set")

	again, err := TrainTestSplit(x, y, 0.3, random.New(11))
	require.NoError(t, err)
	assert.Equal(t, split.TestY.Data(), again.TestY.Data(), "split is deterministic for a seed")
}

func TestTrainTestSplitEdgeCases(t *testing.T) {
	x := tensor.MatrixOnes(4, 1)
	y := tensor.Ones(4)

	split, err := TrainTestSplit(x, y, 0, random.New(1))
	require.NoError(t, err)
	assert.Equal(t, 4, split.TrainX.Rows())
	assert.Equal(t, 4, split.TestX.Rows())

	_, err = TrainTestSplit(x, y, 1, random.New(1))
	assert.Error(t, err)

	_, err = TrainTestSplit(x, y, 0.01, random.New(1))
	assert.ErrorIs(t, err, tensor.ErrInsufficientData)

	_, err = TrainTestSplit(x, tensor.Ones(3), 0.5, random.New(1))
	assert.ErrorIs(t, err, tensor.ErrMatDimensionMismatch)
}

func TestSplitRawInput(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(planeCSV))
	require.NoError(t, err)
	x, y, err := table.XY("y", nil)
	require.NoError(t, err)

	split, err := TrainTestSplit(x, y, 0.2, random.New(5))
	require.NoError(t, err)

	raw := split.RawInput()
	assert.Equal(t, uint32(4), raw.TrainRows)
	assert.Equal(t, uint32(2), raw.TrainCols)
	assert.Len(t, raw.TrainFeatures, 8)
	assert.Len(t, raw.TestTarget, 1)

	raw.LearningRate = 0.01
	in, err := raw.ToInternal()
	require.NoError(t, err)
	assert.Equal(t, 4, in.BatchSize, "batch size 0 selects the full training set")
	assert.Equal(t, split.TrainY.Data(), in.TrainY.Data())
}
