// Package stats provides descriptive statistics over tensor.Vector.
//
// ddof is the degrees-of-freedom offset: 0 selects the population estimate,
// 1 the sample estimate. Every function fails with
// tensor.ErrInsufficientData for empty input or ddof >= n.
package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/synapse-ml/synapse/internal/tensor"
)

// Mean returns the arithmetic mean of v.
func Mean(v *tensor.Vector) (tensor.Scalar, error) {
	if v.IsEmpty() {
		return 0, fmt.Errorf("stats.Mean: %w", tensor.ErrInsufficientData)
	}
	return stat.Mean(v.Data(), nil), nil
}

// Variance returns sum((x_i - mean)²) / (n - ddof).
func Variance(v *tensor.Vector, ddof int) (tensor.Scalar, error) {
	if err := checkDOF("stats.Variance", v.Len(), ddof); err != nil {
		return 0, err
	}
	d, err := centered(v)
	if err != nil {
		return 0, err
	}
	return floats.Dot(d, d) / tensor.Scalar(v.Len()-ddof), nil
}

// StdDev returns the standard deviation corresponding to variance.
func StdDev(variance tensor.Scalar) tensor.Scalar {
	return tensor.Sqrt(variance)
}

// Normalize returns the z-scores (x_i - mean) / std of v.
//
// A constant vector has zero variance; its z-scores are NaN, as plain
// floating-point division produces.
func Normalize(v *tensor.Vector, ddof int) (*tensor.Vector, error) {
	mean, err := Mean(v)
	if err != nil {
		return nil, err
	}
	variance, err := Variance(v, ddof)
	if err != nil {
		return nil, err
	}
	sd := StdDev(variance)

	out := v.Clone()
	data := out.Data()
	for i, x := range data {
		data[i] = (x - mean) / sd
	}
	return out, nil
}

// Covariance returns sum((x_i - mean_x)(y_i - mean_y)) / (n - ddof).
func Covariance(x, y *tensor.Vector, ddof int) (tensor.Scalar, error) {
	if x.Len() != y.Len() {
		return 0, fmt.Errorf("stats.Covariance: lengths %d and %d: %w",
			x.Len(), y.Len(), tensor.ErrInsufficientData)
	}
	if err := checkDOF("stats.Covariance", x.Len(), ddof); err != nil {
		return 0, err
	}
	dx, err := centered(x)
	if err != nil {
		return 0, err
	}
	dy, err := centered(y)
	if err != nil {
		return 0, err
	}
	return floats.Dot(dx, dy) / tensor.Scalar(x.Len()-ddof), nil
}

// Correlation returns the Pearson correlation coefficient
// cov(x, y) / (std(x) * std(y)).
func Correlation(x, y *tensor.Vector, ddof int) (tensor.Scalar, error) {
	cov, err := Covariance(x, y, ddof)
	if err != nil {
		return 0, err
	}
	varX, err := Variance(x, ddof)
	if err != nil {
		return 0, err
	}
	varY, err := Variance(y, ddof)
	if err != nil {
		return 0, err
	}
	return cov / (StdDev(varX) * StdDev(varY)), nil
}

func checkDOF(op string, n, ddof int) error {
	if n == 0 || ddof < 0 || ddof >= n {
		return fmt.Errorf("%s: n=%d ddof=%d: %w", op, n, ddof, tensor.ErrInsufficientData)
	}
	return nil
}

// centered returns a copy of v's data with the mean subtracted.
func centered(v *tensor.Vector) ([]tensor.Scalar, error) {
	mean, err := Mean(v)
	if err != nil {
		return nil, err
	}
	d := append([]tensor.Scalar(nil), v.Data()...)
	floats.AddConst(-mean, d)
	return d, nil
}
