package tensor

import "math"

// Scalar is a single 64-bit floating-point value.
//
// All arithmetic in the engine operates on Scalars with ordinary IEEE 754
// semantics; NaN and Inf propagate without special handling.
type Scalar = float64

// Elementary math delegations.

// Exp returns e**x.
func Exp(x Scalar) Scalar { return math.Exp(x) }

// Ln returns the natural logarithm of x.
func Ln(x Scalar) Scalar { return math.Log(x) }

// Sqrt returns the square root of x.
func Sqrt(x Scalar) Scalar { return math.Sqrt(x) }

// Abs returns the absolute value of x.
func Abs(x Scalar) Scalar { return math.Abs(x) }

// Pow returns x**n for an integer exponent.
func Pow(x Scalar, n int) Scalar { return math.Pow(x, float64(n)) }

// Powf returns x**y.
func Powf(x, y Scalar) Scalar { return math.Pow(x, y) }

// Cos returns the cosine of x.
func Cos(x Scalar) Scalar { return math.Cos(x) }

// Sin returns the sine of x.
func Sin(x Scalar) Scalar { return math.Sin(x) }

// Tan returns the tangent of x.
func Tan(x Scalar) Scalar { return math.Tan(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Scalar) Scalar { return math.Cosh(x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x Scalar) Scalar { return math.Sinh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Scalar) Scalar { return math.Tanh(x) }
