package optim

import (
	"math"

	"github.com/synapse-ml/synapse/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// The timestep t is incremented once per Update call and shared by every
// parameter in that call.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    tensor.Scalar
	beta1 tensor.Scalar
	beta2 tensor.Scalar
	eps   tensor.Scalar
	t     int            // Timestep for bias correction
	m     *tensor.Vector // First moment estimates
	v     *tensor.Vector // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    tensor.Scalar    // Learning rate (default: 0.001)
	Betas [2]tensor.Scalar // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   tensor.Scalar    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer for numParams parameters.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(numParams int, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		m:     tensor.Zeros(numParams),
		v:     tensor.Zeros(numParams),
	}
}

// Update performs a single optimization step using the Adam algorithm.
func (a *Adam) Update(params, grad *tensor.Vector) error {
	if err := checkLengths("Adam.Update", params, grad, a.m, a.v); err != nil {
		return err
	}

	a.t++

	// bias_correction1 = 1 - beta1^t
	// bias_correction2 = 1 - beta2^t
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	p := params.Data()
	mData := a.m.Data()
	vData := a.v.Data()
	for i, g := range grad.Data() {
		mData[i] = a.beta1*mData[i] + (1.0-a.beta1)*g
		vData[i] = a.beta2*vData[i] + (1.0-a.beta2)*g*g

		mHat := mData[i] / biasCorrection1
		vHat := vData[i] / biasCorrection2

		p[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
	return nil
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() tensor.Scalar { return a.lr }

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (a *Adam) SetLR(lr tensor.Scalar) { a.lr = lr }

// GetTimestep returns the current timestep.
func (a *Adam) GetTimestep() int { return a.t }

// Name implements Optimizer.
func (a *Adam) Name() string { return string(KindAdam) }
