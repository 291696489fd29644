package optim

import "github.com/synapse-ml/synapse/internal/tensor"

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	err := optimizer.Update(params, grad)
type SGD struct {
	lr tensor.Scalar
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR tensor.Scalar // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Update performs param -= lr * grad.
func (s *SGD) Update(params, grad *tensor.Vector) error {
	if err := checkLengths("SGD.Update", params, grad); err != nil {
		return err
	}

	p := params.Data()
	for i, g := range grad.Data() {
		p[i] -= s.lr * g
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() tensor.Scalar { return s.lr }

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr tensor.Scalar) { s.lr = lr }

// Name implements Optimizer.
func (s *SGD) Name() string { return string(KindSGD) }
