package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/synapse-ml/synapse/internal/ffi"
	"github.com/synapse-ml/synapse/internal/random"
	"github.com/synapse-ml/synapse/internal/tensor"
)

// State is the position of a Solver in its run lifecycle.
type State int

// Solver states.
const (
	NotStarted State = iota
	EpochRunning
	StoppedEarly
	Completed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case EpochRunning:
		return "epoch_running"
	case StoppedEarly:
		return "stopped_early"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config controls the solver's ambient behavior.
type Config struct {
	// Logger receives per-epoch progress records. Nil discards them.
	Logger *slog.Logger

	// Source overrides the random source built from the input's seed.
	Source *random.Source

	// LogEvery logs every n-th epoch at info level and the rest at debug.
	// Values below 2 log every epoch at info.
	LogEvery int
}

// EpochRecord describes one finished epoch.
type EpochRecord struct {
	Epoch     int
	Batches   int
	ValLoss   tensor.Scalar
	BestLoss  tensor.Scalar // Best validation loss before this epoch (NaN for the first)
	NoImprove int
}

// History is the report of one call to Train.
type History struct {
	RunID        uuid.UUID
	Epochs       []EpochRecord
	StoppedEarly bool
}

// FinalLoss returns the validation loss of the last completed epoch. The
// second result is false when no epoch ran.
func (h *History) FinalLoss() (tensor.Scalar, bool) {
	if len(h.Epochs) == 0 {
		return 0, false
	}
	return h.Epochs[len(h.Epochs)-1].ValLoss, true
}

// Solver owns a model and its training input for one run.
//
// Example:
//
//	s, err := solver.New(models.Init, input, solver.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	history, err := s.Train()
type Solver struct {
	model  Model
	input  *ffi.TrainingInput
	src    *random.Source
	logger *slog.Logger
	every  int
	runID  uuid.UUID
	state  State
	stop   EarlyStopping
}

// New validates in and initializes a model for it with init.
//
// The solver keeps in for the run; callers that reuse the input elsewhere
// should pass in.Clone().
func New(init Initializer, in *ffi.TrainingInput, cfg Config) (*Solver, error) {
	if init == nil {
		return nil, errors.New("solver: nil initializer")
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	src := cfg.Source
	if src == nil {
		src = random.FromSeed(in.Seed)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	model, err := init(in, src)
	if err != nil {
		return nil, fmt.Errorf("solver: init model: %w", err)
	}

	runID := uuid.New()
	return &Solver{
		model:  model,
		input:  in,
		src:    src,
		logger: logger.With("run", runID.String()),
		every:  cfg.LogEvery,
		runID:  runID,
		state:  NotStarted,
		stop:   EarlyStopping{Patience: in.EarlyStop},
	}, nil
}

// Model returns the model being trained.
func (s *Solver) Model() Model { return s.model }

// RunID returns the identifier stamped on this run's logs and history.
func (s *Solver) RunID() uuid.UUID { return s.runID }

// State returns the current lifecycle state.
func (s *Solver) State() State { return s.state }

// Train runs the full training loop with batching, validation and early
// stopping.
//
// The first error from any batch, validation or update step aborts the run
// and is returned unchanged (wrapped with the epoch number). The returned
// History covers every epoch that completed.
func (s *Solver) Train() (*History, error) {
	s.stop.Reset()
	history := &History{RunID: s.runID}
	lr := s.input.LearningRate
	loss := s.model.Loss()

	s.logger.Info("training started",
		"epochs", s.input.Epochs,
		"batch_size", s.input.BatchSize,
		"patience", s.input.EarlyStop,
		"lr", lr,
		"loss", loss.Name(),
		"train_rows", s.input.TrainX.Rows(),
		"features", s.input.TrainX.Cols(),
	)

	for epoch := 1; epoch <= s.input.Epochs; epoch++ {
		s.state = EpochRunning

		batches, err := Batches(s.input.TrainX, s.input.TrainY, s.input.BatchSize, s.src)
		if err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		for i, b := range batches {
			preds, err := s.model.Predict(b.X)
			if err != nil {
				return history, fmt.Errorf("epoch %d batch %d: predict: %w", epoch, i, err)
			}
			grad, err := loss.Grad(preds, b.Y)
			if err != nil {
				return history, fmt.Errorf("epoch %d batch %d: loss gradient: %w", epoch, i, err)
			}
			if err := s.model.Update(b.X, grad, lr); err != nil {
				return history, fmt.Errorf("epoch %d batch %d: update: %w", epoch, i, err)
			}
			s.logger.Debug("batch applied", "epoch", epoch, "batch", i, "rows", b.X.Rows())
		}

		valLoss, err := s.Test()
		if err != nil {
			return history, fmt.Errorf("epoch %d: validation: %w", epoch, err)
		}

		prevBest, ok := s.stop.Best()
		if !ok {
			prevBest = math.NaN()
		}
		stop := s.stop.Observe(valLoss)

		history.Epochs = append(history.Epochs, EpochRecord{
			Epoch:     epoch,
			Batches:   len(batches),
			ValLoss:   valLoss,
			BestLoss:  prevBest,
			NoImprove: s.stop.NoImprove(),
		})
		level := slog.LevelDebug
		if s.every < 2 || epoch%s.every == 0 || stop || epoch == s.input.Epochs {
			level = slog.LevelInfo
		}
		s.logger.Log(context.Background(), level, "epoch complete",
			"epoch", epoch,
			"val_loss", valLoss,
			"best", prevBest,
			"no_improve", s.stop.NoImprove(),
		)

		if stop {
			s.state = StoppedEarly
			history.StoppedEarly = true
			s.logger.Info("early stopping triggered", "epoch", epoch)
			return history, nil
		}
	}

	s.state = Completed
	return history, nil
}

// Test returns the model's loss on the held-out test set.
func (s *Solver) Test() (tensor.Scalar, error) {
	preds, err := s.model.Predict(s.input.TestX)
	if err != nil {
		return 0, err
	}
	return s.model.Loss().Loss(preds, s.input.TestY)
}
