// Package solver runs the epoch-based training loop.
//
// A Solver owns one model instance and one TrainingInput for the duration
// of a run. Each epoch it shuffles the training rows, partitions them into
// mini-batches, and for every batch calls Predict, the model's loss
// gradient, and Update. After the last batch it computes the validation
// loss on the full test set and consults the early-stopping rule.
//
// Training ends after the configured number of epochs or when early
// stopping fires, whichever comes first. Non-finite losses do not stop
// training; callers inspect History if they care.
package solver
