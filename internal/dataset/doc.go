// Package dataset loads numeric CSV tables and splits them into the train
// and test buffers a training run consumes.
package dataset
