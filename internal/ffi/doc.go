// Package ffi is the boundary between a host process and the training
// engine.
//
// A host fills a RawInput, a plain-data record of hyperparameters plus
// row/column counts and flat float64 buffers, and converts it with
// ToInternal. The conversion copies every buffer into owned tensor
// containers, so the engine never aliases host memory, and maps a batch
// size of zero to the full training-set size.
package ffi
