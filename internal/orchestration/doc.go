// Package orchestration runs one request against several arithmetic
// backends concurrently and compares what they return.
//
// Every backend implements Evaluator. The kernel evaluators drive
// bignum.Number at the requested word width; the reference, uint256 and gmp
// evaluators compute the same fixed-window result with independent
// libraries, so any disagreement points at a kernel bug. Presentation is
// delegated to ResultPresenter and ProgressReporter implementations.
package orchestration
