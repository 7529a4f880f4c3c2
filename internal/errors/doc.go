// Package apperrors defines the application error types and the mapping from
// errors to process exit codes.
//
// Kernel failures reach the application as *kernel.InvalidArgumentError
// values wrapping one of the kernel sentinels; they are wrapped again in a
// CalculationError so that errors.Is and errors.As see the whole chain.
package apperrors
