// Package logging provides the structured logger used by the application
// layers. The kernel and the wrappers never log; evaluators, the benchmark
// runner and the CLI report their lifecycle through a Logger.
package logging
