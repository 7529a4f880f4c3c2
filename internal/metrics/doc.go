// Package metrics records evaluation counts, latencies and scratch-pool
// activity in a Prometheus registry, and renders them in the text
// exposition format for the -metrics flag.
package metrics
