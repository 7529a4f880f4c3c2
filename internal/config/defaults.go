package config

import "runtime"

// ApplyAdaptiveDefaults fills the settings left at zero with values derived
// from the host: the native word width and one benchmark worker per CPU.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Width == 0 {
		cfg.Width = NativeWordBits()
	}
	if cfg.Workers == 0 {
		cfg.Workers = EstimateBenchWorkers()
	}
	return cfg
}

// NativeWordBits returns the width of uint on this platform.
func NativeWordBits() int {
	return 32 << (^uint(0) >> 63)
}

// EstimateBenchWorkers returns one benchmark worker per CPU.
func EstimateBenchWorkers() int {
	return max(runtime.NumCPU(), 1)
}
