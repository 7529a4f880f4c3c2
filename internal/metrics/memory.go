package metrics

import "runtime"

// MemorySnapshot holds a point-in-time heap reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in live heap objects
	TotalAlloc   uint64 // cumulative bytes allocated
	Mallocs      uint64 // cumulative heap objects allocated
	NumGC        uint32
	PauseTotalNs uint64
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector returns a collector.
func NewMemoryCollector() *MemoryCollector { return &MemoryCollector{} }

// Snapshot reads the current statistics. It stops the world briefly.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Mallocs:      m.Mallocs,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Sub returns the allocation activity between before and s.
func (s MemorySnapshot) Sub(before MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    s.HeapAlloc,
		TotalAlloc:   s.TotalAlloc - before.TotalAlloc,
		Mallocs:      s.Mallocs - before.Mallocs,
		NumGC:        s.NumGC - before.NumGC,
		PauseTotalNs: s.PauseTotalNs - before.PauseTotalNs,
	}
}
