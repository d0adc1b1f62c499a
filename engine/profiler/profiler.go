package profiler

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Profiler tracks frame rate, per-frame update cost and memory statistics.
// Outputs stats to the logger at a configurable interval.
type Profiler struct {
	logger         *zap.Logger
	now            func() time.Time
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	updateTotal    time.Duration
	updateMax      time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often statistics are logged. Defaults to 1 second.
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces time.Now, for deterministic tests.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler logging to logger.
//
// Parameters:
//   - logger: destination of the statistics; nil disables output
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(logger *zap.Logger, options ...ProfilerOption) *Profiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Profiler{
		logger:         logger,
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame with the time spent updating the eye cameras.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, average and max update time, heap usage, allocation rate, GC count/pause times, total memory.
//
// Parameters:
//   - updateCost: wall time of this frame's camera update
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(updateCost time.Duration) bool {
	p.frameCount++
	p.updateTotal += updateCost
	p.updateMax = max(p.updateMax, updateCost)

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	avgUpdate := p.updateTotal / time.Duration(p.frameCount)

	runtime.ReadMemStats(&p.memStats)
	// Alloc: live heap bytes. TotalAlloc: cumulative, tracks churn. Sys: process footprint.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Info("profiler",
		zap.Float64("fps", fps),
		zap.Duration("update_avg", avgUpdate),
		zap.Duration("update_max", p.updateMax),
		zap.Float64("heap_mb", allocMB),
		zap.Float64("alloc_rate_mb_s", allocRateMB),
		zap.Uint32("gc", gcCount),
		zap.Uint64("gc_last_us", lastPauseUs),
		zap.Uint64("gc_max_us", maxPauseUs),
		zap.Float64("sys_mb", sysMB),
	)

	p.frameCount = 0
	p.updateTotal = 0
	p.updateMax = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
