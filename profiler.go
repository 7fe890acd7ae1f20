package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures CPU profiles and traces on demand or when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	logger          *log.Logger
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration

	// frame rate sampling
	elapsed    float64
	frames     int
	sampleTime float64
	fps        float64
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, logger *log.Logger) *Profiler {
	return &Profiler{
		logger:          logger,
		captureCooldown: 10 * time.Second,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
	}
}

// FPS returns the most recent frame rate sample
func (p *Profiler) FPS() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fps
}

// RecordFrame accumulates wall time and triggers a capture when the
// sampled frame rate falls below fpsDropThreshold after the warmup period
func (p *Profiler) RecordFrame(dt float64) {
	p.mu.Lock()
	p.elapsed += dt
	p.sampleTime += dt
	p.frames++
	if p.sampleTime < fpsSampleWindow {
		p.mu.Unlock()
		return
	}
	p.fps = float64(p.frames) / p.sampleTime
	p.frames = 0
	p.sampleTime = 0
	drop := p.elapsed > fpsWarmupSeconds && p.fps < fpsDropThreshold
	fps := p.fps
	p.mu.Unlock()

	if drop {
		if err := p.CaptureProfile(fmt.Sprintf("fps%.0f", fps)); err == nil {
			p.logger.Printf("Frame rate dropped to %.1f, capturing profile", fps)
		}
	}
}

// CaptureProfile starts a CPU profile and trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime).Round(time.Second))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.logger.Printf("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.logger.Printf("Error capturing trace: %v", err)
			}
		}()
		wg.Wait()

		p.logMemStats(baseName)
	}()

	return nil
}

// captureCPUProfile records a CPU profile for captureDuration
func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.logger.Printf("CPU profile saved to %s (view with: go tool pprof -http=:8080 %s)", profilePath, profilePath)
	return nil
}

// captureTrace records an execution trace for captureDuration
func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.logger.Printf("Trace saved to %s", tracePath)
	return nil
}

func (p *Profiler) logMemStats(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Printf("Memory at %s: alloc=%dKB sys=%dKB gc=%d heapObjects=%d",
		baseName, m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}
