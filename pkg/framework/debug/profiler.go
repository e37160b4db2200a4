package debug

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Profiler accumulates wall-clock timings per named section.
type Profiler struct {
	mu           sync.RWMutex
	measurements map[string]*Measurement
	order        []string
	enabled      atomic.Bool
}

// Measurement holds timing statistics for a profiled section.
type Measurement struct {
	Name  string
	Count uint64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Last  time.Duration
}

// DefaultProfiler is the global profiler instance.
var DefaultProfiler = NewProfiler()

// NewProfiler creates an enabled profiler.
func NewProfiler() *Profiler {
	p := &Profiler{
		measurements: make(map[string]*Measurement),
	}
	p.enabled.Store(true)
	return p
}

// SetEnabled enables or disables profiling.
func (p *Profiler) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

// IsEnabled returns whether profiling is enabled.
func (p *Profiler) IsEnabled() bool {
	return p.enabled.Load()
}

// Start begins timing a named section. The returned function stops the
// timer, records the section and returns its duration.
func (p *Profiler) Start(name string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		if p.enabled.Load() {
			p.record(name, elapsed)
		}
		return elapsed
	}
}

// Time measures the execution time of fn.
func (p *Profiler) Time(name string, fn func() error) (time.Duration, error) {
	stop := p.Start(name)
	err := fn()
	return stop(), err
}

func (p *Profiler) record(name string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, exists := p.measurements[name]
	if !exists {
		m = &Measurement{Name: name, Min: elapsed, Max: elapsed}
		p.measurements[name] = m
		p.order = append(p.order, name)
	}

	m.Count++
	m.Total += elapsed
	m.Last = elapsed
	if elapsed < m.Min {
		m.Min = elapsed
	}
	if elapsed > m.Max {
		m.Max = elapsed
	}
}

// Measurement returns a copy of the named section's statistics.
func (p *Profiler) Measurement(name string) (Measurement, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m, exists := p.measurements[name]
	if !exists {
		return Measurement{}, false
	}
	return *m, true
}

// Measurements returns copies of all sections in first-recorded order.
func (p *Profiler) Measurements() []Measurement {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Measurement, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, *p.measurements[name])
	}
	return out
}

// Reset clears all measurements.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.measurements = make(map[string]*Measurement)
	p.order = nil
}

// Report renders every section, slowest total first.
func (p *Profiler) Report() string {
	measurements := p.Measurements()
	if len(measurements) == 0 {
		return "No measurements recorded"
	}

	sort.SliceStable(measurements, func(i, j int) bool {
		return measurements[i].Total > measurements[j].Total
	})

	var sb strings.Builder
	sb.WriteString("Performance Report:\n")
	sb.WriteString("==================\n")
	for _, m := range measurements {
		fmt.Fprintf(&sb, "\n%s:\n", m.Name)
		fmt.Fprintf(&sb, "  Count:   %d\n", m.Count)
		fmt.Fprintf(&sb, "  Total:   %v\n", m.Total)
		fmt.Fprintf(&sb, "  Average: %v\n", m.Average())
		fmt.Fprintf(&sb, "  Min:     %v\n", m.Min)
		fmt.Fprintf(&sb, "  Max:     %v\n", m.Max)
	}
	return sb.String()
}

// Average returns the mean duration of the section.
func (m Measurement) Average() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.Total / time.Duration(m.Count)
}

// Milliseconds formats d the way the command reports it, e.g. "12.345 ms".
func Milliseconds(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

// Global profiling functions

// Start begins timing a named section using the default profiler.
func Start(name string) func() time.Duration {
	return DefaultProfiler.Start(name)
}

// Time measures fn using the default profiler.
func Time(name string, fn func() error) (time.Duration, error) {
	return DefaultProfiler.Time(name, fn)
}

// ProfilingReport returns a performance report from the default profiler.
func ProfilingReport() string {
	return DefaultProfiler.Report()
}
