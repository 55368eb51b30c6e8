package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one FindBestMove call.
type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Iterations   int64
	Rollouts     int64
	RolloutPlies int64
}

type MetricsCollector interface {
	Start()
	AddIteration()
	AddRollout(plies int)
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	iterations   atomic.Int64
	rollouts     atomic.Int64
	rolloutPlies atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.iterations.Store(0)
	m.rollouts.Store(0)
	m.rolloutPlies.Store(0)
}

func (m *metricsCollector) AddIteration() {
	m.iterations.Add(1)
}

func (m *metricsCollector) AddRollout(plies int) {
	m.rollouts.Add(1)
	m.rolloutPlies.Add(int64(plies))
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations.Load(),
		Rollouts:     m.rollouts.Load(),
		RolloutPlies: m.rolloutPlies.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddIteration()           {}
func (m *noMetricsCollector) AddRollout(plies int)    {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
