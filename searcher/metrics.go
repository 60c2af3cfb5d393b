package searcher

import "time"

// SearchMetrics summarizes one FindBestAction call.
type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Iterations   int
	FullPlayouts int // rollouts that started from a non-terminal state
	Nodes        int // nodes created, root included
	MaxDepth     int // deepest node reached by selection, root at 0
}

type MetricsCollector interface {
	Start()
	AddIteration()
	AddFullPlayout()
	AddNode()
	ObserveDepth(depth int)
	Complete() SearchMetrics
}

// The search loop is single-threaded, so the collector keeps plain counters.
type metricsCollector struct {
	startTime    time.Time
	iterations   int
	fullPlayouts int
	nodes        int
	maxDepth     int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) ObserveDepth(depth int) {
	if depth > m.maxDepth {
		m.maxDepth = depth
	}
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations,
		FullPlayouts: m.fullPlayouts,
		Nodes:        m.nodes,
		MaxDepth:     m.maxDepth,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return noMetricsCollector{}
}

func (noMetricsCollector) Start()                  {}
func (noMetricsCollector) AddIteration()           {}
func (noMetricsCollector) AddFullPlayout()         {}
func (noMetricsCollector) AddNode()                {}
func (noMetricsCollector) ObserveDepth(int)        {}
func (noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
