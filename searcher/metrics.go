package searcher

import "time"

// MoveMetrics summarizes one search: how many playouts ran, how many
// rollouts reached a terminal position before the ply cap, whether the
// persistent tree was reused, and how long the search took.
type MoveMetrics struct {
	Duration     time.Duration
	Playouts     int
	FullPlayouts int
	TreeReused   bool
}

type MetricsCollector interface {
	Start()
	AddPlayout()
	AddFullPlayout()
	ReusedTree()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime    time.Time
	playouts     int
	fullPlayouts int
	treeReused   bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start begins a new measurement window. The tree-reuse flag survives
// Start because re-rooting happens before the search it belongs to.
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.playouts = 0
	m.fullPlayouts = 0
}

func (m *metricsCollector) AddPlayout() {
	m.playouts++
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *metricsCollector) ReusedTree() {
	m.treeReused = true
}

func (m *metricsCollector) Complete() MoveMetrics {
	metric := MoveMetrics{
		Duration:     time.Since(m.startTime),
		Playouts:     m.playouts,
		FullPlayouts: m.fullPlayouts,
		TreeReused:   m.treeReused,
	}
	m.treeReused = false
	return metric
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for
// searches that do not need diagnostics.
func NewDummyCollector() MetricsCollector {
	return &dummyCollector{}
}

func (dummyCollector) Start()                {}
func (dummyCollector) AddPlayout()           {}
func (dummyCollector) AddFullPlayout()       {}
func (dummyCollector) ReusedTree()           {}
func (dummyCollector) Complete() MoveMetrics { return MoveMetrics{} }
