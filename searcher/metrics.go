package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Searcher     string
	Duration     time.Duration
	Episodes     int
	FullPlayouts int
	EarlyStops   int
	Nodes        int
	TableHits    int
	Cutoffs      int
	Shortcut     Shortcut
	Fallback     bool
}

type Collector interface {
	Start(searcher string)
	AddEpisode()
	AddFullPlayout()
	AddEarlyStop()
	AddNode()
	AddTableHit()
	AddCutoff()
	SetShortcut(s Shortcut)
	SetFallback()
	Complete() SearchMetric
}

type collector struct {
	searcher     string
	startTime    time.Time
	shortcut     Shortcut
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	earlyStops   atomic.Int32
	nodes        atomic.Int32
	tableHits    atomic.Int32
	cutoffs      atomic.Int32
	fallback     atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(searcher string) {
	m.searcher = searcher
	m.startTime = time.Now()
	m.shortcut = NoShortcut
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.earlyStops.Store(0)
	m.nodes.Store(0)
	m.tableHits.Store(0)
	m.cutoffs.Store(0)
	m.fallback.Store(false)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEarlyStop() {
	m.earlyStops.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetShortcut(s Shortcut) {
	m.shortcut = s
}

func (m *collector) SetFallback() {
	m.fallback.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Searcher:     m.searcher,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		EarlyStops:   int(m.earlyStops.Load()),
		Nodes:        int(m.nodes.Load()),
		TableHits:    int(m.tableHits.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
		Shortcut:     m.shortcut,
		Fallback:     m.fallback.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(searcher string)  {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddFullPlayout()        {}
func (m *dummyCollector) AddEarlyStop()          {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddTableHit()           {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) SetShortcut(s Shortcut) {}
func (m *dummyCollector) SetFallback()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
