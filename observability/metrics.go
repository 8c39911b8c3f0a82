package observability

import (
	"net/http"
	"os"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/v3/process"
)

const namespace = "clinicdesk"

// StatusReporter reports the live connectivity state of the document store.
type StatusReporter interface {
	Status() string
}

type Liveness struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
	Database  string  `json:"database"`
}

type Memory struct {
	RSS       uint64 `json:"rss"`
	HeapTotal uint64 `json:"heapTotal"`
	HeapUsed  uint64 `json:"heapUsed"`
	Sys       uint64 `json:"sys"`
}

type Snapshot struct {
	Uptime    float64 `json:"uptime"`
	Memory    Memory  `json:"memory"`
	Database  string  `json:"database"`
	Requests  uint64  `json:"requests"`
	Timestamp string  `json:"timestamp"`
}

// Metrics is shared by every request goroutine. The plain counter backs the
// JSON snapshot; the registry backs the Prometheus exposition.
type Metrics struct {
	startedAt time.Time
	now       func() time.Time
	database  StatusReporter
	process   *process.Process

	requests atomic.Uint64

	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func NewMetrics(database StatusReporter) *Metrics {
	m := &Metrics{
		startedAt: time.Now(),
		now:       time.Now,
		database:  database,
		registry:  prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"method", "path"},
		),
	}

	databaseUp := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "mongodb",
			Name:      "connected",
			Help:      "1 while the document store is reachable.",
		},
		func() float64 {
			if m.DatabaseStatus() == "connected" {
				return 1
			}
			return 0
		},
	)

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		databaseUp,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		m.process = p
	}
	return m
}

// IncRequests counts a request as soon as it arrives.
func (m *Metrics) IncRequests() {
	m.requests.Add(1)
}

func (m *Metrics) Requests() uint64 {
	return m.requests.Load()
}

// ObserveRequest records the outcome of a finished request. An empty path
// means no route matched.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) DatabaseStatus() string {
	if m.database == nil {
		return "disconnected"
	}
	return m.database.Status()
}

func (m *Metrics) Uptime() float64 {
	return m.now().Sub(m.startedAt).Seconds()
}

func (m *Metrics) timestamp() string {
	return m.now().UTC().Format(time.RFC3339Nano)
}

func (m *Metrics) Liveness() Liveness {
	return Liveness{
		Status:    "OK",
		Uptime:    m.Uptime(),
		Timestamp: m.timestamp(),
		Database:  m.DatabaseStatus(),
	}
}

/*
* Heap figures come from the Go runtime
* RSS comes from the OS and is 0 when the process cannot be inspected
 */
func (m *Metrics) Snapshot() Snapshot {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	return Snapshot{
		Uptime: m.Uptime(),
		Memory: Memory{
			RSS:       m.rss(),
			HeapTotal: stats.HeapSys,
			HeapUsed:  stats.HeapAlloc,
			Sys:       stats.Sys,
		},
		Database:  m.DatabaseStatus(),
		Requests:  m.Requests(),
		Timestamp: m.timestamp(),
	}
}

func (m *Metrics) rss() uint64 {
	if m.process == nil {
		return 0
	}
	info, err := m.process.MemoryInfo()
	if err != nil || info == nil {
		return 0
	}
	return info.RSS
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
