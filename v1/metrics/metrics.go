package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// CritSectEnterCounter tracks the number of critical section entries.
	CritSectEnterCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tbx_critsect_entries_total",
		Help: "Total number of critical section entries",
	})
	// CritSectNestedCounter tracks nested entries that were treated as no-ops.
	CritSectNestedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tbx_critsect_nested_total",
		Help: "Total number of nested critical section entries",
	})
	// CritSectWaitHist observes the time spent waiting to enter the critical
	// section.
	CritSectWaitHist = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tbx_critsect_wait_seconds",
		Help:    "Time spent waiting to enter the critical section",
		Buckets: prometheus.DefBuckets,
	})
	// CritSectHeldGauge reports whether the critical section is currently held.
	CritSectHeldGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tbx_critsect_held",
		Help: "Whether the critical section is currently held",
	})
	// AssertionCounter tracks the number of triggered assertions.
	AssertionCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tbx_assertions_total",
		Help: "Total number of triggered assertions",
	})
	// HeapUsedGauge reports the number of bytes allocated from the heap.
	HeapUsedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tbx_heap_used_bytes",
		Help: "Bytes currently allocated from the heap",
	})
	// PoolFreeBlocks reports the number of free blocks per memory pool.
	PoolFreeBlocks = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tbx_mempool_free_blocks",
		Help: "Free blocks remaining per memory pool",
	}, []string{"pool"})
)

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// RegisterCoreMetrics registers tbx core metrics on the provided registry.
func RegisterCoreMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		CritSectEnterCounter,
		CritSectNestedCounter,
		CritSectWaitHist,
		CritSectHeldGauge,
		AssertionCounter,
		HeapUsedGauge,
		PoolFreeBlocks,
	)
}
