package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bio-registry/part-hub/logging"
)

var (
	InProgressUploadsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "in_progress_bulk_uploads",
		Help: "Bulk uploads still being edited by their owners.",
	})

	SubmittedUploadsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "submitted_bulk_uploads",
		Help: "Bulk uploads waiting in the reviewer queue.",
	})

	DraftEntriesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "draft_entries",
		Help: "Entries in draft visibility.",
	})

	PendingEntriesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pending_entries",
		Help: "Entries submitted and awaiting review.",
	})

	PublicEntriesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "public_entries",
		Help: "Entries publicly visible in the registry.",
	})

	MetricsItems = []prometheus.Collector{
		InProgressUploadsGauge,
		SubmittedUploadsGauge,
		DraftEntriesGauge,
		PendingEntriesGauge,
		PublicEntriesGauge,
	}
)

const DefaultMetricsAddress = "0.0.0.0:9090"

type Metrics struct {
	httpAddress string
	registry    *prometheus.Registry
	httpServer  *http.Server
}

func NewMetrics(address string) *Metrics {
	return &Metrics{
		httpAddress: address,
		registry:    prometheus.NewRegistry(),
	}
}

func (m *Metrics) Start() {
	m.registry.MustRegister(MetricsItems...)
	go m.serve()
}

func (m *Metrics) serve() {
	router := mux.NewRouter()
	router.Path("/metrics").Handler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.httpServer = &http.Server{
		Addr:    m.httpAddress,
		Handler: router,
	}
	if err := m.httpServer.ListenAndServe(); err != nil {
		logging.Logger.Errorf("failed to listen and serve", "error", err)
		panic(err)
	}
}
