package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RemoteErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "omnipos_stock",
		Name:      "remote_errors_total",
		Help:      "Failed calls to the backing store, by operation and kind.",
	}, []string{"op", "kind"})

	PartialFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "omnipos_stock",
		Name:      "partial_fetch_errors_total",
		Help:      "Per-product inventory lookups that failed and were substituted with zero.",
	})

	TransferSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "omnipos_stock",
		Name:      "transfer_submissions_total",
		Help:      "Transfer draft submissions by result.",
	}, []string{"result"})
)
