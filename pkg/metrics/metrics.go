// Package metrics exposes the application's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ExpensesCreated counts successfully recorded expenses.
	ExpensesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fairsplit_expenses_created_total",
		Help: "Total number of expenses created.",
	})

	// Settlements counts settlement operations by scope: all, group, or
	// counterparty.
	Settlements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fairsplit_settlements_total",
		Help: "Total number of settlement operations.",
	}, []string{"scope"})

	// ReceiptScans counts simulated receipt scans.
	ReceiptScans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fairsplit_receipt_scans_total",
		Help: "Total number of receipt scans.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
