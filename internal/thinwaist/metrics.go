// SPDX-License-Identifier: MIT

package thinwaist

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "consolectl_thinwaist_requests_total",
		Help: "Thin-Waist API requests by operation and outcome",
	}, []string{
		"operation",
		"status", // HTTP status code, or "transport_error"
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "consolectl_thinwaist_request_duration_seconds",
		Help:    "Thin-Waist API request latency by operation",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

func observeRequest(op string, start time.Time, resp *http.Response, err error) {
	status := "transport_error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	requestTotal.WithLabelValues(op, status).Inc()
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
