// Package metrics defines and registers all custom Prometheus metrics for the
// Billed expense API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billed"

// ── Submission metrics ────────────────────────────────────────────────────────

// ReceiptsUploadedTotal counts receipts that completed the create phase.
var ReceiptsUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "receipts_uploaded_total",
		Help:      "Total number of receipt files successfully uploaded.",
	},
)

// ReceiptsRejectedTotal counts receipts refused before any store call.
// Label:
//   - reason: short description of the rejection (e.g. "unsupported_extension")
var ReceiptsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "receipts_rejected_total",
		Help:      "Total number of receipt files rejected by validation.",
	},
	[]string{"reason"},
)

// BillsSubmittedTotal counts bills whose update phase resolved.
// Label:
//   - type: the expense category (e.g. "Transports")
var BillsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bills_submitted_total",
		Help:      "Total number of bills successfully submitted, by expense type.",
	},
	[]string{"type"},
)

// SubmissionErrorsTotal counts pipeline failures against the store.
// Label:
//   - phase: "create" (upload) or "update" (field submission)
var SubmissionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_errors_total",
		Help:      "Total number of failed store calls in the submission pipeline.",
	},
	[]string{"phase"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// FormatErrorsTotal counts per-record formatting failures tolerated during a
// listing. Label:
//   - field: the bill field that failed to format (currently only "date")
var FormatErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "format_errors_total",
		Help:      "Total number of bill records kept raw after a formatting failure.",
	},
	[]string{"field"},
)
