package validate

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// validationsTotal counts calls to Validate.
	//
	// Labels:
	//   - can_validate_type: "true" if the value implemented a validation
	//     interface or had a registered schema, "false" if it was skipped.
	//   - has_error: "true" if validation failed or the routine panicked.
	//
	// Useful queries:
	//   - rate(validation_calls_total[5m])
	//   - validation_calls_total{can_validate_type="false"}: types that were silently accepted
	//   - sum(rate(validation_calls_total{has_error="true"}[5m])) / sum(rate(validation_calls_total[5m]))
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "validation_calls_total",
		Help: "The total number of calls to Validate",
	}, []string{"can_validate_type", "has_error"})

	// validationTime tracks how long validation routines take, per Go type.
	// Only validatable types are observed.
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "validation_time_millis",
		Help: "The time it takes to validate, in milliseconds",
		Buckets: []float64{
			1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000,
		},
	}, []string{"type", "has_error"})

	// validationFailureReasons tracks how many reasons a failed report holds,
	// per Go type. A sudden shift usually means a data problem upstream.
	validationFailureReasons = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "validation_failure_reasons",
		Help:    "The number of reasons in a failed validation report",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000},
	}, []string{"type"})
)

// init pre-creates every validationsTotal series so dashboards and rate()
// see zeros instead of gaps before the first call.
func init() {
	for _, canValidate := range []string{"true", "false"} {
		for _, hasError := range []string{"true", "false"} {
			validationsTotal.WithLabelValues(canValidate, hasError).Add(0)
		}
	}
}

func recordMetrics(typeName string, canValidate, hasError bool, elapsed time.Duration, reasons int) {
	hasErrorLabel := strconv.FormatBool(hasError)

	validationsTotal.WithLabelValues(strconv.FormatBool(canValidate), hasErrorLabel).Inc()

	if !canValidate {
		return
	}

	validationTime.WithLabelValues(typeName, hasErrorLabel).Observe(float64(elapsed.Microseconds()) / 1000)

	if reasons > 0 {
		validationFailureReasons.WithLabelValues(typeName).Observe(float64(reasons))
	}
}
