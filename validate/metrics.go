package validate

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// validationsTotal counts calls to Validate.
//
// Labels:
//   - can_validate_type: "true" when the value implemented HasValidate
//     and validation actually ran, "false" when it was skipped.
//   - has_error: "true" when the validator returned an error.
//
// A high can_validate_type="false" rate usually means values are being
// passed through Validate that were expected to implement the interface.
//
// Prometheus metrics are global by design, hence the nolint.
var validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "validation_calls_total",
	Help: "The total number of calls to Validate",
}, []string{"can_validate_type", "has_error"})

// init pre-seeds all label combinations so rate() queries see a
// continuous series from process start.
func init() {
	validationsTotal.WithLabelValues("true", "true").Add(0)
	validationsTotal.WithLabelValues("false", "true").Add(0)
	validationsTotal.WithLabelValues("true", "false").Add(0)
	validationsTotal.WithLabelValues("false", "false").Add(0)
}

func observeValidation(canValidate, hasError bool) {
	validationsTotal.WithLabelValues(
		strconv.FormatBool(canValidate),
		strconv.FormatBool(hasError),
	).Inc()
}
