package ranged

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opConstruct  = "construct"
	opConvert    = "convert"
	opArithmetic = "arithmetic"

	outcomeOK           = "ok"
	outcomeBelowMinimum = "below_minimum"
	outcomeAboveMaximum = "above_maximum"
	outcomeInvalidBound = "invalid_bound"
)

// checksTotal counts every range membership check performed by a fallible
// entry point.
//
// Labels:
//   - operation: which protocol ran the check ("construct" for the
//     construction paths, "convert" for fallible conversions,
//     "arithmetic" for checked operations).
//   - outcome: "ok" when the value was inside the interval,
//     "below_minimum" / "above_maximum" for the two rejection
//     directions, "invalid_bound" when the bound tag itself was
//     malformed.
//
// The rejection outcomes are the interesting signal: a climbing
// below_minimum or above_maximum rate usually means a caller is feeding
// unvalidated input straight into New instead of clamping or rejecting
// at its own boundary, and any invalid_bound at all is a bug in a bound
// tag definition.
//
// Prometheus metrics are global by design, hence the nolint.
var checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "ranged_checks_total",
	Help: "The total number of range membership checks",
}, []string{"operation", "outcome"})

// init pre-seeds every label combination so rate() queries see a
// continuous series from process start and a zero rejection rate is
// distinguishable from a missing metric.
func init() {
	operations := []string{opConstruct, opConvert, opArithmetic}
	outcomes := []string{outcomeOK, outcomeBelowMinimum, outcomeAboveMaximum, outcomeInvalidBound}

	for _, op := range operations {
		for _, outcome := range outcomes {
			checksTotal.WithLabelValues(op, outcome).Add(0)
		}
	}
}

func observeCheck(operation, outcome string) {
	checksTotal.WithLabelValues(operation, outcome).Inc()
}
