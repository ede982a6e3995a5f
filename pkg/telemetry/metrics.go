package telemetry

import (
	"errors"

	"github.com/iziplay/isbn-api/pkg/isbn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK        = "ok"
	OutcomeNull      = "null"
	OutcomeEmpty     = "empty"
	OutcomeMalformed = "malformed"
	OutcomeChecksum  = "checksum"
	OutcomeInvalid   = "invalid"
)

var operations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "isbn",
	Name:      "operations_total",
	Help:      "ISBN operations served, by operation and outcome.",
}, []string{"operation", "outcome"})

// Outcome maps the result of an ISBN operation to a metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, isbn.ErrNull):
		return OutcomeNull
	case errors.Is(err, isbn.ErrEmpty):
		return OutcomeEmpty
	case errors.Is(err, isbn.ErrMalformed):
		return OutcomeMalformed
	case errors.Is(err, isbn.ErrChecksum):
		return OutcomeChecksum
	default:
		return OutcomeInvalid
	}
}

// ObserveOperation counts one ISBN operation.
func ObserveOperation(operation string, err error) {
	operations.WithLabelValues(operation, Outcome(err)).Inc()
}
