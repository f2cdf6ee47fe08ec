// Package metrics holds the prometheus instruments shared across the bridge.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint: gochecknoglobals
var (
	// EndpointClassifications counts classifier decisions by outcome
	// ("ssh", "scheme", "path").
	EndpointClassifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hgbridge",
		Subsystem: "remote",
		Name:      "endpoint_classifications_total",
		Help:      "Remote location classifications by outcome.",
	}, []string{"outcome"})

	// UnsafeHostRejections counts hosts rejected by the SSH argument
	// injection guard.
	UnsafeHostRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hgbridge",
		Subsystem: "remote",
		Name:      "unsafe_host_rejections_total",
		Help:      "Hosts rejected because an SSH client would parse them as an option.",
	})
)

// Classification outcome label values.
const (
	// OutcomeSSH labels locations classified as SSH shorthand endpoints.
	OutcomeSSH = "ssh"
	// OutcomeScheme labels locations with an explicit URL scheme.
	OutcomeScheme = "scheme"
	// OutcomePath labels locations presumed to be local filesystem paths.
	OutcomePath = "path"
)
