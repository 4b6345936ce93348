// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bindgen

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/bindgen/utils/wrappers"
)

const namespace = "bindgen"

type metrics struct {
	numWritten  prometheus.Counter
	numRewrites prometheus.Counter
	numFailed   *prometheus.CounterVec
}

func (m *metrics) initialize(namespace string, registerer prometheus.Registerer) error {
	m.numWritten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bindings_written",
		Help:      "Number of bindings written",
	})
	m.numRewrites = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "names_rewritten",
		Help:      "Number of reserved names rewritten while sanitizing ABI documents",
	})
	m.numFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bindings_failed",
		Help:      "Number of bindings that failed, by stage",
	}, []string{"stage"})

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.numWritten),
		registerer.Register(m.numRewrites),
		registerer.Register(m.numFailed),
	)
	return errs.Err
}
