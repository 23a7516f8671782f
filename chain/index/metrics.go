// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package index

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	numBlocks          prometheus.Gauge
	bestHeight         prometheus.Gauge
	bestMedianTimePast prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		numBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blocks",
			Help: "number of blocks in the index",
		}),
		bestHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "best_height",
			Help: "height of the best known block",
		}),
		bestMedianTimePast: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "best_median_time_past",
			Help: "median time past of the best known block in unix seconds",
		}),
	}
	err := errors.Join(
		registerer.Register(m.numBlocks),
		registerer.Register(m.bestHeight),
		registerer.Register(m.bestMedianTimePast),
	)
	return m, err
}

func (m *metrics) added(numBlocks int, best *block) {
	m.numBlocks.Set(float64(numBlocks))
	if best != nil {
		m.bestHeight.Set(float64(best.Height()))
		m.bestMedianTimePast.Set(float64(best.MedianTimePast().Unix()))
	}
}
