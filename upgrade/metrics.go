// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const ruleLabel = "rule"

// Metrics exports the most recently observed activation status of each rule.
type Metrics struct {
	active         *prometheus.GaugeVec
	activationTime *prometheus.GaugeVec
	overridden     *prometheus.GaugeVec
}

func NewMetrics(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		active: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rule_active",
				Help:      "1 if the rule is active on the evaluated tip, 0 otherwise",
			},
			[]string{ruleLabel},
		),
		activationTime: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rule_activation_time",
				Help:      "effective activation time of the rule in unix seconds",
			},
			[]string{ruleLabel},
		),
		overridden: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rule_overridden",
				Help:      "1 if the activation time of the rule is overridden, 0 otherwise",
			},
			[]string{ruleLabel},
		),
	}
	err := errors.Join(
		registerer.Register(m.active),
		registerer.Register(m.activationTime),
		registerer.Register(m.overridden),
	)
	return m, err
}

// Observe records the provided statuses.
func (m *Metrics) Observe(statuses []RuleStatus) {
	for _, status := range statuses {
		rule := status.Rule.ID.String()
		m.active.WithLabelValues(rule).Set(boolToFloat(status.Active))
		m.activationTime.WithLabelValues(rule).Set(float64(status.ActivationTime.Unix()))
		m.overridden.WithLabelValues(rule).Set(boolToFloat(status.Overridden))
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
