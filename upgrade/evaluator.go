// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"sync/atomic"
	"time"

	"github.com/ava-labs/forkgate/chain"
)

// IsActive returns true if [rule] is in force for blocks built on top of
// [tip]. A nil tip, which is the parent of the genesis block, never has any
// rules active. The tip must be an untyped nil in that case.
//
// The result only depends on the arguments. Two tips at the same height may
// disagree.
func IsActive(rule Rule, tip chain.Tip, overrides Overrides) bool {
	if tip == nil {
		return false
	}
	return !tip.MedianTimePast().Before(EffectiveThreshold(rule, overrides))
}

// RuleStatus is the activation state of a single rule against a tip.
type RuleStatus struct {
	Rule           Rule      `json:"rule"`
	ActivationTime time.Time `json:"activationTime"`
	Overridden     bool      `json:"overridden"`
	Active         bool      `json:"active"`
}

// Evaluator answers activation queries against a fixed catalog using the most
// recently published overrides.
//
// Evaluator is safe for concurrent use. Every query observes exactly one
// overrides snapshot.
type Evaluator struct {
	catalog   *Catalog
	overrides atomic.Pointer[Overrides]
}

func NewEvaluator(catalog *Catalog, overrides Overrides) *Evaluator {
	e := &Evaluator{
		catalog: catalog,
	}
	e.overrides.Store(&overrides)
	return e
}

func (e *Evaluator) Catalog() *Catalog {
	return e.catalog
}

// Overrides returns the currently published snapshot.
func (e *Evaluator) Overrides() Overrides {
	return *e.overrides.Load()
}

// SetOverrides atomically replaces the published snapshot. Queries that are
// already running keep using the snapshot they started with.
func (e *Evaluator) SetOverrides(overrides Overrides) {
	e.overrides.Store(&overrides)
}

// IsActive returns true if the rule [id] is in force for blocks built on top
// of [tip]. An error is only returned if [id] isn't in the catalog.
func (e *Evaluator) IsActive(id RuleID, tip chain.Tip) (bool, error) {
	rule, err := e.catalog.Lookup(id)
	if err != nil {
		return false, err
	}
	return IsActive(rule, tip, e.Overrides()), nil
}

// Evaluate reports the activation of every rule in [ids] against [tip]. If
// any of the rules is unknown, no results are returned.
func (e *Evaluator) Evaluate(tip chain.Tip, ids ...RuleID) (map[RuleID]bool, error) {
	rules := make([]Rule, len(ids))
	for i, id := range ids {
		rule, err := e.catalog.Lookup(id)
		if err != nil {
			return nil, err
		}
		rules[i] = rule
	}

	overrides := e.Overrides()
	results := make(map[RuleID]bool, len(rules))
	for _, rule := range rules {
		results[rule.ID] = IsActive(rule, tip, overrides)
	}
	return results, nil
}

// Status reports the activation state of every rule in the catalog against
// [tip], in catalog order.
func (e *Evaluator) Status(tip chain.Tip) []RuleStatus {
	var (
		overrides = e.Overrides()
		statuses  = make([]RuleStatus, 0, e.catalog.Len())
	)
	for _, rule := range e.catalog.rules {
		_, overridden := overrides.Get(rule.ID)
		statuses = append(statuses, RuleStatus{
			Rule:           rule,
			ActivationTime: EffectiveThreshold(rule, overrides),
			Overridden:     overridden,
			Active:         IsActive(rule, tip, overrides),
		})
	}
	return statuses
}
