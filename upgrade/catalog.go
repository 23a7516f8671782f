// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownRule   = errors.New("unknown rule")
	ErrDuplicateRule = errors.New("duplicate rule")
	ErrSealed        = errors.New("registry is sealed")
)

// Registry collects rules during startup. Once sealed, no further rules may be
// registered.
type Registry struct {
	rules   []Rule
	catalog *Catalog
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends [rule] to the registry.
func (r *Registry) Register(rule Rule) error {
	if r.catalog != nil {
		return fmt.Errorf("%w: can't register %s", ErrSealed, rule.ID)
	}
	for _, registered := range r.rules {
		if registered.ID == rule.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateRule, rule.ID)
		}
	}
	r.rules = append(r.rules, rule)
	return nil
}

// Seal ends the registration phase and returns the read-only catalog of the
// registered rules. Sealing more than once returns the same catalog.
func (r *Registry) Seal() *Catalog {
	if r.catalog != nil {
		return r.catalog
	}

	c := &Catalog{
		rules:   slices.Clone(r.rules),
		indices: make(map[RuleID]int, len(r.rules)),
	}
	for i, rule := range c.rules {
		c.indices[rule.ID] = i
	}
	r.catalog = c
	return c
}

// NewCatalog returns a sealed catalog containing [rules] in order.
func NewCatalog(rules ...Rule) (*Catalog, error) {
	r := NewRegistry()
	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			return nil, err
		}
	}
	return r.Seal(), nil
}

// Catalog is the immutable set of rules known to a node.
type Catalog struct {
	rules   []Rule
	indices map[RuleID]int
}

// Lookup returns the rule registered with [id].
func (c *Catalog) Lookup(id RuleID) (Rule, error) {
	i, ok := c.indices[id]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownRule, id)
	}
	return c.rules[i], nil
}

// LookupName returns the rule registered with the provided name.
func (c *Catalog) LookupName(name string) (Rule, error) {
	id, err := ParseRuleID(name)
	if err != nil {
		return Rule{}, err
	}
	return c.Lookup(id)
}

// Rules returns the registered rules in registration order.
func (c *Catalog) Rules() []Rule {
	return slices.Clone(c.rules)
}

func (c *Catalog) Len() int {
	return len(c.rules)
}
