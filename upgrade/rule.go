// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"fmt"
	"time"
)

const (
	Exodus RuleID = iota
	Leviticus

	Latest = Leviticus
)

// RuleID is an enum of all the hard-fork rules this node knows how to gate.
type RuleID uint8

func (r RuleID) String() string {
	switch r {
	case Leviticus:
		return "leviticus"
	case Exodus:
		return "exodus"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(r))
	}
}

// ParseRuleID returns the rule with the provided name.
func ParseRuleID(name string) (RuleID, error) {
	switch name {
	case "leviticus":
		return Leviticus, nil
	case "exodus":
		return Exodus, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
}

func (r RuleID) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RuleID) UnmarshalText(text []byte) error {
	id, err := ParseRuleID(string(text))
	if err != nil {
		return err
	}
	*r = id
	return nil
}

// Rule is a hard-fork rule that becomes active once the median time past of
// the evaluated block reaches its activation time.
type Rule struct {
	ID                    RuleID    `json:"id"`
	DefaultActivationTime time.Time `json:"defaultActivationTime"`
}
