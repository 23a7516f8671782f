// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/ava-labs/forkgate/chain"
	"github.com/ava-labs/forkgate/upgrade"
	"github.com/ava-labs/forkgate/utils/timer/mockable"
)

// WriteStatus writes a human readable report of [statuses], evaluated against
// [tip], to [w]. A nil tip is reported as an empty chain. The time remaining
// until each inactive rule's activation time is measured with [clock].
func WriteStatus(w io.Writer, clock *mockable.Clock, tip chain.Block, statuses []upgrade.RuleStatus) error {
	if tip == nil {
		if _, err := fmt.Fprintln(w, "tip: none"); err != nil {
			return err
		}
	} else {
		_, err := fmt.Fprintf(w, "tip: %s height=%d medianTimePast=%s\n",
			tip.ID(),
			tip.Height(),
			tip.MedianTimePast().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "RULE\tSTATUS\tACTIVATION TIME\tSOURCE\tREMAINING"); err != nil {
		return err
	}
	for _, status := range statuses {
		state := "inactive"
		if status.Active {
			state = "active"
		}
		source := "default"
		if status.Overridden {
			source = "override"
		}
		remaining := "-"
		if !status.Active {
			if until := clock.Until(status.ActivationTime); until > 0 {
				remaining = until.String()
			}
		}
		_, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			status.Rule.ID,
			state,
			status.ActivationTime.UTC().Format(time.RFC3339),
			source,
			remaining,
		)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteRules writes every rule in [catalog] with its default activation time
// and the activation time that is used once [overrides] are applied.
func WriteRules(w io.Writer, catalog *upgrade.Catalog, overrides upgrade.Overrides) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "RULE\tDEFAULT\tEFFECTIVE"); err != nil {
		return err
	}
	for _, rule := range catalog.Rules() {
		_, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
			rule.ID,
			rule.DefaultActivationTime.UTC().Format(time.RFC3339),
			upgrade.EffectiveThreshold(rule, overrides).UTC().Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
