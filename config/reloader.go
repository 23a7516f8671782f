// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ava-labs/forkgate/upgrade"
	"github.com/ava-labs/forkgate/utils/logging"
)

// Reloader publishes the overrides of a config file to an evaluator whenever
// the file changes.
type Reloader struct {
	log       logging.Logger
	v         *viper.Viper
	evaluator *upgrade.Evaluator
	// onChange, if non-nil, is called after new overrides were published.
	onChange func(upgrade.Overrides)
}

func NewReloader(
	log logging.Logger,
	v *viper.Viper,
	evaluator *upgrade.Evaluator,
	onChange func(upgrade.Overrides),
) *Reloader {
	return &Reloader{
		log:       log,
		v:         v,
		evaluator: evaluator,
		onChange:  onChange,
	}
}

// Watch starts watching the config file. Changes are applied on a goroutine
// owned by viper.
func (r *Reloader) Watch() {
	r.v.OnConfigChange(r.onConfigChange)
	r.v.WatchConfig()
	r.log.Info("watching config file",
		zap.String("file", r.v.ConfigFileUsed()),
	)
}

func (r *Reloader) onConfigChange(e fsnotify.Event) {
	r.log.Info("config file changed",
		zap.String("file", e.Name),
		zap.Stringer("op", e.Op),
	)
	if _, err := r.Reload(); err != nil {
		r.log.Warn("ignoring invalid config",
			zap.Error(err),
		)
	}
}

// Reload parses the overrides currently held by viper and publishes them if
// they differ from the published snapshot. If the overrides are invalid, the
// published snapshot is left unchanged. Returns true if a new snapshot was
// published.
func (r *Reloader) Reload() (bool, error) {
	overrides, err := GetOverrides(r.v, r.evaluator.Catalog())
	if err != nil {
		return false, err
	}
	if overrides.Equal(r.evaluator.Overrides()) {
		r.log.Debug("overrides unchanged")
		return false, nil
	}

	r.evaluator.SetOverrides(overrides)
	r.log.Info("published new overrides",
		zap.Int("numOverrides", overrides.Len()),
	)
	if r.onChange != nil {
		r.onChange(overrides)
	}
	return true, nil
}
