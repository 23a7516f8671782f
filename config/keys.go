// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import "github.com/ava-labs/forkgate/upgrade"

const (
	DataDirKey              = "data-dir"
	ConfigFileKey           = "config-file"
	ConfigContentKey        = "config-file-content"
	ConfigContentTypeKey    = "config-file-content-type"
	VersionKey              = "version"
	NetworkNameKey          = "network-id"
	DBTypeKey               = "db-type"
	DBPathKey               = "db-dir"
	LogsDirKey              = "log-dir"
	LogLevelKey             = "log-level"
	LogDisplayLevelKey      = "log-display-level"
	LogFormatKey            = "log-format"
	LogRotaterMaxSizeKey    = "log-rotater-max-size"
	LogRotaterMaxFilesKey   = "log-rotater-max-files"
	LogRotaterMaxAgeKey     = "log-rotater-max-age"
	LogRotaterCompressKey   = "log-rotater-compress-enabled"
	LogDisableDisplayKey    = "log-disable-display"
	ChainFileKey            = "chain-file"
	TipIDKey                = "tip-id"
	WatchKey                = "watch"
	MetricsAddressKey       = "metrics-address"
	ActivationTimesKey      = "activation-times"
	activationTimeKeySuffix = "-activation-time"

	legacyActivationTimeKeySuffix = "activationtime"
)

// ActivationTimeKey returns the key that overrides the activation time of
// [rule], for example "exodus-activation-time".
func ActivationTimeKey(rule upgrade.RuleID) string {
	return rule.String() + activationTimeKeySuffix
}

// LegacyActivationTimeKey returns the undashed spelling of
// ActivationTimeKey, for example "exodusactivationtime".
func LegacyActivationTimeKey(rule upgrade.RuleID) string {
	return rule.String() + legacyActivationTimeKeySuffix
}
