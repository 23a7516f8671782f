// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/forkgate/database/leveldb"
	"github.com/ava-labs/forkgate/database/memdb"
	"github.com/ava-labs/forkgate/upgrade"
	"github.com/ava-labs/forkgate/utils/constants"
)

var (
	defaultDataDir           = filepath.Join("$HOME", "."+constants.PlatformName)
	defaultUnexpandedDataDir = "${" + DataDirKey + "}"
	defaultDBDir             = filepath.Join(defaultUnexpandedDataDir, "db")
	defaultLogDir            = filepath.Join(defaultUnexpandedDataDir, "logs")
)

func addProcessFlags(fs *pflag.FlagSet) {
	// If true, print the version and quit.
	fs.Bool(VersionKey, false, "If true, print version and quit")
}

func addGateFlags(fs *pflag.FlagSet) {
	// Home directory
	fs.String(DataDirKey, defaultDataDir, "Sets the base data directory where default sub-directories will be placed unless otherwise specified.")
	// Config File
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Ignored if %s is specified", ConfigContentKey))
	fs.String(ConfigContentKey, "", "Specifies base64 encoded config content")
	fs.String(ConfigContentTypeKey, "json", "Specifies the format of the base64 encoded config content. Available values: 'json', 'yaml', 'toml'")
	// Network ID
	fs.String(NetworkNameKey, constants.MainnetName, "Network ID whose default activation times are used")

	// Database
	fs.String(DBTypeKey, leveldb.Name, fmt.Sprintf("Database type to use. Must be one of {%s, %s}", leveldb.Name, memdb.Name))
	fs.String(DBPathKey, defaultDBDir, "Path to database directory")

	// Logging
	fs.String(LogsDirKey, defaultLogDir, "Logging directory")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", "The structure of log format. Defaults to 'auto' which formats terminal-like logs, when the output is a terminal. Otherwise, should be one of {auto, plain, colors}")
	fs.Uint(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated.")
	fs.Uint(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files.")
	fs.Uint(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files.")
	fs.Bool(LogRotaterCompressKey, false, "Enables the compression of rotated log files through gzip.")
	fs.Bool(LogDisableDisplayKey, false, "Disables displaying logs in stdout.")

	// Chain
	fs.String(ChainFileKey, "", "Path to a JSON file of block headers to add to the index before evaluating")
	fs.String(TipIDKey, "", "ID of the block to evaluate activation against. If empty, the best known block is used")
	fs.Bool(WatchKey, false, "If true, keep running and re-evaluate whenever the config file changes")

	// Metrics
	fs.String(MetricsAddressKey, "", "Address to serve prometheus metrics on. If empty, metrics are not served")

	// Activation overrides
	for id := upgrade.Exodus; id <= upgrade.Latest; id++ {
		key := ActivationTimeKey(id)
		fs.Int64(
			key,
			0,
			fmt.Sprintf("Unix timestamp at which %s activates. If unset, the network default is used. May also be set with %s", id, EnvVarName(EnvPrefix, key)),
		)
		legacyKey := LegacyActivationTimeKey(id)
		fs.Int64(legacyKey, 0, fmt.Sprintf("Unix timestamp at which %s activates", id))
		_ = fs.MarkDeprecated(legacyKey, "use --"+key)
	}
}

// BuildFlagSet returns a complete set of flags for the gate.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.PlatformName, pflag.ContinueOnError)
	addProcessFlags(fs)
	addGateFlags(fs)
	return fs
}

// getExpandedArg returns the string in viper corresponding to [key], with
// environment variables and ${data-dir} expanded.
func getExpandedArg(v *viper.Viper, key string) string {
	return getExpandedString(v, v.GetString(key))
}

func getExpandedString(v *viper.Viper, s string) string {
	return os.Expand(
		s,
		func(strVar string) string {
			if strVar == DataDirKey {
				return os.ExpandEnv(v.GetString(DataDirKey))
			}
			return os.Getenv(strVar)
		},
	)
}
