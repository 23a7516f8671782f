// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ava-labs/forkgate/database/leveldb"
	"github.com/ava-labs/forkgate/database/memdb"
	"github.com/ava-labs/forkgate/ids"
	"github.com/ava-labs/forkgate/upgrade"
	"github.com/ava-labs/forkgate/utils/constants"
	"github.com/ava-labs/forkgate/utils/logging"
)

var errInvalidDBType = errors.New("invalid database type")

type DatabaseConfig struct {
	// Name of the database type to use
	Name string `json:"name"`
	// Path to database
	Path string `json:"path"`
}

// Config is the fully resolved configuration of the gate.
type Config struct {
	NetworkID      uint32            `json:"networkID"`
	DatabaseConfig DatabaseConfig    `json:"databaseConfig"`
	LoggingConfig  logging.Config    `json:"loggingConfig"`
	ChainFile      string            `json:"chainFile"`
	TipID          ids.ID            `json:"tipID"`
	Watch          bool              `json:"watch"`
	MetricsAddress string            `json:"metricsAddress"`
	Catalog        *upgrade.Catalog  `json:"-"`
	Overrides      upgrade.Overrides `json:"-"`
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{}
	loggingConfig.Directory = getExpandedArg(v, LogsDirKey)
	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}
	logDisplayLevel := v.GetString(LogLevelKey)
	if v.IsSet(LogDisplayLevelKey) {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.DisplayHighlight, err = logging.ToHighlight(v.GetString(LogFormatKey), os.Stdout.Fd())
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.MaxSize = int(v.GetUint(LogRotaterMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogRotaterMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogRotaterMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogRotaterCompressKey)
	loggingConfig.DisableWriterDisplaying = v.GetBool(LogDisableDisplayKey)
	return loggingConfig, nil
}

func getDatabaseConfig(v *viper.Viper) (DatabaseConfig, error) {
	dbType := v.GetString(DBTypeKey)
	switch dbType {
	case leveldb.Name, memdb.Name:
	default:
		return DatabaseConfig{}, fmt.Errorf("%w: %q", errInvalidDBType, dbType)
	}
	return DatabaseConfig{
		Name: dbType,
		Path: getExpandedArg(v, DBPathKey),
	}, nil
}

// GetConfig returns the configuration described by [v].
func GetConfig(v *viper.Viper) (Config, error) {
	networkID, err := constants.NetworkID(v.GetString(NetworkNameKey))
	if err != nil {
		return Config{}, err
	}

	config := Config{
		NetworkID:      networkID,
		ChainFile:      getExpandedArg(v, ChainFileKey),
		Watch:          v.GetBool(WatchKey),
		MetricsAddress: v.GetString(MetricsAddressKey),
		Catalog:        upgrade.GetCatalog(networkID),
	}

	if tipID := v.GetString(TipIDKey); tipID != "" {
		config.TipID, err = ids.FromString(tipID)
		if err != nil {
			return Config{}, fmt.Errorf("couldn't parse %s: %w", TipIDKey, err)
		}
	}

	config.DatabaseConfig, err = getDatabaseConfig(v)
	if err != nil {
		return Config{}, err
	}

	config.LoggingConfig, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	config.Overrides, err = GetOverrides(v, config.Catalog)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}
