// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/forkgate/chain"
	"github.com/ava-labs/forkgate/chain/index"
	"github.com/ava-labs/forkgate/config"
	"github.com/ava-labs/forkgate/database"
	"github.com/ava-labs/forkgate/database/leveldb"
	"github.com/ava-labs/forkgate/database/memdb"
	"github.com/ava-labs/forkgate/ids"
	"github.com/ava-labs/forkgate/upgrade"
	"github.com/ava-labs/forkgate/utils/constants"
	"github.com/ava-labs/forkgate/utils/logging"
	"github.com/ava-labs/forkgate/utils/perms"
	"github.com/ava-labs/forkgate/utils/timer/mockable"
	"github.com/ava-labs/forkgate/version"
)

const (
	metricsNamespace   = "gate"
	indexMetricsPrefix = "index_"
	readHeaderTimeout  = 10 * time.Second
	shutdownTimeout    = 5 * time.Second
)

var (
	_ App = (*gate)(nil)

	errUnknownDBType = errors.New("unknown database type")
)

type gate struct {
	config     config.Config
	v          *viper.Viper
	out        io.Writer
	clock      mockable.Clock
	logFactory logging.Factory
	log        logging.Logger

	registry  *prometheus.Registry
	db        database.Database
	index     *index.Index
	evaluator *upgrade.Evaluator
	metrics   *upgrade.Metrics
	tip       chain.Block

	server   *http.Server
	eg       errgroup.Group
	stopOnce sync.Once
	done     chan struct{}
	// reportLock serializes status reports.
	reportLock sync.Mutex
}

// New returns an application that reports the activation status of every
// rule described by [c]. [v] is watched for override changes if [c.Watch] is
// set. Reports are written to [out].
func New(c config.Config, v *viper.Viper, out io.Writer) (App, error) {
	logFactory := logging.NewFactory(c.LoggingConfig)
	log, err := logFactory.Make("main")
	if err != nil {
		logFactory.Close()
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &gate{
		config:     c,
		v:          v,
		out:        out,
		logFactory: logFactory,
		log:        log,
		registry:   prometheus.NewRegistry(),
		done:       make(chan struct{}),
	}, nil
}

func (g *gate) Start() error {
	err := g.start()
	if err != nil {
		g.log.Error("failed to start",
			zap.Error(err),
		)
		g.log.Stop()
		g.logFactory.Close()
	}
	return err
}

func (g *gate) start() error {
	g.log.Info("starting",
		zap.Stringer("version", version.Current),
		zap.String("network", constants.NetworkName(g.config.NetworkID)),
		zap.Reflect("config", g.config),
	)

	if err := g.registry.Register(collectors.NewGoCollector()); err != nil {
		return fmt.Errorf("failed to register go metrics: %w", err)
	}

	db, err := g.openDB()
	if err != nil {
		return err
	}
	g.db = db

	g.index, err = index.New(
		db,
		g.log,
		prometheus.WrapRegistererWithPrefix(indexMetricsPrefix, g.registry),
	)
	if err != nil {
		return errors.Join(err, db.Close())
	}

	if g.config.ChainFile != "" {
		if err := g.importChain(g.config.ChainFile); err != nil {
			return errors.Join(err, db.Close())
		}
	}

	g.tip, err = g.selectTip()
	if err != nil {
		return errors.Join(err, db.Close())
	}

	g.evaluator = upgrade.NewEvaluator(g.config.Catalog, g.config.Overrides)
	g.metrics, err = upgrade.NewMetrics(metricsNamespace, g.registry)
	if err != nil {
		return errors.Join(err, db.Close())
	}

	if err := g.report(); err != nil {
		return errors.Join(err, db.Close())
	}

	if !g.config.Watch {
		close(g.done)
		return nil
	}

	if g.config.MetricsAddress != "" {
		if err := g.serveMetrics(); err != nil {
			return errors.Join(err, db.Close())
		}
	}
	if g.v.ConfigFileUsed() != "" {
		reloader := config.NewReloader(g.log, g.v, g.evaluator, func(upgrade.Overrides) {
			if err := g.report(); err != nil {
				g.log.Error("failed to report status",
					zap.Error(err),
				)
			}
		})
		reloader.Watch()
	} else {
		g.log.Warn("no config file to watch")
	}
	return nil
}

func (g *gate) openDB() (database.Database, error) {
	switch g.config.DatabaseConfig.Name {
	case memdb.Name:
		return memdb.New(), nil
	case leveldb.Name:
		if err := perms.EnsureDir(g.config.DatabaseConfig.Path, perms.ReadWriteExecute); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		db, err := leveldb.New(g.config.DatabaseConfig.Path, g.log)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDBType, g.config.DatabaseConfig.Name)
	}
}

func (g *gate) importChain(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open chain file: %w", err)
	}
	defer f.Close()

	headers, err := index.ReadHeaders(f)
	if err != nil {
		return err
	}
	_, err = g.index.Import(headers)
	return err
}

// selectTip returns the configured tip, or the best block if none was
// configured. A nil block is returned if the index is empty.
func (g *gate) selectTip() (chain.Block, error) {
	if g.config.TipID != ids.Empty {
		tip, err := g.index.Get(g.config.TipID)
		if err != nil {
			return nil, fmt.Errorf("failed to find tip: %w", err)
		}
		return tip, nil
	}

	tip, ok := g.index.Best()
	if !ok {
		g.log.Warn("chain index is empty")
		return nil, nil
	}
	return tip, nil
}

func (g *gate) report() error {
	g.reportLock.Lock()
	defer g.reportLock.Unlock()

	statuses := g.evaluator.Status(g.tip)
	g.metrics.Observe(statuses)

	for _, status := range statuses {
		g.log.Debug("evaluated rule",
			zap.Stringer("rule", status.Rule.ID),
			zap.Bool("active", status.Active),
			zap.Time("activationTime", status.ActivationTime),
			zap.Bool("overridden", status.Overridden),
		)
	}
	return WriteStatus(g.out, &g.clock, g.tip, statuses)
}

func (g *gate) serveMetrics() error {
	listener, err := net.Listen("tcp", g.config.MetricsAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", g.config.MetricsAddress, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g.registry, promhttp.HandlerOpts{}))
	g.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g.log.Info("serving metrics",
		zap.Stringer("address", listener.Addr()),
	)
	g.eg.Go(func() error {
		err := g.server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	return nil
}

func (g *gate) Stop() error {
	g.stopOnce.Do(func() {
		if g.config.Watch {
			close(g.done)
		}
	})
	return nil
}

func (g *gate) ExitCode() (int, error) {
	<-g.done

	g.log.Info("shutting down")

	var errs []error
	if g.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		errs = append(errs, g.server.Shutdown(ctx))
		cancel()
	}
	errs = append(errs, g.eg.Wait(), g.db.Close())

	err := errors.Join(errs...)
	if err != nil {
		g.log.Error("failed to shut down cleanly",
			zap.Error(err),
		)
	}
	g.log.Stop()
	g.logFactory.Close()
	return 0, err
}
