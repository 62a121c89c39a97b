// Package storage owns the relational store connection used by the API and
// the notification worker.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	"github.com/DevRamona/Course-Management-Platform/internal/config"
)

// ErrNoReachableNode is returned when every configured database node fails.
var ErrNoReachableNode = errors.New("no reachable database node")

// Connect tries the configured database nodes in order (primary first, then
// fallbacks) and returns a handle to the first one that answers a ping.
// The worker is allowed to start before the primary store is reachable, so a
// failed node is logged and skipped rather than treated as fatal.
func Connect(ctx context.Context, cfg config.Database) (*dbpg.DB, error) {
	opts := &dbpg.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	var errs []error

	for _, node := range cfg.Nodes() {
		db, err := dbpg.New(node.DSN(), nil, opts)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("host", node.Host).Msg("failed to open database node")
			errs = append(errs, fmt.Errorf("open %s:%s: %w", node.Host, node.Port, err))
			continue
		}

		if err := db.Master.PingContext(ctx); err != nil {
			zlog.Logger.Warn().Err(err).Str("host", node.Host).Msg("database node unreachable")
			errs = append(errs, fmt.Errorf("ping %s:%s: %w", node.Host, node.Port, err))

			if closeErr := db.Master.Close(); closeErr != nil {
				zlog.Logger.Error().Err(closeErr).Str("host", node.Host).Msg("failed to close database node")
			}
			continue
		}

		zlog.Logger.Info().Str("host", node.Host).Str("port", node.Port).Msg("database connection established")
		return db, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrNoReachableNode, errors.Join(errs...))
}
