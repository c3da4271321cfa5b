package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartWeightHistoryPruner deletes weight entries older than retention
// with interval. The dashboard only reads a recent window, and the
// current weight is denormalized on the user row, so old entries are
// safe to drop.
func StartWeightHistoryPruner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				res, err := db.ExecContext(ctx, `
                    DELETE FROM weight_entries
                     WHERE recorded_at < $1
                `, cutoff)
				if err != nil {
					log.Error("failed to prune weight history", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("pruned weight history", zap.Int64("removed", rows))
				}
			}
		}
	}()
}
