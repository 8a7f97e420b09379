package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Close releases the pool. Safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}
	db.Pool.Close()
	db.Pool = nil
	log.Info().Msg("PostgreSQL pool closed")
	return nil
}

// PoolStats is a snapshot of pgxpool counters.
type PoolStats struct {
	AcquiredConns        int32
	IdleConns            int32
	TotalConns           int32
	MaxConns             int32
	AcquireCount         int64
	AcquireDuration      time.Duration
	CanceledAcquireCount int64
	EmptyAcquireCount    int64
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns:        raw.AcquiredConns(),
		IdleConns:            raw.IdleConns(),
		TotalConns:           raw.TotalConns(),
		MaxConns:             raw.MaxConns(),
		AcquireCount:         raw.AcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		EmptyAcquireCount:    raw.EmptyAcquireCount(),
	}, nil
}

func (s *PoolStats) AvgAcquireDuration() time.Duration {
	if s.AcquireCount == 0 {
		return 0
	}
	return s.AcquireDuration / time.Duration(s.AcquireCount)
}

// MonitorPoolHealth logs pool pressure every interval until ctx is done.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				log.Warn().Err(err).Msg("Pool stats unavailable")
				continue
			}

			if stats.MaxConns > 0 {
				utilization := float64(stats.AcquiredConns) / float64(stats.MaxConns) * 100
				if utilization > 80 {
					log.Warn().
						Float64("utilization_pct", utilization).
						Int32("acquired", stats.AcquiredConns).
						Int32("max", stats.MaxConns).
						Msg("High pool utilization")
				}
			}

			if avg := stats.AvgAcquireDuration(); avg > 100*time.Millisecond {
				log.Warn().Dur("avg_acquire", avg).Msg("High pool acquire latency")
			}

		case <-ctx.Done():
			return
		}
	}
}
