package database

import "context"

// PingChecker adapts a connection pool to readiness checks.
type PingChecker struct {
	pool Pool
}

func NewPingChecker(pool Pool) PingChecker {
	return PingChecker{pool: pool}
}

func (p PingChecker) CheckHealth(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
