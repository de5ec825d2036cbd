package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthDetails pings Redis and returns the error together with pool counters.
func (c *Client) HealthDetails(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.Ping(ctx)

	details := map[string]string{
		"address":  c.config.Addr(),
		"database": strconv.Itoa(c.config.Database),
		"latency":  time.Since(start).String(),
	}
	if stats := c.PoolStats(); stats != nil {
		details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
		details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	}
	if err != nil {
		details["message"] = err.Error()
	}
	return details, err
}
