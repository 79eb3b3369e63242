package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client  *Client
	timeout time.Duration
	mu      sync.Mutex
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 2 * time.Second,
	}
}

// Check pings Redis and runs a set/get/del round trip on a scratch key.
func (h *HealthChecker) Check(ctx context.Context) HealthCheck {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	config := h.client.GetConfig()
	details := map[string]string{
		"host":     config.Host,
		"port":     strconv.Itoa(config.Port),
		"database": strconv.Itoa(config.Database),
	}

	start := time.Now()
	err := h.roundTrip(ctx)
	details["latency"] = time.Since(start).String()

	if err != nil {
		details["error"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}

	stats := h.client.GetClient().PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return HealthCheck{Status: StatusUp, Details: details}
}

func (h *HealthChecker) roundTrip(ctx context.Context) error {
	if err := h.client.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	rdb := h.client.GetClient()
	testKey := h.client.BuildKey("health_check_test")
	if err := rdb.Set(ctx, testKey, "ok", time.Minute).Err(); err != nil {
		return fmt.Errorf("set operation failed: %w", err)
	}
	value, err := rdb.Get(ctx, testKey).Result()
	if err != nil {
		return fmt.Errorf("get operation failed: %w", err)
	}
	if value != "ok" {
		return fmt.Errorf("value mismatch: expected ok, got %s", value)
	}
	if err := rdb.Del(ctx, testKey).Err(); err != nil {
		return fmt.Errorf("delete operation failed: %w", err)
	}
	return nil
}
