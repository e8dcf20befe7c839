package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cardiowell/internal/assessment"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func latestReportKey(patientID uint) string {
	return fmt.Sprintf("report:latest:%d", patientID)
}

// StoreLatestReport caches the most recently generated report for a patient
// with an expiration.
func (r *RedisClient) StoreLatestReport(ctx context.Context, patientID uint, report *assessment.Report, duration time.Duration) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := r.client.Set(ctx, latestReportKey(patientID), jsonData, duration).Err(); err != nil {
		return fmt.Errorf("failed to store report in Redis: %w", err)
	}

	return nil
}

// GetLatestReport returns the cached latest report for a patient. The second
// return value is false when no cached report exists.
func (r *RedisClient) GetLatestReport(ctx context.Context, patientID uint) (*assessment.Report, bool, error) {
	data, err := r.client.Get(ctx, latestReportKey(patientID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get report from Redis: %w", err)
	}

	var report assessment.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, true, nil
}

// DeleteLatestReport drops the cached report for a patient, e.g. after the
// underlying record is deleted.
func (r *RedisClient) DeleteLatestReport(ctx context.Context, patientID uint) error {
	return r.client.Del(ctx, latestReportKey(patientID)).Err()
}

// GetStatus reports connection pool statistics for the debug endpoint.
func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
