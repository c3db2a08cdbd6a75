package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// A submission stays marked for a day: re-expensing the same amount on the
// same date within that window is treated as a double submit.
const dedupTTL = 24 * time.Hour

// SubmissionDedup guards against duplicate bill submissions, backed by Redis.
// Key format: dedup:bill:<email>:<date>:<amount>
type SubmissionDedup struct {
	client *redis.Client
}

// NewSubmissionDedup creates a SubmissionDedup wrapping the given Redis client.
func NewSubmissionDedup(client *redis.Client) *SubmissionDedup {
	return &SubmissionDedup{client: client}
}

// IsDuplicate reports whether an identical submission was already persisted.
func (d *SubmissionDedup) IsDuplicate(ctx context.Context, email, date string, amount float64) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, date, amount)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records a resolved submission (expires after dedupTTL).
func (d *SubmissionDedup) Mark(ctx context.Context, email, date string, amount float64) error {
	return d.client.Set(ctx, d.key(email, date, amount), "1", dedupTTL).Err()
}

func (d *SubmissionDedup) key(email, date string, amount float64) string {
	return fmt.Sprintf("dedup:bill:%s:%s:%g", email, date, amount)
}
