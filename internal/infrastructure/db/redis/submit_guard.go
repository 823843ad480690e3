package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const submitGuardTTL = 2 * time.Minute

// SubmitGuard detects replayed reservation form submissions, backed by Redis.
// Key format: submit:<catway_number>:<client_name>:<check_in_unix>
type SubmitGuard struct {
	client *redis.Client
}

// NewSubmitGuard creates a SubmitGuard wrapping the given Redis client.
func NewSubmitGuard(client *redis.Client) *SubmitGuard {
	return &SubmitGuard{client: client}
}

// Seen reports whether an identical submission was recorded within the window.
func (g *SubmitGuard) Seen(ctx context.Context, catwayNumber int, clientName string, checkIn time.Time) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(catwayNumber, clientName, checkIn)).Result()
	if err != nil {
		return false, fmt.Errorf("submit guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records a submission (expires after submitGuardTTL).
func (g *SubmitGuard) Mark(ctx context.Context, catwayNumber int, clientName string, checkIn time.Time) error {
	return g.client.Set(ctx, g.key(catwayNumber, clientName, checkIn), "1", submitGuardTTL).Err()
}

func (g *SubmitGuard) key(catwayNumber int, clientName string, checkIn time.Time) string {
	return fmt.Sprintf("submit:%d:%s:%d", catwayNumber, clientName, checkIn.Unix())
}
