package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const paymentLockTTL = 30 * time.Second

// PaymentLock guards payment capture per booking with a short-lived SETNX
// key, so concurrent capture calls for the same booking fail fast instead of
// both reaching the store. Key format: paylock:<booking_id>
type PaymentLock struct {
	client *redis.Client
}

// NewPaymentLock creates a PaymentLock wrapping the given Redis client.
func NewPaymentLock(client *redis.Client) *PaymentLock {
	return &PaymentLock{client: client}
}

// Acquire takes the lock for a booking. It returns false when another capture
// currently holds it. The TTL bounds the hold time if Release is never
// reached.
func (l *PaymentLock) Acquire(ctx context.Context, bookingID string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(bookingID), "1", paymentLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("payment lock acquire: %w", err)
	}
	return ok, nil
}

// Release frees the lock. Errors are ignored; the TTL reclaims stale keys.
func (l *PaymentLock) Release(ctx context.Context, bookingID string) {
	l.client.Del(ctx, l.key(bookingID))
}

func (l *PaymentLock) key(bookingID string) string {
	return fmt.Sprintf("paylock:%s", bookingID)
}
