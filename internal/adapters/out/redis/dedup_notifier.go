// Package redis de-duplicates outgoing notifications with a Redis key per
// notification id.
package redis

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	// KeyDedup is dedup:{service}:{notification id}.
	KeyDedup = "dedup:%s:%s"
	TTLDedup = 48 * time.Hour

	dedupService = "notifications"
)

type dedupStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *goredis.BoolCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// DedupNotifier forwards a notification only the first time its id is
// seen. When Redis is unreachable it delivers anyway: a duplicate is
// preferable to a lost notification.
type DedupNotifier struct {
	next  ports.Notifier
	store dedupStore
	ttl   time.Duration
}

func NewDedupNotifier(client *goredis.Client, next ports.Notifier) *DedupNotifier {
	return newDedupNotifier(client, next, TTLDedup)
}

func newDedupNotifier(store dedupStore, next ports.Notifier, ttl time.Duration) *DedupNotifier {
	return &DedupNotifier{next: next, store: store, ttl: ttl}
}

func (d *DedupNotifier) Notify(ctx context.Context, n ports.Notification) error {
	key := fmt.Sprintf(KeyDedup, dedupService, n.ID)

	claimed, err := d.store.SetNX(ctx, key, "1", d.ttl).Result()
	if err != nil {
		return d.next.Notify(ctx, n)
	}
	if !claimed {
		return nil
	}

	if err = d.next.Notify(ctx, n); err != nil {
		// release the claim so a later attempt can deliver
		_ = d.store.Del(ctx, key).Err()
		return err
	}

	return nil
}

// NewClient connects to addr and pings it.
func NewClient(ctx context.Context, addr string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}
