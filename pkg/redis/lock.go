package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockHeld is returned by TryLock when another owner holds the lock.
var ErrLockHeld = errors.New("lock is held by another owner")

const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

// Lock represents a distributed lock identified by namespace::key
type Lock struct {
	client *Client
	key    string
	value  string
	ttl    time.Duration
}

// NewLock creates a new distributed lock that expires after ttl if never released
func NewLock(client *Client, namespace, key string, ttl time.Duration) *Lock {
	if namespace != "" {
		key = namespace + "::" + key
	}
	return &Lock{
		client: client,
		key:    key,
		value:  uuid.NewString(),
		ttl:    ttl,
	}
}

// TryLock makes a single acquisition attempt
func (l *Lock) TryLock(ctx context.Context) error {
	acquired, err := l.client.SetNX(ctx, l.key, l.value, l.ttl)
	if err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", l.key, err)
	}
	if !acquired {
		return ErrLockHeld
	}
	return nil
}

// Unlock releases the lock when this owner still holds it
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.Eval(ctx, unlockScript, []string{l.key}, l.value)
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.key, err)
	}
	if released, ok := result.(int64); !ok || released == 0 {
		return fmt.Errorf("lock %s was not held by this owner", l.key)
	}
	return nil
}

// WithLock runs fn while holding the lock. ErrLockHeld is returned without running fn
// when another owner holds it.
func WithLock(ctx context.Context, lock *Lock, fn func(ctx context.Context) error) error {
	if err := lock.TryLock(ctx); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock(context.WithoutCancel(ctx)) }()

	return fn(ctx)
}
