package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotAcquired is returned by TryLock when another holder owns the lock.
var ErrLockNotAcquired = errors.New("redis: lock held by another client")

const (
	unlockScript = `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		else
			return 0
		end
	`
	refreshScript = `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("PEXPIRE", KEYS[1], ARGV[2])
		else
			return 0
		end
	`
)

// LockOptions represents options for distributed locking
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// RefreshInterval is the interval used by AutoRefresh
	RefreshInterval time.Duration
	// LockNamespace is the namespace for organizing locks
	LockNamespace string
}

// NewLockOptions creates a new lock options with default values
func NewLockOptions() *LockOptions {
	return &LockOptions{
		TTL:             30 * time.Second,
		RefreshInterval: 10 * time.Second,
	}
}

// WithTTL sets the lock expiration time
func (lo *LockOptions) WithTTL(ttl time.Duration) *LockOptions {
	if ttl <= 0 {
		panic(fmt.Sprintf("invalid TTL: %v, must be positive", ttl))
	}
	lo.TTL = ttl
	return lo
}

// WithRefreshInterval sets the interval for refreshing the lock
func (lo *LockOptions) WithRefreshInterval(interval time.Duration) *LockOptions {
	if interval <= 0 {
		panic(fmt.Sprintf("invalid refresh interval: %v, must be positive", interval))
	}
	lo.RefreshInterval = interval
	return lo
}

// WithLockNamespace sets the namespace for organizing locks
func (lo *LockOptions) WithLockNamespace(namespace string) *LockOptions {
	lo.LockNamespace = namespace
	return lo
}

// Lock represents a distributed lock
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

// NewLock creates a new distributed lock
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = NewLockOptions()
	}
	return &Lock{
		client: client,
		key:    key,
		value:  uuid.NewString(),
		opts:   opts,
	}
}

// buildLockKey constructs the full lock key using LockNamespace::lockKey format
func (l *Lock) buildLockKey() string {
	if l.opts.LockNamespace != "" {
		return l.opts.LockNamespace + "::" + l.key
	}
	return l.key
}

// TryLock makes a single attempt to acquire the lock.
func (l *Lock) TryLock(ctx context.Context) error {
	acquired, err := l.client.SetNX(ctx, l.buildLockKey(), l.value, l.opts.TTL)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return ErrLockNotAcquired
	}
	return nil
}

// Unlock releases the lock if this client still holds it
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.Eval(ctx, unlockScript, []string{l.buildLockKey()}, l.value)
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if n, ok := result.(int64); !ok || n == 0 {
		return fmt.Errorf("lock was not held by this client")
	}
	return nil
}

// Refresh extends the lock's TTL
func (l *Lock) Refresh(ctx context.Context) error {
	result, err := l.client.Eval(ctx, refreshScript, []string{l.buildLockKey()}, l.value, l.opts.TTL.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if n, ok := result.(int64); !ok || n == 0 {
		return fmt.Errorf("lock was not held by this client")
	}
	return nil
}

// AutoRefresh keeps the lock alive until ctx is done or a refresh fails.
// The returned channel receives exactly one value.
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(l.opts.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- nil
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}
