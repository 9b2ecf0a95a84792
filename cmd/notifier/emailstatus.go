package main

import (
	"context"
	"sync"
	"time"

	"github.com/wizdesk/notify/pkg/notifier"
)

// connectionCache serves the last TestConnection result for ttl so that
// polling /health/email does not send a real email on every hit.
// Concurrent callers wait for a single in-flight check.
type connectionCache struct {
	check func(context.Context) notifier.ConnectionStatus
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	status    notifier.ConnectionStatus
	checkedAt time.Time
}

// newConnectionCache wraps check. A non-positive ttl disables caching.
func newConnectionCache(check func(context.Context) notifier.ConnectionStatus, ttl time.Duration) *connectionCache {
	return &connectionCache{check: check, ttl: ttl, now: time.Now}
}

func (c *connectionCache) Status(ctx context.Context) notifier.ConnectionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ttl > 0 && !c.checkedAt.IsZero() && c.now().Sub(c.checkedAt) < c.ttl {
		return c.status
	}
	c.status = c.check(ctx)
	c.checkedAt = c.now()
	return c.status
}
