package authhandlers

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Editor clients idle longer than clientIdleTTL lose their bucket. The map
// is swept at most once per sweepInterval, on the request path.
const (
	clientIdleTTL = 10 * time.Minute
	sweepInterval = time.Minute
)

type clientBucket struct {
	tokens   *rate.Limiter
	lastUsed time.Time
}

// ClientLimiter hands out one token bucket per client address.
type ClientLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*clientBucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewClientLimiter(limit rate.Limit, burst int) *ClientLimiter {
	return &ClientLimiter{
		buckets: map[string]*clientBucket{},
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow spends one token from the client's bucket.
func (c *ClientLimiter) Allow(client string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.lastSweep) >= sweepInterval {
		c.sweep(now)
	}

	b, ok := c.buckets[client]
	if !ok {
		b = &clientBucket{tokens: rate.NewLimiter(c.limit, c.burst)}
		c.buckets[client] = b
	}
	b.lastUsed = now
	return b.tokens.AllowN(now, 1)
}

// Clients reports how many addresses currently hold a bucket.
func (c *ClientLimiter) Clients() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buckets)
}

func (c *ClientLimiter) sweep(now time.Time) {
	for client, b := range c.buckets {
		if now.Sub(b.lastUsed) > clientIdleTTL {
			delete(c.buckets, client)
		}
	}
	c.lastSweep = now
}
