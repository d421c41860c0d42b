// Package ratelimit throttles manual publishes per project and per client IP.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Reason says which limit rejected a publish.
type Reason string

const (
	ReasonCooldown      Reason = "cooldown"
	ReasonProjectHourly Reason = "project_hourly_limit"
	ReasonIPHourly      Reason = "ip_hourly_limit"
)

// Config sets the limits. A zero hourly cap disables that cap; a zero cooldown lets a
// project republish immediately.
type Config struct {
	Cooldown     time.Duration
	MaxPerHour   int
	MaxIPPerHour int

	Clock Clock
}

type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	Reason     Reason
}

// bucket counts publishes in the hour that started at start.
type bucket struct {
	start time.Time
	last  time.Time
	n     int
}

func (b *bucket) live(now time.Time) bool { return now.Sub(b.start) < time.Hour }

func (b *bucket) full(now time.Time, limit int) (time.Duration, bool) {
	if limit <= 0 || !b.live(now) || b.n < limit {
		return 0, false
	}
	return b.start.Add(time.Hour).Sub(now), true
}

// sweepEvery bounds how long idle buckets stay in memory.
const sweepEvery = 10 * time.Minute

type Limiter struct {
	cfg   Config
	clock Clock

	mu        sync.Mutex
	projects  map[string]*bucket
	ips       map[string]*bucket
	lastSweep time.Time
}

func New(cfg Config) *Limiter {
	clock := cfg.Clock
	if clock == nil {
		clock = systemClock{}
	}
	return &Limiter{
		cfg:       cfg,
		clock:     clock,
		projects:  make(map[string]*bucket),
		ips:       make(map[string]*bucket),
		lastSweep: clock.Now(),
	}
}

// Allow reports whether projectID may be published from ip now. Nothing is counted until
// Record is called for a publish that went through.
func (l *Limiter) Allow(projectID, ip string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if b := l.projects[projectID]; b != nil {
		if wait := l.cfg.Cooldown - now.Sub(b.last); wait > 0 {
			return Decision{RetryAfter: wait, Reason: ReasonCooldown}
		}
		if wait, full := b.full(now, l.cfg.MaxPerHour); full {
			return Decision{RetryAfter: wait, Reason: ReasonProjectHourly}
		}
	}
	if b := l.ips[ip]; b != nil {
		if wait, full := b.full(now, l.cfg.MaxIPPerHour); full {
			return Decision{RetryAfter: wait, Reason: ReasonIPHourly}
		}
	}
	return Decision{Allowed: true}
}

func (l *Limiter) Record(projectID, ip string) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	count(l.projects, projectID, now)
	count(l.ips, ip, now)
	if now.Sub(l.lastSweep) >= sweepEvery {
		l.sweep(now)
	}
}

func count(buckets map[string]*bucket, key string, now time.Time) {
	b := buckets[key]
	if b == nil || !b.live(now) {
		b = &bucket{start: now}
		buckets[key] = b
	}
	b.n++
	b.last = now
}

// sweep drops buckets with no publish in the last hour. Callers hold l.mu.
func (l *Limiter) sweep(now time.Time) {
	for _, buckets := range [...]map[string]*bucket{l.projects, l.ips} {
		for key, b := range buckets {
			if now.Sub(b.last) > time.Hour {
				delete(buckets, key)
			}
		}
	}
	l.lastSweep = now
}

// LogRejected records a throttled publish on the request logger.
func LogRejected(ctx context.Context, projectID, ip string, d Decision) {
	log.Ctx(ctx).Warn().
		Str("event", "rate_limit_exceeded").
		Str("project_id", projectID).
		Str("ip", ip).
		Str("reason", string(d.Reason)).
		Dur("retry_after", d.RetryAfter).
		Msg("Publish rate limit exceeded")
}
