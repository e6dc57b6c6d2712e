package utils

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter controls the rate of command execution per user and command
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	perMin   int
	mu       sync.Mutex
}

// NewRateLimiter allows perMinute invocations per user and command, with the
// whole minute's allowance available as a burst. Zero disables limiting.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		perMin:   perMinute,
	}
}

func (rl *RateLimiter) limiter(userID, command string) *rate.Limiter {
	key := userID + ":" + command
	l, ok := rl.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMin)), rl.perMin)
		rl.limiters[key] = l
	}
	return l
}

// Allow checks if a user is allowed to execute a command
func (rl *RateLimiter) Allow(userID, command string) bool {
	if rl == nil || rl.perMin <= 0 {
		return true
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.limiter(userID, command).Allow()
}

// RetryAfter returns how long the user has to wait for the next token
func (rl *RateLimiter) RetryAfter(userID, command string) time.Duration {
	if rl == nil || rl.perMin <= 0 {
		return 0
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()

	r := rl.limiter(userID, command).Reserve()
	defer r.Cancel()
	return r.Delay()
}
