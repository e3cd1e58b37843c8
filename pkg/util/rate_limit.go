package util

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// ShouldDelay reserves a token from the limiter and returns how long the
// caller should sleep before proceeding. Zero means the action may run now.
func ShouldDelay(l *rate.Limiter) time.Duration {
	return l.Reserve().Delay()
}

func NewValidLimiter(r rate.Limit, b int) (*rate.Limiter, error) {
	if b <= 0 || r <= 0 {
		return nil, fmt.Errorf("invalid rate limiter config (rate=%f, burst=%d)", r, b)
	}
	return rate.NewLimiter(r, b), nil
}
