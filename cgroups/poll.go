package cgroups

import (
	"context"

	"golang.org/x/time/rate"
)

// newPoller returns the limiter pacing a wait loop: one poll per
// PollInterval, where zero polls as fast as possible.
func (c *Config) newPoller() *rate.Limiter {
	return rate.NewLimiter(rate.Every(c.PollInterval), 1)
}

// pollTick blocks until the next poll is due. When the context
// carries a deadline the limiter refuses a tick that would land past
// it and reports that with its own error value, not the context's;
// map it back so errors.Is(err, context.DeadlineExceeded) holds for
// callers either way.
func pollTick(ctx context.Context, lim *rate.Limiter) error {
	if err := lim.Wait(ctx); err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		return context.DeadlineExceeded
	}
	return nil
}
