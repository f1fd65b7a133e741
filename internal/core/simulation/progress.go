package simulation

import (
	"context"
	"time"
)

// Progress drives the cosmetic "processing" indicator shown while a report
// is prepared. It reports step, 2*step, ... up to 100, one value per
// interval, and returns early with the context error when ctx is done.
// A non-positive interval reports every value immediately.
func Progress(ctx context.Context, interval time.Duration, step int, fn func(percent int)) error {
	if step <= 0 || step > 100 {
		step = 100
	}
	if fn == nil {
		fn = func(int) {}
	}
	if interval <= 0 {
		for pct := step; ; pct += step {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(min(pct, 100))
			if pct >= 100 {
				return nil
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for pct := step; ; pct += step {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(min(pct, 100))
		if pct >= 100 {
			return nil
		}
	}
}
