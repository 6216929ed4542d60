package timer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Source delivers ticks. Stop releases it.
type Source interface {
	C() <-chan time.Time
	Stop()
}

// ErrSourceClosed is returned when a tick source closes before the
// countdown finishes.
var ErrSourceClosed = errors.New("timer: tick source closed")

type ticker struct {
	t *time.Ticker
}

// NewTicker is a wall-clock Source ticking every d.
func NewTicker(d time.Duration) Source {
	return &ticker{t: time.NewTicker(d)}
}

func (t *ticker) C() <-chan time.Time {
	return t.t.C
}

func (t *ticker) Stop() {
	t.t.Stop()
}

// Run advances c once per tick from src until it is done, cancelled or
// superseded by another Start, or ctx ends. src is stopped on every return
// path. onTick, when set, sees each snapshot after a tick.
func Run(ctx context.Context, c *Countdown, src Source, onTick func(Snapshot)) error {
	defer src.Stop()

	gen := c.Generation()
	for {
		if c.Generation() != gen {
			return nil
		}
		if snap := c.Snapshot(); snap.State != Running {
			return nil
		}
		select {
		case <-ctx.Done():
			if c.Generation() == gen {
				c.Cancel()
			}
			return ctx.Err()
		case _, ok := <-src.C():
			if !ok {
				return ErrSourceClosed
			}
			if c.Generation() != gen {
				return nil
			}
			snap := c.Tick()
			if onTick != nil {
				onTick(snap)
			}
		}
	}
}

// Format renders seconds as m:ss.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
