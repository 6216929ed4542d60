package timer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownRunsToDone(t *testing.T) {
	var c Countdown
	c.Start(1)
	for i := 0; i < 60; i++ {
		assert.False(t, c.IsDone(), "done early at tick %d", i)
		c.Tick()
	}
	remaining, ok := c.Remaining()
	require.True(t, ok)
	assert.Equal(t, 0, remaining)
	assert.True(t, c.IsDone())

	// Further ticks do nothing.
	snap := c.Tick()
	assert.Equal(t, Snapshot{State: Done}, snap)
}

func TestCountdownCancel(t *testing.T) {
	var c Countdown
	c.Start(1)
	c.Tick()
	c.Cancel()

	_, ok := c.Remaining()
	assert.False(t, ok)
	assert.False(t, c.IsDone())
	assert.Equal(t, Idle, c.Snapshot().State)
}

func TestCountdownIdleByDefault(t *testing.T) {
	var c Countdown
	_, ok := c.Remaining()
	assert.False(t, ok)
	c.Tick()
	assert.Equal(t, Idle, c.Snapshot().State)
}

func TestCountdownRestartReplaces(t *testing.T) {
	var c Countdown
	c.Start(5)
	c.Tick()
	c.Start(2)
	remaining, ok := c.Remaining()
	require.True(t, ok)
	assert.Equal(t, 120, remaining)
}

func TestCountdownZeroMinutes(t *testing.T) {
	var c Countdown
	c.Start(0)
	assert.True(t, c.IsDone())
}

type fakeSource struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{ch: make(chan time.Time, 1)}
}

func (f *fakeSource) C() <-chan time.Time { return f.ch }

func (f *fakeSource) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSource) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

func TestRunStopsSourceOnCompletion(t *testing.T) {
	var c Countdown
	c.Start(1)
	src := newFakeSource()

	ticks := 0
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), &c, src, func(Snapshot) { ticks++ })
	}()
	for i := 0; i < 60; i++ {
		src.ch <- time.Now()
	}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the countdown finished")
	}
	assert.Equal(t, 60, ticks)
	assert.True(t, c.IsDone())
	assert.True(t, src.isStopped())
}

func TestRunStopsSourceOnContextCancel(t *testing.T) {
	var c Countdown
	c.Start(1)
	src := newFakeSource()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, &c, src, nil) }()
	src.ch <- time.Now()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.True(t, src.isStopped())
	_, ok := c.Remaining()
	assert.False(t, ok)
}

func TestRunReturnsWhenCancelledExplicitly(t *testing.T) {
	var c Countdown
	c.Start(1)
	src := newFakeSource()

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), &c, src, nil) }()
	c.Cancel()
	// The next tick notices the cancel.
	src.ch <- time.Now()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Cancel")
	}
	assert.True(t, src.isStopped())
	_, ok := c.Remaining()
	assert.False(t, ok)
}

func TestRunSourceClosed(t *testing.T) {
	var c Countdown
	c.Start(1)
	src := newFakeSource()
	close(src.ch)
	assert.ErrorIs(t, Run(context.Background(), &c, src, nil), ErrSourceClosed)
	assert.True(t, src.isStopped())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "10:00", Format(600))
	assert.Equal(t, "0:09", Format(9))
	assert.Equal(t, "0:00", Format(-3))
}
