// Package ticker emits the current wall-clock time at a fixed cadence for
// the clock face to consume.
package ticker

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/iburimskiy/gauge/internal/clock"
)

var (
	// ErrAlreadyStarted is returned by Start on a running ticker.
	ErrAlreadyStarted = errors.New("ticker already started")
	// ErrStopped is returned by Start once the ticker has been stopped.
	ErrStopped = errors.New("ticker stopped")
)

// Ticker is a one-shot periodic time source. It is started once, emits
// timestamps until Stop, and cannot be restarted.
//
// The output channel holds at most one pending value. A consumer that falls
// behind receives the next tick late; intermediate ticks are skipped rather
// than queued.
type Ticker struct {
	clk      clock.Clock
	interval time.Duration
	logger   *log.Logger

	mu      sync.Mutex
	started bool
	stopped bool

	out  chan time.Time
	stop chan struct{}
	done chan struct{}
}

// Option configures a Ticker.
type Option func(*Ticker)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(t *Ticker) {
		t.logger = l
	}
}

// New returns a stopped ticker that will tick every interval on clk.
func New(clk clock.Clock, interval time.Duration, opts ...Option) (*Ticker, error) {
	if clk == nil {
		return nil, errors.New("ticker: nil clock")
	}
	if interval <= 0 {
		return nil, errors.Errorf("ticker: interval must be positive, got %s", interval)
	}
	t := &Ticker{
		clk:      clk,
		interval: interval,
		logger:   log.New(io.Discard),
		out:      make(chan time.Time, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Interval returns the configured tick period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// C returns the channel timestamps are delivered on. It is closed by Stop.
func (t *Ticker) C() <-chan time.Time {
	return t.out
}

// Start begins emitting and returns the delivery channel.
func (t *Ticker) Start() (<-chan time.Time, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return nil, ErrStopped
	}
	if t.started {
		return nil, ErrAlreadyStarted
	}
	t.started = true

	// Created here rather than in run so clock ticks are armed before Start
	// returns.
	src := t.clk.NewTicker(t.interval)
	go t.run(src)
	t.logger.Debug("ticker started", "interval", t.interval)
	return t.out, nil
}

func (t *Ticker) run(src clock.Ticker) {
	defer close(t.done)
	defer src.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-src.C():
			select {
			case t.out <- t.clk.Now():
			case <-t.stop:
				return
			}
		}
	}
}

// Stop cancels the schedule. It is safe to call more than once and on a
// ticker that was never started. After Stop returns the channel yields no
// further timestamps.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	close(t.stop)
	if t.started {
		<-t.done
	}
	// Drop a tick that was delivered but never read.
	select {
	case <-t.out:
	default:
	}
	close(t.out)
	t.logger.Debug("ticker stopped")
}
