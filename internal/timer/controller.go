// Package timer drives a session.Session from a one-second ticker and
// serializes every change to it through a single loop goroutine.
package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"taskpomodoro/internal/notify"
	"taskpomodoro/internal/session"
	"taskpomodoro/internal/sound"
)

// ErrStopped is returned by commands sent after Run has returned.
var ErrStopped = errors.New("timer controller stopped")

// Snapshot is a copy of the controller state for display.
type Snapshot struct {
	Phase                session.Phase
	ElapsedWorkSeconds   int
	RestRemainingSeconds int
	// RestStarted is set once the rest countdown has been started.
	RestStarted bool
	// Running reports whether the ticker is counting.
	Running bool
}

type Player interface {
	Play(c sound.Cue) error
}

// TickerFunc starts a ticker and returns its channel and stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func systemTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

type Options struct {
	Notifier            notify.Notifier
	Player              Player
	HourlyNotifications bool

	// OnChange and OnRestComplete run on the loop goroutine and must not
	// call back into the Controller.
	OnChange       func(Snapshot)
	OnRestComplete func()

	Logger *slog.Logger
	Ticker TickerFunc
}

type command struct {
	fn    func() error
	reply chan error
}

// Controller owns one Session. All methods except Run block until the
// loop has applied them, so Run must be running.
type Controller struct {
	opts Options
	log  *slog.Logger
	cmds chan command
	done chan struct{}

	// Owned by the loop goroutine.
	sess        *session.Session
	restStarted bool
	restRunning bool
}

func New(opts Options) *Controller {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Ticker == nil {
		opts.Ticker = systemTicker
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		opts: opts,
		log:  logger,
		cmds: make(chan command),
		done: make(chan struct{}),
		sess: session.New(),
	}
}

// Run processes commands and ticks until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	defer close(c.done)

	var (
		tickC    <-chan time.Time
		stopTick func()
	)
	defer func() {
		if stopTick != nil {
			stopTick()
		}
	}()

	for {
		switch counting := c.counting(); {
		case counting && tickC == nil:
			tickC, stopTick = c.opts.Ticker(time.Second)
		case !counting && tickC != nil:
			stopTick()
			tickC, stopTick = nil, nil
		}

		select {
		case <-ctx.Done():
			return nil
		case cmd := <-c.cmds:
			cmd.reply <- cmd.fn()
		case <-tickC:
			c.tick()
		}
	}
}

func (c *Controller) StartWork() error {
	return c.apply(c.sess.StartWork)
}

func (c *Controller) PauseWork() error {
	return c.apply(c.sess.PauseWork)
}

// BeginRest switches to the rest countdown, which waits for StartRest.
func (c *Controller) BeginRest() error {
	return c.apply(func() error {
		if err := c.sess.BeginRest(); err != nil {
			return err
		}
		c.restStarted, c.restRunning = false, false
		return nil
	})
}

func (c *Controller) StartRest() error {
	return c.apply(func() error {
		if c.sess.Phase() != session.Resting || c.restStarted {
			return fmt.Errorf("start rest while %s: %w", c.sess.Phase(), session.ErrInvalidTransition)
		}
		c.restStarted, c.restRunning = true, true
		return nil
	})
}

// TogglePause pauses or resumes whichever countdown is active and reports
// whether it is now paused. Pausing rest only holds the ticker.
func (c *Controller) TogglePause() (paused bool, err error) {
	err = c.apply(func() error {
		switch c.sess.Phase() {
		case session.Working:
			paused = true
			return c.sess.PauseWork()
		case session.Paused:
			return c.sess.StartWork()
		case session.Resting:
			if !c.restStarted {
				break
			}
			c.restRunning = !c.restRunning
			paused = !c.restRunning
			return nil
		}
		return fmt.Errorf("toggle pause while %s: %w", c.sess.Phase(), session.ErrInvalidTransition)
	})
	return paused, err
}

// Stop resets the session to Idle.
func (c *Controller) Stop() error {
	return c.apply(func() error {
		c.reset()
		return nil
	})
}

func (c *Controller) Snapshot() (Snapshot, error) {
	var snap Snapshot
	err := c.do(func() error {
		snap = c.snapshot()
		return nil
	})
	return snap, err
}

func (c *Controller) do(fn func() error) error {
	reply := make(chan error, 1)
	select {
	case c.cmds <- command{fn: fn, reply: reply}:
	case <-c.done:
		return ErrStopped
	}
	return <-reply
}

// apply runs fn on the loop and publishes a snapshot if it succeeded.
func (c *Controller) apply(fn func() error) error {
	return c.do(func() error {
		if err := fn(); err != nil {
			return err
		}
		c.publish()
		return nil
	})
}

func (c *Controller) counting() bool {
	switch c.sess.Phase() {
	case session.Working:
		return true
	case session.Resting:
		return c.restRunning
	}
	return false
}

func (c *Controller) reset() {
	c.sess.Stop()
	c.restStarted, c.restRunning = false, false
}

func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		Phase:                c.sess.Phase(),
		ElapsedWorkSeconds:   c.sess.ElapsedWorkSeconds(),
		RestRemainingSeconds: c.sess.RestRemainingSeconds(),
		RestStarted:          c.restStarted,
		Running:              c.counting(),
	}
}

func (c *Controller) publish() {
	if c.opts.OnChange != nil {
		c.opts.OnChange(c.snapshot())
	}
}

func (c *Controller) tick() {
	res := c.sess.Tick()

	if res.Hour > 0 && c.opts.HourlyNotifications {
		c.log.Info("work hour reached", "hours", res.Hour)
		c.alert(notify.HourlyUpdate(res.Hour), sound.CueHour)
	}

	if res.RestComplete {
		c.log.Info("rest complete")
		c.alert(notify.RestComplete(), sound.CueRestComplete)
		c.reset()
		c.publish()
		if c.opts.OnRestComplete != nil {
			c.opts.OnRestComplete()
		}
		return
	}

	c.publish()
}

// alert sends m and plays cue off the loop goroutine. Failures are logged
// and otherwise ignored.
func (c *Controller) alert(m notify.Message, cue sound.Cue) {
	n, p := c.opts.Notifier, c.opts.Player
	go func() {
		if err := notify.Send(n, m); err != nil {
			c.log.Debug("notification not delivered", "title", m.Title, "error", err)
		}
		if p == nil {
			return
		}
		if err := p.Play(cue); err != nil {
			c.log.Debug("chime not played", "error", err)
		}
	}()
}
