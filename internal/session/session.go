// Package session holds the work/rest timer state and the rest rule.
package session

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation is not allowed from
// the session's current phase.
var ErrInvalidTransition = errors.New("invalid phase transition")

type Phase int

const (
	Idle Phase = iota
	Working
	Paused
	Resting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Working:
		return "working"
	case Paused:
		return "paused"
	case Resting:
		return "resting"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// TickResult reports the one-time events produced by a single Tick.
type TickResult struct {
	// Hour is the whole work hour just reached, or 0.
	Hour int
	// RestComplete is set on the tick that brings the rest countdown to 0.
	RestComplete bool
}

// Session is a single work/rest cycle. The zero value is an Idle session.
//
// Elapsed work only grows while Working. The rest countdown is fixed from
// the elapsed work when rest begins and only shrinks afterwards.
type Session struct {
	phase            Phase
	elapsedWork      int
	restRemaining    int
	lastHourNotified int
}

func New() *Session {
	return &Session{}
}

func (s *Session) Phase() Phase { return s.phase }

// ElapsedWorkSeconds returns the seconds counted while Working.
func (s *Session) ElapsedWorkSeconds() int { return s.elapsedWork }

// RestRemainingSeconds returns what is left of the rest countdown.
func (s *Session) RestRemainingSeconds() int { return s.restRemaining }

// StartWork starts or resumes counting work time.
func (s *Session) StartWork() error {
	if s.phase != Idle && s.phase != Paused {
		return s.invalid("start work")
	}
	s.phase = Working
	return nil
}

// PauseWork holds the work count without resetting it.
func (s *Session) PauseWork() error {
	if s.phase != Working {
		return s.invalid("pause work")
	}
	s.phase = Paused
	return nil
}

// BeginRest fixes the rest countdown from the elapsed work and enters
// Resting.
func (s *Session) BeginRest() error {
	if s.phase != Working && s.phase != Paused {
		return s.invalid("begin rest")
	}
	s.restRemaining = ComputeRestSeconds(s.elapsedWork)
	s.phase = Resting
	return nil
}

// Stop returns the session to Idle from any phase.
func (s *Session) Stop() {
	*s = Session{}
}

// Tick advances the session by one second.
func (s *Session) Tick() TickResult {
	var res TickResult
	switch s.phase {
	case Working:
		s.elapsedWork++
		if hour := s.elapsedWork / 3600; hour > s.lastHourNotified {
			s.lastHourNotified = hour
			res.Hour = hour
		}
	case Resting:
		if s.restRemaining > 0 {
			s.restRemaining--
			res.RestComplete = s.restRemaining == 0
		}
	}
	return res
}

func (s *Session) invalid(op string) error {
	return fmt.Errorf("%s while %s: %w", op, s.phase, ErrInvalidTransition)
}
