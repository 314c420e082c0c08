package bitpulse

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// State is the position of a session in its open-to-close sequence.
type State int

const (
	StateUnopened State = iota
	StateOpened
	StateBitBangConfigured
	StateDriving
	StateHeld
	StateCleared
	StateClosed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpened:
		return "opened"
	case StateBitBangConfigured:
		return "bitbang-configured"
	case StateDriving:
		return "driving"
	case StateHeld:
		return "held"
	case StateCleared:
		return "cleared"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Step names one device operation performed by a session.
type Step string

const (
	StepOpen         Step = "open"
	StepReset        Step = "reset"
	StepPurge        Step = "purge"
	StepSetBaudRate  Step = "set-baud-rate"
	StepSetLatency   Step = "set-latency-timer"
	StepSetBitMode   Step = "set-bit-mode"
	StepWrite        Step = "write"
	StepHold         Step = "hold"
	StepClear        Step = "clear"
	StepResetBitMode Step = "reset-bit-mode"
	StepClose        Step = "close"
)

// Outcome classifies how a step ended and whether it aborts the session.
type Outcome int

const (
	OutcomeOK       Outcome = iota
	OutcomeAdvisory         // Failed, reported, sequence continues
	OutcomeFatal            // Failed, sequence tears down and stops
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeAdvisory:
		return "advisory"
	case OutcomeFatal:
		return "fatal"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// StepResult records one performed step.
type StepResult struct {
	Step    Step
	Outcome Outcome
	Status  int // Raw transport status, 0 on success
	Written int // Bytes reported written, write steps only
	Err     error
}

var errNoDevice = errors.New("driver returned no device")

// Session drives one device through open, configure, write, hold, clear and
// close. A session is single-use and not safe for concurrent use.
type Session struct {
	driver  Driver
	config  Config
	log     logrus.FieldLogger
	dev     Device
	state   State
	used    bool
	bitBang bool
	closed  bool
	results []StepResult
}

// NewSession creates a session that will open the device selected by the
// options on Run.
func NewSession(driver Driver, opts ...Option) (*Session, error) {
	if driver == nil {
		return nil, ErrInvalidConfig
	}

	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	return &Session{
		driver: driver,
		config: config,
		log:    config.Logger.WithField("index", config.DeviceIndex),
		state:  StateUnopened,
	}, nil
}

// Pulse runs a single session holding p on the device.
func Pulse(driver Driver, p Pattern, opts ...Option) error {
	s, err := NewSession(driver, opts...)
	if err != nil {
		return err
	}
	return s.Run(p)
}

// Config returns the resolved session configuration.
func (s *Session) Config() Config {
	return s.config
}

// State returns the current protocol state.
func (s *Session) State() State {
	return s.state
}

// Results returns the steps performed so far, in order.
func (s *Session) Results() []StepResult {
	out := make([]StepResult, len(s.results))
	copy(out, s.results)
	return out
}

// Run encodes p, drives it onto the lines for the configured hold and then
// clears the lines and releases the device.
//
// Failures to open, to enter bit-bang mode or to write the pattern are fatal
// and returned wrapping ErrDeviceOpen, ErrBitMode or ErrWrite. Preparation
// steps and the clearing write are advisory: they are logged and recorded
// but never change the result. Once opened the device is closed exactly once
// on every return path.
func (s *Session) Run(p Pattern) error {
	if s.used {
		return ErrSessionUsed
	}
	s.used = true

	out := Encode(p, s.config.Invert)

	dev, err := s.driver.Open(s.config.DeviceIndex)
	if err == nil && dev == nil {
		err = errNoDevice
	}
	if err != nil {
		s.record(StepOpen, OutcomeFatal, err, 0)
		s.state = StateFailed
		return fmt.Errorf("%w: %w", ErrDeviceOpen, err)
	}
	s.dev = dev
	s.state = StateOpened
	s.record(StepOpen, OutcomeOK, nil, 0)
	defer s.teardown()

	s.prepare()

	if err := dev.SetBitMode(OutputMask, BitModeAsyncBitBang); err != nil {
		s.record(StepSetBitMode, OutcomeFatal, err, 0)
		s.state = StateFailed
		return fmt.Errorf("%w: %w", ErrBitMode, err)
	}
	s.bitBang = true
	s.state = StateBitBangConfigured
	s.record(StepSetBitMode, OutcomeOK, nil, 0)

	if err := s.write(StepWrite, out, OutcomeFatal); err != nil {
		s.state = StateFailed
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	s.state = StateDriving

	s.config.Sleeper.Sleep(s.config.Hold)
	s.state = StateHeld
	s.record(StepHold, OutcomeOK, nil, 0)

	// The pulse has been delivered; a failed clear does not fail the session
	_ = s.write(StepClear, 0x00, OutcomeAdvisory)
	s.state = StateCleared

	return nil
}

// prepare conditions the device. None of these steps is load-bearing.
func (s *Session) prepare() {
	s.advisory(StepReset, s.dev.Reset())
	s.advisory(StepPurge, s.dev.Purge(PurgeRX|PurgeTX))
	s.advisory(StepSetBaudRate, s.dev.SetBaudRate(s.config.BaudRate))
	s.advisory(StepSetLatency, s.dev.SetLatencyTimer(s.config.LatencyTimer))
}

// write sends a single byte. A success status with anything other than one
// byte written counts as a failure.
func (s *Session) write(step Step, value byte, onFailure Outcome) error {
	n, err := s.dev.Write([]byte{value})
	status := StatusCode(err)
	if err == nil && n != 1 {
		err = fmt.Errorf("%w: %d of 1 bytes written", ErrShortWrite, n)
	}
	if err != nil {
		s.recordStatus(StepResult{Step: step, Outcome: onFailure, Status: status, Written: n, Err: err})
		return err
	}
	s.recordStatus(StepResult{Step: step, Outcome: OutcomeOK, Written: n})
	return nil
}

// teardown releases the device at most once. Lines are returned to plain mode
// first when bit-bang mode was entered.
func (s *Session) teardown() {
	if s.closed || s.dev == nil {
		return
	}
	s.closed = true

	if s.bitBang {
		s.advisory(StepResetBitMode, s.dev.SetBitMode(0x00, BitModeReset))
	}
	s.advisory(StepClose, s.dev.Close())

	if s.state != StateFailed {
		s.state = StateClosed
	}
}

func (s *Session) advisory(step Step, err error) {
	if err != nil {
		s.record(step, OutcomeAdvisory, err, 0)
		return
	}
	s.record(step, OutcomeOK, nil, 0)
}

func (s *Session) record(step Step, outcome Outcome, err error, written int) {
	s.recordStatus(StepResult{
		Step:    step,
		Outcome: outcome,
		Status:  StatusCode(err),
		Written: written,
		Err:     err,
	})
}

func (s *Session) recordStatus(r StepResult) {
	s.results = append(s.results, r)

	fields := logrus.Fields{"op": string(r.Step), "status": r.Status}
	if r.Step == StepWrite || r.Step == StepClear {
		fields["written"] = r.Written
	}
	entry := s.log.WithFields(fields)

	switch r.Outcome {
	case OutcomeFatal:
		entry.WithError(r.Err).Error("device step failed")
	case OutcomeAdvisory:
		entry.WithError(r.Err).Warn("device step failed, continuing")
	default:
		entry.Debug("device step completed")
	}
}
