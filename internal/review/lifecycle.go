package review

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Phases of a single review attempt.
const (
	PhaseIdle       = "idle"
	PhaseValidating = "validating"
	PhaseLoading    = "loading"
	PhaseSuccess    = "success"
	PhaseError      = "error"
)

// Events accepted by the lifecycle machine.
const (
	EventTrigger = "trigger"
	EventValid   = "valid"
	EventInvalid = "invalid"
	EventSucceed = "succeed"
	EventFail    = "fail"
	EventReset   = "reset"
)

type lifecycleContext struct{}

// Lifecycle enforces the review request state machine. Triggering while a
// request is loading is not a representable transition, which is what keeps
// at most one request in flight.
type Lifecycle struct {
	interpreter *statekit.Interpreter[lifecycleContext]
}

// NewLifecycle builds the machine in the idle phase.
func NewLifecycle() (*Lifecycle, error) {
	builder := statekit.NewMachine[lifecycleContext]("review-lifecycle").
		WithInitial(statekit.StateID(PhaseIdle)).
		WithContext(lifecycleContext{})

	builder.State(PhaseIdle).
		On(EventTrigger).Target(PhaseValidating).
		Done()

	builder.State(PhaseValidating).
		On(EventValid).Target(PhaseLoading).
		On(EventInvalid).Target(PhaseError).
		Done()

	builder.State(PhaseLoading).
		On(EventSucceed).Target(PhaseSuccess).
		On(EventFail).Target(PhaseError).
		Done()

	builder.State(PhaseSuccess).
		On(EventTrigger).Target(PhaseValidating).
		Done()

	builder.State(PhaseError).
		On(EventTrigger).Target(PhaseValidating).
		On(EventReset).Target(PhaseIdle).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build review lifecycle: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &Lifecycle{interpreter: interpreter}, nil
}

// Send attempts a transition. If the event is not valid for the current
// phase the phase is unchanged and an error is returned.
func (l *Lifecycle) Send(event string) error {
	before := l.Current()
	l.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	if l.Current() != before {
		return nil
	}
	return fmt.Errorf("event %q is not allowed in phase %q", event, before)
}

// Current returns the current phase.
func (l *Lifecycle) Current() string {
	return string(l.interpreter.State().Value)
}

// CanTrigger reports whether a new review may be started: true in every
// phase except validating and loading.
func (l *Lifecycle) CanTrigger() bool {
	switch l.Current() {
	case PhaseIdle, PhaseSuccess, PhaseError:
		return true
	default:
		return false
	}
}
