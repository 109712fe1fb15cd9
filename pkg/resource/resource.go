package resource

import (
	"context"
	"sync"

	"github.com/shophub/shopkit/pkg/apiclient"
)

// Status is the lifecycle state of a domain's most recent request.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

// String implements fmt.Stringer
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of a domain's state: the current data plus
// the status and error of the most recent request.
type Snapshot[T any] struct {
	Data   T
	Status Status
	Err    string
}

// Tracker records request status and error for one domain. It carries no
// locking of its own; the owning domain store guards it with its mutex.
type Tracker struct {
	status Status
	err    string
}

// Begin marks the domain Pending and clears any stale error.
func (t *Tracker) Begin() {
	t.status = StatusPending
	t.err = ""
}

// Succeed marks the domain Succeeded.
func (t *Tracker) Succeed() {
	t.status = StatusSucceeded
}

// Fail marks the domain Failed with a user-visible message.
func (t *Tracker) Fail(msg string) {
	t.status = StatusFailed
	t.err = msg
}

// ClearError drops the captured failure message without touching status or
// data, for dismissing a transient error display.
func (t *Tracker) ClearError() {
	t.err = ""
}

// Status returns the current lifecycle state.
func (t *Tracker) Status() Status {
	return t.status
}

// Err returns the captured failure message, empty unless Failed.
func (t *Tracker) Err() string {
	return t.err
}

// Run drives one request through the domain's state machine. mu guards both
// the tracker and whatever state apply mutates. The call itself runs outside
// the lock so overlapping requests against the same domain are never
// serialized; their apply steps are, which is what makes each state
// transition atomic. On failure the tracker message is derived from the
// transport error with fallback, the domain's data is left untouched, and
// the original error is returned to the caller.
func Run[T any](ctx context.Context, mu *sync.Mutex, tracker *Tracker, fallback string,
	call func(ctx context.Context) (T, error), apply func(T),
) error {
	mu.Lock()
	tracker.Begin()
	mu.Unlock()

	payload, err := call(ctx)

	mu.Lock()
	defer mu.Unlock()

	if err != nil {
		tracker.Fail(apiclient.ErrorMessage(err, fallback))
		return err
	}

	apply(payload)
	tracker.Succeed()
	return nil
}
