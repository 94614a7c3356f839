package report

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/fpkit/pkg/fp/guard"
)

// Failure is one reported failure.
type Failure[T any] struct {
	ID    uuid.UUID
	At    time.Time
	Input T
	Err   error
}

// Recorder keeps every failure passed to its callback.
type Recorder[T any] struct {
	mu       sync.Mutex
	failures []Failure[T]
}

func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

func (r *Recorder[T]) Callback() guard.OnFailure[T] {
	return r.record
}

func (r *Recorder[T]) record(in T, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failures = append(r.failures, Failure[T]{
		ID:    uuid.New(),
		At:    time.Now().UTC(),
		Input: in,
		Err:   err,
	})
}

// Failures returns a copy of the recorded failures in arrival order.
func (r *Recorder[T]) Failures() []Failure[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Failure[T], len(r.failures))
	copy(out, r.failures)
	return out
}

func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failures)
}

func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = nil
}

// Log writes each failure as a warning with the input and error attached.
// A nil logger falls back to zap.L().
func Log[T any](logger *zap.Logger, msg string) guard.OnFailure[T] {
	return func(in T, err error) {
		l := logger
		if l == nil {
			l = zap.L()
		}
		l.Warn(msg, zap.Any("input", in), zap.Error(err))
	}
}

// Tee calls every non-nil callback in order.
func Tee[T any](callbacks ...guard.OnFailure[T]) guard.OnFailure[T] {
	return func(in T, err error) {
		for _, cb := range callbacks {
			if cb != nil {
				cb(in, err)
			}
		}
	}
}

func Nop[T any]() guard.OnFailure[T] {
	return func(T, error) {}
}
