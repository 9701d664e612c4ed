package lock

import (
	"context"
	"errors"
)

// ErrLocked is returned when another holder owns the key.
var ErrLocked = errors.New("lock already held")

// Locker grants exclusive ownership of a key. The returned release func
// must be called once the critical section is over.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Noop grants every request. Callers are not serialized.
type Noop struct{}

func (Noop) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}
