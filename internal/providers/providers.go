package providers

import (
	"context"
	"errors"

	"macrodata/internal/model"
)

// ErrInvalidRequest marks malformed or empty input to an adapter, detected
// before any network round trip.
var ErrInvalidRequest = errors.New("providers: invalid request")

// Source is one named pull producing a single table. The orchestrator
// sequences Sources and treats each as an independent unit of failure.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (model.Table, error)
}

type sourceFunc struct {
	name string
	fn   func(ctx context.Context) (model.Table, error)
}

func (s sourceFunc) Name() string {
	return s.name
}

func (s sourceFunc) Fetch(ctx context.Context) (model.Table, error) {
	return s.fn(ctx)
}

// NewSource binds a name to a pull function.
func NewSource(name string, fn func(ctx context.Context) (model.Table, error)) Source {
	return sourceFunc{name: name, fn: fn}
}
