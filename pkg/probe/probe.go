package probe

import (
	"context"
	"errors"
	"fmt"
)

// Prober reports whether an address answered a single reachability probe.
// Any failure to probe counts as unreachable.
type Prober interface {
	Probe(ctx context.Context, address string) bool
}

// ProberFunc adapts a plain function to Prober.
type ProberFunc func(ctx context.Context, address string) bool

// Probe calls f(ctx, address).
func (f ProberFunc) Probe(ctx context.Context, address string) bool {
	return f(ctx, address)
}

// ErrUnsupportedPlatform is wrapped by PlatformError.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// PlatformError is returned when no ping invocation is known for the host.
type PlatformError struct {
	Platform string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("undefined system %q: don't know how to invoke ping", e.Platform)
}

func (e *PlatformError) Unwrap() error {
	return ErrUnsupportedPlatform
}
