package etl

import "context"

// ── Source ──────────────────────────────────────────────────
// A Source fetches the raw payload behind one API endpoint.
// The HTTP implementation lives in etl/sources/.

// Source is the interface every payload source must implement.
type Source interface {
	// Fetch returns the decoded payload for endpoint. Any failure is
	// fatal to the run; implementations do not retry.
	Fetch(ctx context.Context, endpoint string) (any, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context, endpoint string) (any, error)

func (f SourceFunc) Fetch(ctx context.Context, endpoint string) (any, error) {
	return f(ctx, endpoint)
}
