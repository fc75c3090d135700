package config

import "context"

// Loader reads ability files from the given paths and translates them into
// the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
