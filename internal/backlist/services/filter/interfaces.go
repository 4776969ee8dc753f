package filter

import "context"

// SettingsReader is the read side of the platform option store.
// A missing key must read as "" with a nil error.
type SettingsReader interface {
	Get(ctx context.Context, key string) (string, error)
}
