package preference

import "context"

type PreferenceRepository interface {
	// Get returns ErrPreferenceNotFound when key has never been saved
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
