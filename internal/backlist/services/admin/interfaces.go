package admin

import (
	"context"

	"github.com/haukened/backlist/internal/backlist/repos/settings"
)

// Settings is the option store the admin edits lists in.
type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Update(ctx context.Context, key string, fn settings.UpdateFunc) error
}

// Moderator is the platform's comment moderation action.
type Moderator interface {
	Approve(ctx context.Context, commentID uint64) error
	Delete(ctx context.Context, commentID uint64) error
}
