package assets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eihojp/corpsite/internal/apperr"
)

// Resolver routes uploads to the remote store when one is configured and
// falls back to local disk otherwise. On a managed platform the local disk
// is ephemeral, so there the fallback is replaced by a hard error telling
// the operator to finish the remote configuration.
type Resolver struct {
	Remote  Store // nil when GitHub storage is not configured
	Local   Store
	Managed bool
	Logger  *slog.Logger
}

// Put stores one upload and returns its public URL.
func (r *Resolver) Put(ctx context.Context, folder string, up Upload) (string, error) {
	if r.Remote != nil {
		url, err := r.Remote.Put(ctx, folder, up)
		if err == nil {
			return url, nil
		}
		if r.Managed {
			return "", fmt.Errorf("assets: remote upload failed and no durable local storage exists, check the GitHub storage settings: %w (%w)", apperr.ErrStorage, err)
		}
		r.Logger.Warn("remote upload failed, falling back to local disk",
			slog.String("folder", folder), slog.String("error", err.Error()))
		return r.Local.Put(ctx, folder, up)
	}

	if r.Managed {
		return "", fmt.Errorf("assets: uploads need GitHub storage on a managed platform, set the token and repository: %w", apperr.ErrStorage)
	}
	return r.Local.Put(ctx, folder, up)
}
