package ports

import (
	"context"

	"podscrape/internal/app/model"
)

type ForConfiguring interface {
	// Load reads the spec file and the process environment and
	// returns a validated Spec with defaults applied. A missing API
	// key is not an error; the publish-timestamp resolver degrades
	// gracefully without it.
	Load(ctx context.Context) (*model.Spec, error)
}
