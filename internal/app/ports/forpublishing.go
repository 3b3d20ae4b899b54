package ports

import (
	"context"
	"errors"
)

var (
	ErrNilPointerRequest error = errors.New("received nil pointer as request")
	ErrFilenameMissing   error = errors.New("empty or missing filename given")
)

type ForPublishingRequest struct {
	// Bucket or store to publish to.
	Bucket string
	// Key or name of target. If empty, defaults to the From field.
	Key string
	// From is the local path to publish from.
	From        string
	ContentType string
	// StorageClass is only used for AWS. If empty, STANDARD is the
	// default.
	StorageClass string
}

// ForPublishing pushes the finished CSV artifact to remote storage.
type ForPublishing interface {
	Publish(ctx context.Context, request *ForPublishingRequest) error
	// Diff compares the local file against the previously published
	// object and prints a unified diff to stdout. A missing remote
	// object is not an error.
	Diff(ctx context.Context, bucket, key, fileToDiff string) error
}
