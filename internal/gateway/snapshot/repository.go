package snapshot

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no object exists for the request/path pair.
var ErrNotFound = errors.New("snapshot not found")

// Repository archives fetched pages and rendered results per analysis
// request so a run can be replayed without refetching.
type Repository interface {
	Put(ctx context.Context, requestID, path string, content []byte) error
	Get(ctx context.Context, requestID, path string) ([]byte, error)
	List(ctx context.Context, requestID string) ([]string, error)
}
