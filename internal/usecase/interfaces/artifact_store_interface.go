package interfaces

import "context"

// IArtifactStore archives authorized XML/PDF artifacts by key.
type IArtifactStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Get(ctx context.Context, key string) (body []byte, contentType string, found bool, err error)
}
