package storage

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// AssetStore holds product images. A product row and its asset live in
// lockstep: failed creates delete the fresh asset, updates delete the old
// asset only after the new one is attached.
type AssetStore interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

func NewProductKey() string {
	return "products/" + uuid.NewString() + ".webp"
}
