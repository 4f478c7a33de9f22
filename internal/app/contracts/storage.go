package contracts

import (
	"context"
)

// PhotoStorage resolves stored photo object names to presigned URLs.
type PhotoStorage interface {
	PresignPhotoURL(ctx context.Context, objectName string) (string, error)
}
