package storage

import (
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	photoStorageInstance contracts.PhotoStorage
	oncePhotoStorage     sync.Once
)

type minioPhotoStorage struct {
	MinioClient *minio.Client
	BucketName  string
	URLExpiry   time.Duration
	Log         *zap.Logger
}

func NewMinioPhotoStorage(minioClient *minio.Client, bucketName string, urlExpiry time.Duration, logger *zap.Logger) contracts.PhotoStorage {
	oncePhotoStorage.Do(func() {
		photoStorageInstance = &minioPhotoStorage{
			MinioClient: minioClient,
			BucketName:  bucketName,
			URLExpiry:   urlExpiry,
			Log:         logger,
		}
	})
	return photoStorageInstance
}

func (s *minioPhotoStorage) PresignPhotoURL(ctx context.Context, objectName string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if objectName == "" {
		return "", nil
	}

	presignedURL, err := s.MinioClient.PresignedGetObject(ctx, s.BucketName, objectName, s.URLExpiry, url.Values{})
	if err != nil {
		s.Log.Error("minioPhotoStorage.PresignPhotoURL error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioPresignObject(err, s.BucketName)
	}

	return presignedURL.String(), nil
}
