package assets

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go-empdir/internal/shared/apperror"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	presignExpiry = 15 * time.Minute
	cacheTTL      = 5 * time.Minute
)

// PresignAPI adalah irisan dari *minio.Client yang dipakai fetcher.
type PresignAPI interface {
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

var _ PresignAPI = (*minio.Client)(nil)

type minioFetcher struct {
	client  PresignAPI
	bucket  string
	rdb     *redis.Client // optional URL cache, boleh nil
	timeout time.Duration
	group   singleflight.Group
	logger  *zap.Logger
}

func NewMinioFetcher(
	client PresignAPI,
	bucket string,
	rdb *redis.Client,
	timeout time.Duration,
	logger ...*zap.Logger,
) Fetcher {
	l := zap.L().Named("assets.minio")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assets.minio")
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &minioFetcher{
		client:  client,
		bucket:  bucket,
		rdb:     rdb,
		timeout: timeout,
		logger:  l,
	}
}

func (f *minioFetcher) BackgroundURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", apperror.ErrAssetUnavailable
	}

	cacheKey := fmt.Sprintf("assets:url:%s", key)

	// Cache berisi presigned URL saja, tidak pernah record domain
	if f.rdb != nil {
		if cached, err := f.rdb.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	// singleflight: request paralel untuk key yang sama cukup satu presign
	v, err, _ := f.group.Do(key, func() (any, error) {
		return f.presignWithRetry(ctx, key)
	})
	if err != nil {
		return "", apperror.Wrap(err,
			apperror.CodeAssetUnavailable,
			"Presentation asset could not be resolved",
			apperror.ErrAssetUnavailable.HTTPStatus,
		)
	}

	signed := v.(string)

	if f.rdb != nil {
		if err := f.rdb.Set(ctx, cacheKey, signed, cacheTTL).Err(); err != nil {
			f.logger.Warn("cache presigned url failed", zap.Error(err))
		}
	}

	return signed, nil
}

// presignWithRetry mencoba presign maksimal dua kali; asset bersifat
// non-kritis jadi satu retry transparan sudah cukup.
func (f *minioFetcher) presignWithRetry(ctx context.Context, key string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= 2; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
		u, err := f.client.PresignedGetObject(attemptCtx, f.bucket, key, presignExpiry, nil)
		cancel()

		if err == nil {
			return u.String(), nil
		}

		lastErr = err
		f.logger.Warn("presign background image failed",
			zap.String("key", key),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if ctx.Err() != nil {
			break
		}
	}

	return "", lastErr
}
