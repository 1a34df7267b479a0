package assets_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"go-empdir/internal/assets"
	"go-empdir/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakePresignAPI struct {
	calls   int
	failFor int // jumlah attempt awal yang gagal
	url     string
}

func (f *fakePresignAPI) PresignedGetObject(ctx context.Context, bucket, key string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	f.calls++
	if f.calls <= f.failFor {
		return nil, errors.New("connection reset by peer")
	}
	return url.Parse(f.url)
}

func TestMinioFetcher_BackgroundURL(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakePresignAPI{url: "https://store.example/assets/bg.png?sig=abc"}
		f := assets.NewMinioFetcher(api, "assets", nil, time.Second)

		got, err := f.BackgroundURL(ctx, "bg.png")

		assert.NoError(t, err)
		assert.Equal(t, "https://store.example/assets/bg.png?sig=abc", got)
		assert.Equal(t, 1, api.calls)
	})

	t.Run("attempt pertama gagal - satu retry transparan", func(t *testing.T) {
		api := &fakePresignAPI{url: "https://store.example/assets/bg.png", failFor: 1}
		f := assets.NewMinioFetcher(api, "assets", nil, time.Second)

		got, err := f.BackgroundURL(ctx, "bg.png")

		assert.NoError(t, err)
		assert.Equal(t, "https://store.example/assets/bg.png", got)
		assert.Equal(t, 2, api.calls)
	})

	t.Run("dua attempt gagal - AssetUnavailable", func(t *testing.T) {
		api := &fakePresignAPI{failFor: 2}
		f := assets.NewMinioFetcher(api, "assets", nil, time.Second)

		_, err := f.BackgroundURL(ctx, "bg.png")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeAssetUnavailable, appErr.Code)
		assert.Equal(t, 2, api.calls)
	})

	t.Run("key kosong - AssetUnavailable tanpa memanggil store", func(t *testing.T) {
		api := &fakePresignAPI{}
		f := assets.NewMinioFetcher(api, "assets", nil, time.Second)

		_, err := f.BackgroundURL(ctx, "")

		assert.ErrorIs(t, err, apperror.ErrAssetUnavailable)
		assert.Equal(t, 0, api.calls)
	})

	t.Run("cache hit - presign tidak dipanggil", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("assets:url:bg.png").SetVal("https://cached.example/bg.png")

		api := &fakePresignAPI{url: "https://store.example/bg.png"}
		f := assets.NewMinioFetcher(api, "assets", rdb, time.Second)

		got, err := f.BackgroundURL(ctx, "bg.png")

		assert.NoError(t, err)
		assert.Equal(t, "https://cached.example/bg.png", got)
		assert.Equal(t, 0, api.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss - presign lalu simpan ke cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("assets:url:bg.png").RedisNil()
		mock.ExpectSet("assets:url:bg.png", "https://store.example/bg.png", 5*time.Minute).SetVal("OK")

		api := &fakePresignAPI{url: "https://store.example/bg.png"}
		f := assets.NewMinioFetcher(api, "assets", rdb, time.Second)

		got, err := f.BackgroundURL(ctx, "bg.png")

		assert.NoError(t, err)
		assert.Equal(t, "https://store.example/bg.png", got)
		assert.Equal(t, 1, api.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
