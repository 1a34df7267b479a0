package assets

import "context"

// Fetcher adalah capability injeksi untuk menyelesaikan asset presentasi
// menjadi URL yang bisa dipakai di halaman. Implementasi bisa diganti stub di test.
//
//go:generate mockgen -source=fetcher.go -destination=mock/fetcher_mock.go -package=mock
type Fetcher interface {
	BackgroundURL(ctx context.Context, key string) (string, error)
}
