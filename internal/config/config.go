package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config adalah snapshot konfigurasi proses, dibaca sekali saat startup.
// Immutable: diteruskan by value ke komponen yang membutuhkan, tanpa global lookup.
type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	DisplayName        string `env:"DISPLAY_NAME" envDefault:"Employee Directory"`
	Slogan             string `env:"SLOGAN" envDefault:""`
	BackgroundImageKey string `env:"BACKGROUND_IMAGE_KEY" envDefault:""`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBName     string `env:"DB_NAME" envDefault:"employees"`
	DBUser     string `env:"DB_USER,required,notEmpty"`
	DBPassword string `env:"DB_PASSWORD,required,notEmpty"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:""`

	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:""`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY" envDefault:""`
	MinioSecretKey string `env:"MINIO_SECRET_KEY" envDefault:""`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"assets"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`

	KafkaBroker string `env:"KAFKA_BROKER" envDefault:""`

	DBTimeout    time.Duration `env:"DB_TIMEOUT" envDefault:"5s"`
	AssetTimeout time.Duration `env:"ASSET_TIMEOUT" envDefault:"3s"`
}

// Load membaca seluruh konfigurasi dari environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// AssetStoreEnabled melaporkan apakah object store dikonfigurasi.
func (c Config) AssetStoreEnabled() bool {
	return c.MinioEndpoint != "" && c.BackgroundImageKey != ""
}
