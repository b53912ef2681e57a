// Хранилище аватаров пользователей поверх S3-совместимого бэкенда (MinIO).
package s3

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/olexandrd/contacts-api/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

type Storage struct {
	cl     *minio.Client
	bucket string
	secure bool
	logger *log.Logger
}

func New(cfg Config, logger *log.Logger) (*Storage, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}
	return &Storage{cl: cl, bucket: cfg.Bucket, secure: cfg.UseSSL, logger: logger}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	ok, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Printf("bucket check failed: %v", err)
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

// PutAvatar кладёт аватар под ключ avatars/<user-id> (перезапись при
// повторной загрузке) и возвращает публичный URL объекта.
func (s *Storage) PutAvatar(ctx context.Context, userID domain.UserID, r io.Reader, size int64, mime string) (string, error) {
	key := "avatars/" + userID.String()
	info, err := s.cl.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: mime,
	})
	if err != nil {
		s.logger.Printf("put avatar %q failed: %v", key, err)
		return "", err
	}
	s.logger.Printf("put avatar %q ok (%d bytes)", key, info.Size)
	return s.objectURL(key), nil
}

func (s *Storage) objectURL(key string) string {
	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   s.cl.EndpointURL().Host,
		Path:   "/" + s.bucket + "/" + key,
	}
	return u.String()
}
