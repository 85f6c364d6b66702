package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider 对象存储抽象，证书元数据和报告导出走这里
type StorageProvider interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

func NewStorageProvider(cfg *config.Config) (StorageProvider, error) {
	switch cfg.Storage.Type {
	case "minio":
		return newMinioStorage(cfg)
	case "local", "":
		return &LocalStorage{BasePath: cfg.Storage.LocalPath}, nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}

// LocalStorage 落本地磁盘，开发环境默认
type LocalStorage struct {
	BasePath string
}

func (s *LocalStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	path := filepath.Join(s.BasePath, objectName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return "/uploads/" + objectName, nil
}

// MinioStorage 生产环境对象存储
type MinioStorage struct {
	client *minio.Client
	bucket string
	base   string
}

func newMinioStorage(cfg *config.Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
		Creds: credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
	})
	if err != nil {
		return nil, err
	}

	bucket := cfg.Storage.MinioBucket
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		logger.Log.Info("created storage bucket", zap.String("bucket", bucket))
	}

	return &MinioStorage{
		client: client,
		bucket: bucket,
		base:   fmt.Sprintf("http://%s/%s", cfg.Storage.MinioEndpoint, bucket),
	}, nil
}

func (s *MinioStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return s.base + "/" + objectName, nil
}
