package service

import (
	"bjj_academy_backend/internal/config"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider 对象存储后端抽象
type StorageProvider interface {
	Save(objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type StorageService struct {
	provider StorageProvider
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	switch cfg.Storage.Type {
	case "minio":
		p, err := newMinioProvider(cfg)
		if err != nil {
			return nil, err
		}
		return &StorageService{provider: p}, nil
	default:
		return &StorageService{provider: &localProvider{basePath: cfg.Storage.LocalPath}}, nil
	}
}

func (s *StorageService) Save(objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	return s.provider.Save(objectName, reader, size, contentType)
}

type localProvider struct {
	basePath string
}

func (p *localProvider) Save(objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	fullPath := filepath.Join(p.basePath, objectName)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	out, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return "/uploads/" + objectName, nil
}

type minioProvider struct {
	client *minio.Client
	bucket string
}

func newMinioProvider(cfg *config.Config) (*minioProvider, error) {
	client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
		Creds: credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Storage.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Storage.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &minioProvider{client: client, bucket: cfg.Storage.MinioBucket}, nil
}

func (p *minioProvider) Save(objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err := p.client.PutObject(ctx, p.bucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s/%s/%s", p.client.EndpointURL().Host, p.bucket, objectName), nil
}
