package publish

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"tiengow-preview/core/site"
	"tiengow-preview/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const defaultContentType = "application/octet-stream"

// Object is a local file scheduled for upload.
type Object struct {
	Key         string `json:"key"`
	Path        string `json:"-"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Options tune a publish run.
type Options struct {
	// DryRun lists the objects without contacting storage.
	DryRun bool
	// Prune removes objects below the prefix that no longer exist locally.
	Prune bool
}

// Report summarises a publish run.
type Report struct {
	Bucket   string   `json:"bucket"`
	Uploaded []Object `json:"uploaded"`
	Removed  []string `json:"removed,omitempty"`
	Bytes    int64    `json:"bytes"`
	DryRun   bool     `json:"dry_run"`
}

// Service uploads the site to a bucket.
type Service struct {
	client storage.Client
	bucket string
	region string
	prefix string
	logger *zap.Logger
}

// NewService creates a new publish service.
func NewService(client storage.Client, cfg storage.Config, prefix string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}
}

// Collect walks root and returns every regular, non-hidden file as an Object.
func (s *Service) Collect(root string) ([]Object, error) {
	var objects []Object
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		objects = append(objects, Object{
			Key:         s.key(rel),
			Path:        p,
			Size:        info.Size(),
			ContentType: contentType(p),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan site root: %w", err)
	}
	return objects, nil
}

// Publish verifies the required files, then uploads every collected object.
func (s *Service) Publish(ctx context.Context, root string, required []string, opts Options) (*Report, error) {
	if err := site.Check(root, required); err != nil {
		return nil, err
	}

	objects, err := s.Collect(root)
	if err != nil {
		return nil, err
	}

	report := &Report{Bucket: s.bucket, DryRun: opts.DryRun}
	for _, obj := range objects {
		report.Bytes += obj.Size
	}
	if opts.DryRun {
		report.Uploaded = objects
		return report, nil
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	for _, obj := range objects {
		if err := s.upload(ctx, obj); err != nil {
			return report, err
		}
		report.Uploaded = append(report.Uploaded, obj)
	}

	if opts.Prune {
		removed, err := s.prune(ctx, objects)
		report.Removed = removed
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	return nil
}

func (s *Service) upload(ctx context.Context, obj Object) error {
	f, err := os.Open(obj.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", obj.Path, err)
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, s.bucket, obj.Key, f, obj.Size, minio.PutObjectOptions{
		ContentType: obj.ContentType,
	})
	if err != nil {
		s.logger.Error("Failed to upload object", zap.String("key", obj.Key), zap.Error(err))
		return fmt.Errorf("failed to upload %s: %w", obj.Key, err)
	}
	s.logger.Debug("Uploaded object", zap.String("key", obj.Key), zap.Int64("size", obj.Size))
	return nil
}

func (s *Service) prune(ctx context.Context, keep []Object) ([]string, error) {
	wanted := make(map[string]struct{}, len(keep))
	for _, obj := range keep {
		wanted[obj.Key] = struct{}{}
	}

	prefix := s.prefix
	if prefix != "" {
		prefix += "/"
	}

	// Cancelling stops the lister goroutine if we bail out mid-listing.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stale []string
	for info := range s.client.ListObjects(listCtx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", info.Err)
		}
		if _, ok := wanted[info.Key]; !ok {
			stale = append(stale, info.Key)
		}
	}

	var removed []string
	for _, key := range stale {
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", key, err)
		}
		s.logger.Info("Removed stale object", zap.String("key", key))
		removed = append(removed, key)
	}
	return removed, nil
}

func (s *Service) key(rel string) string {
	return path.Join(s.prefix, filepath.ToSlash(rel))
}

func contentType(p string) string {
	if ct := mime.TypeByExtension(filepath.Ext(p)); ct != "" {
		return ct
	}
	return defaultContentType
}
