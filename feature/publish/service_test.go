package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tiengow-preview/core/site"
	"tiengow-preview/core/storage"
	"tiengow-preview/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupSite(t *testing.T, extra ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range append(append([]string{}, site.DefaultRequiredFiles...), extra...) {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(f), 0o644))
	}
	return root
}

func newService(client storage.Client, prefix string) *Service {
	return NewService(client, storage.Config{Bucket: "site", Region: "eu-west-1"}, prefix, zap.NewNop())
}

func TestCollect(t *testing.T) {
	root := setupSite(t, ".git/config", "scripts/.cache", "images/logo.bin")
	svc := newService(new(mocks.Client), "/preview/")

	objects, err := svc.Collect(root)
	require.NoError(t, err)

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		keys = append(keys, obj.Key)
	}
	assert.ElementsMatch(t, []string{
		"preview/index.html",
		"preview/styles/main.css",
		"preview/scripts/tien-gow.js",
		"preview/scripts/ui.js",
		"preview/data/rankings.json",
		"preview/images/logo.bin",
	}, keys)

	for _, obj := range objects {
		switch filepath.Ext(obj.Path) {
		case ".html":
			assert.Contains(t, obj.ContentType, "text/html")
		case ".bin":
			assert.Equal(t, defaultContentType, obj.ContentType)
		}
		assert.Positive(t, obj.Size)
	}
}

func TestPublish_MissingFiles(t *testing.T) {
	root := t.TempDir()
	client := new(mocks.Client)

	_, err := newService(client, "").Publish(context.Background(), root, site.DefaultRequiredFiles, Options{})

	var pe *site.PreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, site.DefaultRequiredFiles, pe.Missing)
	client.AssertNotCalled(t, "BucketExists", mock.Anything, mock.Anything)
}

func TestPublish_DryRun(t *testing.T) {
	root := setupSite(t)
	client := new(mocks.Client)

	report, err := newService(client, "").Publish(context.Background(), root, site.DefaultRequiredFiles, Options{DryRun: true})
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Len(t, report.Uploaded, len(site.DefaultRequiredFiles))
	assert.Positive(t, report.Bytes)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_CreatesBucketAndUploads(t *testing.T) {
	root := setupSite(t)
	client := new(mocks.Client)

	client.On("BucketExists", mock.Anything, "site").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "site", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
	client.On("PutObject", mock.Anything, "site", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType != ""
	})).Return(minio.UploadInfo{}, nil)

	report, err := newService(client, "").Publish(context.Background(), root, site.DefaultRequiredFiles, Options{})
	require.NoError(t, err)

	assert.Equal(t, "site", report.Bucket)
	assert.Len(t, report.Uploaded, len(site.DefaultRequiredFiles))
	client.AssertNumberOfCalls(t, "PutObject", len(site.DefaultRequiredFiles))
	client.AssertCalled(t, "PutObject", mock.Anything, "site", "data/rankings.json", mock.Anything, int64(len("data/rankings.json")), mock.Anything)
}

func TestPublish_BucketCheckFails(t *testing.T) {
	root := setupSite(t)
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "site").Return(false, errors.New("connection refused"))

	_, err := newService(client, "").Publish(context.Background(), root, site.DefaultRequiredFiles, Options{})
	assert.ErrorContains(t, err, "connection refused")
}

func TestPublish_UploadFails(t *testing.T) {
	root := setupSite(t)
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "site").Return(true, nil)
	client.On("PutObject", mock.Anything, "site", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	report, err := newService(client, "").Publish(context.Background(), root, site.DefaultRequiredFiles, Options{})
	assert.ErrorContains(t, err, "access denied")
	require.NotNil(t, report)
	assert.Empty(t, report.Uploaded)
	client.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestPublish_Prune(t *testing.T) {
	root := setupSite(t)
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "site").Return(true, nil)
	client.On("PutObject", mock.Anything, "site", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "v1/index.html"}
	ch <- minio.ObjectInfo{Key: "v1/old.js"}
	ch <- minio.ObjectInfo{Key: "v1/scripts/ui.js"}
	close(ch)
	client.On("ListObjects", mock.Anything, "site", minio.ListObjectsOptions{Prefix: "v1/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))
	client.On("RemoveObject", mock.Anything, "site", "v1/old.js", mock.Anything).Return(nil)

	report, err := newService(client, "v1").Publish(context.Background(), root, site.DefaultRequiredFiles, Options{Prune: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"v1/old.js"}, report.Removed)
	client.AssertNumberOfCalls(t, "RemoveObject", 1)
}

func TestPublish_PruneListError(t *testing.T) {
	root := setupSite(t)
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "site").Return(true, nil)
	client.On("PutObject", mock.Anything, "site", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("list failed")}
	close(ch)
	var listCtx context.Context
	client.On("ListObjects", mock.Anything, "site", mock.Anything).
		Run(func(args mock.Arguments) { listCtx = args.Get(0).(context.Context) }).
		Return((<-chan minio.ObjectInfo)(ch))

	_, err := newService(client, "").Publish(context.Background(), root, site.DefaultRequiredFiles, Options{Prune: true})
	assert.ErrorContains(t, err, "list failed")
	require.NotNil(t, listCtx)
	assert.ErrorIs(t, listCtx.Err(), context.Canceled)
	client.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
