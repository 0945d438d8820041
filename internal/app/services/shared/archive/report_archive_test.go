package archive

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"linkcare-service/internal/pkg/constvars"
)

type fakePutter struct {
	bucket      string
	object      string
	body        string
	contentType string
	err         error
}

func (f *fakePutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	data, _ := io.ReadAll(reader)
	f.bucket, f.object, f.body, f.contentType = bucketName, objectName, string(data), opts.ContentType
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func TestStore(t *testing.T) {
	putter := &fakePutter{}
	archive := &minioArchive{client: putter, bucket: "training-reports", Log: zap.NewNop()}

	err := archive.Store(context.Background(), "admission-1/summary.json", map[string]string{"program": "P1"})
	require.NoError(t, err)
	assert.Equal(t, "training-reports", putter.bucket)
	assert.Equal(t, "admission-1/summary.json", putter.object)
	assert.JSONEq(t, `{"program":"P1"}`, putter.body)
	assert.Equal(t, constvars.MIMEApplicationJSON, putter.contentType)
}

func TestStoreFailure(t *testing.T) {
	archive := &minioArchive{client: &fakePutter{err: errors.New("bucket missing")}, bucket: "b", Log: zap.NewNop()}
	assert.Error(t, archive.Store(context.Background(), "x.json", 1))
}
