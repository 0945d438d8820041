package archive

import (
	"bytes"
	"context"
	"io"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/exceptions"
)

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioArchive struct {
	client objectPutter
	bucket string
	Log    *zap.Logger
}

// NewMinioArchive stores reports as JSON objects in bucket.
func NewMinioArchive(client *minio.Client, bucket string, logger *zap.Logger) contracts.ReportArchive {
	return &minioArchive{
		client: client,
		bucket: bucket,
		Log:    logger,
	}
}

func (a *minioArchive) Store(ctx context.Context, objectName string, report interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	a.Log.Info("reportArchive.Store called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, a.bucket),
		zap.String(constvars.LoggingObjectKey, objectName),
	)

	body, err := json.Marshal(report)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		a.Log.Error("reportArchive.Store error calling PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrUploadObject(err, objectName)
	}

	a.Log.Info("reportArchive.Store succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return nil
}

type noopArchive struct{}

// NewNoopArchive is used when object storage is disabled.
func NewNoopArchive() contracts.ReportArchive {
	return noopArchive{}
}

func (noopArchive) Store(ctx context.Context, objectName string, report interface{}) error {
	return nil
}
