package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/pkg/constvars"
)

const bucketCheckTimeout = 10 * time.Second

// NewMinio builds the client of the report archive and makes sure bucket
// exists.
func NewMinio(driverConfig *config.DriverConfig, bucket string, logger *zap.Logger) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio Client: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), bucketCheckTimeout)
	defer cancel()
	exists, err := minioClient.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatalf("Failed to check Minio bucket %s: %s", bucket, err.Error())
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create Minio bucket %s: %s", bucket, err.Error())
		}
	}

	logger.Info("Successfully connected to minio",
		zap.String("endpoint", endPoint),
		zap.String(constvars.LoggingBucketKey, bucket),
	)
	return minioClient
}
