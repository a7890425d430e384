package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"
)

func TestValidateContentType(t *testing.T) {
	tests := []struct {
		contentType string
		wantErr     bool
	}{
		{contentType: "image/png"},
		{contentType: "image/svg+xml"},
		{contentType: "application/fits", wantErr: true},
		{contentType: "audio/wav", wantErr: true},
		{contentType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			err := validateContentType(tt.contentType)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeFor("png"))
	assert.Equal(t, "image/svg+xml", ContentTypeFor("svg"))
	assert.Equal(t, "image/png", ContentTypeFor(""))
}

func TestNewS3Service_RequiresBucket(t *testing.T) {
	_, err := NewS3Service(S3Config{})
	assert.Error(t, err)
}

// TestS3Service_Integration round-trips a plot through a MinIO container
func TestS3Service_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := tcminio.Run(ctx,
		"minio/minio:RELEASE.2024-10-29T16-01-48Z",
		tcminio.WithUsername("minioadmin"),
		tcminio.WithPassword("minioadmin"),
	)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, container.Terminate(ctx))
	}()

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	bucket := "sedview-test-" + uuid.New().String()[:8]
	require.NoError(t, createBucket(ctx, endpoint, bucket))

	svc, err := NewS3Service(S3Config{
		Bucket:    bucket,
		Endpoint:  endpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	require.NoError(t, svc.UploadFile(ctx, "plots/test.png", png, "image/png"))

	got, err := svc.DownloadFile(ctx, "plots/test.png")
	require.NoError(t, err)
	assert.Equal(t, png, got)

	url, err := svc.GenerateDownloadURL(ctx, "plots/test.png")
	require.NoError(t, err)
	assert.Contains(t, url, bucket)

	assert.Error(t, svc.UploadFile(ctx, "plots/test.wav", png, "audio/wav"))

	require.NoError(t, svc.DeleteFile(ctx, "plots/test.png"))
	_, err = svc.DownloadFile(ctx, "plots/test.png")
	assert.Error(t, err)
}

// createBucket creates a bucket in MinIO for testing
func createBucket(ctx context.Context, endpoint, bucket string) error {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  miniocreds.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		return err
	}
	return client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}
