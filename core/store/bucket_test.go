package store_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"media-scraper/core/record"
	"media-scraper/core/storage/mocks"
	"media-scraper/core/store"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseBucketDestination(t *testing.T) {
	tests := []struct {
		dest       string
		wantBucket string
		wantPrefix string
		wantOK     bool
		wantErr    bool
	}{
		{"./data/anime", "", "", false, false},
		{"s3://catalog", "catalog", "", true, false},
		{"s3://catalog/anilist/anime/", "catalog", "anilist/anime", true, false},
		{"s3:///nobucket", "", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			bucket, prefix, ok, err := store.ParseBucketDestination(tt.dest)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}

func TestBucket_Initialize(t *testing.T) {
	t.Run("ExistingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)

		b := store.NewBucket(client, "catalog", "anime", "")
		assert.NoError(t, b.Initialize(context.Background()))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreatesMissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalog").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "catalog", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		b := store.NewBucket(client, "catalog", "", "eu-west-1")
		assert.NoError(t, b.Initialize(context.Background()))
		client.AssertExpectations(t)
	})
}

func TestBucket_Exists(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "catalog", "anime/1.json", mock.Anything).
		Return(minio.ObjectInfo{Key: "anime/1.json"}, nil)
	client.On("StatObject", mock.Anything, "catalog", "anime/2.json", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	client.On("StatObject", mock.Anything, "catalog", "anime/3.json", mock.Anything).
		Return(minio.ObjectInfo{}, errors.New("connection refused"))

	b := store.NewBucket(client, "catalog", "/anime/", "")

	exists, err := b.Exists(ctx, "1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = b.Exists(ctx, "2")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = b.Exists(ctx, "3")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "3.json")
}

func TestBucket_Read(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "catalog", "1.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"a": 1}`)), nil)
	client.On("GetObject", mock.Anything, "catalog", "2.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"a": `)), nil)

	b := store.NewBucket(client, "catalog", "", "")

	meta, corrupt, err := b.Read(ctx, "1")
	require.NoError(t, err)
	assert.False(t, corrupt)
	assert.Len(t, meta, 1)

	meta, corrupt, err = b.Read(ctx, "2")
	require.NoError(t, err)
	assert.True(t, corrupt)
	assert.Empty(t, meta)
}

func TestBucket_Write(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)

	var uploaded string
	client.On("PutObject", mock.Anything, "catalog", "manga/9.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, _ := io.ReadAll(args.Get(3).(io.Reader))
			uploaded = string(data)
			assert.Equal(t, int64(len(data)), args.Get(4).(int64))
		}).
		Return(minio.UploadInfo{}, nil)

	b := store.NewBucket(client, "catalog", "manga", "")
	require.NoError(t, b.Write(ctx, "9", record.Metadata{"title": "ベルセルク"}))

	assert.Equal(t, "{\n    \"title\": \"ベルセルク\"\n}", uploaded)
	assert.Equal(t, "s3://catalog/manga", b.Location())
}

func TestBucket_WriteError(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	b := store.NewBucket(client, "catalog", "", "")
	err := b.Write(context.Background(), "9", record.Metadata{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "9.json")
}
