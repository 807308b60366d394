package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"media-scraper/core/record"
	"media-scraper/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketScheme prefixes destinations served by object storage.
const BucketScheme = "s3://"

// Bucket stores entries as objects in an S3-compatible bucket.
type Bucket struct {
	client storage.Client
	bucket string
	prefix string
	region string
}

// NewBucket returns a store writing objects to bucket under prefix.
func NewBucket(client storage.Client, bucket, prefix, region string) *Bucket {
	return &Bucket{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		region: region,
	}
}

// ParseBucketDestination splits "s3://bucket/some/prefix".
// ok is false when dest is not an object storage destination.
func ParseBucketDestination(dest string) (bucket, prefix string, ok bool, err error) {
	if !strings.HasPrefix(dest, BucketScheme) {
		return "", "", false, nil
	}

	u, err := url.Parse(dest)
	if err != nil {
		return "", "", true, fmt.Errorf("invalid destination %q: %w", dest, err)
	}
	if u.Host == "" {
		return "", "", true, fmt.Errorf("invalid destination %q: missing bucket", dest)
	}
	return u.Host, strings.Trim(u.Path, "/"), true, nil
}

// Key returns the object key backing id.
func (b *Bucket) Key(id string) string {
	if b.prefix == "" {
		return Name(id)
	}
	return path.Join(b.prefix, Name(id))
}

func (b *Bucket) Location() string {
	return BucketScheme + path.Join(b.bucket, b.prefix)
}

func (b *Bucket) Initialize(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", b.bucket, err)
	}
	if exists {
		return nil
	}
	if err := b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{Region: b.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", b.bucket, err)
	}
	return nil
}

func (b *Bucket) Exists(ctx context.Context, id string) (bool, error) {
	if err := ValidateID(id); err != nil {
		return false, err
	}

	_, err := b.client.StatObject(ctx, b.bucket, b.Key(id), minio.StatObjectOptions{})
	if storage.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", Name(id), err)
	}
	return true, nil
}

func (b *Bucket) Read(ctx context.Context, id string) (record.Metadata, bool, error) {
	if err := ValidateID(id); err != nil {
		return nil, false, err
	}

	obj, err := b.client.GetObject(ctx, b.bucket, b.Key(id), minio.GetObjectOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", Name(id), err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", Name(id), err)
	}

	meta, corrupt := decodeEntry(data)
	return meta, corrupt, nil
}

func (b *Bucket) Write(ctx context.Context, id string, m record.Metadata) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	data, err := Encode(m)
	if err != nil {
		return err
	}

	_, err = b.client.PutObject(ctx, b.bucket, b.Key(id), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", Name(id), err)
	}
	return nil
}

func (b *Bucket) Scan(ctx context.Context) ([]string, []string, error) {
	prefix := ""
	if b.prefix != "" {
		prefix = b.prefix + "/"
	}

	// Stops the lister when returning early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var ids, strays []string
	for obj := range b.client.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, nil, fmt.Errorf("failed to list %s: %w", b.Location(), obj.Err)
		}

		name := strings.TrimPrefix(obj.Key, prefix)
		if name == "" || strings.HasSuffix(name, "/") {
			continue
		}
		if id, ok := ParseName(name); ok {
			ids = append(ids, id)
			continue
		}
		strays = append(strays, name)
	}
	return ids, strays, nil
}

func (b *Bucket) Remove(ctx context.Context, name string) error {
	if err := ValidateID(name); err != nil {
		return err
	}

	key := name
	if b.prefix != "" {
		key = path.Join(b.prefix, name)
	}
	if err := b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}
