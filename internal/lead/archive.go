package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/dentismart/internal/models"
)

// Archiver keeps a copy of the stored (encrypted) lead row.
type Archiver interface {
	Archive(ctx context.Context, l *models.Lead) error
}

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Archiver struct {
	client s3API
	bucket string
}

func NewS3Archiver(region, accessKeyID, secretAccessKey, bucket string) *S3Archiver {
	client := s3.New(s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
	})
	return &S3Archiver{client: client, bucket: bucket}
}

// ArchiveKey is leads/<yyyy>/<mm>/<id>.json, dated by creation time (UTC).
func ArchiveKey(l *models.Lead) string {
	t := l.CreatedAt.UTC()
	return fmt.Sprintf("leads/%04d/%02d/%s.json", t.Year(), int(t.Month()), l.ID)
}

func (a *S3Archiver) Archive(ctx context.Context, l *models.Lead) error {
	body, err := json.Marshal(l)
	if err != nil {
		return err
	}
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(ArchiveKey(l)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", ArchiveKey(l), err)
	}
	return nil
}

// NoopArchiver is used when no bucket is configured.
type NoopArchiver struct{}

func (NoopArchiver) Archive(context.Context, *models.Lead) error { return nil }

var (
	_ Archiver = (*S3Archiver)(nil)
	_ Archiver = NoopArchiver{}
)
