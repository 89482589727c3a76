package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"athlete-intake/internal/domain/repositories"
	appcfg "athlete-intake/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// multipartAPI is the slice of the S3 client the storage layer calls.
// Narrowed so tests can stand in for the real client.
type multipartAPI interface {
	CreateMultipartUpload(ctx context.Context, params *s3.CreateMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error)
	CompleteMultipartUpload(ctx context.Context, params *s3.CompleteMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error)
	AbortMultipartUpload(ctx context.Context, params *s3.AbortMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error)
	ListMultipartUploads(ctx context.Context, params *s3.ListMultipartUploadsInput, optFns ...func(*s3.Options)) (*s3.ListMultipartUploadsOutput, error)
}

type presignAPI interface {
	PresignUploadPart(ctx context.Context, params *s3.UploadPartInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type S3Storage struct {
	client        multipartAPI
	presigner     presignAPI
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

var _ repositories.ObjectStorage = (*S3Storage)(nil)

func NewS3Storage(ctx context.Context, cfg appcfg.AWSConfig, logger *slog.Logger) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:        client,
		presigner:     s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		logger:        logger,
	}, nil
}

// CreateMultipart opens the upload and presigns one URL per part. If
// presigning fails midway no cleanup is attempted; the stale-upload sweeper
// picks the session up later.
func (s *S3Storage) CreateMultipart(ctx context.Context, key, contentType string, partCount int, ttl time.Duration) (string, []string, error) {
	out, err := s.client.CreateMultipartUpload(ctx, &s3.CreateMultipartUploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("create multipart upload failed", "key", key, "error", err)
		return "", nil, fmt.Errorf("create multipart upload: %w", err)
	}

	uploadID := aws.ToString(out.UploadId)
	s.logger.Info("multipart upload created", "key", key, "upload_id", uploadID, "parts", partCount)

	urls := make([]string, 0, partCount)
	for n := 1; n <= partCount; n++ {
		presigned, err := s.presigner.PresignUploadPart(ctx, &s3.UploadPartInput{
			Bucket:     aws.String(s.bucket),
			Key:        aws.String(key),
			UploadId:   aws.String(uploadID),
			PartNumber: aws.Int32(int32(n)),
		}, s3.WithPresignExpires(ttl))
		if err != nil {
			s.logger.Error("presign part failed", "key", key, "part", n, "error", err)
			return "", nil, fmt.Errorf("presign part %d: %w", n, err)
		}
		urls = append(urls, presigned.URL)
	}

	return uploadID, urls, nil
}

// CompleteMultipart assembles the object. Parts are submitted in ascending
// part number order regardless of how the caller ordered them.
func (s *S3Storage) CompleteMultipart(ctx context.Context, key, uploadID string, parts []repositories.Part) (string, error) {
	sorted := make([]repositories.Part, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	completed := make([]types.CompletedPart, 0, len(sorted))
	for _, p := range sorted {
		completed = append(completed, types.CompletedPart{
			ETag:       aws.String(p.ETag),
			PartNumber: aws.Int32(p.Number),
		})
	}

	out, err := s.client.CompleteMultipartUpload(ctx, &s3.CompleteMultipartUploadInput{
		Bucket:   aws.String(s.bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
		MultipartUpload: &types.CompletedMultipartUpload{
			Parts: completed,
		},
	})
	if err != nil {
		s.logger.Error("complete multipart upload failed", "key", key, "upload_id", uploadID, "error", err)
		return "", fmt.Errorf("complete multipart upload: %w", err)
	}

	s.logger.Info("multipart upload completed", "key", key, "upload_id", uploadID, "parts", len(completed))
	return aws.ToString(out.Location), nil
}

// AbortMultipart is idempotent: a NoSuchUpload answer counts as done.
func (s *S3Storage) AbortMultipart(ctx context.Context, key, uploadID string) error {
	_, err := s.client.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(s.bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchUpload" {
			s.logger.Info("abort skipped, upload already gone", "key", key, "upload_id", uploadID)
			return nil
		}
		s.logger.Error("abort multipart upload failed", "key", key, "upload_id", uploadID, "error", err)
		return fmt.Errorf("abort multipart upload: %w", err)
	}

	s.logger.Info("multipart upload aborted", "key", key, "upload_id", uploadID)
	return nil
}

// PublicURL resolves the externally visible URL: configured base + key,
// then the backend-reported location, then the bare key.
func (s *S3Storage) PublicURL(key, location string) string {
	if s.publicBaseURL != "" {
		return strings.TrimRight(s.publicBaseURL, "/") + "/" + key
	}
	if location != "" {
		return location
	}
	return key
}

// AbortStale aborts incomplete multipart uploads under prefix that were
// initiated more than maxAge ago. Abandoned browser sessions never abort
// themselves, so this is what keeps the bucket from accumulating orphans.
func (s *S3Storage) AbortStale(ctx context.Context, prefix string, maxAge time.Duration) (int, error) {
	out, err := s.client.ListMultipartUploads(ctx, &s3.ListMultipartUploadsInput{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return 0, fmt.Errorf("list multipart uploads: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	aborted := 0
	for _, u := range out.Uploads {
		if u.Initiated == nil || u.Initiated.After(cutoff) {
			continue
		}
		_, err := s.client.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
			Bucket:   aws.String(s.bucket),
			Key:      u.Key,
			UploadId: u.UploadId,
		})
		if err != nil {
			s.logger.Error("abort stale upload failed", "key", aws.ToString(u.Key), "upload_id", aws.ToString(u.UploadId), "error", err)
			continue
		}
		aborted++
	}

	if aborted > 0 {
		s.logger.Info("aborted stale multipart uploads", "prefix", prefix, "count", aborted)
	}
	return aborted, nil
}
