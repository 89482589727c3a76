package usecases

import (
	"context"

	"athlete-intake/internal/domain/dto"
	"athlete-intake/internal/domain/repositories"
	"athlete-intake/pkg/config"
	"athlete-intake/pkg/errors"
	"athlete-intake/pkg/file"
)

type UploadService interface {
	CreateMultipart(ctx context.Context, req *dto.CreateMultipartRequest) (*dto.CreateMultipartResponse, error)
	CompleteMultipart(ctx context.Context, req *dto.CompleteMultipartRequest) (*dto.CompleteMultipartResponse, error)
	AbortMultipart(ctx context.Context, req *dto.AbortMultipartRequest) (*dto.AbortMultipartResponse, error)
}

type uploadService struct {
	storage repositories.ObjectStorage
	cfg     config.UploadConfig
}

func NewUploadService(storage repositories.ObjectStorage, cfg config.UploadConfig) UploadService {
	return &uploadService{
		storage: storage,
		cfg:     cfg,
	}
}

// PartCount computes how many fixed-size parts a file of the given size
// needs. The declared size is client-reported and untrusted; nothing here
// verifies the bytes that eventually arrive. Ceiling via quotient plus
// remainder, since add-then-divide wraps around for sizes near MaxInt64.
func PartCount(size, partSize int64) int {
	if size <= 0 || partSize <= 0 {
		return 0
	}
	count := size / partSize
	if size%partSize != 0 {
		count++
	}
	return int(count)
}

func (s *uploadService) CreateMultipart(ctx context.Context, req *dto.CreateMultipartRequest) (*dto.CreateMultipartResponse, error) {
	if req.Filename == "" {
		return nil, errors.ErrBadRequest("filename is required")
	}
	if req.Size <= 0 {
		return nil, errors.ErrBadRequest("size must be positive")
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	partCount := PartCount(req.Size, s.cfg.PartSize)
	if partCount < 1 || partCount > s.cfg.MaxParts {
		return nil, errors.ErrTooManyParts(partCount, s.cfg.MaxParts)
	}

	key := file.MakeKey(s.cfg.KeyPrefix, req.Filename)

	uploadID, urls, err := s.storage.CreateMultipart(ctx, key, contentType, partCount, s.cfg.PresignTTL)
	if err != nil {
		return nil, errors.ErrStorage("cannot initiate upload", err)
	}

	return &dto.CreateMultipartResponse{
		UploadID: uploadID,
		Key:      key,
		PartSize: s.cfg.PartSize,
		URLs:     urls,
	}, nil
}

func (s *uploadService) CompleteMultipart(ctx context.Context, req *dto.CompleteMultipartRequest) (*dto.CompleteMultipartResponse, error) {
	if req.Key == "" || req.UploadID == "" {
		return nil, errors.ErrBadRequest("key and uploadId are required")
	}
	if len(req.Parts) == 0 {
		return nil, errors.ErrBadRequest("parts must not be empty")
	}

	parts := make([]repositories.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.ETag == "" || p.PartNumber < 1 {
			return nil, errors.ErrBadRequest("each part needs an ETag and a positive PartNumber")
		}
		parts = append(parts, repositories.Part{Number: p.PartNumber, ETag: p.ETag})
	}

	location, err := s.storage.CompleteMultipart(ctx, req.Key, req.UploadID, parts)
	if err != nil {
		return nil, errors.ErrStorage("cannot complete upload", err)
	}

	return &dto.CompleteMultipartResponse{
		Ok:      true,
		FileURL: s.storage.PublicURL(req.Key, location),
		Key:     req.Key,
	}, nil
}

func (s *uploadService) AbortMultipart(ctx context.Context, req *dto.AbortMultipartRequest) (*dto.AbortMultipartResponse, error) {
	if req.Key == "" || req.UploadID == "" {
		return nil, errors.ErrBadRequest("key and uploadId are required")
	}

	if err := s.storage.AbortMultipart(ctx, req.Key, req.UploadID); err != nil {
		return nil, errors.ErrStorage("cannot abort upload", err)
	}

	return &dto.AbortMultipartResponse{Ok: true}, nil
}
