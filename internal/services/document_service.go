package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/accordflow/engine/internal/models"
	"github.com/accordflow/engine/internal/repository"
	"github.com/accordflow/engine/pkg/logger"
	"github.com/accordflow/engine/pkg/utils"
)

// UploadInput carries one multipart upload. Data is read once to take its
// size and checksum; the bytes themselves are not persisted here.
type UploadInput struct {
	ContractID   string
	DocumentType string
	FileName     string
	UploadedBy   string
	Data         []byte
}

type DocumentService interface {
	Upload(ctx context.Context, in UploadInput) (*models.Document, error)
}

type documentService struct {
	docs     repository.CrudRepository[models.Document]
	basePath string
}

func NewDocumentService(docs repository.CrudRepository[models.Document], basePath string) DocumentService {
	return &documentService{docs: docs, basePath: strings.TrimRight(basePath, "/")}
}

func (s *documentService) Upload(ctx context.Context, in UploadInput) (*models.Document, error) {
	doc := &models.Document{
		ContractID:   in.ContractID,
		DocumentType: in.DocumentType,
		FileName:     in.FileName,
		FileSize:     int64(len(in.Data)),
		FilePath:     fmt.Sprintf("%s/%s/%s_%s", s.basePath, in.ContractID, uuid.NewString(), in.FileName),
		Checksum:     utils.SumSHA256(in.Data),
		UploadedBy:   in.UploadedBy,
	}

	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}

	logger.L().Info("document uploaded",
		zap.String("contract_id", doc.ContractID),
		zap.String("file_name", doc.FileName),
		zap.Int64("file_size", doc.FileSize))
	return doc, nil
}
