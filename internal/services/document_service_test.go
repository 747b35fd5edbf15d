package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/accordflow/engine/internal/models"
	"github.com/accordflow/engine/internal/repository"
)

type mockDocumentRepo struct {
	mock.Mock
}

func (m *mockDocumentRepo) List(ctx context.Context, opts repository.ListOptions) ([]models.Document, int64, error) {
	args := m.Called(ctx, opts)
	var items []models.Document
	if v := args.Get(0); v != nil {
		items = v.([]models.Document)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockDocumentRepo) Create(ctx context.Context, obj *models.Document) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, id uuid.UUID, dest *models.Document) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockDocumentRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any, dest *models.Document) error {
	args := m.Called(ctx, id, fields, dest)
	return args.Error(0)
}

func (m *mockDocumentRepo) Delete(ctx context.Context, id uuid.UUID, dest *models.Document) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func TestDocumentUploadDerivesMetadata(t *testing.T) {
	repo := new(mockDocumentRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(nil)

	data := []byte("signed contract pdf")
	sum := sha256.Sum256(data)

	svc := NewDocumentService(repo, "/storage/contracts/")
	doc, err := svc.Upload(context.Background(), UploadInput{
		ContractID:   "CX-100",
		DocumentType: "signed",
		FileName:     "msa.pdf",
		UploadedBy:   "u-1",
		Data:         data,
	})
	require.NoError(t, err)

	require.Equal(t, "CX-100", doc.ContractID)
	require.Equal(t, int64(len(data)), doc.FileSize)
	require.Equal(t, hex.EncodeToString(sum[:]), doc.Checksum)
	require.Equal(t, "u-1", doc.UploadedBy)
	// trailing slash on the base path must not double up
	require.True(t, strings.HasPrefix(doc.FilePath, "/storage/contracts/CX-100/"))
	require.True(t, strings.HasSuffix(doc.FilePath, "_msa.pdf"))
	repo.AssertExpectations(t)
}

func TestDocumentUploadPropagatesRepoError(t *testing.T) {
	repo := new(mockDocumentRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	svc := NewDocumentService(repo, "/storage/contracts")
	_, err := svc.Upload(context.Background(), UploadInput{ContractID: "CX-100", FileName: "x.pdf"})
	require.Error(t, err)
}
