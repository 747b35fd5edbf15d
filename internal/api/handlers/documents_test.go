package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/accordflow/engine/internal/models"
	"github.com/accordflow/engine/internal/services"
)

type mockDocumentService struct {
	mock.Mock
}

func (m *mockDocumentService) Upload(ctx context.Context, in services.UploadInput) (*models.Document, error) {
	args := m.Called(ctx, in)
	if doc, ok := args.Get(0).(*models.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func multipartBody(t *testing.T, fields map[string]string, fileName string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestDocumentUpload(t *testing.T) {
	svc := new(mockDocumentService)
	svc.On("Upload", mock.Anything, mock.MatchedBy(func(in services.UploadInput) bool {
		return in.ContractID == "CX-100" &&
			in.DocumentType == "signed" &&
			in.FileName == "msa.pdf" &&
			string(in.Data) == "pdf-bytes"
	})).Return(&models.Document{ContractID: "CX-100", FileName: "msa.pdf"}, nil)

	h := NewDocumentsHandler(new(mockCrudRepo[models.Document]), svc)

	body, ct := multipartBody(t, map[string]string{
		"contract_id":   "CX-100",
		"document_type": "signed",
	}, "msa.pdf", []byte("pdf-bytes"))

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	require.Equal(t, "msa.pdf", resp.Data.(map[string]any)["file_name"])
	svc.AssertExpectations(t)
}

func TestDocumentUploadMissingContractID(t *testing.T) {
	svc := new(mockDocumentService)
	h := NewDocumentsHandler(new(mockCrudRepo[models.Document]), svc)

	body, ct := multipartBody(t, nil, "msa.pdf", []byte("pdf-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing required field: contract_id", decodeResponse(t, rec).Error)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestDocumentUploadMissingFile(t *testing.T) {
	svc := new(mockDocumentService)
	h := NewDocumentsHandler(new(mockCrudRepo[models.Document]), svc)

	body, ct := multipartBody(t, map[string]string{"contract_id": "CX-100"}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Missing required field: file", decodeResponse(t, rec).Error)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}
