package handlers

import (
	"io"
	"net/http"

	"github.com/accordflow/engine/internal/api/middleware"
	"github.com/accordflow/engine/internal/api/types"
	"github.com/accordflow/engine/internal/models"
	"github.com/accordflow/engine/internal/repository"
	"github.com/accordflow/engine/internal/resource"
	"github.com/accordflow/engine/internal/services"
)

// maxUploadBytes caps the multipart memory buffer, not the stored file;
// bytes beyond it spill to temp files per net/http.
const maxUploadBytes = 32 << 20

// DocumentsHandler serves the documents family: list/get/delete through the
// generic machinery, plus the multipart upload that replaces generic create.
type DocumentsHandler struct {
	*Resource[models.Document]
	svc services.DocumentService
}

func NewDocumentsHandler(repo repository.CrudRepository[models.Document], svc services.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{
		Resource: NewResource(resource.Documents, repo),
		svc:      svc,
	}
}

// Upload accepts multipart/form-data with contract_id, document_type and
// file. Only metadata is persisted; the bytes are read for size and checksum
// and then discarded.
func (h *DocumentsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeInvalid(w, "Invalid multipart form")
		return
	}

	contractID := r.FormValue("contract_id")
	if contractID == "" {
		writeInvalid(w, "Missing required field: contract_id")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeInvalid(w, "Missing required field: file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeInvalid(w, "Unreadable file upload")
		return
	}

	doc, err := h.svc.Upload(r.Context(), services.UploadInput{
		ContractID:   contractID,
		DocumentType: r.FormValue("document_type"),
		FileName:     header.Filename,
		UploadedBy:   middleware.GetUserID(r.Context()),
		Data:         data,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: doc})
}
