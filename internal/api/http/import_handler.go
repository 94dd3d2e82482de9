package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"rosterhub-backend/internal/domain"
	"rosterhub-backend/internal/logger"
	"rosterhub-backend/internal/service"
	"rosterhub-backend/internal/spreadsheet"
)

// ImportHandler runs the bulk provisioning pipeline for uploaded files and
// keeps finished batches in memory so their failure manifest can be
// downloaded afterwards.
type ImportHandler struct {
	imports      service.ImportService
	maxFileBytes int64

	mu      sync.Mutex
	batches map[string]*finishedBatch
}

type finishedBatch struct {
	result     *domain.BatchResult
	rejections []domain.RejectedRow
}

func NewImportHandler(imports service.ImportService, maxFileBytes int64) *ImportHandler {
	return &ImportHandler{
		imports:      imports,
		maxFileBytes: maxFileBytes,
		batches:      make(map[string]*finishedBatch),
	}
}

type importResponse struct {
	Summary    service.BatchSummary `json:"summary"`
	Result     *domain.BatchResult  `json:"result"`
	Rejections []domain.RejectedRow `json:"rejections"`
}

// Upload accepts a multipart spreadsheet upload under the "file" field and
// runs the whole batch before responding.
func (h *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileBytes)
	if err := r.ParseMultipartForm(h.maxFileBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d byte limit", h.maxFileBytes))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	logger.Info("Starting bulk import", "file", header.Filename, "bytes", len(data))

	result, rejections, err := h.imports.ImportFile(r.Context(), header.Filename, data, func(p domain.ImportProgress) {
		logger.Debug("Import progress",
			"processed", p.Processed,
			"total", p.Total,
			"succeeded", p.SuccessCount,
			"failed", p.FailedCount,
			"current", p.CurrentEmail)
	})
	if err != nil {
		switch {
		case errors.Is(err, spreadsheet.ErrUnsupportedFormat),
			errors.Is(err, spreadsheet.ErrEmptyFile),
			errors.Is(err, service.ErrMissingRequiredColumn):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Error("Bulk import failed", "file", header.Filename, "error", err)
			writeError(w, http.StatusInternalServerError, "import failed")
		}
		return
	}

	h.mu.Lock()
	h.batches[result.BatchID] = &finishedBatch{result: result, rejections: rejections}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, importResponse{
		Summary:    service.Summarize(result, rejections),
		Result:     result,
		Rejections: rejections,
	})
}

// Manifest serves the email,error CSV for a finished batch.
func (h *ImportHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	batchID := mux.Vars(r)["batchID"]

	h.mu.Lock()
	batch, ok := h.batches[batchID]
	h.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "unknown batch")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "import-errors-"+batchID+".csv"))
	if err := service.WriteFailureManifest(w, batch.result, batch.rejections); err != nil {
		logger.Error("Failed to write failure manifest", "batch_id", batchID, "error", err)
	}
}
