package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wmoldes/roster-backend/internal/domain/export"
	"github.com/wmoldes/roster-backend/internal/handler/http/response"
)

type ExportHandler interface {
	// ExportEmployees downloads the filtered roster as CSV or XLSX
	ExportEmployees(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandlerImpl{exportService: exportService}
}

// ExportEmployees implements ExportHandler
func (h *exportHandlerImpl) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.exportService.Export(r.Context(), format, filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Body); err != nil {
		slog.Error("Export write error", "error", err)
	}
}
