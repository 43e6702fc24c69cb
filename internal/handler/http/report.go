package http

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/report"
	"github.com/cmlabs-hris/attendance-payroll/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	ExportPayroll(w http.ResponseWriter, r *http.Request)
	ListExports(w http.ResponseWriter, r *http.Request)
	DownloadExport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	today         func() string
	exports       storage.FileStorage
}

// NewReportHandler serves on-demand exports. exports may be nil when no export
// directory is configured; the stored export routes then answer 404.
func NewReportHandler(reportService report.ReportService, today func() string, exports storage.FileStorage) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		today:         today,
		exports:       exports,
	}
}

func formatParam(r *http.Request) report.Format {
	if f := r.URL.Query().Get("format"); f != "" {
		return report.Format(f)
	}
	return report.FormatCSV
}

func writeFile(w http.ResponseWriter, file report.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Body); err != nil {
		slog.Error("Failed to write export", "file", file.Name, "error", err)
	}
}

// ExportAttendance implements ReportHandler.
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.today()
	}

	file, err := h.reportService.ExportAttendance(r.Context(), date, formatParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeFile(w, file)
}

// ExportPayroll implements ReportHandler.
func (h *reportHandlerImpl) ExportPayroll(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ExportPayroll(r.Context(), r.URL.Query().Get("month"), formatParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeFile(w, file)
}

// ListExports implements ReportHandler.
func (h *reportHandlerImpl) ListExports(w http.ResponseWriter, r *http.Request) {
	if h.exports == nil {
		response.Success(w, []storage.Object{})
		return
	}

	objects, err := h.exports.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if objects == nil {
		objects = []storage.Object{}
	}

	response.Success(w, objects)
}

// DownloadExport implements ReportHandler.
func (h *reportHandlerImpl) DownloadExport(w http.ResponseWriter, r *http.Request) {
	if h.exports == nil {
		response.HandleError(w, storage.ErrNotFound)
		return
	}

	name := chi.URLParam(r, "name")
	rc, err := h.exports.Download(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	contentType := report.FormatCSV.ContentType()
	if path.Ext(name) == "."+string(report.FormatXLSX) {
		contentType = report.FormatXLSX.ContentType()
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(name)}))
	if _, err := io.Copy(w, rc); err != nil {
		slog.Error("Failed to stream export", "file", name, "error", err)
	}
}
