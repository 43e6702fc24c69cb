package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-payroll/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/sse"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	hub               *sse.Hub
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, hub *sse.Hub) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		hub:               hub,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-in request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in recorded - "+string(result.Status), result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-out request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out recorded", result)
}

// dateParam reads ?date=, defaulting to today.
func (h *attendanceHandlerImpl) dateParam(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return h.attendanceService.Today()
}

// Daily implements AttendanceHandler.
func (h *attendanceHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.DailyReport(r.Context(), h.dateParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.DailySummary(r.Context(), h.dateParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func writeEvent(w http.ResponseWriter, rc *http.ResponseController, name string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to encode stream event", "event", name, "error", err)
		return nil
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload); err != nil {
		return err
	}
	return rc.Flush()
}

// Stream implements AttendanceHandler. It pushes every check-in and check-out
// of the day as it happens, each followed by the refreshed daily summary.
func (h *attendanceHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		response.NotFound(w, "Live attendance is not enabled")
		return
	}

	date := h.dateParam(r)
	summary, err := h.attendanceService.DailySummary(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rc := http.NewResponseController(w)

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(date)
	defer cleanup()

	if err := writeEvent(w, rc, "connected", summary); err != nil {
		slog.Error("Streaming not supported", "error", err)
		return
	}

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, rc, event.Event, event.Data); err != nil {
				return
			}

			summary, err := h.attendanceService.DailySummary(r.Context(), date)
			if err != nil {
				slog.Error("Failed to refresh daily summary", "date", date, "error", err)
				continue
			}
			if err := writeEvent(w, rc, "summary", summary); err != nil {
				return
			}

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			if err := rc.Flush(); err != nil {
				return
			}

		case <-r.Context().Done():
			return
		}
	}
}
