package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/domain/checkin"
	"github.com/cmlabs-hris/attendance-client/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/jwt"
)

const streamKeepalive = 30 * time.Second

type CheckInHandler interface {
	// Window returns whether check-in is open right now
	Window(w http.ResponseWriter, r *http.Request)
	// Stream pushes window changes over SSE
	Stream(w http.ResponseWriter, r *http.Request)
	// Options lists the selectable check-in statuses
	Options(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
}

type checkInHandlerImpl struct {
	checkInService checkin.CheckInService
}

func NewCheckInHandler(checkInService checkin.CheckInService) CheckInHandler {
	return &checkInHandlerImpl{checkInService: checkInService}
}

// Window handles GET /checkin/window
func (h *checkInHandlerImpl) Window(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.checkInService.Window(r.Context()))
}

// Options handles GET /checkin/options
func (h *checkInHandlerImpl) Options(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.checkInService.Options(r.Context()))
}

// CheckIn handles POST /checkin
func (h *checkInHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	session, err := jwt.SessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req checkin.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.checkInService.CheckIn(r.Context(), session, req)
	if err != nil {
		slog.Error("CheckIn service error", "employee_id", session.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in recorded", result)
}

// Stream handles GET /checkin/window/stream
func (h *checkInHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.checkInService.Subscribe(r.Context())
	defer cleanup()

	// Send initial connection event
	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Error("Stream encode error", "event", event.Event, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
