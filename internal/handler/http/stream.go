package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wmoldes/roster-backend/internal/domain/realtime"
	"github.com/wmoldes/roster-backend/internal/pkg/sse"
)

const streamKeepalive = 30 * time.Second

type StreamHandler interface {
	// Stream sends the roster snapshot on connect and again on every change
	Stream(w http.ResponseWriter, r *http.Request)
}

type streamHandlerImpl struct {
	broadcaster realtime.Broadcaster
	hub         *sse.Hub
	keepalive   time.Duration
}

func NewStreamHandler(broadcaster realtime.Broadcaster, hub *sse.Hub) StreamHandler {
	return &streamHandlerImpl{
		broadcaster: broadcaster,
		hub:         hub,
		keepalive:   streamKeepalive,
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

// Stream handles the SSE connection for roster snapshots
func (h *streamHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Subscribe before the first snapshot so no change is missed in between
	events, cleanup := h.hub.Subscribe(realtime.TopicEmployees)
	defer func() {
		cleanup()
		slog.Debug("Roster stream closed", "subscribers", h.hub.TotalSubscribers())
	}()
	slog.Debug("Roster stream opened", "subscribers", h.hub.TotalSubscribers())

	snapshot, err := h.broadcaster.Snapshot(r.Context())
	if err != nil {
		slog.Error("Initial roster snapshot failed", "error", err)
		http.Error(w, "Failed to load roster", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	if err := writeEvent(w, flusher, realtime.EventConnected, map[string]string{"topic": realtime.TopicEmployees}); err != nil {
		return
	}
	if err := writeEvent(w, flusher, realtime.EventSnapshot, snapshot); err != nil {
		return
	}

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, flusher, event.Event, event.Data); err != nil {
				slog.Debug("Roster stream write failed", "error", err)
				return
			}

		case <-keepalive.C:
			if err := writeEvent(w, flusher, realtime.EventPing, map[string]int64{"timestamp": time.Now().Unix()}); err != nil {
				return
			}

		case <-r.Context().Done():
			return
		}
	}
}
