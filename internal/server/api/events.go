package api

import (
	"errors"
	"net/http"

	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/interact"
	"github.com/ayusman/mudra/internal/store"
)

// EventsHandler handles HTTP requests for recorded events.
type EventsHandler struct {
	store *store.Store
}

// NewEventsHandler creates a new EventsHandler with the given store.
func NewEventsHandler(s *store.Store) *EventsHandler {
	return &EventsHandler{store: s}
}

type eventResponse struct {
	ID         int64               `json:"id"`
	Kind       string              `json:"kind"`
	Hand       string              `json:"hand,omitempty"`
	Screen     *geom.Point         `json:"screen,omitempty"`
	Transform  *interact.Transform `json:"transform,omitempty"`
	TargetID   string              `json:"target_id,omitempty"`
	TargetKind string              `json:"target_kind,omitempty"`
	OccurredAt string              `json:"occurred_at"`
}

type listEventsResponse struct {
	Session string          `json:"session"`
	Events  []eventResponse `json:"events"`
}

func toEventResponse(e *store.Event) eventResponse {
	resp := eventResponse{
		ID:         e.ID,
		Kind:       e.Kind,
		Hand:       e.Hand,
		Transform:  e.Transform(),
		TargetID:   e.TargetID,
		TargetKind: e.TargetKind,
		OccurredAt: e.OccurredAt.Format(timeFormat),
	}
	if e.ScreenX != nil {
		resp.Screen = &geom.Point{X: *e.ScreenX, Y: *e.ScreenY}
	}
	return resp
}

// ServeHTTP handles GET /api/events?session={id}.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session parameter")
		return
	}

	if _, err := h.store.Sessions().GetByID(sessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	events, err := h.store.Events().ListBySession(sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	resp := listEventsResponse{
		Session: sessionID,
		Events:  make([]eventResponse, 0, len(events)),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, toEventResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}
