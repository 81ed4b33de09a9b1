package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/interact"
	"github.com/ayusman/mudra/internal/scene"
	"github.com/ayusman/mudra/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// SessionHandler runs one interaction session per WebSocket connection.
// The client streams scene snapshots and recognizer frames in; each frame
// message is answered with the events and feedback it produced.
type SessionHandler struct {
	store *store.Store
}

// NewSessionHandler creates a SessionHandler. With a nil store, sessions
// run without recording.
func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{store: st}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.run(conn)
}

// run drives one connection until the client goes away.
func (h *SessionHandler) run(conn *websocket.Conn) {
	surface := scene.New()
	feedback := &frameFeedback{}
	events := make([]interact.Event, 0, 16)

	session := interact.New(interact.Config{
		Surface:  surface,
		Feedback: feedback,
		Handler: func(ev interact.Event) {
			events = append(events, ev)
		},
		Source: "hand",
	})

	var recorded *store.Session
	if h.store != nil {
		rec, err := h.store.Sessions().Begin("websocket")
		if err != nil {
			log.Printf("failed to begin recorded session: %v", err)
		} else {
			recorded = rec
			defer func() {
				if err := h.store.Sessions().End(rec.ID); err != nil {
					log.Printf("failed to end recorded session %s: %v", rec.ID, err)
				}
			}()
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.writeError(conn, "invalid message")
			continue
		}

		switch msg.Type {
		case msgScene:
			if msg.Scene == nil {
				h.writeError(conn, "scene message without scene payload")
				continue
			}
			session.SetCanvas(msg.Scene.Canvas)
			surface.Replace(scene.Snapshot{
				Elements: msg.Scene.Elements,
				Region:   msg.Scene.Region,
			})

		case msgFrame:
			events = events[:0]
			feedback.reset()

			session.Process(msg.Frame, msg.DrawOnly)

			h.record(recorded, events)

			resp := resultMessage{Type: msgResult, Events: events}
			if resp.Events == nil {
				resp.Events = []interact.Event{}
			}
			if !feedback.empty() {
				resp.Feedback = feedback
			}
			if err := conn.WriteJSON(resp); err != nil {
				return
			}

		default:
			h.writeError(conn, "unknown message type")
		}
	}
}

// record appends the frame's events to the recorded session, if any.
func (h *SessionHandler) record(recorded *store.Session, events []interact.Event) {
	if recorded == nil {
		return
	}
	for _, ev := range events {
		if err := h.store.Events().Append(store.FromInteract(recorded.ID, ev)); err != nil {
			log.Printf("failed to record event: %v", err)
			return
		}
	}
}

func (h *SessionHandler) writeError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(errorMessage{Type: msgError, Error: message}); err != nil {
		log.Printf("failed to write error message: %v", err)
	}
}
