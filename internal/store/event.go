package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/ayusman/mudra/internal/interact"
)

// Event is one recorded pointer event row.
type Event struct {
	ID         int64
	SessionID  string
	Kind       string
	Hand       string
	ScreenX    *float64
	ScreenY    *float64
	Scale      *float64
	OffsetX    *float64
	OffsetY    *float64
	TargetID   string
	TargetKind string
	OccurredAt time.Time
}

// FromInteract flattens an interaction event into a storable row.
func FromInteract(sessionID string, ev interact.Event) *Event {
	row := &Event{
		SessionID:  sessionID,
		Kind:       string(ev.Kind),
		Hand:       string(ev.Hand),
		OccurredAt: ev.Time,
	}
	if ev.Point != nil {
		x, y := ev.Point.Screen.X, ev.Point.Screen.Y
		row.ScreenX, row.ScreenY = &x, &y
	}
	if ev.Transform != nil {
		s, x, y := ev.Transform.Scale, ev.Transform.X, ev.Transform.Y
		row.Scale, row.OffsetX, row.OffsetY = &s, &x, &y
	}
	if ev.Target != nil {
		row.TargetID = ev.Target.ID
		row.TargetKind = string(ev.Target.Kind)
	}
	return row
}

// Transform rebuilds the view transform carried by the row, if any.
func (e *Event) Transform() *interact.Transform {
	if e.Scale == nil {
		return nil
	}
	return &interact.Transform{Scale: *e.Scale, X: *e.OffsetX, Y: *e.OffsetY}
}

// EventRepository provides operations on recorded events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Append records one event under a session.
func (r *EventRepository) Append(e *Event) error {
	result, err := r.db.Exec(
		`INSERT INTO events (session_id, kind, hand, screen_x, screen_y,
		                     scale, offset_x, offset_y, target_id, target_kind, occurred_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.Kind, e.Hand, e.ScreenX, e.ScreenY,
		e.Scale, e.OffsetX, e.OffsetY, e.TargetID, e.TargetKind, e.OccurredAt,
	)
	if err != nil {
		return err
	}

	e.ID, err = result.LastInsertId()
	return err
}

// ListBySession retrieves all events of a session in insertion order.
func (r *EventRepository) ListBySession(sessionID string) ([]*Event, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, kind, hand, screen_x, screen_y,
		        scale, offset_x, offset_y, target_id, target_kind, occurred_at
		 FROM events WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		var sx, sy, scale, ox, oy sql.NullFloat64

		err := rows.Scan(&e.ID, &e.SessionID, &e.Kind, &e.Hand, &sx, &sy,
			&scale, &ox, &oy, &e.TargetID, &e.TargetKind, &e.OccurredAt)
		if err != nil {
			return nil, err
		}

		if sx.Valid {
			e.ScreenX, e.ScreenY = &sx.Float64, &sy.Float64
		}
		if scale.Valid {
			e.Scale, e.OffsetX, e.OffsetY = &scale.Float64, &ox.Float64, &oy.Float64
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// CountBySession returns the number of events recorded under a session.
func (r *EventRepository) CountBySession(sessionID string) (int, error) {
	var n int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM events WHERE session_id = ?`, sessionID,
	).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
