package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/minipousses/farmtour/internal/farmtour"
)

// Document types stored as JSONB in per-model tables.

type gameDoc struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type zoneDoc struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageRef    string   `json:"imageRef"`
	VideoRef    string   `json:"videoRef"`
	AudioRef    string   `json:"audioRef"`
	CTAText     string   `json:"ctaText"`
	CTATarget   string   `json:"ctaTarget"`
	Game        *gameDoc `json:"game"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type sessionDoc struct {
	ID           string   `json:"id"`
	VisitedZones []string `json:"visitedZones"`
	TotalZones   int      `json:"totalZones"`
	CreatedAt    string   `json:"createdAt"`
	LastActivity string   `json:"lastActivity"`
}

const timeLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

func zoneToDoc(z farmtour.Zone) zoneDoc {
	d := zoneDoc{
		ID:          z.ID,
		Name:        z.Name,
		Description: z.Description,
		ImageRef:    z.ImageRef,
		VideoRef:    z.VideoRef,
		AudioRef:    z.AudioRef,
		CTAText:     z.CTAText,
		CTATarget:   z.CTATarget,
		CreatedAt:   formatTime(z.CreatedAt),
		UpdatedAt:   formatTime(z.UpdatedAt),
	}
	if z.Game != nil {
		d.Game = &gameDoc{
			ID:            z.Game.ID,
			Type:          string(z.Game.Type),
			Question:      z.Game.Question,
			Options:       z.Game.Options,
			CorrectAnswer: z.Game.CorrectAnswer,
			Explanation:   z.Game.Explanation,
		}
	}
	return d
}

func docToZone(d zoneDoc) farmtour.Zone {
	z := farmtour.Zone{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ImageRef:    d.ImageRef,
		VideoRef:    d.VideoRef,
		AudioRef:    d.AudioRef,
		CTAText:     d.CTAText,
		CTATarget:   d.CTATarget,
		CreatedAt:   parseTime(d.CreatedAt),
		UpdatedAt:   parseTime(d.UpdatedAt),
	}
	if d.Game != nil {
		z.Game = &farmtour.Game{
			ID:            d.Game.ID,
			Type:          farmtour.GameType(d.Game.Type),
			Question:      d.Game.Question,
			Options:       d.Game.Options,
			CorrectAnswer: d.Game.CorrectAnswer,
			Explanation:   d.Game.Explanation,
		}
	}
	return z
}

func sessionToDoc(s farmtour.VisitorSession) sessionDoc {
	return sessionDoc{
		ID:           s.ID,
		VisitedZones: s.VisitedZoneIDs(),
		TotalZones:   s.TotalZones,
		CreatedAt:    formatTime(s.CreatedAt),
		LastActivity: formatTime(s.LastActivity),
	}
}

func docToSession(d sessionDoc) farmtour.VisitorSession {
	visited := make(map[string]struct{}, len(d.VisitedZones))
	for _, id := range d.VisitedZones {
		visited[id] = struct{}{}
	}
	return farmtour.VisitorSession{
		ID:           d.ID,
		VisitedZones: visited,
		TotalZones:   d.TotalZones,
		CreatedAt:    parseTime(d.CreatedAt),
		LastActivity: parseTime(d.LastActivity),
	}
}

// SQLiteStore implements Store using per-model tables with JSONB data
// columns.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Generic helpers shared by both tables.

func (s *SQLiteStore) get(ctx context.Context, table, id string, dest any) error {
	var data string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT json(data) FROM %s WHERE id = ?`, table), id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (s *SQLiteStore) put(ctx context.Context, table, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, data) VALUES (?, jsonb(?))
			ON CONFLICT(id) DO UPDATE SET data = excluded.data`, table),
		id, string(data),
	)
	return err
}

func (s *SQLiteStore) del(ctx context.Context, table, id string) error {
	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Zone catalog

func (s *SQLiteStore) ListZones(ctx context.Context) ([]farmtour.Zone, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT json(data) FROM zones ORDER BY rowid`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []farmtour.Zone
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var d zoneDoc
		if err := json.Unmarshal([]byte(data), &d); err != nil {
			return nil, err
		}
		zones = append(zones, docToZone(d))
	}
	return zones, rows.Err()
}

func (s *SQLiteStore) CreateZone(ctx context.Context, zone farmtour.Zone) error {
	return s.put(ctx, "zones", zone.ID, zoneToDoc(zone))
}

func (s *SQLiteStore) GetZone(ctx context.Context, id string) (farmtour.Zone, error) {
	var d zoneDoc
	if err := s.get(ctx, "zones", id, &d); err != nil {
		return farmtour.Zone{}, err
	}
	return docToZone(d), nil
}

func (s *SQLiteStore) UpdateZone(ctx context.Context, id string, zone farmtour.Zone) (farmtour.Zone, error) {
	var updated farmtour.Zone
	err := s.modify(ctx, "zones", id, func(data []byte) ([]byte, error) {
		var existing zoneDoc
		if err := json.Unmarshal(data, &existing); err != nil {
			return nil, err
		}
		zone.ID = existing.ID
		zone.CreatedAt = parseTime(existing.CreatedAt)
		updated = zone
		return json.Marshal(zoneToDoc(zone))
	})
	if err != nil {
		return farmtour.Zone{}, err
	}
	return updated, nil
}

func (s *SQLiteStore) DeleteZone(ctx context.Context, id string) error {
	return s.del(ctx, "zones", id)
}

func (s *SQLiteStore) CountZones(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM zones`).Scan(&count)
	return count, err
}

// Visitor sessions

func (s *SQLiteStore) CreateSession(ctx context.Context, sess farmtour.VisitorSession) error {
	return s.put(ctx, "visitor_sessions", sess.ID, sessionToDoc(sess))
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (farmtour.VisitorSession, error) {
	var d sessionDoc
	if err := s.get(ctx, "visitor_sessions", id, &d); err != nil {
		return farmtour.VisitorSession{}, err
	}
	return docToSession(d), nil
}

// RecordVisit re-reads the session document inside its transaction before
// mutating, so concurrent visits for the same session serialize at the
// storage layer and union instead of clobbering each other.
func (s *SQLiteStore) RecordVisit(ctx context.Context, sessionID, zoneID string, at time.Time) (int, error) {
	var count int
	err := s.modify(ctx, "visitor_sessions", sessionID, func(data []byte) ([]byte, error) {
		var d sessionDoc
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		sess := docToSession(d)
		sess.Visit(zoneID)
		sess.LastActivity = at
		count = sess.VisitedCount()
		return json.Marshal(sessionToDoc(sess))
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// modify loads a document, applies fn, and saves the result in a single
// transaction. Returns ErrNotFound if no row has the id.
func (s *SQLiteStore) modify(ctx context.Context, table, id string, fn func([]byte) ([]byte, error)) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var data string
	err = tx.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT json(data) FROM %s WHERE id = ?`, table), id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	out, err := fn([]byte(data))
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET data = jsonb(?) WHERE id = ?`, table),
		string(out), id,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}
