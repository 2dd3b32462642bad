package server

import (
	"context"
	"errors"
	"time"

	"github.com/minipousses/farmtour/internal/farmtour"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence boundary for the zone catalog and the visitor
// session tracker. Handlers receive it injected, so tests can run against
// an in-memory database.
type Store interface {
	ListZones(ctx context.Context) ([]farmtour.Zone, error)
	CreateZone(ctx context.Context, zone farmtour.Zone) error
	GetZone(ctx context.Context, id string) (farmtour.Zone, error)
	// UpdateZone replaces every mutable field of the zone, keeping id and
	// created_at from the stored record. All-or-nothing.
	UpdateZone(ctx context.Context, id string, zone farmtour.Zone) (farmtour.Zone, error)
	// DeleteZone removes the zone. Deleting a missing id — including a
	// second delete of the same id — returns ErrNotFound.
	DeleteZone(ctx context.Context, id string) error
	CountZones(ctx context.Context) (int, error)

	CreateSession(ctx context.Context, sess farmtour.VisitorSession) error
	GetSession(ctx context.Context, id string) (farmtour.VisitorSession, error)
	// RecordVisit adds zoneID to the session's visited set and stamps
	// last_activity, returning the resulting visited count. The zone id is
	// deliberately not checked against the catalog. Concurrent calls for
	// the same session compose as set-union.
	RecordVisit(ctx context.Context, sessionID, zoneID string, at time.Time) (int, error)
}
