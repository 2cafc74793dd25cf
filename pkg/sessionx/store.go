package sessionx

import (
	"context"
	"errors"
	"maps"
	"time"
)

// ErrNotFound is returned by a Store for missing or idle-expired records.
var ErrNotFound = errors.New("sessionx: session not found")

// Record is the persisted state of one session.
type Record struct {
	Values         map[string]string `json:"values"`
	CreatedAt      time.Time         `json:"createdAt"`
	LastAccessedAt time.Time         `json:"lastAccessedAt"`
	MaxInactive    time.Duration     `json:"maxInactive"`
}

// Expired reports whether the record has been idle for at least MaxInactive.
// A non-positive MaxInactive never expires.
func (r Record) Expired(now time.Time) bool {
	return r.MaxInactive > 0 && now.Sub(r.LastAccessedAt) >= r.MaxInactive
}

func (r Record) clone() Record {
	r.Values = maps.Clone(r.Values)
	if r.Values == nil {
		r.Values = make(map[string]string)
	}
	return r
}

// Store persists session records by key.
type Store interface {
	// Get returns the record for key or ErrNotFound.
	Get(ctx context.Context, key string) (Record, error)

	// Save creates or replaces the record for key.
	Save(ctx context.Context, key string, rec Record) error

	// Touch sets LastAccessedAt on an existing record and returns it. A
	// missing or idle-expired record yields ErrNotFound and is not recreated.
	Touch(ctx context.Context, key string, at time.Time) (Record, error)

	// Delete removes the record for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteExpired drops idle-expired records and reports how many went.
	// Stores with native expiry may return zero.
	DeleteExpired(ctx context.Context) (int, error)

	Ping(ctx context.Context) error
}
