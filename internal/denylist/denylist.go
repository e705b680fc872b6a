package denylist

import (
	"log"
	"strings"
	"sync"
	"time"
)

// Source loads the full set of blacklisted transaction IDs. The routes
// wiring binds it to the database; tests pass a literal slice.
type Source func() ([]string, error)

// Denylist is an in-memory, case-insensitive set of known-bad payment
// transaction IDs. Lookups happen on every booking, so the set is cached
// and refreshed out of band instead of hitting storage per request.
type Denylist struct {
	mu     sync.RWMutex
	ids    map[string]struct{}
	source Source
}

func New(source Source) *Denylist {
	d := &Denylist{
		ids:    map[string]struct{}{},
		source: source,
	}

	if err := d.Refresh(); err != nil {
		log.Printf("denylist initial load failed: %v", err)
	}

	return d
}

// Contains reports whether the transaction ID is blacklisted, ignoring case.
func (d *Denylist) Contains(transactionID string) bool {
	key := strings.ToUpper(strings.TrimSpace(transactionID))

	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.ids[key]
	return ok
}

// Refresh reloads the set from the source. On error the previous set stays
// in place.
func (d *Denylist) Refresh() error {
	ids, err := d.source()
	if err != nil {
		return err
	}

	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		next[strings.ToUpper(strings.TrimSpace(id))] = struct{}{}
	}

	d.mu.Lock()
	d.ids = next
	d.mu.Unlock()

	return nil
}

// Size returns the number of blacklisted IDs currently loaded.
func (d *Denylist) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.ids)
}

// StartAutoRefresh reloads the set every interval until stop is closed.
func (d *Denylist) StartAutoRefresh(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := d.Refresh(); err != nil {
					log.Printf("denylist refresh failed: %v", err)
				}
			case <-stop:
				return
			}
		}
	}()
}
