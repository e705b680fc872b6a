package serial

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"
)

const counterPrefix = "appointment-"

// CounterStore is the persisted monotonic counter the allocator leans on.
// Implementations must make the increment atomic.
type CounterStore interface {
	IncrementCounter(ctx context.Context, name string) (int64, error)
}

// Allocator hands out month-scoped booking serials: the YYYYMM bucket
// followed by a 4-digit zero-padded counter value, as one integer
// (2025050007 is booking #7 of May 2025).
type Allocator struct {
	store CounterStore
	now   func() time.Time
}

func New(store CounterStore) *Allocator {
	return &Allocator{
		store: store,
		now:   time.Now,
	}
}

// NewWithClock pins the clock, for tests and backfills.
func NewWithClock(store CounterStore, now func() time.Time) *Allocator {
	return &Allocator{
		store: store,
		now:   now,
	}
}

// Allocate returns the next serial for the current month. It never fails:
// when the counter store is unreachable it degrades to a timestamp-derived
// serial and reports degraded=true. A degraded serial is not guaranteed
// unique and must be surfaced to operators by the caller.
func (a *Allocator) Allocate(ctx context.Context) (serial int64, degraded bool) {
	now := a.now()
	bucket := Bucket(now)

	value, err := a.store.IncrementCounter(ctx, counterPrefix+bucket)
	if err != nil {
		log.Printf("serial allocation degraded, counter store unavailable: %v", err)
		return fallbackSerial(bucket, now), true
	}

	return Format(bucket, value), false
}

// Bucket is the YYYYMM key for a point in time.
func Bucket(t time.Time) string {
	return t.Format("200601")
}

// Format combines a bucket and a counter value into the integer serial.
func Format(bucket string, value int64) int64 {
	s, _ := strconv.ParseInt(fmt.Sprintf("%s%04d", bucket, value), 10, 64)
	return s
}

// Bucket plus the last 6 digits of epoch millis. Two processes in the same
// millisecond can still collide; accepted risk while the store is already
// down.
func fallbackSerial(bucket string, now time.Time) int64 {
	millis := now.UnixMilli() % 1_000_000
	s, _ := strconv.ParseInt(fmt.Sprintf("%s%06d", bucket, millis), 10, 64)
	return s
}
