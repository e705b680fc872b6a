package serial

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// memStore is an atomic in-memory counter, the contract the real
// repository provides with its single-statement upsert.
type memStore struct {
	mu     sync.Mutex
	values map[string]int64
	calls  int
}

func newMemStore() *memStore {
	return &memStore{values: map[string]int64{}}
}

func (s *memStore) IncrementCounter(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	s.values[name]++
	return s.values[name], nil
}

type failStore struct{}

func (failStore) IncrementCounter(context.Context, string) (int64, error) {
	return 0, errors.New("counter store unreachable")
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAllocateSequence(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	a := NewWithClock(store, fixedClock(now))

	want := []int64{2025050001, 2025050002, 2025050003}
	for i, expected := range want {
		got, degraded := a.Allocate(context.Background())
		if degraded {
			t.Fatalf("allocation %d unexpectedly degraded", i)
		}
		if got != expected {
			t.Fatalf("allocation %d = %d, want %d", i, got, expected)
		}
	}

	if v := store.values["appointment-202505"]; v != 3 {
		t.Fatalf("counter value = %d, want 3", v)
	}
}

func TestAllocateUniqueUnderConcurrency(t *testing.T) {
	store := newMemStore()
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	a := NewWithClock(store, fixedClock(now))

	const n = 200
	results := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, degraded := a.Allocate(context.Background())
			if degraded {
				t.Error("unexpected degraded allocation")
			}
			results <- s
		}()
	}
	wg.Wait()
	close(results)

	seen := map[int64]bool{}
	for s := range results {
		if seen[s] {
			t.Fatalf("duplicate serial %d", s)
		}
		seen[s] = true
	}

	if len(seen) != n {
		t.Fatalf("got %d distinct serials, want %d", len(seen), n)
	}

	// every serial must sit in the expected range for the bucket
	for s := range seen {
		if s < 2025050001 || s > 2025050000+n {
			t.Fatalf("serial %d outside expected range", s)
		}
	}
}

func TestBucketRollover(t *testing.T) {
	store := newMemStore()

	endOfMay := time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)
	startOfJune := time.Date(2025, 6, 1, 0, 0, 1, 0, time.UTC)

	a := NewWithClock(store, fixedClock(endOfMay))
	first, _ := a.Allocate(context.Background())

	a = NewWithClock(store, fixedClock(startOfJune))
	second, _ := a.Allocate(context.Background())

	if first != 2025050001 {
		t.Fatalf("May serial = %d, want 2025050001", first)
	}
	if second != 2025060001 {
		t.Fatalf("June serial = %d, want 2025060001", second)
	}
}

func TestAllocateFallbackOnStoreFailure(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 123_000_000, time.UTC)
	a := NewWithClock(failStore{}, fixedClock(now))

	got, degraded := a.Allocate(context.Background())
	if !degraded {
		t.Fatal("expected degraded allocation")
	}

	s := fmt.Sprintf("%d", got)
	if !strings.HasPrefix(s, "202505") {
		t.Fatalf("fallback serial %s does not carry the month bucket", s)
	}

	wantSuffix := fmt.Sprintf("%06d", now.UnixMilli()%1_000_000)
	if !strings.HasSuffix(s, wantSuffix) {
		t.Fatalf("fallback serial %s does not end in %s", s, wantSuffix)
	}
}

func TestFormat(t *testing.T) {
	if got := Format("202505", 7); got != 2025050007 {
		t.Fatalf("Format = %d, want 2025050007", got)
	}
	if got := Format("202512", 42); got != 2025120042 {
		t.Fatalf("Format = %d, want 2025120042", got)
	}
}

func TestBucket(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := Bucket(ts); got != "202601" {
		t.Fatalf("Bucket = %q, want 202601", got)
	}
}
