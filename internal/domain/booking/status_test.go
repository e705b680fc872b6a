package booking

import (
	"testing"
	"time"

	"github.com/niramoy/clinic-booking/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		action  func(*models.Appointment, time.Time) error
		wantErr bool
	}{
		{"confirm pending", StatusPending, Confirm, false},
		{"confirm confirmed", StatusConfirmed, Confirm, true},
		{"confirm cancelled", StatusCancelled, Confirm, true},
		{"cancel pending", StatusPending, Cancel, false},
		{"cancel confirmed", StatusConfirmed, Cancel, false},
		{"cancel completed", StatusCompleted, Cancel, true},
		{"complete confirmed", StatusConfirmed, Complete, false},
		{"complete pending", StatusPending, Complete, true},
		{"complete cancelled", StatusCancelled, Complete, true},
	}

	now := time.Date(2025, 11, 23, 10, 0, 0, 0, time.UTC)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ap := &models.Appointment{Status: string(tc.from)}

			err := tc.action(ap, now)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected invalid_state, appointment moved to %s", ap.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ap.Status == string(tc.from) {
				t.Fatal("status did not change")
			}
		})
	}
}

func TestTransitionTimestamps(t *testing.T) {
	now := time.Date(2025, 11, 23, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Confirm(ap, now); err != nil {
		t.Fatal(err)
	}
	if ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Fatal("ConfirmedAt not set")
	}

	if err := Complete(ap, now); err != nil {
		t.Fatal(err)
	}
	if ap.CompletedAt == nil {
		t.Fatal("CompletedAt not set")
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Fatalf("initial status = %s", InitialStatus())
	}
}
