package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/niramoy/clinic-booking/internal/models"
)

type chanSender struct {
	received chan Notification
	fail     bool
}

func (s *chanSender) Send(n Notification) error {
	s.received <- n
	if s.fail {
		return errors.New("smtp is having a day")
	}
	return nil
}

func TestDispatchDeliversToSender(t *testing.T) {
	sender := &chanSender{received: make(chan Notification, 1)}
	d := NewDispatcher(sender)

	d.Dispatch(Notification{
		Appointment: models.Appointment{Serial: 2025110001, PatientName: "Rahim"},
		Recipient:   "rahim@example.com",
	})

	select {
	case n := <-sender.received:
		if n.Recipient != "rahim@example.com" {
			t.Fatalf("recipient = %q", n.Recipient)
		}
	case <-time.After(time.Second):
		t.Fatal("notification never reached the sender")
	}
}

func TestSenderErrorsDoNotStopTheWorker(t *testing.T) {
	sender := &chanSender{received: make(chan Notification, 2), fail: true}
	d := NewDispatcher(sender)

	d.Dispatch(Notification{Recipient: "first@example.com"})
	d.Dispatch(Notification{Recipient: "second@example.com"})

	for i := 0; i < 2; i++ {
		select {
		case <-sender.received:
		case <-time.After(time.Second):
			t.Fatalf("delivery %d never happened after a sender error", i)
		}
	}
}

// blockingSender parks the worker inside Send until release is closed, so
// tests can back the queue up deliberately.
type blockingSender struct {
	entered chan struct{}
	release chan struct{}
}

func (s *blockingSender) Send(Notification) error {
	s.entered <- struct{}{}
	<-s.release
	return nil
}

func TestDispatchDropsWhenQueueIsFull(t *testing.T) {
	sender := &blockingSender{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	d := NewDispatcher(sender)

	// park the worker on the first notification
	d.Dispatch(Notification{Recipient: "inflight@example.com"})
	select {
	case <-sender.entered:
	case <-time.After(time.Second):
		t.Fatal("worker never picked up the first notification")
	}

	// fill every queue slot behind it
	for i := 0; i < queueCapacity; i++ {
		d.Dispatch(Notification{Recipient: "queued@example.com"})
	}

	// the next one has nowhere to go: it must return, not block
	done := make(chan struct{})
	go func() {
		d.Dispatch(Notification{Recipient: "overflow@example.com"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch blocked on a full queue")
	}

	close(sender.release)

	// everything that was queued still goes out: 1 in flight + queueCapacity
	delivered := 1
	for delivered < queueCapacity+1 {
		select {
		case <-sender.entered:
			delivered++
		case <-time.After(time.Second):
			t.Fatalf("only %d notifications delivered after release", delivered)
		}
	}

	// the overflow one was dropped for good
	select {
	case <-sender.entered:
		t.Fatal("dropped notification was delivered anyway")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubjectDistinguishesScopeBookings(t *testing.T) {
	regular := models.Appointment{Serial: 2025110001}
	scope := models.Appointment{Serial: 2025110002, IsScope: true}

	if subjectFor(&regular) == subjectFor(&scope) {
		t.Fatal("scope and regular bookings share a subject line")
	}
}
