package notify

import "log"

const queueCapacity = 100

// Dispatcher delivers notifications off the request path. Sends are
// best-effort: a failed or dropped email never fails the booking.
type Dispatcher struct {
	sender Sender
	queue  chan Notification
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Notification, queueCapacity),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for n := range d.queue {
		if err := d.sender.Send(n); err != nil {
			log.Println("notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(n Notification) {
	select {
	case d.queue <- n:
		// queued
	default:
		// queue full, drop rather than block the API
		log.Println("notification queue full, dropping email for serial", n.Appointment.Serial)
	}
}
