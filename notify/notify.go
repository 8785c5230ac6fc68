// Package notify delivers "entity changed" events to websocket clients and
// other sinks, and forwards operational failures to an alerting channel.
// Delivery is asynchronous and never reports back to the caller.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Channel string

const (
	Carts      Channel = "WS_CARTS"
	Categories Channel = "WS_CATEGORIES"
	Products   Channel = "WS_PRODUCTS"
	Orders     Channel = "WS_ORDERS"
)

// Event tells listeners that the collection behind Channel changed.
type Event struct {
	ID      uuid.UUID `json:"id"`
	Channel Channel   `json:"channel"`
	Payload bool      `json:"payload"`
	At      time.Time `json:"at"`
}

func NewEvent(ch Channel) Event {
	return Event{ID: uuid.New(), Channel: ch, Payload: true, At: time.Now().UTC()}
}

// Broadcaster is a destination for change events.
type Broadcaster interface {
	Name() string
	Broadcast(ctx context.Context, e Event) error
}

// Alerter reports an operational failure to humans.
type Alerter interface {
	Alert(ctx context.Context, op string, err error) error
}

type Options struct {
	QueueSize int
	// Timeout bounds each sink and alert call. Defaults to 5s.
	Timeout time.Duration
	Alerter Alerter
	Sinks   []Broadcaster
	Logger  *zerolog.Logger
}

type job struct {
	event *Event
	op    string
	err   error
}

// Notifier queues events and alerts and hands them to one worker goroutine.
type Notifier struct {
	queue   chan job
	sinks   []Broadcaster
	alerter Alerter
	timeout time.Duration
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func New(opts Options) *Notifier {
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Alerter == nil {
		opts.Alerter = LogAlerter{}
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	n := &Notifier{
		queue:   make(chan job, opts.QueueSize),
		sinks:   opts.Sinks,
		alerter: opts.Alerter,
		timeout: opts.Timeout,
		log:     logger.With().Str("component", "notify").Logger(),
		done:    make(chan struct{}),
	}
	go n.run()
	return n
}

// Changed enqueues a change event for ch. It never blocks; a full queue
// drops the event.
func (n *Notifier) Changed(ch Channel) {
	e := NewEvent(ch)
	if !n.enqueue(job{event: &e}) {
		n.log.Warn().Str("channel", string(ch)).Msg("notification queue full, event dropped")
	}
}

// Failure logs err and forwards it to the alerter in the background.
func (n *Notifier) Failure(op string, err error) {
	if err == nil {
		return
	}
	n.log.Error().Err(err).Str("op", op).Msg("operation failed")
	if !n.enqueue(job{op: op, err: err}) {
		n.log.Warn().Str("op", op).Msg("notification queue full, alert dropped")
	}
}

func (n *Notifier) enqueue(j job) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return false
	}
	select {
	case n.queue <- j:
		return true
	default:
		return false
	}
}

// Close stops accepting work and waits until the queue is drained or ctx
// expires.
func (n *Notifier) Close(ctx context.Context) error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	select {
	case <-n.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) run() {
	defer close(n.done)
	for j := range n.queue {
		if j.event != nil {
			n.deliver(*j.event)
			continue
		}
		n.alert(j.op, j.err)
	}
}

func (n *Notifier) deliver(e Event) {
	for _, sink := range n.sinks {
		if err := n.call(func(ctx context.Context) error { return sink.Broadcast(ctx, e) }); err != nil {
			op := fmt.Sprintf("broadcast %s via %s", e.Channel, sink.Name())
			n.log.Error().Err(err).Str("op", op).Msg("notification failed")
			n.alert(op, err)
		}
	}
}

func (n *Notifier) alert(op string, err error) {
	if aerr := n.call(func(ctx context.Context) error { return n.alerter.Alert(ctx, op, err) }); aerr != nil {
		n.log.Error().Err(aerr).Str("op", op).Msg("alert failed")
	}
}

// call runs fn under the sink timeout and turns a panic into an error.
func (n *Notifier) call(fn func(ctx context.Context) error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx)
}
