package audit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KidawR/MainProgect/models"
	"github.com/sirupsen/logrus"
)

var ErrClosed = errors.New("audit: emitter closed")

// Sink is where audit records end up.
type Sink interface {
	InsertLog(ctx context.Context, entry *models.ActionLog) error
}

type Stats struct {
	Delivered uint64 `json:"delivered"`
	Dropped   uint64 `json:"dropped"`
	Failed    uint64 `json:"failed"`
}

type Option func(*Emitter)

// WithBuffer sets the queue size. Records emitted while the queue is full
// are dropped.
func WithBuffer(n int) Option {
	return func(e *Emitter) {
		if n > 0 {
			e.buffer = n
		}
	}
}

// WithWriteTimeout bounds a single sink write.
func WithWriteTimeout(d time.Duration) Option {
	return func(e *Emitter) {
		if d > 0 {
			e.writeTimeout = d
		}
	}
}

// WithLogger sets the entry used to report failed and dropped records.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Emitter) {
		if log != nil {
			e.log = log
		}
	}
}

// OnFailure registers a hook called from the delivery goroutine for every
// record that could not be written.
func OnFailure(fn func(entry *models.ActionLog, err error)) Option {
	return func(e *Emitter) {
		e.onFailure = fn
	}
}

type job struct {
	entry *models.ActionLog
	ack   chan struct{}
}

// Emitter delivers audit records to a Sink from a single background
// goroutine. Emit never blocks and never reports an error to the caller:
// a full queue drops the record, a failed write is logged and counted.
type Emitter struct {
	sink         Sink
	log          *logrus.Entry
	buffer       int
	writeTimeout time.Duration
	onFailure    func(*models.ActionLog, error)

	queue chan job
	done  chan struct{}

	mu     sync.RWMutex
	closed bool

	delivered atomic.Uint64
	dropped   atomic.Uint64
	failed    atomic.Uint64
}

func NewEmitter(sink Sink, opts ...Option) *Emitter {
	e := &Emitter{
		sink:         sink,
		log:          logrus.NewEntry(logrus.StandardLogger()).WithField("component", "audit"),
		buffer:       256,
		writeTimeout: 5 * time.Second,
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.queue = make(chan job, e.buffer)

	go e.run()
	return e
}

func (e *Emitter) Emit(entry *models.ActionLog) {
	if entry == nil {
		return
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		e.dropped.Add(1)
		return
	}

	select {
	case e.queue <- job{entry: entry}:
	default:
		e.dropped.Add(1)
		e.log.WithFields(logrus.Fields{
			"action":  entry.Action,
			"user_id": entry.UserID,
		}).Warn("audit queue full, record dropped")
	}
}

// Flush waits until every record emitted before the call has been handed
// to the sink.
func (e *Emitter) Flush(ctx context.Context) error {
	ack := make(chan struct{})

	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return ErrClosed
	}
	select {
	case e.queue <- job{ack: ack}:
		e.mu.RUnlock()
	case <-ctx.Done():
		e.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting records and waits for the queue to drain.
func (e *Emitter) Close(ctx context.Context) error {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		close(e.queue)
	}
	e.mu.Unlock()

	select {
	case <-e.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Emitter) Stats() Stats {
	return Stats{
		Delivered: e.delivered.Load(),
		Dropped:   e.dropped.Load(),
		Failed:    e.failed.Load(),
	}
}

func (e *Emitter) run() {
	defer close(e.done)

	for j := range e.queue {
		if j.ack != nil {
			close(j.ack)
			continue
		}
		e.deliver(j.entry)
	}
}

func (e *Emitter) deliver(entry *models.ActionLog) {
	err := e.write(entry)
	if err == nil {
		e.delivered.Add(1)
		return
	}

	e.failed.Add(1)
	e.log.WithFields(logrus.Fields{
		"action":  entry.Action,
		"user_id": entry.UserID,
	}).WithError(err).Warn("audit record not written")

	if e.onFailure != nil {
		e.onFailure(entry, err)
	}
}

func (e *Emitter) write(entry *models.ActionLog) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audit sink panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), e.writeTimeout)
	defer cancel()

	return e.sink.InsertLog(ctx, entry)
}
