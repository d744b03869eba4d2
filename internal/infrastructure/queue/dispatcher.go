package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/colisexpress/delivery-system/internal/api/metrics"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes delivery events to a fixed set of workers using consistent
// hashing on the colis id, guaranteeing per-colis event ordering.
type Dispatcher struct {
	workers []chan ports.DeliveryEventInput
	service ports.DeliveryEventService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.DeliveryEventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.DeliveryEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.DeliveryEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its colis.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.DeliveryEventInput) {
	d.workers[d.shardIndex(event.ColisID)] <- event
}

// EnqueueBatch enqueues multiple events preserving per-colis ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.DeliveryEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps a colis id deterministically to a worker index.
func (d *Dispatcher) shardIndex(colisID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(colisID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.DeliveryEventInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.service.Process(ctx, event); err != nil {
				metrics.EventsErrorsTotal.WithLabelValues("process_failed").Inc()
				metrics.EventProcessingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
				d.log.Error().Err(err).
					Str("colis_id", event.ColisID).
					Int("worker_id", id).
					Msg("event processing failed")
				continue
			}
			metrics.EventProcessingDuration.WithLabelValues(event.Status).Observe(time.Since(start).Seconds())
		}
	}
}
