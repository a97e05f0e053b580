package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/cookouthq/cookout-api/internal/api/metrics"
	"github.com/cookouthq/cookout-api/internal/core/domain"
	"github.com/cookouthq/cookout-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes invite deliveries to a fixed set of workers using
// consistent hashing on the invitee email, so retries and re-invites for the
// same address are processed in order.
type Dispatcher struct {
	workers  []chan domain.Invite
	delivery ports.InviteDelivery
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, delivery ports.InviteDelivery, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.Invite, numWorkers),
		delivery: delivery,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Invite, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an invite to the worker responsible for its email.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(invite domain.Invite) {
	d.workers[d.shardIndex(invite.Email)] <- invite
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Invite) {
	for {
		select {
		case <-ctx.Done():
			return
		case invite, ok := <-ch:
			if !ok {
				return
			}
			if err := d.delivery.Deliver(ctx, invite); err != nil {
				metrics.InvitesErrorsTotal.WithLabelValues("delivery_failed").Inc()
				d.log.Error().Err(err).
					Str("invite_id", invite.ID).
					Int("worker_id", id).
					Msg("invite delivery failed")
				continue
			}
			metrics.InvitesDeliveredTotal.WithLabelValues(invite.Role).Inc()
		}
	}
}
