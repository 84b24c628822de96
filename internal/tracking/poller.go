package tracking

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/shopfast/storefront-go/internal/api"
)

// OrderFetcher is the slice of the order API the poller needs.
type OrderFetcher interface {
	GetOrder(ctx context.Context, orderID string) (api.Order, error)
}

// Snapshot is the poller's externally visible state at one point in time.
type Snapshot struct {
	OrderID string
	Status  Status
	Steps   []Step

	// Err is the failure of the most recent applied poll, nil once a later
	// poll succeeds. Status always reflects the last successful poll; a
	// failed poll never regresses it.
	Err error
}

// Poller keeps a live view of one order's lifecycle by fetching it on a
// fixed interval. Polls may overlap: each poll carries a sequence number and
// a response is applied only when its sequence is the greatest seen so far,
// so a slow, stale response can never roll the displayed status backwards.
//
// A Poller is bound to a single order id; track another order with another
// Poller.
type Poller struct {
	fetcher  OrderFetcher
	orderID  string
	interval time.Duration
	logger   *log.Logger

	mu      sync.Mutex
	seq     uint64 // last issued poll
	applied uint64 // greatest sequence whose response was applied
	status  Status
	lastErr error

	updates chan Snapshot
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

func NewPoller(fetcher OrderFetcher, orderID string, interval time.Duration, logger *log.Logger) *Poller {
	return &Poller{
		fetcher:  fetcher,
		orderID:  orderID,
		interval: interval,
		logger:   logger,
		status:   StatusPlaced, // assumed until the first successful fetch
		updates:  make(chan Snapshot, 1),
	}
}

// Start begins polling: one immediate poll, then one per interval, until the
// context is cancelled or Stop is called. Start must be called once.
func (p *Poller) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.run(ctx)
}

// Stop cancels polling, waits for in-flight polls to drain and closes the
// updates channel. Responses arriving after Stop are never applied.
func (p *Poller) Stop() {
	if p.cancel == nil || p.stopped {
		return
	}
	p.stopped = true
	p.cancel()
	<-p.done
	close(p.updates)
}

// Updates delivers a snapshot after each applied poll. The channel holds only
// the most recent value; a slow consumer sees the newest state, not a
// backlog. It is closed by Stop.
func (p *Poller) Updates() <-chan Snapshot { return p.updates }

// Snapshot returns the current state.
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	var wg sync.WaitGroup
	poll := func() {
		p.mu.Lock()
		p.seq++
		seq := p.seq
		p.mu.Unlock()

		// Each poll gets its own goroutine so a slow response never delays
		// the next tick. Ordering is handled at apply time.
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := p.fetcher.GetOrder(ctx, p.orderID)
			p.apply(ctx, seq, o, err)
		}()
	}

	t := time.NewTicker(p.interval)
	defer t.Stop()

	poll()
	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case <-t.C:
			poll()
		}
	}
}

// apply installs a poll result. Late responses lose twice: to the sequence
// check (an earlier poll resolving after a later one) and to the context
// check (any response landing after cancellation).
func (p *Poller) apply(ctx context.Context, seq uint64, o api.Order, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	if seq <= p.applied {
		return // stale, discard silently
	}
	p.applied = seq

	if err != nil {
		p.lastErr = err
		if p.logger != nil {
			p.logger.Printf("poll order %s: %v", p.orderID, err)
		}
	} else {
		p.lastErr = nil
		p.status = ParseStatus(o.Status)
	}
	p.push(p.snapshotLocked())
}

func (p *Poller) snapshotLocked() Snapshot {
	return Snapshot{OrderID: p.orderID, Status: p.status, Steps: Timeline(p.status), Err: p.lastErr}
}

// push replaces whatever the updates channel holds with the newest snapshot.
// The poller is the only sender, so the drain-then-send loop terminates.
func (p *Poller) push(s Snapshot) {
	for {
		select {
		case p.updates <- s:
			return
		default:
		}
		select {
		case <-p.updates:
		default:
		}
	}
}
