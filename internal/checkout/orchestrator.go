package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopfast/storefront-go/internal/api"
	"github.com/shopfast/storefront-go/internal/cart"
)

// ErrEmptyCart means there was nothing to submit. It is a normal state, not
// a failure; no network call is made.
var ErrEmptyCart = errors.New("cart is empty")

// OrderSubmitter is the slice of the order API the orchestrator needs.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, req api.OrderRequest, idempotencyKey string) (api.OrderSubmitted, error)
}

// Orchestrator owns the cart-to-order handoff: it snapshots the cart, builds
// the order request, submits it, and clears the cart only after the returned
// order id has been recorded.
//
// It is meant to be driven from a single goroutine (the UI loop); its
// protocol is one submission per user-initiated submit call.
type Orchestrator struct {
	cart   *cart.Store
	orders OrderSubmitter
	logger *log.Logger

	// pendingKey survives failed attempts so retrying the same cart reuses
	// the same idempotency key; it rotates only after a successful submit.
	pendingKey  string
	lastOrderID string
}

func NewOrchestrator(store *cart.Store, orders OrderSubmitter, logger *log.Logger) *Orchestrator {
	return &Orchestrator{cart: store, orders: orders, logger: logger}
}

// Submit issues exactly one order submission for this call. On failure the
// cart is untouched and the same action can be retried; on success the cart
// is cleared and the new order id returned.
func (o *Orchestrator) Submit(ctx context.Context, form Form) (string, error) {
	entries := o.cart.Entries()
	if len(entries) == 0 {
		return "", ErrEmptyCart
	}
	if err := form.Validate(); err != nil {
		return "", err
	}

	if o.pendingKey == "" {
		o.pendingKey = uuid.NewString()
	}

	items := make([]api.OrderItem, 0, len(entries))
	total := 0.0
	for _, e := range entries {
		items = append(items, api.OrderItem{ProductID: e.ProductID, Quantity: e.Quantity, Price: e.Price})
		total += e.Price * float64(e.Quantity)
	}
	req := api.OrderRequest{
		Items:           items,
		Customer:        form.customer(),
		ShippingAddress: form.shippingAddress(),
		Total:           total,
	}

	res, err := o.orders.SubmitOrder(ctx, req, o.pendingKey)
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}

	// Record the order id before clearing: the cart must never end up empty
	// without a known order to hand off to.
	o.lastOrderID = res.OrderID
	o.cart.Clear()
	o.pendingKey = ""

	if o.logger != nil {
		o.logger.Printf("order %s placed, total %.2f", res.OrderID, total)
	}
	return res.OrderID, nil
}

// LastOrderID is the id of the most recently placed order, empty if none.
func (o *Orchestrator) LastOrderID() string { return o.lastOrderID }
