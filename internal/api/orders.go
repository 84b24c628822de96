package api

import (
	"context"
	"net/http"
)

// HeaderIdempotencyKey lets the server deduplicate a retried submission of
// the same cart.
const HeaderIdempotencyKey = "Idempotency-Key"

type OrderClient struct{ c *Client }

func NewOrderClient(c *Client) *OrderClient { return &OrderClient{c: c} }

func (oc *OrderClient) SubmitOrder(ctx context.Context, req OrderRequest, idempotencyKey string) (OrderSubmitted, error) {
	headers := http.Header{}
	if idempotencyKey != "" {
		headers.Set(HeaderIdempotencyKey, idempotencyKey)
	}
	var out OrderSubmitted
	if err := oc.c.doJSON(ctx, http.MethodPost, "/orders", headers, req, &out); err != nil {
		return OrderSubmitted{}, err
	}
	return out, nil
}

func (oc *OrderClient) GetOrder(ctx context.Context, orderID string) (Order, error) {
	var out Order
	if err := oc.c.doJSON(ctx, http.MethodGet, "/orders/"+orderID, nil, nil, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (oc *OrderClient) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := oc.c.doJSON(ctx, http.MethodGet, "/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
