package api

import (
	"context"
	"net/http"
)

type InventoryClient struct{ c *Client }

func NewInventoryClient(c *Client) *InventoryClient { return &InventoryClient{c: c} }

func (ic *InventoryClient) GetAvailability(ctx context.Context, productID string) (InventoryRecord, error) {
	var out InventoryRecord
	if err := ic.c.doJSON(ctx, http.MethodGet, "/inventory/"+productID, nil, nil, &out); err != nil {
		return InventoryRecord{}, err
	}
	return out, nil
}
