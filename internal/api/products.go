package api

import (
	"context"
	"net/http"
)

type ProductClient struct{ c *Client }

func NewProductClient(c *Client) *ProductClient { return &ProductClient{c: c} }

func (pc *ProductClient) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := pc.c.doJSON(ctx, http.MethodGet, "/products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (pc *ProductClient) GetProduct(ctx context.Context, productID string) (Product, error) {
	var out Product
	if err := pc.c.doJSON(ctx, http.MethodGet, "/products/"+productID, nil, nil, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}
