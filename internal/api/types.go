package api

// Wire types for the ShopFast HTTP API. Field names follow the JSON the
// service emits (camelCase).

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// OrderRequest is the checkout payload. The total is the client-side figure
// shown to the shopper; the server remains the authority on the true charge.
type OrderRequest struct {
	Items           []OrderItem     `json:"items"`
	Customer        Customer        `json:"customer"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Total           float64         `json:"total"`
}

// OrderSubmitted is the response to a successful order submission.
type OrderSubmitted struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status,omitempty"`
}

// Order is the server-owned order record as returned by the status endpoint.
type Order struct {
	OrderID string      `json:"orderId"`
	Status  string      `json:"status"`
	Items   []OrderItem `json:"items"`
	Total   float64     `json:"total"`
}

type InventoryRecord struct {
	ProductID string `json:"productId"`
	Available int    `json:"available"`
}
