package stub

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopfast/storefront-go/internal/api"
)

// Server is an in-memory stand-in for the ShopFast API, good enough for
// local development of the storefront and for end-to-end tests. Orders
// advance one lifecycle step per advanceEvery after creation.
type Server struct {
	logger       *log.Logger
	advanceEvery time.Duration
	now          func() time.Time

	mu        sync.Mutex
	products  []api.Product
	inventory map[string]int
	orders    map[string]storedOrder
	idemKeys  map[string]string // idempotency key -> order id
}

type storedOrder struct {
	order     api.Order
	createdAt time.Time
}

func NewServer(logger *log.Logger, advanceEvery time.Duration) *Server {
	return &Server{
		logger:       logger,
		advanceEvery: advanceEvery,
		now:          time.Now,
		products:     seedProducts(),
		inventory:    seedInventory(),
		orders:       make(map[string]storedOrder),
		idemKeys:     make(map[string]string),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.health)
	r.Get("/products", s.listProducts)
	r.Get("/products/{productId}", s.getProduct)
	r.Post("/orders", s.submitOrder)
	r.Get("/orders", s.listOrders)
	r.Get("/orders/{orderId}", s.getOrder)
	r.Get("/inventory/{productId}", s.getInventory)

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "shopfast-stub",
	})
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	products := make([]api.Product, len(s.products))
	copy(products, s.products)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == productID {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "product not found")
}

func (s *Server) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req api.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "order has no items")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A retried submission with the same idempotency key maps to the order
	// already created for it.
	key := r.Header.Get(api.HeaderIdempotencyKey)
	if key != "" {
		if id, ok := s.idemKeys[key]; ok {
			writeJSON(w, http.StatusOK, api.OrderSubmitted{OrderID: id, Status: s.statusAt(s.orders[id])})
			return
		}
	}

	id := uuid.NewString()
	o := storedOrder{
		order: api.Order{
			OrderID: id,
			Status:  "placed",
			Items:   req.Items,
			Total:   req.Total,
		},
		createdAt: s.now(),
	}
	s.orders[id] = o
	if key != "" {
		s.idemKeys[key] = id
	}

	if s.logger != nil {
		s.logger.Printf("order %s created, %d items, total %.2f", id, len(req.Items), req.Total)
	}
	writeJSON(w, http.StatusCreated, api.OrderSubmitted{OrderID: id, Status: "placed"})
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	out := o.order
	out.Status = s.statusAt(o)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Order, 0, len(s.orders))
	for _, o := range s.orders {
		order := o.order
		order.Status = s.statusAt(o)
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getInventory(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	s.mu.Lock()
	available, ok := s.inventory[productID]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "no inventory record")
		return
	}
	writeJSON(w, http.StatusOK, api.InventoryRecord{ProductID: productID, Available: available})
}

// statusAt derives an order's status from its age: one lifecycle step per
// advanceEvery, capped at delivered. Monotonic by construction.
func (s *Server) statusAt(o storedOrder) string {
	steps := []string{"placed", "confirmed", "processing", "shipped", "delivered"}
	idx := int(s.now().Sub(o.createdAt) / s.advanceEvery)
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return steps[idx]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
