package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopfast/storefront-go/internal/api"
	"github.com/shopfast/storefront-go/internal/cart"
	"github.com/shopfast/storefront-go/internal/checkout"
	"github.com/shopfast/storefront-go/internal/tracking"
)

type view int

const (
	viewCatalog view = iota
	viewCart
	viewCheckout
	viewTracking
)

// ProductLister is the slice of the catalog API the UI needs.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]api.Product, error)
}

// Submitter is the checkout entry point; satisfied by checkout.Orchestrator.
type Submitter interface {
	Submit(ctx context.Context, form checkout.Form) (string, error)
}

// Deps wires the storefront's collaborators into the UI.
type Deps struct {
	Logger         *log.Logger
	Products       ProductLister
	Cart           *cart.Store
	Checkout       Submitter
	RequestTimeout time.Duration

	// NewPoller builds a status poller for one order. The UI owns the
	// poller's lifetime: entering the tracking view starts it, leaving
	// stops it.
	NewPoller func(orderID string) *tracking.Poller
}

// Model is the root Bubble Tea model. All state mutation happens on the
// update loop; network work runs as commands.
type Model struct {
	deps Deps

	view view

	// catalog
	products       []api.Product
	cursor         int
	loadingCatalog bool
	catalogErr     string

	// cart
	cartCursor int

	// checkout
	form        checkout.Form
	fieldIndex  int
	submitting  bool
	checkoutErr string

	// tracking
	poller *tracking.Poller
	track  tracking.Snapshot
}

func NewModel(deps Deps) Model {
	return Model{deps: deps, loadingCatalog: true}
}

func (m Model) Init() tea.Cmd {
	return m.loadProducts()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.stopPoller()
			return m, tea.Quit
		}
		switch m.view {
		case viewCatalog:
			return m.updateCatalog(msg)
		case viewCart:
			return m.updateCart(msg)
		case viewCheckout:
			return m.updateCheckout(msg)
		case viewTracking:
			return m.updateTracking(msg)
		}

	case productsLoadedMsg:
		return m.applyProductsLoaded(msg)

	case orderSubmittedMsg:
		return m.applyOrderSubmitted(msg)

	case pollUpdateMsg:
		if m.poller == nil {
			return m, nil
		}
		m.track = msg.snapshot
		return m, waitForUpdate(m.poller)
	}
	return m, nil
}

func (m Model) View() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "ShopFast  |  Cart: %d item(s)\n\n", m.deps.Cart.ItemCount())

	switch m.view {
	case viewCatalog:
		m.catalogView(b)
	case viewCart:
		m.cartView(b)
	case viewCheckout:
		m.checkoutView(b)
	case viewTracking:
		m.trackingView(b)
	}
	return b.String()
}

func (m *Model) stopPoller() {
	if m.poller != nil {
		m.poller.Stop()
		m.poller = nil
	}
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
