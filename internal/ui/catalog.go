package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopfast/storefront-go/internal/api"
)

type productsLoadedMsg struct {
	products []api.Product
	err      error
}

func (m Model) loadProducts() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.deps.RequestTimeout)
		defer cancel()

		products, err := m.deps.Products.ListProducts(ctx)
		return productsLoadedMsg{products: products, err: err}
	}
}

func (m Model) applyProductsLoaded(msg productsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingCatalog = false
	if msg.err != nil {
		m.catalogErr = "Failed to load products. Please try again."
		if m.deps.Logger != nil {
			m.deps.Logger.Printf("load products: %v", msg.err)
		}
		return m, nil
	}
	m.catalogErr = ""
	m.products = msg.products
	if m.cursor >= len(m.products) {
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.products) > 0 {
			m.deps.Cart.AddItem(m.products[m.cursor])
		}
	case "c":
		m.cartCursor = 0
		m.view = viewCart
	case "r":
		if m.catalogErr != "" && !m.loadingCatalog {
			m.loadingCatalog = true
			return m, m.loadProducts()
		}
	}
	return m, nil
}

func (m Model) catalogView(b *strings.Builder) {
	fmt.Fprintln(b, "Products")
	fmt.Fprintln(b, "")

	switch {
	case m.loadingCatalog:
		fmt.Fprintln(b, "Loading products...")
	case m.catalogErr != "":
		fmt.Fprintln(b, m.catalogErr)
		fmt.Fprintln(b, "")
		fmt.Fprintln(b, "Controls: r retry, q quit")
		return
	case len(m.products) == 0:
		fmt.Fprintln(b, "No products available.")
	default:
		for i, p := range m.products {
			marker := " "
			if i == m.cursor {
				marker = ">"
			}
			fmt.Fprintf(b, " %s %-24s %8s  %s\n", marker, p.Name, formatPrice(p.Price), p.Description)
		}
	}

	fmt.Fprintln(b, "")
	fmt.Fprintln(b, "Controls: up/down select, enter add to cart, c view cart, q quit")
}
