package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.deps.Cart.Entries()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "b", "esc":
		m.view = viewCatalog
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case "down", "j":
		if m.cartCursor < len(entries)-1 {
			m.cartCursor++
		}
	case "+", "=":
		if m.cartCursor < len(entries) {
			e := entries[m.cartCursor]
			m.deps.Cart.SetQuantity(e.ProductID, e.Quantity+1)
		}
	case "-":
		// Dropping to zero removes the entry.
		if m.cartCursor < len(entries) {
			e := entries[m.cartCursor]
			m.deps.Cart.SetQuantity(e.ProductID, e.Quantity-1)
		}
	case "x":
		if m.cartCursor < len(entries) {
			m.deps.Cart.RemoveItem(entries[m.cartCursor].ProductID)
		}
	case "enter":
		if m.deps.Cart.ItemCount() > 0 {
			m.fieldIndex = 0
			m.checkoutErr = ""
			m.view = viewCheckout
		}
	}

	// The cursor may now point past the last entry.
	if n := len(m.deps.Cart.Entries()); m.cartCursor >= n && n > 0 {
		m.cartCursor = n - 1
	}
	return m, nil
}

func (m Model) cartView(b *strings.Builder) {
	fmt.Fprintln(b, "Your Cart")
	fmt.Fprintln(b, "")

	entries := m.deps.Cart.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(b, "Your cart is empty.")
		fmt.Fprintln(b, "")
		fmt.Fprintln(b, "Controls: b back to products, q quit")
		return
	}

	for i, e := range entries {
		marker := " "
		if i == m.cartCursor {
			marker = ">"
		}
		fmt.Fprintf(b, " %s %-24s x%-3d %8s\n", marker, e.Name, e.Quantity, formatPrice(e.Price*float64(e.Quantity)))
	}

	fmt.Fprintln(b, "")
	fmt.Fprintf(b, "Total: %s\n", formatPrice(m.deps.Cart.Total()))
	fmt.Fprintln(b, "")
	fmt.Fprintln(b, "Controls: up/down select, +/- quantity, x remove, enter checkout, b back, q quit")
}
