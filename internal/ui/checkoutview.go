package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopfast/storefront-go/internal/checkout"
)

type orderSubmittedMsg struct {
	orderID string
	err     error
}

type formField struct {
	label string
	value *string
}

func formFields(f *checkout.Form) []formField {
	return []formField{
		{"Email", &f.Email},
		{"First Name", &f.FirstName},
		{"Last Name", &f.LastName},
		{"Address", &f.Address},
		{"City", &f.City},
		{"State", &f.State},
		{"ZIP Code", &f.ZipCode},
		{"Card Number", &f.CardNumber},
		{"Expiry Date", &f.ExpiryDate},
		{"CVV", &f.CVV},
	}
}

func (m Model) submitOrder(form checkout.Form) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.deps.RequestTimeout)
		defer cancel()

		orderID, err := m.deps.Checkout.Submit(ctx, form)
		return orderSubmittedMsg{orderID: orderID, err: err}
	}
}

func (m Model) applyOrderSubmitted(msg orderSubmittedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.Is(msg.err, checkout.ErrEmptyCart):
			// Normal state, rendered by the view; nothing to report.
			m.checkoutErr = ""
		case errors.As(msg.err, &verr):
			m.checkoutErr = verr.Error()
		default:
			m.checkoutErr = "Failed to place order. Please try again."
			if m.deps.Logger != nil {
				m.deps.Logger.Printf("submit order: %v", msg.err)
			}
		}
		return m, nil
	}
	return m.enterTracking(msg.orderID)
}

func (m Model) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := formFields(&m.form)

	switch msg.Type {
	case tea.KeyEsc:
		m.view = viewCart
	case tea.KeyTab, tea.KeyDown:
		m.fieldIndex = (m.fieldIndex + 1) % len(fields)
	case tea.KeyShiftTab, tea.KeyUp:
		m.fieldIndex = (m.fieldIndex + len(fields) - 1) % len(fields)
	case tea.KeyEnter:
		if !m.submitting {
			m.submitting = true
			m.checkoutErr = ""
			return m, m.submitOrder(m.form)
		}
	case tea.KeyBackspace:
		v := *fields[m.fieldIndex].value
		if len(v) > 0 {
			r := []rune(v)
			*fields[m.fieldIndex].value = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		*fields[m.fieldIndex].value += " "
	case tea.KeyRunes:
		*fields[m.fieldIndex].value += string(msg.Runes)
	}
	return m, nil
}

func (m Model) checkoutView(b *strings.Builder) {
	fmt.Fprintln(b, "Checkout")
	fmt.Fprintln(b, "")

	entries := m.deps.Cart.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(b, "Your cart is empty.")
		fmt.Fprintln(b, "")
		fmt.Fprintln(b, "Controls: esc back, q quit")
		return
	}

	if m.checkoutErr != "" {
		fmt.Fprintln(b, m.checkoutErr)
		fmt.Fprintln(b, "")
	}

	form := m.form
	for i, f := range formFields(&form) {
		marker := " "
		if i == m.fieldIndex {
			marker = ">"
		}
		fmt.Fprintf(b, " %s %-12s %s\n", marker, f.label+":", *f.value)
	}

	fmt.Fprintln(b, "")
	fmt.Fprintln(b, "Order Summary")
	for _, e := range entries {
		fmt.Fprintf(b, "   %-24s x%-3d %8s\n", e.Name, e.Quantity, formatPrice(e.Price*float64(e.Quantity)))
	}
	fmt.Fprintf(b, "   Total: %s\n", formatPrice(m.deps.Cart.Total()))
	fmt.Fprintln(b, "")

	if m.submitting {
		fmt.Fprintln(b, "Placing Order...")
	} else {
		fmt.Fprintf(b, "Controls: tab/arrows move, type to edit, enter place order (%s), esc back\n", formatPrice(m.deps.Cart.Total()))
	}
}
