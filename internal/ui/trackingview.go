package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopfast/storefront-go/internal/checkout"
	"github.com/shopfast/storefront-go/internal/tracking"
)

type pollUpdateMsg struct {
	snapshot tracking.Snapshot
}

// waitForUpdate blocks until the poller applies a poll, then feeds the
// snapshot back into the update loop. A closed channel (poller stopped)
// yields a nil message, which Bubble Tea drops.
func waitForUpdate(p *tracking.Poller) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-p.Updates()
		if !ok {
			return nil
		}
		return pollUpdateMsg{snapshot: s}
	}
}

func (m Model) enterTracking(orderID string) (tea.Model, tea.Cmd) {
	p := m.deps.NewPoller(orderID)
	p.Start(context.Background())

	m.poller = p
	m.track = p.Snapshot()
	m.form = checkout.Form{}
	m.view = viewTracking
	return m, waitForUpdate(p)
}

func (m Model) updateTracking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.stopPoller()
		return m, tea.Quit
	case "b", "esc":
		// Leaving the view ends the poll loop; no late response may land
		// after this point.
		m.stopPoller()
		m.view = viewCatalog
	}
	return m, nil
}

func (m Model) trackingView(b *strings.Builder) {
	fmt.Fprintln(b, m.track.Status.Title())
	fmt.Fprintf(b, "Order ID: %s\n", m.track.OrderID)
	fmt.Fprintln(b, "")

	if m.track.Err != nil {
		fmt.Fprintln(b, "Failed to load order status.")
		fmt.Fprintln(b, "")
	}

	for _, step := range m.track.Steps {
		switch step.State {
		case tracking.StepCompleted:
			fmt.Fprintf(b, " [x] %-16s Completed\n", step.Label)
		case tracking.StepCurrent:
			fmt.Fprintf(b, " [>] %-16s In progress...\n", step.Label)
		default:
			fmt.Fprintf(b, " [ ] %s\n", step.Label)
		}
	}

	fmt.Fprintln(b, "")
	fmt.Fprintln(b, "Controls: b continue shopping, q quit")
}
