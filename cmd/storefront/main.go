package main

import (
	"io"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopfast/storefront-go/internal/api"
	"github.com/shopfast/storefront-go/internal/cart"
	"github.com/shopfast/storefront-go/internal/checkout"
	"github.com/shopfast/storefront-go/internal/config"
	"github.com/shopfast/storefront-go/internal/tracking"
	"github.com/shopfast/storefront-go/internal/ui"
)

func main() {
	cfg := config.Load()

	// Stdout belongs to the terminal UI; log to a file when asked, else drop.
	logOut := io.Writer(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "[storefront] ", log.LstdFlags|log.Lmicroseconds)

	sharedHTTP := &http.Client{Timeout: cfg.RequestTimeout}
	base := api.NewClient("shopfast-api", cfg.APIURL, sharedHTTP, logger)

	products := api.NewProductClient(base)
	orders := api.NewOrderClient(base)

	store := cart.NewStore()
	orchestrator := checkout.NewOrchestrator(store, orders, logger)

	m := ui.NewModel(ui.Deps{
		Logger:         logger,
		Products:       products,
		Cart:           store,
		Checkout:       orchestrator,
		RequestTimeout: cfg.RequestTimeout,
		NewPoller: func(orderID string) *tracking.Poller {
			return tracking.NewPoller(orders, orderID, cfg.PollInterval, logger)
		},
	})

	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("storefront error: %v", err)
	}
}
