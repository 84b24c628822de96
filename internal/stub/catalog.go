package stub

import "github.com/shopfast/storefront-go/internal/api"

func seedProducts() []api.Product {
	return []api.Product{
		{ID: "p1", Name: "Wireless Headphones", Description: "Over-ear, noise cancelling, 30h battery", Price: 79.99, ImageURL: "https://images.shopfast.dev/p1.jpg"},
		{ID: "p2", Name: "Mechanical Keyboard", Description: "Tenkeyless, hot-swappable switches", Price: 119.00, ImageURL: "https://images.shopfast.dev/p2.jpg"},
		{ID: "p3", Name: "USB-C Hub", Description: "7-in-1 with HDMI and card reader", Price: 34.50},
		{ID: "p4", Name: "Laptop Stand", Description: "Aluminium, adjustable height", Price: 42.00, ImageURL: "https://images.shopfast.dev/p4.jpg"},
		{ID: "p5", Name: "Webcam", Description: "1080p60 with privacy shutter", Price: 59.90},
		{ID: "p6", Name: "Desk Mat", Description: "90x40cm, stitched edges", Price: 18.75, ImageURL: "https://images.shopfast.dev/p6.jpg"},
	}
}

func seedInventory() map[string]int {
	return map[string]int{
		"p1": 12,
		"p2": 4,
		"p3": 30,
		"p4": 9,
		"p5": 0,
		"p6": 55,
	}
}
