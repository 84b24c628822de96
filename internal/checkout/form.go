package checkout

import (
	"strings"

	"github.com/shopfast/storefront-go/internal/api"
)

// Form carries the checkout fields exactly as the storefront collects them.
// Only presence is validated here; content rules (card networks, address
// formats) belong to the server.
type Form struct {
	Email      string
	FirstName  string
	LastName   string
	Address    string
	City       string
	State      string
	ZipCode    string
	CardNumber string
	ExpiryDate string
	CVV        string
}

// ValidationError reports which required fields are missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (f Form) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"email", f.Email},
		{"firstName", f.FirstName},
		{"lastName", f.LastName},
		{"address", f.Address},
		{"city", f.City},
		{"state", f.State},
		{"zipCode", f.ZipCode},
		{"cardNumber", f.CardNumber},
		{"expiryDate", f.ExpiryDate},
		{"cvv", f.CVV},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func (f Form) customer() api.Customer {
	return api.Customer{Email: f.Email, FirstName: f.FirstName, LastName: f.LastName}
}

func (f Form) shippingAddress() api.ShippingAddress {
	return api.ShippingAddress{Address: f.Address, City: f.City, State: f.State, ZipCode: f.ZipCode}
}
