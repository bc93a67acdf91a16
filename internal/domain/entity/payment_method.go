package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Payment method code prefixes. Codes are reference data seeded at deploy
// time; the prefix decides how the money was collected.
const (
	// PaymentMethodPrefixApp marks methods where the platform collects the
	// money in-app (card, wallet).
	PaymentMethodPrefixApp = "APP_"
	// PaymentMethodPrefixDirect marks methods where the driver collects the
	// money directly (cash, direct transfer).
	PaymentMethodPrefixDirect = "DIRECT_"
)

// PaymentMethod is reference data describing how a payment was collected.
// Read-only at runtime.
type PaymentMethod struct {
	ID     uuid.UUID
	Code   string
	Name   string
	Active bool
}

// DefaultPaymentMethods returns the reference methods seeded at startup.
func DefaultPaymentMethods() []*PaymentMethod {
	codes := []struct {
		code string
		name string
	}{
		{"APP_CARD", "Card (in-app)"},
		{"APP_WALLET", "Wallet (in-app)"},
		{"DIRECT_CASH", "Cash (collected by driver)"},
		{"DIRECT_TRANSFER", "Bank transfer (collected by driver)"},
	}

	methods := make([]*PaymentMethod, len(codes))
	for i, c := range codes {
		methods[i] = &PaymentMethod{
			ID:     uuid.New(),
			Code:   c.code,
			Name:   c.name,
			Active: true,
		}
	}
	return methods
}

// IsInApp reports whether the method is collected in-app by the platform.
func (m *PaymentMethod) IsInApp() bool {
	return strings.HasPrefix(m.Code, PaymentMethodPrefixApp)
}

// IsDirect reports whether the method is collected directly by the driver.
func (m *PaymentMethod) IsDirect() bool {
	return strings.HasPrefix(m.Code, PaymentMethodPrefixDirect)
}
