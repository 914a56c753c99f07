package entity

// PaymentMethod is how the order was paid at the counter.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "CASH"
	PaymentCard  PaymentMethod = "CARD"
	PaymentOther PaymentMethod = "OTHER"
)

var AllPaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentOther}

// ParsePaymentMethod validates a payment method from the outside world.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch pm := PaymentMethod(s); pm {
	case PaymentCash, PaymentCard, PaymentOther:
		return pm, true
	}
	return "", false
}

// PaymentMethodFromStore maps a persisted payment string to a method,
// recovering unknown legacy values to CASH.
func PaymentMethodFromStore(s string) PaymentMethod {
	if pm, ok := ParsePaymentMethod(s); ok {
		return pm
	}
	return PaymentCash
}
