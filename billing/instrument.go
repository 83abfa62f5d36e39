package billing

import "fmt"

// InstrumentKind identifies which family of payment instrument is being
// charged. It decides the transaction-type code variant and the field
// subset sent on the wire.
type InstrumentKind string

const (
	KindCard  InstrumentKind = "card"
	KindCheck InstrumentKind = "check"
)

// Instrument is a payment source accepted by purchase-family operations.
type Instrument interface {
	Kind() InstrumentKind
}

// CreditCard holds the card fields Beanstream consumes.
type CreditCard struct {
	Name              string
	Number            string
	Month             int
	Year              int
	VerificationValue string
}

func (CreditCard) Kind() InstrumentKind { return KindCard }

// ExpiryMonth returns the two-digit expiry month, e.g. 8 -> "08".
func (c CreditCard) ExpiryMonth() string {
	return fmt.Sprintf("%02d", c.Month)
}

// ExpiryYear returns the two-digit expiry year, e.g. 2011 -> "11".
func (c CreditCard) ExpiryYear() string {
	return fmt.Sprintf("%02d", c.Year%100)
}

// Check holds the bank account fields for EFT (direct debit) transactions.
// Institution and transit numbers are required for Canadian dollar EFT,
// the routing number for US dollar EFT.
type Check struct {
	InstitutionNumber string
	TransitNumber     string
	RoutingNumber     string
	AccountNumber     string
}

func (Check) Kind() InstrumentKind { return KindCheck }
