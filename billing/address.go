package billing

// Address carries billing or shipping contact fields. PostalCode is a
// pointer because Beanstream's non-domestic address rules distinguish an
// absent postal code (defaulted on the wire) from a present-but-empty one
// (sent as supplied, then dropped as blank).
type Address struct {
	Name       string
	Phone      string
	Address1   string
	Address2   string
	City       string
	Province   string
	PostalCode *string
	Country    string

	// Shipping-only fields, ignored for billing addresses.
	ShippingMethod   string
	DeliveryEstimate string
}

// PostalCodeValue returns the postal code or "" when absent.
func (a *Address) PostalCodeValue() string {
	if a == nil || a.PostalCode == nil {
		return ""
	}
	return *a.PostalCode
}
