package gateway

import "github.com/raysrashmi/beanstream/billing"

// The processor only understands US and CA region/postal formats; other
// countries must send these placeholders instead.
const (
	placeholderProvince   = "--"
	placeholderPostalCode = "000000"
)

// normalizeAddresses applies the processor's non-domestic address rules in
// place. For any address outside US/CA the province becomes the fixed
// placeholder, and the postal code is defaulted only when absent: a
// present-but-empty postal code is preserved as supplied.
func normalizeAddresses(addresses ...*billing.Address) {
	for _, address := range addresses {
		if address == nil {
			continue
		}
		if address.Country == "US" || address.Country == "CA" {
			continue
		}
		address.Province = placeholderProvince
		if address.PostalCode == nil {
			postalCode := placeholderPostalCode
			address.PostalCode = &postalCode
		}
	}
}
