package gateway

import (
	"testing"

	"github.com/raysrashmi/beanstream/billing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeAddresses_NonDomestic(t *testing.T) {
	t.Run("german address gets dummy province, keeps postal code", func(t *testing.T) {
		address := &billing.Address{
			City:       "Berlin",
			Country:    "DE",
			PostalCode: strPtr("12345"),
		}

		normalizeAddresses(address)

		assert.Equal(t, "--", address.Province)
		require.NotNil(t, address.PostalCode)
		assert.Equal(t, "12345", *address.PostalCode)
	})

	t.Run("brazilian address without postal code gets both placeholders", func(t *testing.T) {
		address := &billing.Address{
			City:    "Rio de Janeiro",
			Country: "BR",
		}

		normalizeAddresses(address)

		assert.Equal(t, "--", address.Province)
		require.NotNil(t, address.PostalCode)
		assert.Equal(t, "000000", *address.PostalCode)
	})

	t.Run("present-but-empty postal code is preserved, not defaulted", func(t *testing.T) {
		address := &billing.Address{
			Country:    "DE",
			PostalCode: strPtr(""),
		}

		normalizeAddresses(address)

		require.NotNil(t, address.PostalCode)
		assert.Equal(t, "", *address.PostalCode)
	})
}

func TestNormalizeAddresses_Domestic(t *testing.T) {
	testCases := []struct {
		name    string
		country string
	}{
		{name: "canadian address passes through", country: "CA"},
		{name: "american address passes through", country: "US"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			address := &billing.Address{
				Province:   "QC",
				Country:    tc.country,
				PostalCode: strPtr("H2C1X8"),
			}

			normalizeAddresses(address)

			assert.Equal(t, "QC", address.Province)
			assert.Equal(t, "H2C1X8", *address.PostalCode)
		})
	}
}

func TestNormalizeAddresses_NilAddressesIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		normalizeAddresses(nil, nil)
	})
}

func TestNormalizeAddresses_BothAddresses(t *testing.T) {
	billingAddr := &billing.Address{Country: "DE"}
	shippingAddr := &billing.Address{Country: "DE"}

	normalizeAddresses(billingAddr, shippingAddr)

	assert.Equal(t, "--", billingAddr.Province)
	assert.Equal(t, "--", shippingAddr.Province)
	assert.Equal(t, "000000", *billingAddr.PostalCode)
	assert.Equal(t, "000000", *shippingAddr.PostalCode)
}
