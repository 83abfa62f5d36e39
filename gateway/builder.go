package gateway

import (
	"strconv"
	"time"

	"github.com/raysrashmi/beanstream/billing"
	pkgerrors "github.com/raysrashmi/beanstream/pkg/errors"
)

// TransactionOptions carries the invoice and customer fields for one-off
// transactions. Monetary option fields are in minor units; nil means the
// field is not sent at all.
type TransactionOptions struct {
	OrderID     string
	Description string
	Email       string
	Custom      string

	Subtotal *int64
	Shipping *int64
	Tax1     *int64
	Tax2     *int64

	BillingAddress  *billing.Address
	ShippingAddress *billing.Address
}

// RecurringSchedule describes the billing cadence for recurring-create.
type RecurringSchedule struct {
	Unit      PeriodUnit
	Increment int

	// StartDate is the first day of the billing duration; the computed
	// expiry date advances it by Occurrences calendar months.
	StartDate   time.Time
	Occurrences int

	// Optional flags, sent only when non-empty.
	EndOfMonth string
	ApplyTax1  string
}

// RecurringAccountOptions carries the reduced field set used by the
// recurring update/cancel sub-protocol.
type RecurringAccountOptions struct {
	AccountID string
	ApplyTax1 string
	Email     string

	BillingAddress  *billing.Address
	ShippingAddress *billing.Address
}

func addAmount(fs *FieldSet, minorUnits int64) {
	fs.Set("trnAmount", billing.Amount(minorUnits))
}

// addOriginalAmount echoes back the amount string recovered from an
// authorization token, without reformatting it.
func addOriginalAmount(fs *FieldSet, amount string) {
	fs.Set("trnAmount", amount)
}

func addReference(fs *FieldSet, reference string) {
	fs.Set("adjId", reference)
}

func addTransactionType(fs *FieldSet, code string) {
	fs.Set("trnType", code)
}

func addInvoice(fs *FieldSet, opts *TransactionOptions) {
	if opts == nil {
		return
	}
	fs.Set("trnOrderNumber", opts.OrderID)
	fs.Set("trnComments", opts.Description)
	addOptionalAmount(fs, "ordItemPrice", opts.Subtotal)
	addOptionalAmount(fs, "ordShippingPrice", opts.Shipping)
	addOptionalAmount(fs, "ordTax1Price", opts.Tax1)
	addOptionalAmount(fs, "ordTax2Price", opts.Tax2)
	fs.Set("ref1", opts.Custom)
}

func addOptionalAmount(fs *FieldSet, key string, minorUnits *int64) {
	if minorUnits != nil {
		fs.Set(key, billing.Amount(*minorUnits))
	}
}

func addCreditCard(fs *FieldSet, card billing.CreditCard) {
	fs.Set("trnCardOwner", card.Name)
	fs.Set("trnCardNumber", card.Number)
	fs.Set("trnExpMonth", card.ExpiryMonth())
	fs.Set("trnExpYear", card.ExpiryYear())
	fs.Set("trnCardCvd", card.VerificationValue)
}

func addCheck(fs *FieldSet, check billing.Check) {
	fs.Set("institutionNumber", check.InstitutionNumber)
	fs.Set("transitNumber", check.TransitNumber)
	fs.Set("routingNumber", check.RoutingNumber)
	fs.Set("accountNumber", check.AccountNumber)
}

func addSource(fs *FieldSet, source billing.Instrument) error {
	switch s := source.(type) {
	case billing.CreditCard:
		addCreditCard(fs, s)
	case *billing.CreditCard:
		addCreditCard(fs, *s)
	case billing.Check:
		addCheck(fs, s)
	case *billing.Check:
		addCheck(fs, *s)
	default:
		return pkgerrors.NewValidationError("source", "instrument must be a credit card or check")
	}
	return nil
}

// addAddresses normalizes and copies the billing and shipping field
// groups. Normalization must run before fields are copied out.
func addAddresses(fs *FieldSet, email string, billingAddr, shippingAddr *billing.Address) {
	normalizeAddresses(billingAddr, shippingAddr)

	if billingAddr != nil {
		fs.Set("ordName", billingAddr.Name)
		fs.Set("ordEmailAddress", email)
		fs.Set("ordPhoneNumber", billingAddr.Phone)
		fs.Set("ordAddress1", billingAddr.Address1)
		fs.Set("ordAddress2", billingAddr.Address2)
		fs.Set("ordCity", billingAddr.City)
		fs.Set("ordProvince", billingAddr.Province)
		fs.Set("ordPostalCode", billingAddr.PostalCodeValue())
		fs.Set("ordCountry", billingAddr.Country)
	}
	if shippingAddr != nil {
		fs.Set("shipName", shippingAddr.Name)
		fs.Set("shipEmailAddress", email)
		fs.Set("shipPhoneNumber", shippingAddr.Phone)
		fs.Set("shipAddress1", shippingAddr.Address1)
		fs.Set("shipAddress2", shippingAddr.Address2)
		fs.Set("shipCity", shippingAddr.City)
		fs.Set("shipProvince", shippingAddr.Province)
		fs.Set("shipPostalCode", shippingAddr.PostalCodeValue())
		fs.Set("shipCountry", shippingAddr.Country)
		fs.Set("shippingMethod", shippingAddr.ShippingMethod)
		fs.Set("deliveryEstimate", shippingAddr.DeliveryEstimate)
	}
}

func addAddress(fs *FieldSet, opts *TransactionOptions) {
	if opts == nil {
		return
	}
	addAddresses(fs, opts.Email, opts.BillingAddress, opts.ShippingAddress)
}

func addRecurringSchedule(fs *FieldSet, schedule *RecurringSchedule) {
	fs.Set("trnRecurring", "1")
	fs.Set("rbBillingPeriod", billingPeriods[schedule.Unit])
	fs.Set("rbBillingIncrement", strconv.Itoa(schedule.Increment))
	fs.Set("rbFirstBilling", schedule.StartDate.Format("01022006"))
	fs.Set("rbExpiry", advanceMonths(schedule.StartDate, schedule.Occurrences).Format("01022006"))
	if schedule.EndOfMonth != "" {
		fs.Set("rbEndMonth", schedule.EndOfMonth)
	}
	if schedule.ApplyTax1 != "" {
		fs.Set("rbApplyTax1", schedule.ApplyTax1)
	}
}

// advanceMonths adds calendar months with end-of-month clamping, so
// Jan 31 plus one month lands on Feb 28 instead of rolling into March.
func advanceMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

func addRecurringAmount(fs *FieldSet, minorUnits int64) {
	fs.Set("amount", billing.Amount(minorUnits))
}

// addRecurringOperation sets the update/cancel operation code.
func addRecurringOperation(fs *FieldSet, code string) {
	fs.Set("operationType", code)
}

func addRecurringAccount(fs *FieldSet, accountID string) {
	fs.Set("rbAccountId", accountID)
}
