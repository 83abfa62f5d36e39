package gateway

import (
	"fmt"

	"github.com/raysrashmi/beanstream/billing"
)

// Transaction type codes understood by the processor.
const (
	txnPurchase      = "P"   // purchase (auth + capture)
	txnAuthorize     = "PA"  // pre-authorization
	txnCapture       = "PAC" // pre-authorization completion
	txnCredit        = "R"   // return funds to a card
	txnVoidPurchase  = "VP"  // void a purchase
	txnVoidCredit    = "VR"  // void a credit
	txnCheckPurchase = "D"   // EFT debit
	txnCheckCredit   = "C"   // EFT credit
)

// cvdCodes maps the processor's CVD result ids to normalized CVV codes.
var cvdCodes = map[string]string{
	"1": "M",
	"2": "N",
	"3": "I",
	"4": "S",
	"5": "U",
	"6": "P",
}

// avsCodes maps the processor's AVS result ids to normalized AVS codes.
// Ids outside this table are passed through verbatim.
var avsCodes = map[string]string{
	"0": "R",
	"5": "I",
	"9": "I",
}

// PeriodUnit is the unit of a recurring billing interval.
type PeriodUnit string

const (
	PeriodDays   PeriodUnit = "days"
	PeriodWeeks  PeriodUnit = "weeks"
	PeriodMonths PeriodUnit = "months"
	PeriodYears  PeriodUnit = "years"
)

// billingPeriods maps interval units to the processor's period codes.
var billingPeriods = map[PeriodUnit]string{
	PeriodDays:   "D",
	PeriodWeeks:  "W",
	PeriodMonths: "M",
	PeriodYears:  "Y",
}

// purchaseAction selects the purchase-family transaction code for the
// given instrument: EFT debit for checks, purchase for cards.
func purchaseAction(source billing.Instrument) string {
	if source != nil && source.Kind() == billing.KindCheck {
		return txnCheckPurchase
	}
	return txnPurchase
}

// voidAction selects the void code matching the original transaction:
// voiding a credit needs VR, everything else VP.
func voidAction(originalType string) string {
	if originalType == txnCredit {
		return txnVoidCredit
	}
	return txnVoidPurchase
}

// creditAction selects the credit code matching the original transaction:
// EFT purchases are returned with an EFT credit.
func creditAction(originalType string) string {
	if originalType == txnCheckPurchase {
		return txnCheckCredit
	}
	return txnCredit
}

// reportMessage maps a report row's numeric response code to a
// human-readable message. Codes outside the documented set are surfaced
// in a diagnostic message rather than treated as an error.
func reportMessage(code string) string {
	switch code {
	case "0":
		return "In Process"
	case "1":
		return "Approved"
	case "2":
		return "Declined"
	case "3":
		return "Not Processed"
	default:
		return fmt.Sprintf("Unknown transaction response code: %s", code)
	}
}
