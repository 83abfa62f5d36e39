package gateway

import (
	"strings"

	pkgerrors "github.com/raysrashmi/beanstream/pkg/errors"
)

// Authorization is the composite token produced after every synchronous
// transaction. Capture, void and credit take it back to recover the
// original transaction's reference, amount and type code.
type Authorization struct {
	Reference string
	Amount    string
	Code      string
}

// String composes the wire form of the token: "reference;amount;type".
func (a Authorization) String() string {
	return a.Reference + ";" + a.Amount + ";" + a.Code
}

// ParseAuthorization splits a composite token into its three parts.
// Anything without exactly three semicolon-separated fields is a caller
// error and fails fast instead of being silently truncated.
func ParseAuthorization(token string) (Authorization, error) {
	parts := strings.Split(token, ";")
	if len(parts) != 3 {
		return Authorization{}, pkgerrors.NewValidationError("authorization",
			"must have the form reference;amount;type")
	}
	return Authorization{
		Reference: parts[0],
		Amount:    parts[1],
		Code:      parts[2],
	}, nil
}
