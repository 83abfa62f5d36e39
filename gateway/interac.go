package gateway

import (
	"context"

	"github.com/raysrashmi/beanstream/ports"
)

// InteracGateway processes Interac Online purchases with the same
// credentials and transports as the gateway it was created from. Obtain
// one through Gateway.Interac.
type InteracGateway struct {
	gateway *Gateway
}

// Purchase starts an Interac Online purchase. The response carries the
// redirect fields the shopper's bank flow requires; card fields are never
// sent because the shopper pays from their bank account.
func (ig *InteracGateway) Purchase(ctx context.Context, amount int64, opts *TransactionOptions) (*Response, error) {
	g := ig.gateway

	fs := NewFieldSet()
	addAmount(fs, amount)
	addInvoice(fs, opts)
	addAddress(fs, opts)
	addTransactionType(fs, txnPurchase)
	fs.Set("paymentMethod", "IO")

	g.logger.Info("processing interac purchase",
		ports.String("amount", fs.Get("trnAmount")),
	)
	return g.commit(ctx, fs)
}
