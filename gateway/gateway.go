// Package gateway implements a client for the Beanstream (TD Canada Trust
// Online Mart) payment processor. It translates abstract payment
// operations onto the processor's three wire protocols: a form-encoded
// channel for one-off transactions, an XML-response channel for recurring
// billing management, and a tab-separated channel for transaction reports.
package gateway

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/raysrashmi/beanstream/billing"
	pkgerrors "github.com/raysrashmi/beanstream/pkg/errors"
	"github.com/raysrashmi/beanstream/ports"
)

const (
	defaultTransactionURL = "https://www.beanstream.com/scripts/process_transaction.asp"
	defaultRecurringURL   = "https://www.beanstream.com/scripts/recurring_billing.asp"
	defaultReportURL      = "https://www.beanstream.com/scripts/report_download.asp"
)

// Config holds the per-instance credentials, read-only after New.
// MerchantID is always required; Username and Password are needed for
// capture, void and credit, PassCode for the recurring sub-protocol.
type Config struct {
	MerchantID string
	Username   string
	Password   string
	PassCode   string

	// TestMode marks every response as a test result regardless of the
	// processor's auth code.
	TestMode bool

	// Endpoint overrides, used by tests; production defaults apply when
	// left empty.
	TransactionURL string
	RecurringURL   string
	ReportURL      string
}

// Gateway performs Beanstream operations over an injected HTTP client.
// Every operation builds a fresh field set and returns a fresh Response,
// so concurrent calls on one instance are safe as long as the HTTP
// client is.
type Gateway struct {
	config     Config
	httpClient ports.HTTPClient
	logger     ports.Logger

	interacOnce sync.Once
	interac     *InteracGateway
}

// New creates a gateway with the given credentials and collaborators.
// A nil logger disables logging.
func New(config Config, httpClient ports.HTTPClient, logger ports.Logger) *Gateway {
	if config.TransactionURL == "" {
		config.TransactionURL = defaultTransactionURL
	}
	if config.RecurringURL == "" {
		config.RecurringURL = defaultRecurringURL
	}
	if config.ReportURL == "" {
		config.ReportURL = defaultReportURL
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Gateway{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Authorize reserves the amount on a card without capturing it. The
// amount is in minor units (cents).
func (g *Gateway) Authorize(ctx context.Context, amount int64, card billing.CreditCard, opts *TransactionOptions) (*Response, error) {
	fs := NewFieldSet()
	addAmount(fs, amount)
	addInvoice(fs, opts)
	addCreditCard(fs, card)
	addAddress(fs, opts)
	addTransactionType(fs, txnAuthorize)

	g.logger.Info("processing authorize",
		ports.String("trn_type", fs.Get("trnType")),
		ports.String("amount", fs.Get("trnAmount")),
	)
	return g.commit(ctx, fs)
}

// Purchase charges a card or debits a bank account in a single step.
func (g *Gateway) Purchase(ctx context.Context, amount int64, source billing.Instrument, opts *TransactionOptions) (*Response, error) {
	fs := NewFieldSet()
	addAmount(fs, amount)
	addInvoice(fs, opts)
	if err := addSource(fs, source); err != nil {
		return nil, err
	}
	addAddress(fs, opts)
	addTransactionType(fs, purchaseAction(source))

	g.logger.Info("processing purchase",
		ports.String("trn_type", fs.Get("trnType")),
		ports.String("amount", fs.Get("trnAmount")),
	)
	return g.commit(ctx, fs)
}

// Capture completes a prior authorization. The authorization token must
// come from a previous Authorize response.
func (g *Gateway) Capture(ctx context.Context, amount int64, authorization string, _ *TransactionOptions) (*Response, error) {
	auth, err := ParseAuthorization(authorization)
	if err != nil {
		return nil, err
	}

	fs := NewFieldSet()
	addAmount(fs, amount)
	addReference(fs, auth.Reference)
	addTransactionType(fs, txnCapture)

	g.logger.Info("processing capture",
		ports.String("reference", auth.Reference),
		ports.String("amount", fs.Get("trnAmount")),
	)
	return g.commit(ctx, fs)
}

// Void cancels a prior transaction for its full original amount. The
// matching void code is recovered from the authorization token, so
// voiding a credit issues VR rather than VP.
func (g *Gateway) Void(ctx context.Context, authorization string, _ *TransactionOptions) (*Response, error) {
	auth, err := ParseAuthorization(authorization)
	if err != nil {
		return nil, err
	}

	fs := NewFieldSet()
	addReference(fs, auth.Reference)
	addOriginalAmount(fs, auth.Amount)
	addTransactionType(fs, voidAction(auth.Code))

	g.logger.Info("processing void",
		ports.String("reference", auth.Reference),
		ports.String("trn_type", fs.Get("trnType")),
	)
	return g.commit(ctx, fs)
}

// Credit returns funds against a prior transaction. EFT purchases are
// refunded with the EFT credit code.
func (g *Gateway) Credit(ctx context.Context, amount int64, authorization string, _ *TransactionOptions) (*Response, error) {
	auth, err := ParseAuthorization(authorization)
	if err != nil {
		return nil, err
	}

	fs := NewFieldSet()
	addReference(fs, auth.Reference)
	addTransactionType(fs, creditAction(auth.Code))
	addAmount(fs, amount)

	g.logger.Info("processing credit",
		ports.String("reference", auth.Reference),
		ports.String("trn_type", fs.Get("trnType")),
	)
	return g.commit(ctx, fs)
}

// Recurring creates a recurring billing account by charging the first
// occurrence over the transaction transport with the recurring flag set.
func (g *Gateway) Recurring(ctx context.Context, amount int64, card billing.CreditCard, opts *TransactionOptions, schedule *RecurringSchedule) (*Response, error) {
	if schedule == nil {
		return nil, pkgerrors.NewValidationError("schedule", "recurring schedule is required")
	}

	fs := NewFieldSet()
	addAmount(fs, amount)
	addInvoice(fs, opts)
	addCreditCard(fs, card)
	addAddress(fs, opts)
	addTransactionType(fs, purchaseAction(card))
	addRecurringSchedule(fs, schedule)

	g.logger.Info("processing recurring create",
		ports.String("billing_period", fs.Get("rbBillingPeriod")),
		ports.String("amount", fs.Get("trnAmount")),
	)
	return g.commit(ctx, fs)
}

// UpdateRecurring modifies an existing recurring billing account via the
// recurring sub-protocol.
func (g *Gateway) UpdateRecurring(ctx context.Context, amount int64, card billing.CreditCard, opts *RecurringAccountOptions) (*Response, error) {
	if opts == nil || opts.AccountID == "" {
		return nil, pkgerrors.NewValidationError("account_id", "recurring account id is required")
	}

	fs := NewFieldSet()
	addRecurringAmount(fs, amount)
	fs.Set("rbApplyTax1", opts.ApplyTax1)
	addCreditCard(fs, card)
	addAddresses(fs, opts.Email, opts.BillingAddress, opts.ShippingAddress)
	addRecurringOperation(fs, "M")
	addRecurringAccount(fs, opts.AccountID)

	g.logger.Info("processing recurring update",
		ports.String("account_id", opts.AccountID),
		ports.String("amount", fs.Get("amount")),
	)
	return g.recurringCommit(ctx, fs)
}

// CancelRecurring closes an existing recurring billing account.
func (g *Gateway) CancelRecurring(ctx context.Context, accountID string) (*Response, error) {
	if accountID == "" {
		return nil, pkgerrors.NewValidationError("account_id", "recurring account id is required")
	}

	fs := NewFieldSet()
	addRecurringOperation(fs, "C")
	addRecurringAccount(fs, accountID)

	g.logger.Info("processing recurring cancel",
		ports.String("account_id", accountID),
	)
	return g.recurringCommit(ctx, fs)
}

// RecurringNotification classifies an already-decoded recurring billing
// webhook payload. No network call is made; the payload goes through the
// same classification as a form-transport response.
func (g *Gateway) RecurringNotification(params map[string]string) *Response {
	return newTransactionResponse(params, g.config.TestMode)
}

// Interac returns the Interac Online variant of this gateway, created on
// first use and cached for the instance's lifetime.
func (g *Gateway) Interac() *InteracGateway {
	g.interacOnce.Do(func() {
		g.interac = &InteracGateway{
			gateway: New(g.config, g.httpClient, g.logger),
		}
	})
	return g.interac
}

// commit sends a field set over the transaction transport and classifies
// the response.
func (g *Gateway) commit(ctx context.Context, fs *FieldSet) (*Response, error) {
	body, err := g.post(ctx, g.config.TransactionURL, g.transactionData(fs))
	if err != nil {
		return nil, err
	}

	response := newTransactionResponse(parseFormResponse(body), g.config.TestMode)
	g.logger.Info("transaction processed",
		ports.Bool("success", response.Success),
		ports.String("message", response.Message),
		ports.String("authorization", response.Authorization),
	)
	return response, nil
}

// recurringCommit sends a field set over the recurring transport and
// classifies the XML response.
func (g *Gateway) recurringCommit(ctx context.Context, fs *FieldSet) (*Response, error) {
	body, err := g.post(ctx, g.config.RecurringURL, g.recurringData(fs))
	if err != nil {
		return nil, err
	}

	params, err := parseRecurringResponse(body)
	if err != nil {
		g.logger.Error("failed to parse recurring response", ports.Err(err))
		return nil, err
	}

	response := newRecurringResponse(params, g.config.TestMode)
	g.logger.Info("recurring request processed",
		ports.Bool("success", response.Success),
		ports.String("message", response.Message),
	)
	return response, nil
}

// post performs one HTTPS POST of an encoded body. Network failures are
// the transport collaborator's concern and propagate unchanged.
func (g *Gateway) post(ctx context.Context, url, data string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("request failed", ports.String("url", url), ports.Err(err))
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// nopLogger discards all log output.
type nopLogger struct{}

func (nopLogger) Info(string, ...ports.Field)  {}
func (nopLogger) Error(string, ...ports.Field) {}
func (nopLogger) Warn(string, ...ports.Field)  {}
func (nopLogger) Debug(string, ...ports.Field) {}
