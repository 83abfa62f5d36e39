// Command beanstream-report downloads a Beanstream transaction report for
// a date range and prints one line per transaction.
//
// Credentials come from the environment (or a .env file):
// BEANSTREAM_MERCHANT_ID, BEANSTREAM_USERNAME, BEANSTREAM_PASSWORD.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/raysrashmi/beanstream/config"
	"github.com/raysrashmi/beanstream/gateway"
	"github.com/raysrashmi/beanstream/pkg/httpx"
	"github.com/raysrashmi/beanstream/pkg/logging"
	"github.com/raysrashmi/beanstream/ports"
)

func main() {
	start := flag.String("start", "", "start date (YYYY-MM-DD), defaults to today")
	end := flag.String("end", "", "end date (YYYY-MM-DD), defaults to start")
	status := flag.String("status", "", "filter by transaction status")
	cardType := flag.String("card-type", "", "filter by card type")
	reference := flag.String("ref", "", "filter by order reference")
	batch := flag.String("batch", "", "filter by batch number")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall request timeout")
	flag.Parse()

	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	criteria, err := buildCriteria(*start, *end, *status, *cardType, *reference, *batch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flags: %v\n", err)
		os.Exit(1)
	}

	httpClient := httpx.NewRetryingClient(
		httpx.NewClient(httpx.DefaultClientConfig(), time.Duration(cfg.Gateway.Timeout)*time.Second),
		logger,
		3,
	)

	gw := gateway.New(gateway.Config{
		MerchantID: cfg.Gateway.MerchantID,
		Username:   cfg.Gateway.Username,
		Password:   cfg.Gateway.Password,
		PassCode:   cfg.Gateway.PassCode,
		TestMode:   cfg.Gateway.TestMode,
	}, httpClient, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	responses, err := gw.TransactionReport(ctx, criteria)
	if err != nil {
		logger.Error("report download failed", ports.Err(err))
		os.Exit(1)
	}

	for _, r := range responses {
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
			r.Params["trn_id"],
			r.Params["trn_datetime"],
			r.Params["trn_amount"],
			r.Params["trn_card_owner"],
			r.Message,
		)
	}
}

func newLogger(cfg config.LoggerConfig) (ports.Logger, error) {
	if cfg.Development {
		return logging.NewDevelopment()
	}
	return logging.NewProduction()
}

func buildCriteria(start, end, status, cardType, reference, batch string) (*gateway.ReportCriteria, error) {
	startDate := time.Now()
	if start != "" {
		parsed, err := time.Parse("2006-01-02", start)
		if err != nil {
			return nil, fmt.Errorf("invalid -start date: %w", err)
		}
		startDate = parsed
	}

	endDate := startDate
	if end != "" {
		parsed, err := time.Parse("2006-01-02", end)
		if err != nil {
			return nil, fmt.Errorf("invalid -end date: %w", err)
		}
		endDate = parsed
	}

	return &gateway.ReportCriteria{
		Start:       startDate,
		End:         endDate,
		Status:      status,
		CardType:    cardType,
		Reference:   reference,
		BatchNumber: batch,
	}, nil
}
