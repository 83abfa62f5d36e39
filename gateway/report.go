package gateway

import (
	"context"
	"strconv"
	"time"

	"github.com/raysrashmi/beanstream/ports"
)

// ReportCriteria selects the historical transactions to download. Start
// and End bound the search by calendar day; the remaining filters are
// optional and dropped from the wire when blank.
type ReportCriteria struct {
	Start time.Time
	End   time.Time

	Status      string
	CardType    string
	TransTypes  string
	Reference   string
	BatchNumber string
	Range       string
	IDStart     string
	IDEnd       string
}

// TransactionReport downloads historical transactions matching the
// criteria and classifies each row, returning one Response per
// transaction in row order.
func (g *Gateway) TransactionReport(ctx context.Context, criteria *ReportCriteria) ([]*Response, error) {
	fs := NewFieldSet()
	addReportCriteria(fs, criteria)

	g.logger.Info("downloading transaction report",
		ports.String("start", criteria.Start.Format("2006-01-02")),
		ports.String("end", criteria.End.Format("2006-01-02")),
	)

	body, err := g.post(ctx, g.config.ReportURL, g.reportData(fs))
	if err != nil {
		return nil, err
	}

	rows, err := parseTransactionReport(body)
	if err != nil {
		g.logger.Error("failed to parse transaction report", ports.Err(err))
		return nil, err
	}

	responses := make([]*Response, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, newReportResponse(row, g.config.TestMode))
	}

	g.logger.Info("transaction report downloaded", ports.Int("rows", len(responses)))
	return responses, nil
}

// TodayReport downloads the report for today's transactions.
func (g *Gateway) TodayReport(ctx context.Context) ([]*Response, error) {
	today := time.Now()
	return g.TransactionReport(ctx, &ReportCriteria{Start: today, End: today})
}

func addReportCriteria(fs *FieldSet, criteria *ReportCriteria) {
	if criteria == nil {
		return
	}
	addReportDate(fs, "rptStart", criteria.Start)
	addReportDate(fs, "rptEnd", criteria.End)
	fs.Set("rptStatus", criteria.Status)
	fs.Set("rptCardType", criteria.CardType)
	fs.Set("rptTransTypes", criteria.TransTypes)
	fs.Set("rptRef", criteria.Reference)
	fs.Set("rptBatchNumber", criteria.BatchNumber)
	fs.Set("rptRange", criteria.Range)
	fs.Set("rptIdStart", criteria.IDStart)
	fs.Set("rptIdEnd", criteria.IDEnd)
}

func addReportDate(fs *FieldSet, prefix string, date time.Time) {
	if date.IsZero() {
		return
	}
	fs.Set(prefix+"Year", strconv.Itoa(date.Year()))
	fs.Set(prefix+"Month", strconv.Itoa(int(date.Month())))
	fs.Set(prefix+"Day", strconv.Itoa(date.Day()))
}
