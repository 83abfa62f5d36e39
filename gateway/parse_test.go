package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormResponse(t *testing.T) {
	body := "trnApproved=1&trnId=10000028&trnAmount=15%2E00&trnType=P&trnDate=6%2F5%2F2008+5%3A26%3A53+AM&errorFields="

	params := parseFormResponse(body)

	assert.Equal(t, "1", params["trnApproved"])
	assert.Equal(t, "10000028", params["trnId"])
	assert.Equal(t, "15.00", params["trnAmount"])
	assert.Equal(t, "P", params["trnType"])
	assert.Equal(t, "6/5/2008 5:26:53 AM", params["trnDate"])
	assert.Equal(t, "", params["errorFields"])
}

func TestParseFormResponse_EmptyBody(t *testing.T) {
	params := parseFormResponse("")
	assert.Empty(t, params)
}

func TestParseFormResponse_CleansMessageText(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "list markers removed",
			raw:      "messageText=%3CLI%3EInvalid+card+number%3CLI%3EInvalid+expiry",
			expected: "Invalid card numberInvalid expiry",
		},
		{
			name:     "line breaks become sentence breaks",
			raw:      "messageText=Card+declined.%3Cbr%3EPlease+retry",
			expected: "Card declined. Please retry",
		},
		{
			name:     "line break without dot",
			raw:      "messageText=Card+declined%3Cbr%3EPlease+retry",
			expected: "Card declined. Please retry",
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "messageText=++Approved++",
			expected: "Approved",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := parseFormResponse(tc.raw)
			assert.Equal(t, tc.expected, params["messageText"])
		})
	}
}

func TestParseRecurringResponse(t *testing.T) {
	params, err := parseRecurringResponse("<response><code>1</code><message>Request successful</message></response>")

	require.NoError(t, err)
	assert.Equal(t, "1", params["code"])
	assert.Equal(t, "Request successful", params["message"])
}

func TestParseRecurringResponse_SnakeCasesLeafNames(t *testing.T) {
	params, err := parseRecurringResponse("<response><accountId>1234567</accountId></response>")

	require.NoError(t, err)
	assert.Equal(t, "1234567", params["account_id"])
}

func TestParseRecurringResponse_FlattensNestedBranches(t *testing.T) {
	body := "<response><account><accountId>42</accountId><status>A</status></account><code>1</code></response>"

	params, err := parseRecurringResponse(body)

	require.NoError(t, err)
	assert.Equal(t, "42", params["account_id"])
	assert.Equal(t, "A", params["status"])
	assert.Equal(t, "1", params["code"])
}

func TestParseRecurringResponse_CollisionLastWriteWins(t *testing.T) {
	body := "<response><inner><code>0</code></inner><code>1</code></response>"

	params, err := parseRecurringResponse(body)

	require.NoError(t, err)
	assert.Equal(t, "1", params["code"])
}

func TestParseRecurringResponse_MalformedXML(t *testing.T) {
	_, err := parseRecurringResponse("not xml at all")
	assert.Error(t, err)
}

func TestParseTransactionReport(t *testing.T) {
	body := "trn_id\ttrn_card_owner\ttrn_response\r\n" +
		"10000060\tNeeraj Kumar\t1\r\n" +
		"10000061\tLongbob Longsen\t2"

	rows, err := parseTransactionReport(body)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "10000060", rows[0]["trn_id"])
	assert.Equal(t, "Neeraj Kumar", rows[0]["trn_card_owner"])
	assert.Equal(t, "1", rows[0]["trn_response"])
	assert.Equal(t, "10000061", rows[1]["trn_id"])
	assert.Equal(t, "2", rows[1]["trn_response"])
}

func TestParseTransactionReport_SkipsEmptyTrailingRows(t *testing.T) {
	body := "trn_id\ttrn_response\r\n10000060\t1\r\n\r\n\r\n"

	rows, err := parseTransactionReport(body)

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestParseTransactionReport_HeaderOnly(t *testing.T) {
	rows, err := parseTransactionReport("trn_id\ttrn_response")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseTransactionReport_ShortRowsZipAgainstHeader(t *testing.T) {
	body := "trn_id\ttrn_response\tavs_response\r\n10000060\t1"

	rows, err := parseTransactionReport(body)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10000060", rows[0]["trn_id"])
	_, present := rows[0]["avs_response"]
	assert.False(t, present)
}

func TestSnakeCase(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"code", "code"},
		{"accountId", "account_id"},
		{"rbAccountId", "rb_account_id"},
		{"Message", "message"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, snakeCase(tc.in))
	}
}
