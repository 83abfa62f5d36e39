package gateway

// Response is the normalized result of one processed transaction, or of
// one historical row from a transaction report. It is immutable after
// construction.
type Response struct {
	// Success reports whether the processor approved the request.
	Success bool

	// Message is the processor's human-readable message.
	Message string

	// Params is the full decoded response, keyed by wire field name.
	Params map[string]string

	// Test reports whether this was a test transaction.
	Test bool

	// Authorization is the composite token for later capture/void/credit.
	// For recurring management responses it is the account id instead.
	Authorization string

	// CVVResult is the normalized card-verification code, empty when the
	// processor's id is not in the CVD table.
	CVVResult string

	// AVSResult is the normalized address-verification code; ids outside
	// the AVS table are passed through verbatim.
	AVSResult string
}

// newTransactionResponse classifies a decoded form-transport response.
// Webhook notification payloads go through the same classification.
func newTransactionResponse(params map[string]string, testMode bool) *Response {
	return &Response{
		Success:       params["responseType"] == "R" || params["trnApproved"] == "1",
		Message:       params["messageText"],
		Params:        params,
		Test:          testMode || params["authCode"] == "TEST",
		Authorization: transactionAuthorization(params),
		CVVResult:     cvdCodes[params["cvdId"]],
		AVSResult:     avsResult(params["avsId"]),
	}
}

// newRecurringResponse classifies a flattened recurring-transport
// response. The authorization is the recurring account id, not a
// composite token.
func newRecurringResponse(params map[string]string, testMode bool) *Response {
	return &Response{
		Success:       params["code"] == "1",
		Message:       params["message"],
		Params:        params,
		Test:          testMode || params["authCode"] == "TEST",
		Authorization: params["account_id"],
		CVVResult:     cvdCodes[params["cvdId"]],
		AVSResult:     avsResult(params["avsId"]),
	}
}

// newReportResponse classifies one decoded report row.
func newReportResponse(row map[string]string, testMode bool) *Response {
	return &Response{
		Success:       row["trn_response"] == "1",
		Message:       reportMessage(row["trn_response"]),
		Params:        row,
		Test:          testMode || row["authCode"] == "TEST",
		Authorization: reportAuthorization(row),
		CVVResult:     cvdCodes[row["cvd_response"]],
		AVSResult:     avsResult(row["avs_response"]),
	}
}

func transactionAuthorization(params map[string]string) string {
	return Authorization{
		Reference: params["trnId"],
		Amount:    params["trnAmount"],
		Code:      params["trnType"],
	}.String()
}

func reportAuthorization(row map[string]string) string {
	return Authorization{
		Reference: row["trn_id"],
		Amount:    row["trn_amount"],
		Code:      row["trn_type"],
	}.String()
}

func avsResult(id string) string {
	if code, ok := avsCodes[id]; ok {
		return code
	}
	return id
}
