package gateway

// transactionData injects the transaction transport's fixed fields and
// serializes the field set. Blank credentials are dropped by Encode.
func (g *Gateway) transactionData(fs *FieldSet) string {
	fs.Set("requestType", "BACKEND")
	fs.Set("merchant_id", g.config.MerchantID)
	fs.Set("username", g.config.Username)
	fs.Set("password", g.config.Password)
	fs.Set("vbvEnabled", "0")
	fs.Set("scEnabled", "0")
	return fs.Encode()
}

// recurringData injects the recurring sub-protocol's fixed fields and
// serializes the field set.
func (g *Gateway) recurringData(fs *FieldSet) string {
	fs.Set("serviceVersion", "1.0")
	fs.Set("merchantId", g.config.MerchantID)
	fs.Set("passCode", g.config.PassCode)
	return fs.Encode()
}

// reportData injects the report transport's credential and version fields
// and serializes the field set. rptNoFile is forced to 0 so the processor
// streams the rows back instead of producing a file.
func (g *Gateway) reportData(fs *FieldSet) string {
	fs.Set("requestType", "BACKEND")
	fs.Set("loginCompany", g.config.MerchantID)
	fs.Set("loginUser", g.config.Username)
	fs.Set("loginPass", g.config.Password)
	fs.Set("vbvEnabled", "0")
	fs.Set("scEnabled", "0")
	fs.Set("rptNoFile", "0")
	fs.Set("rptVersion", "1.6")
	return fs.Encode()
}
