package gateway

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// messageText embeds HTML list markers and line breaks; "<LI>" items are
// joined and "<br>" becomes a sentence break.
var brMarkup = regexp.MustCompile(`\.?<br>`)

// parseFormResponse decodes the transaction transport's key=value body
// into a flat map, percent-decoding values.
func parseFormResponse(body string) map[string]string {
	results := make(map[string]string)
	if body == "" {
		return results
	}

	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		results[key] = value
	}

	if message, ok := results["messageText"]; ok {
		results["messageText"] = cleanMessage(message)
	}

	return results
}

func cleanMessage(message string) string {
	message = strings.ReplaceAll(message, "<LI>", "")
	message = brMarkup.ReplaceAllString(message, ". ")
	return strings.TrimSpace(message)
}

// xmlNode is a generic element tree used to flatten recurring responses.
type xmlNode struct {
	XMLName  xml.Name
	Children []xmlNode `xml:",any"`
	Text     string    `xml:",chardata"`
}

// parseRecurringResponse decodes the recurring transport's XML body into
// a flat map: leaf element names (snake-cased) become keys, their text
// becomes values. When the same leaf name appears in different branches
// the last occurrence wins; the wire format carries one response element
// per request, so collisions do not arise in practice.
func parseRecurringResponse(body string) (map[string]string, error) {
	var root xmlNode
	if err := xml.Unmarshal([]byte(body), &root); err != nil {
		return nil, fmt.Errorf("failed to parse recurring response: %w", err)
	}

	results := make(map[string]string)
	for _, child := range root.Children {
		flattenElement(results, child)
	}
	return results, nil
}

func flattenElement(results map[string]string, node xmlNode) {
	if len(node.Children) > 0 {
		for _, child := range node.Children {
			flattenElement(results, child)
		}
		return
	}
	results[snakeCase(node.XMLName.Local)] = node.Text
}

// snakeCase converts a camelCase element name to snake_case, the key
// format consumers of the flattened map expect (accountId -> account_id).
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// parseTransactionReport decodes the report transport's tab-separated
// body. The first row names the columns; every following non-empty row is
// zipped against it positionally, one map per historical transaction.
func parseTransactionReport(body string) ([]map[string]string, error) {
	reader := csv.NewReader(strings.NewReader(body))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse report response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	reports := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		record := make(map[string]string, len(header))
		for i, value := range row {
			if i < len(header) {
				record[header[i]] = value
			}
		}
		reports = append(reports, record)
	}
	return reports, nil
}

func isEmptyRow(row []string) bool {
	for _, value := range row {
		if value != "" {
			return false
		}
	}
	return true
}
