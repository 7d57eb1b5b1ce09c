package phpserialize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/forminator-backfill/internal/common"
)

// PaymentLinkBase is prepended to a transaction id to form the
// transaction_link element of a payment aggregate.
const PaymentLinkBase = "https://dashboard.stripe.com/payments/"

// EncodeString renders s as a PHP serialized string: s:{n}:"{s}", where n is
// the UTF-8 byte length of s (not the rune count).
func EncodeString(s string) string {
	return fmt.Sprintf(`s:%d:"%s"`, len(s), s)
}

// EncodeName renders the name-field aggregate:
//
//	a:2:{s:10:"first-name";s:X:"First";s:9:"last-name";s:Y:"Last";}
//
// The key length prefixes are fixed literals, matching what the plugin
// writes for its fixed keys.
func EncodeName(first, last string) string {
	var b strings.Builder
	b.WriteString(`a:2:{s:10:"first-name";`)
	b.WriteString(EncodeString(first))
	b.WriteString(`;s:9:"last-name";`)
	b.WriteString(EncodeString(last))
	b.WriteString(`;}`)
	return b.String()
}

// EncodeCalculation renders the calculation-field aggregate. The result
// argument is the exact decimal text embedded after the d: tag, unquoted;
// it must parse as a decimal number, otherwise the call fails with
// common.ErrInvalidAmount. The formatting_result element pairs the currency
// symbol with the amount truncated toward zero, e.g. "€ 20":
//
//	a:2:{s:6:"result";d:20.0;s:17:"formatting_result";s:6:"€ 20";}
func EncodeCalculation(result, symbol string) (string, error) {
	f, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidAmount, result)
	}

	formatted := fmt.Sprintf("%s %d", symbol, int64(f))

	var b strings.Builder
	b.WriteString(`a:2:{s:6:"result";d:`)
	b.WriteString(result)
	b.WriteString(`;s:17:"formatting_result";`)
	b.WriteString(EncodeString(formatted))
	b.WriteString(`;}`)
	return b.String(), nil
}

// FormatNumber renders f the way the plugin's runtime prints a float into the
// d: tag: the shortest decimal form that round-trips, keeping a ".0" suffix
// on integral values (350.00 parses and renders back as "350.0", not "350").
func FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Payment describes the stripe-ocs payment aggregate. Zero-valued fields fall
// back to the plugin's stock values (live mode, "Plan 1", one-time payment,
// EUR, COMPLETED); quantity is always "1".
type Payment struct {
	Mode          string
	ProductName   string
	PaymentType   string
	Amount        string
	Currency      string
	TransactionID string
	Status        string
}

func (p Payment) withDefaults() Payment {
	if p.Mode == "" {
		p.Mode = "live"
	}
	if p.ProductName == "" {
		p.ProductName = "Plan 1"
	}
	if p.PaymentType == "" {
		p.PaymentType = "One Time"
	}
	if p.Currency == "" {
		p.Currency = "EUR"
	}
	if p.Status == "" {
		p.Status = "COMPLETED"
	}
	return p
}

// paymentKeys are the serialized key headers of the payment aggregate, as
// fixed literals and in the exact order the plugin writes them.
var paymentKeys = [...]string{
	`s:4:"mode"`,
	`s:12:"product_name"`,
	`s:12:"payment_type"`,
	`s:6:"amount"`,
	`s:8:"quantity"`,
	`s:8:"currency"`,
	`s:14:"transaction_id"`,
	`s:16:"transaction_link"`,
	`s:6:"status"`,
}

// EncodePayment renders the nine-element Stripe payment aggregate. Element
// order is fixed; the transaction link is derived from the transaction id.
func EncodePayment(p Payment) string {
	p = p.withDefaults()

	values := [...]string{
		p.Mode,
		p.ProductName,
		p.PaymentType,
		p.Amount,
		"1",
		p.Currency,
		p.TransactionID,
		PaymentLinkBase + p.TransactionID,
		p.Status,
	}

	var b strings.Builder
	b.WriteString(`a:9:{`)
	for i, key := range paymentKeys {
		b.WriteString(key)
		b.WriteByte(';')
		b.WriteString(EncodeString(values[i]))
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}
