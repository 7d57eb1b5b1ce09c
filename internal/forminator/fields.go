package forminator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/forminator-backfill/internal/common"
	"github.com/dmitrijs2005/forminator-backfill/internal/phpserialize"
	"github.com/dmitrijs2005/forminator-backfill/internal/timex"
)

// currencySymbol is the symbol the calculation fields format amounts with.
const currencySymbol = "€"

// Checkbox labels of the final-party / t-shirt options, joined with ", "
// in that order when both are selected.
const (
	partyLabel  = "Fête Finale / Final Party"
	tshirtLabel = "T-Shirt"
)

// tshirtFee is the flat fee charged when the t-shirt option is taken.
const tshirtFee = "20"

// slotContext carries the per-entry values the value producers share.
type slotContext struct {
	entry   *Entry
	created time.Time
}

// slot is one line of the form layout: the meta key, when the field is
// included, and how its value is produced. A nil include means always.
type slot struct {
	key     string
	include func(*Entry) bool
	value   func(*slotContext) (string, error)
}

func raw(get func(*Entry) string) func(*slotContext) (string, error) {
	return func(c *slotContext) (string, error) { return get(c.entry), nil }
}

func constant(v string) func(*slotContext) (string, error) {
	return func(*slotContext) (string, error) { return v, nil }
}

// layout is the form's field order. Meta ids are handed out densely in this
// order; an excluded slot consumes no id. Adding or removing a field is a
// change here, not in the builder.
var layout = []slot{
	{key: "hidden-1", value: func(c *slotContext) (string, error) {
		return strconv.FormatInt(c.entry.EntryID, 10), nil
	}},
	{key: "hidden-2", value: func(c *slotContext) (string, error) {
		return timex.FormatDayMonthYear(c.created), nil
	}},
	{key: "calculation-1", value: tshirtCalculation},
	{key: "calculation-2", value: paymentCalculation},
	{key: "name-1", value: func(c *slotContext) (string, error) {
		return phpserialize.EncodeName(c.entry.FirstName, c.entry.LastName), nil
	}},
	{key: "email-1", value: raw(func(e *Entry) string { return e.Email })},
	{key: "phone-1", value: raw(func(e *Entry) string { return e.Phone })},
	{key: "select-1", value: raw(func(e *Entry) string { return e.Grade })},
	{key: "text-3", value: raw(func(e *Entry) string { return e.DojoName })},
	{key: "date-1", value: raw(func(e *Entry) string { return e.BirthDate })},
	{key: "select-2",
		include: func(e *Entry) bool { return e.TShirt },
		value:   func(c *slotContext) (string, error) { return genderLabel(c.entry.Gender), nil }},
	{key: "select-3",
		include: func(e *Entry) bool { return e.TShirt && e.TShirtSize != "" },
		value:   raw(func(e *Entry) string { return e.TShirtSize })},
	{key: "select-4",
		include: func(e *Entry) bool { return e.TShirt },
		value:   constant("1")},
	{key: "select-5", value: constant("1")},
	{key: "checkbox-2",
		include: func(e *Entry) bool { return e.Party || e.TShirt },
		value:   checkboxOptions},
	{key: "stripe-ocs-1", value: func(c *slotContext) (string, error) {
		return phpserialize.EncodePayment(phpserialize.Payment{
			TransactionID: c.entry.TransactionID,
			Amount:        c.entry.Amount,
			Currency:      c.entry.Currency,
		}), nil
	}},
}

// tshirtCalculation is the flat t-shirt fee: 20 when opted in, 0 otherwise,
// both written as integer literals into the d: tag.
func tshirtCalculation(c *slotContext) (string, error) {
	amount := "0"
	if c.entry.TShirt {
		amount = tshirtFee
	}
	return phpserialize.EncodeCalculation(amount, currencySymbol)
}

// paymentCalculation mirrors the charged Stripe amount. The decimal text is
// re-rendered through FormatNumber, so "350.00" stores as d:350.0, which is
// what the plugin's runtime would have written.
func paymentCalculation(c *slotContext) (string, error) {
	f, err := strconv.ParseFloat(c.entry.Amount, 64)
	if err != nil {
		return "", fmt.Errorf("%w: stripe amount %q", common.ErrInvalidAmount, c.entry.Amount)
	}
	return phpserialize.EncodeCalculation(phpserialize.FormatNumber(f), currencySymbol)
}

func checkboxOptions(c *slotContext) (string, error) {
	var opts []string
	if c.entry.Party {
		opts = append(opts, partyLabel)
	}
	if c.entry.TShirt {
		opts = append(opts, tshirtLabel)
	}
	return strings.Join(opts, ", "), nil
}
