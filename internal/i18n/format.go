package i18n

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iliyamo/progear-storefront/internal/model"
)

// MNTPerUSD is the fixed display conversion rate.
var MNTPerUSD = decimal.NewFromInt(3500)

var grouping = message.NewPrinter(language.English)

// FormatPrice renders a USD amount in the display currency: "$12.50" for USD,
// "₮43,750" (rounded to whole tugrik) for MNT.
func FormatPrice(amount decimal.Decimal, currency string) string {
	if currency == model.CurrencyMNT {
		return "₮" + grouping.Sprintf("%d", amount.Mul(MNTPerUSD).Round(0).IntPart())
	}
	return "$" + amount.StringFixed(2)
}

// FormatDate renders t as "March 1, 2026".
func FormatDate(t time.Time) string { return t.Format("January 2, 2006") }
