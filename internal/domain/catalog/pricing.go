package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var priceScrub = regexp.MustCompile(`[^0-9.]`)

// ParsePrice strips everything but digits and decimal points from a display
// price and parses the remainder. ok is false when nothing numeric is left,
// which callers treat as "keep the raw string", not as an error.
func ParsePrice(s string) (float64, bool) {
	cleaned := priceScrub.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatPrice renders a computed amount the way the storefront displays it.
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// EffectivePrice resolves the display price after any monthly promotion.
//
// Resolution order:
//  1. unparseable base price -> the raw string verbatim (designed fallback)
//  2. active monthly promo with a parseable discount -> computed price
//  3. legacy pre-computed promo price, when present
//  4. the raw base price
//
// A discount value that does not parse disables the discount entirely and
// yields the unmodified base price. Negative results are not clamped; a
// discount larger than the base price is the admin's problem to notice.
func EffectivePrice(item *Item) string {
	base, ok := ParsePrice(item.Price)
	if !ok {
		return item.Price
	}

	if item.HasActivePromo() {
		discount, err := strconv.ParseFloat(strings.TrimSpace(item.DiscountValue), 64)
		if err != nil {
			return item.Price
		}

		final := base
		if item.DiscountType == DiscountPercent {
			final = base - (base * discount / 100)
		} else {
			final = base - discount
		}
		return FormatPrice(final)
	}

	if item.PromoPrice != "" {
		return item.PromoPrice
	}
	return item.Price
}
