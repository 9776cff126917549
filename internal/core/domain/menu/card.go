package menu

import (
	"math"
	"strconv"
	"strings"
)

// NoItemsPlaceholder is the designed empty state shown when a filter produces
// no visible items.
const NoItemsPlaceholder = "No items found."

// SymbolPosition says where the currency symbol sits relative to the amount.
type SymbolPosition string

const (
	SymbolPrefix SymbolPosition = "prefix"
	SymbolSuffix SymbolPosition = "suffix"
)

// PriceFormatter renders Price values for display.
type PriceFormatter struct {
	Symbol   string
	Position SymbolPosition
}

// Format produces the display text for a price: empty for absent values, the
// literal market-price marker, the raw text when parsing failed, otherwise the
// amount with no decimals when integral and two otherwise, with the configured
// currency symbol attached.
func (f PriceFormatter) Format(p Price) string {
	if !p.Set || p.Raw == "" {
		return ""
	}
	if p.IsMarket() {
		return MarketPrice
	}
	if !p.Numeric {
		return p.Raw
	}
	decimals := 2
	if p.Num == math.Trunc(p.Num) {
		decimals = 0
	}
	amount := strconv.FormatFloat(p.Num, 'f', decimals, 64)
	if f.Position == SymbolSuffix {
		return amount + f.Symbol
	}
	return f.Symbol + amount
}

// Badges returns the marker suffix for an item: a leaf for vegetarian entries
// plus up to three chilies for spiciness, space separated. Empty when neither
// applies.
func Badges(it Item) string {
	var bits []string
	if it.Veg {
		bits = append(bits, "🌱")
	}
	if it.Spicy >= 1 {
		n := it.Spicy
		if n > 3 {
			n = 3
		}
		bits = append(bits, strings.Repeat("🌶", n))
	}
	return strings.Join(bits, " ")
}

// Card is the display projection of a single menu item.
type Card struct {
	Title       string `json:"title"`
	PriceText   string `json:"price_text"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Cards projects items into display cards. Badges are appended to the title
// separated by a single space and omitted entirely when empty.
func Cards(items []Item, f PriceFormatter) []Card {
	cards := make([]Card, 0, len(items))
	for _, it := range items {
		title := it.Name
		if b := Badges(it); b != "" {
			title = it.Name + " " + b
		}
		cards = append(cards, Card{
			Title:       title,
			PriceText:   f.Format(it.Price),
			Description: it.Description,
			Image:       it.Image,
		})
	}
	return cards
}
