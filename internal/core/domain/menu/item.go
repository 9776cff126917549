package menu

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Item is one orderable entry in the menu document. Only Name and Category
// are meaningful on their own; everything else is optional display data.
// Unknown fields in the source document are ignored.
type Item struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Price       Price    `json:"price,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Image       string   `json:"image,omitempty"`
	Veg         bool     `json:"veg,omitempty"`
	Spicy       int      `json:"spicy,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

// IsAvailable reports whether the item may be shown. Absence of the flag
// means available.
func (i *Item) IsAvailable() bool {
	return i.Available == nil || *i.Available
}

// MarketPrice is the literal marker used in menu documents for items priced
// at market rate.
const MarketPrice = "MP"

// Price carries a menu price in whatever shape the source document used:
// a number, a numeric string, the market-price marker, or nothing at all.
// Values that fail to parse as numbers are kept verbatim for literal display.
type Price struct {
	Raw     string
	Num     float64
	Numeric bool
	Set     bool
}

// ParsePrice builds a Price from its textual form.
func ParsePrice(s string) Price {
	if s == "" {
		return Price{}
	}
	p := Price{Raw: s, Set: true}
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		p.Num = n
		p.Numeric = true
	}
	return p
}

// IsMarket reports whether the price is the market-price marker, compared
// case-insensitively.
func (p Price) IsMarket() bool {
	return strings.EqualFold(strings.TrimSpace(p.Raw), MarketPrice)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Price{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = ParsePrice(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		// Unexpected shape; keep the raw text so it can be shown verbatim.
		*p = Price{Raw: string(data), Set: true}
		return nil
	}
	*p = Price{Raw: strconv.FormatFloat(n, 'f', -1, 64), Num: n, Numeric: true, Set: true}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Set {
		return []byte("null"), nil
	}
	if p.Numeric {
		return json.Marshal(p.Num)
	}
	return json.Marshal(p.Raw)
}

// Value implements driver.Valuer so prices round-trip through a TEXT column.
func (p Price) Value() (driver.Value, error) {
	if !p.Set {
		return nil, nil
	}
	return p.Raw, nil
}

// Scan implements sql.Scanner.
func (p *Price) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Price{}
	case string:
		*p = ParsePrice(v)
	case []byte:
		*p = ParsePrice(string(v))
	case float64:
		*p = Price{Raw: strconv.FormatFloat(v, 'f', -1, 64), Num: v, Numeric: true, Set: true}
	case int64:
		*p = Price{Raw: strconv.FormatInt(v, 10), Num: float64(v), Numeric: true, Set: true}
	default:
		return fmt.Errorf("unsupported price column type %T", src)
	}
	return nil
}
