package menu

import (
	"reflect"
	"testing"
)

func TestPriceFormatter_Format(t *testing.T) {
	euro := PriceFormatter{Symbol: "€", Position: SymbolPrefix}
	cases := []struct {
		name string
		f    PriceFormatter
		p    Price
		want string
	}{
		{"integral amount drops decimals", euro, ParsePrice("3"), "€3"},
		{"fractional amount keeps two decimals", euro, ParsePrice("3.5"), "€3.50"},
		{"numeric string", euro, ParsePrice("12.90"), "€12.90"},
		{"market price marker", euro, ParsePrice("MP"), "MP"},
		{"market price marker lowercase", euro, ParsePrice("mp"), "MP"},
		{"absent price", euro, Price{}, ""},
		{"non numeric text kept verbatim", euro, ParsePrice("ask us"), "ask us"},
		{"suffix position", PriceFormatter{Symbol: " kr", Position: SymbolSuffix}, ParsePrice("42"), "42 kr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.Format(tc.p); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPriceFormatter_FormatIsDeterministic(t *testing.T) {
	f := PriceFormatter{Symbol: "€", Position: SymbolPrefix}
	p := ParsePrice("7.25")
	first := f.Format(p)
	for i := 0; i < 5; i++ {
		if got := f.Format(p); got != first {
			t.Fatalf("format changed between calls: %q vs %q", got, first)
		}
	}
}

func TestBadges(t *testing.T) {
	cases := []struct {
		name string
		it   Item
		want string
	}{
		{"neither", Item{}, ""},
		{"veg only", Item{Veg: true}, "🌱"},
		{"spicy one", Item{Spicy: 1}, "🌶"},
		{"veg and spicy two", Item{Veg: true, Spicy: 2}, "🌱 🌶🌶"},
		{"spicy capped at three", Item{Spicy: 7}, "🌶🌶🌶"},
		{"zero spicy ignored", Item{Spicy: 0}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Badges(tc.it); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCards_ProjectionAndTitleBadges(t *testing.T) {
	f := PriceFormatter{Symbol: "€", Position: SymbolPrefix}
	items := []Item{
		{Name: "Halloumi Burger", Description: "Grilled", Price: ParsePrice("9.5"), Veg: true, Spicy: 1, Image: "/images/halloumi.jpg"},
		{Name: "Bread Basket", Description: "Warm"},
	}
	got := Cards(items, f)
	want := []Card{
		{Title: "Halloumi Burger 🌱 🌶", PriceText: "€9.50", Description: "Grilled", Image: "/images/halloumi.jpg"},
		{Title: "Bread Basket", PriceText: "", Description: "Warm"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCards_EmptyInputYieldsEmptySlice(t *testing.T) {
	if got := Cards(nil, PriceFormatter{}); len(got) != 0 {
		t.Fatalf("expected no cards, got %v", got)
	}
}
