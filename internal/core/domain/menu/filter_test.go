package menu

import (
	"reflect"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func fixtureItems() []Item {
	return []Item{
		{Name: "Taco al Pastor", Description: "Pork, pineapple", Category: "Mains", Tags: []string{"pork", "street food"}, Price: ParsePrice("8.50"), Spicy: 2},
		{Name: "Greek Salad", Description: "Feta, olives", Category: "Starters", Tags: []string{"fresh"}, Price: ParsePrice("6"), Veg: true},
		{Name: "Soda", Description: "Chilled can", Category: "Drinks", Price: ParsePrice("2"), Available: boolPtr(false)},
		{Name: "Catch of the Day", Description: "Ask your waiter", Category: "Mains", Price: ParsePrice("MP")},
		{Name: "Baklava", Description: "Honey, walnuts", Category: "Desserts", Price: ParsePrice("4.5"), Veg: true},
	}
}

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestFilter_AllCategoryEmptySearchReturnsAvailableInOrder(t *testing.T) {
	got := Filter(fixtureItems(), CategoryAll, "")
	want := []string{"Taco al Pastor", "Greek Salad", "Catch of the Day", "Baklava"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("got %v, want %v", names(got), want)
	}
}

func TestFilter_ExcludesUnavailableEvenWhenMatching(t *testing.T) {
	got := Filter(fixtureItems(), "Drinks", "soda")
	if len(got) != 0 {
		t.Fatalf("unavailable item leaked through: %v", names(got))
	}
}

func TestFilter_CategoryIsExactMatch(t *testing.T) {
	got := Filter(fixtureItems(), "Mains", "")
	want := []string{"Taco al Pastor", "Catch of the Day"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("got %v, want %v", names(got), want)
	}
	if got := Filter(fixtureItems(), "mains", ""); len(got) != 0 {
		t.Fatalf("category match should be case sensitive, got %v", names(got))
	}
}

func TestFilter_SearchMatchesNameDescriptionAndTags(t *testing.T) {
	cases := []struct {
		search string
		want   []string
	}{
		{"TACO", []string{"Taco al Pastor"}},            // name, case folded
		{"olives", []string{"Greek Salad"}},             // description
		{"street", []string{"Taco al Pastor"}},          // tag substring
		{"  honey  ", []string{"Baklava"}},              // trimmed
		{"zucchini", []string{}},                        // no match
		{"a", []string{"Taco al Pastor", "Greek Salad", "Catch of the Day", "Baklava"}},
	}
	for _, tc := range cases {
		got := names(Filter(fixtureItems(), CategoryAll, tc.search))
		if !reflect.DeepEqual(got, append([]string{}, tc.want...)) {
			t.Errorf("search %q: got %v, want %v", tc.search, got, tc.want)
		}
	}
}

func TestFilter_IsStableAndDeterministic(t *testing.T) {
	items := fixtureItems()
	first := names(Filter(items, CategoryAll, "a"))
	for i := 0; i < 5; i++ {
		again := names(Filter(items, CategoryAll, "a"))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed: %v vs %v", i, again, first)
		}
	}
}

func TestCategories_DistinctSortedFromFullSequence(t *testing.T) {
	got := Categories(fixtureItems())
	// Drinks stays present even though its only item is unavailable.
	want := []string{"Desserts", "Drinks", "Mains", "Starters"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCategories_EmptyInput(t *testing.T) {
	if got := Categories(nil); len(got) != 0 {
		t.Fatalf("expected no categories, got %v", got)
	}
}

func TestIsAvailable_AbsentFlagMeansAvailable(t *testing.T) {
	it := Item{Name: "x"}
	if !it.IsAvailable() {
		t.Fatal("absent flag should mean available")
	}
	it.Available = boolPtr(true)
	if !it.IsAvailable() {
		t.Fatal("explicit true should mean available")
	}
	it.Available = boolPtr(false)
	if it.IsAvailable() {
		t.Fatal("explicit false should mean unavailable")
	}
}
