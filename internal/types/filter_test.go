package types

import "testing"

func testCollection() []*Recipe {
	return []*Recipe{
		{ID: "1", Name: "Tomato Soup", Ingredients: "tomato, basil", Categories: []string{"Vegetarisch"}},
		{ID: "2", Name: "Stamppot", Ingredients: "potato, kale, sausage", Categories: []string{"Vlees"}},
		{ID: "3", Name: "Fish Pie", Ingredients: "cod, cream", Categories: []string{"Vis"}},
		{ID: "4", Name: "Tiramisu", Ingredients: "mascarpone, coffee", Categories: []string{"Toetje", "Thomas"}},
	}
}

func ids(recipes []*Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func TestEmptyFilterReturnsAllInOrder(t *testing.T) {
	got := Filter{}.Apply(testCollection())
	want := []string{"1", "2", "3", "4"}
	if len(got) != len(want) {
		t.Fatalf("got %d recipes, want %d", len(got), len(want))
	}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Errorf("position %d: got %s, want %s", i, id, want[i])
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	got := Filter{Search: "TOMATO"}.Apply(testCollection())
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("search TOMATO matched %v", ids(got))
	}
}

func TestSearchMatchesIngredients(t *testing.T) {
	got := Filter{Search: "kale"}.Apply(testCollection())
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("search kale matched %v", ids(got))
	}
}

func TestCategoriesMatchAnySelected(t *testing.T) {
	got := Filter{Categories: []string{"Vis", "Vlees"}}.Apply(testCollection())
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Errorf("category OR matched %v", ids(got))
	}
}

func TestDimensionsCombineWithAnd(t *testing.T) {
	got := Filter{Search: "coffee", Categories: []string{"Thomas"}}.Apply(testCollection())
	if len(got) != 1 || got[0].ID != "4" {
		t.Errorf("combined filter matched %v", ids(got))
	}

	got = Filter{Search: "coffee", Categories: []string{"Vis"}}.Apply(testCollection())
	if len(got) != 0 {
		t.Errorf("disjoint filter matched %v", ids(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := testCollection()
	_ = Filter{Search: "soup"}.Apply(in)
	if len(in) != 4 {
		t.Error("input collection mutated")
	}
}
