package domain

import "testing"

func TestDeduplicate_MergesRepeatedArticles(t *testing.T) {
	items := []Item{
		{ArticleName: "A", Quantity: 1},
		{ArticleName: "A", Quantity: 2},
		{ArticleName: "B", Quantity: 5},
	}

	result := Deduplicate(items)

	if len(result) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result))
	}
	if result[0].ArticleName != "A" || result[0].Quantity != 3 {
		t.Errorf("expected A with quantity 3, got %v", result[0])
	}
	if result[1].ArticleName != "B" || result[1].Quantity != 5 {
		t.Errorf("expected B with quantity 5, got %v", result[1])
	}
}

func TestDeduplicate_PreservesFirstAppearanceOrder(t *testing.T) {
	items := []Item{
		{ArticleName: "C", Quantity: 1},
		{ArticleName: "A", Quantity: 1},
		{ArticleName: "C", Quantity: 4},
		{ArticleName: "B", Quantity: 2},
	}

	result := Deduplicate(items)

	want := []string{"C", "A", "B"}
	if len(result) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(result))
	}
	for i, name := range want {
		if result[i].ArticleName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, result[i].ArticleName)
		}
	}
	if result[0].Quantity != 5 {
		t.Errorf("expected C with quantity 5, got %d", result[0].Quantity)
	}
}

func TestDeduplicate_Empty(t *testing.T) {
	if result := Deduplicate(nil); len(result) != 0 {
		t.Errorf("expected empty result, got %v", result)
	}
}

func TestTotalQuantity(t *testing.T) {
	items := []Item{
		{ArticleName: "A", Quantity: 3},
		{ArticleName: "B", Quantity: 7},
	}
	if total := TotalQuantity(items); total != 10 {
		t.Errorf("expected total 10, got %d", total)
	}
}
