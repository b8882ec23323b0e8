package placetype

import "testing"

func TestExcludedWireOrder(t *testing.T) {
	want := []string{
		"supermarket", "florist", "physiotherapist", "hair_care",
		"convenience_store", "meal_takeaway", "meal_delivery", "bakery", "sports_complex",
	}
	got := Strings(Excluded())
	if len(got) != len(want) {
		t.Fatalf("expected %d excluded types, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestExcludedReturnsCopy(t *testing.T) {
	first := Excluded()
	first[0] = Bar
	if Excluded()[0] != Supermarket {
		t.Fatalf("mutating the returned slice changed the exclusion list")
	}
}

func TestParse(t *testing.T) {
	if pt, ok := Parse("night_club"); !ok || pt != NightClub {
		t.Fatalf("expected night_club to parse, got %q ok=%v", pt, ok)
	}
	if IsKnown("casino") {
		t.Fatalf("expected casino to be outside the vocabulary")
	}
	if !IsExcluded(Bakery) || IsExcluded(Cafe) {
		t.Fatalf("unexpected exclusion membership")
	}
}

func TestCategoriesOnlyUseKnownNonExcludedTypes(t *testing.T) {
	for _, c := range Categories() {
		if len(c.Types) == 0 {
			t.Fatalf("category %s has no types", c.ID)
		}
		for _, pt := range c.Types {
			if !IsKnown(string(pt)) || IsExcluded(pt) {
				t.Fatalf("category %s uses invalid type %s", c.ID, pt)
			}
		}
	}

	cafes, ok := CategoryByID("cafes")
	if !ok || len(cafes.Types) != 1 || cafes.Types[0] != Cafe {
		t.Fatalf("unexpected cafes category %+v", cafes)
	}
	if _, ok := CategoryByID("missing"); ok {
		t.Fatalf("expected unknown category lookup to fail")
	}
}
