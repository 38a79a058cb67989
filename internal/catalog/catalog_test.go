package catalog

import (
	"testing"

	"github.com/minhtridev/edustore-backend/pkg/enums"
)

func TestFind(t *testing.T) {
	product, ok := Find("sach-scratch-lop-3")
	if !ok {
		t.Fatal("expected grade 3 book to exist")
	}
	if product.Grade != 3 || !product.HasType(enums.ProductTypeBook) {
		t.Fatalf("unexpected product %+v", product)
	}

	if _, ok := Find("no-such-product"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

func TestFilter(t *testing.T) {
	grade3 := Filter(3, "")
	for _, p := range grade3 {
		if p.Grade != 3 {
			t.Fatalf("grade filter leaked product %q", p.ID)
		}
	}
	if len(grade3) == 0 {
		t.Fatal("expected grade 3 products")
	}

	books := Filter(0, enums.ProductTypeBook)
	for _, p := range books {
		if !p.HasType(enums.ProductTypeBook) {
			t.Fatalf("type filter leaked product %q", p.ID)
		}
	}

	combos := Filter(4, enums.ProductTypeCombo)
	if len(combos) != 1 || combos[0].ID != "combo-scratch-lop-4" {
		t.Fatalf("unexpected grade 4 combos %+v", combos)
	}
}

func TestAllIsACopy(t *testing.T) {
	first := All()
	first[0].Title = "mutated"
	if All()[0].Title == "mutated" {
		t.Fatal("All must return a copy of the catalog")
	}
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range All() {
		if seen[p.ID] {
			t.Fatalf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Price <= 0 {
			t.Fatalf("product %q has non-positive price", p.ID)
		}
		if len(p.Types) == 0 {
			t.Fatalf("product %q has no types", p.ID)
		}
	}
}
