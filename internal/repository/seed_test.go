package repository

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		foods   int
		wantErr bool
	}{
		{
			name: "yaml catalog",
			data: `
categories:
  - {id: 1, title: Massas}
foods:
  - id: 1
    name: Ao molho
    price: 19.9
    category: 1
    extras:
      - {id: 1, name: Bacon, value: 1.5}
`,
			foods: 1,
		},
		{
			name:  "json-server db.json",
			data:  `{"categories": [{"id": 1, "title": "Massas"}], "foods": [{"id": 7, "name": "Veggie", "price": 21.9, "category": 1, "extras": [{"id": 1, "name": "Queijo", "value": 2, "quantity": 0}]}], "orders": []}`,
			foods: 1,
		},
		{
			name:    "duplicate food id",
			data:    "foods:\n  - {id: 1, name: A, price: 1}\n  - {id: 1, name: B, price: 2}\n",
			wantErr: true,
		},
		{
			name:    "food without name",
			data:    "foods:\n  - {id: 1, price: 1}\n",
			wantErr: true,
		},
		{
			name:    "category without title",
			data:    "categories:\n  - {id: 1}\n",
			wantErr: true,
		},
		{
			name:    "not yaml",
			data:    "foods: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := ParseCatalog([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCatalog() error = %v", err)
			}
			if len(catalog.Foods) != tt.foods {
				t.Errorf("expected %d foods, got %d", tt.foods, len(catalog.Foods))
			}
		})
	}
}

func TestParseCatalog_PricesAreExact(t *testing.T) {
	catalog, err := ParseCatalog([]byte("foods:\n  - {id: 1, name: A, price: 19.9, extras: [{id: 1, name: X, value: 0.1}]}\n"))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	if got := catalog.Foods[0].Price.String(); got != "19.9" {
		t.Errorf("price = %s, want 19.9", got)
	}
	if got := catalog.Foods[0].Extras[0].Value.String(); got != "0.1" {
		t.Errorf("extra value = %s, want 0.1", got)
	}
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("categories:\n  - {id: 4, title: Bebidas}\n"), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(catalog.Categories) != 1 || catalog.Categories[0].Title != "Bebidas" {
		t.Errorf("unexpected categories: %+v", catalog.Categories)
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAddFakeFoods(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	before := len(catalog.Foods)

	AddFakeFoods(&catalog, 20)

	if len(catalog.Foods) != before+20 {
		t.Fatalf("expected %d foods, got %d", before+20, len(catalog.Foods))
	}

	categories := make(map[int64]bool)
	for _, c := range catalog.Categories {
		categories[c.ID] = true
	}

	foodIDs := make(map[int64]bool)
	extraIDs := make(map[int64]bool)
	for _, food := range catalog.Foods {
		if err := food.Validate(); err != nil {
			t.Errorf("generated invalid food %d: %v", food.ID, err)
		}
		if foodIDs[food.ID] {
			t.Errorf("duplicate food id %d", food.ID)
		}
		foodIDs[food.ID] = true
		if !categories[food.Category] {
			t.Errorf("food %d has unknown category %d", food.ID, food.Category)
		}
		for _, extra := range food.Extras {
			if extraIDs[extra.ID] {
				t.Errorf("duplicate extra id %d", extra.ID)
			}
			extraIDs[extra.ID] = true
		}
	}
}

func TestAddFakeFoods_NonPositive(t *testing.T) {
	var catalog Catalog
	AddFakeFoods(&catalog, 0)
	if len(catalog.Foods) != 0 {
		t.Errorf("expected no foods, got %d", len(catalog.Foods))
	}
}
