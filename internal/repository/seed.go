package repository

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/jaswdr/faker"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var defaultCatalog []byte

// Catalog is the initial data served by the development API
type Catalog struct {
	Categories []models.Category
	Foods      []models.Food
}

type catalogFile struct {
	Categories []categoryEntry `yaml:"categories"`
	Foods      []foodEntry     `yaml:"foods"`
}

type categoryEntry struct {
	ID       int64  `yaml:"id"`
	Title    string `yaml:"title"`
	ImageURL string `yaml:"image_url"`
}

type foodEntry struct {
	ID           int64        `yaml:"id"`
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	Price        float64      `yaml:"price"`
	Category     int64        `yaml:"category"`
	ThumbnailURL string       `yaml:"thumbnail_url"`
	ImageURL     string       `yaml:"image_url"`
	Extras       []extraEntry `yaml:"extras"`
}

type extraEntry struct {
	ID    int64   `yaml:"id"`
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// LoadCatalog reads a YAML (or json-server JSON) catalog file.
// An empty path loads the built-in catalog.
func LoadCatalog(path string) (Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
		}
	}

	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog data
func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}

	var catalog Catalog
	seenCategories := make(map[int64]bool)
	for _, entry := range file.Categories {
		category := models.Category{ID: entry.ID, Title: entry.Title, ImageURL: entry.ImageURL}
		if err := category.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("invalid category %d: %w", entry.ID, err)
		}
		if seenCategories[category.ID] {
			return Catalog{}, fmt.Errorf("duplicate category id %d", category.ID)
		}
		seenCategories[category.ID] = true
		catalog.Categories = append(catalog.Categories, category)
	}

	seenFoods := make(map[int64]bool)
	for _, entry := range file.Foods {
		food := entry.toModel()
		if err := food.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("invalid food %d: %w", entry.ID, err)
		}
		if seenFoods[food.ID] {
			return Catalog{}, fmt.Errorf("duplicate food id %d", food.ID)
		}
		seenFoods[food.ID] = true
		catalog.Foods = append(catalog.Foods, food)
	}

	return catalog, nil
}

func (e foodEntry) toModel() models.Food {
	extras := make([]models.Extra, 0, len(e.Extras))
	for _, x := range e.Extras {
		extras = append(extras, models.Extra{
			ID:    x.ID,
			Name:  x.Name,
			Value: decimal.NewFromFloat(x.Value),
		})
	}

	return models.Food{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Price:        decimal.NewFromFloat(e.Price),
		Category:     e.Category,
		ThumbnailURL: e.ThumbnailURL,
		ImageURL:     e.ImageURL,
		Extras:       extras,
	}
}

var (
	fakeDishes = []string{"Lasanha", "Risoto", "Calabresa", "Quatro queijos", "Costela", "Nhoque", "Fraldinha", "Portuguesa"}
	fakeExtras = []string{"Bacon", "Cheddar", "Ovo", "Cebola crispy", "Molho especial", "Parmesão"}
)

// AddFakeFoods appends n generated foods spread over the catalog categories
func AddFakeFoods(catalog *Catalog, n int) {
	if n <= 0 {
		return
	}

	fake := faker.New()

	var nextFoodID, nextExtraID int64
	for _, food := range catalog.Foods {
		nextFoodID = max(nextFoodID, food.ID)
		for _, extra := range food.Extras {
			nextExtraID = max(nextExtraID, extra.ID)
		}
	}

	for i := 0; i < n; i++ {
		nextFoodID++

		var category int64
		if len(catalog.Categories) > 0 {
			category = catalog.Categories[fake.IntBetween(0, len(catalog.Categories)-1)].ID
		}

		extras := make([]models.Extra, fake.IntBetween(0, 3))
		for j := range extras {
			nextExtraID++
			extras[j] = models.Extra{
				ID:    nextExtraID,
				Name:  fakeExtras[fake.IntBetween(0, len(fakeExtras)-1)],
				Value: decimal.NewFromFloat(fake.Float64(2, 1, 8)).Round(2),
			}
		}

		catalog.Foods = append(catalog.Foods, models.Food{
			ID:           nextFoodID,
			Name:         fmt.Sprintf("%s %s", fakeDishes[fake.IntBetween(0, len(fakeDishes)-1)], strings.ToLower(fake.Lorem().Word())),
			Description:  fake.Lorem().Sentence(10),
			Price:        decimal.NewFromFloat(fake.Float64(2, 5, 50)).Round(2),
			Category:     category,
			ThumbnailURL: fake.Internet().URL(),
			ImageURL:     fake.Internet().URL(),
			Extras:       extras,
		})
	}
}
