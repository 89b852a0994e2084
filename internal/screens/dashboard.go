package screens

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/api"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
)

// Catalog is the part of the API the dashboard reads
type Catalog interface {
	ListFoods(ctx context.Context, filter api.FoodFilter) ([]models.Food, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// FoodItem is a food ready for display
type FoodItem struct {
	models.Food
	FormattedPrice string
}

// FoodsFetch is one foods request started by BeginFoodsFetch
type FoodsFetch struct {
	Seq    uint64
	Filter api.FoodFilter
	ctx    context.Context
}

// Dashboard lists categories and the foods matching the current filter.
//
// Every foods fetch gets a sequence number and its own context. Starting a
// fetch cancels the one in flight, and ApplyFoods drops any result whose
// sequence is not the latest, so a slow response can never overwrite a
// newer one.
type Dashboard struct {
	catalog Catalog
	format  *money.Formatter
	log     *slog.Logger

	mu         sync.Mutex
	categories []models.Category
	foods      []FoodItem
	selected   *int64
	search     string
	typing     bool
	err        error
	catErr     error
	seq        uint64
	cancel     context.CancelFunc
}

// NewDashboard creates the dashboard screen
func NewDashboard(catalog Catalog, format *money.Formatter, log *slog.Logger) *Dashboard {
	return &Dashboard{
		catalog: catalog,
		format:  format,
		log:     orDiscard(log),
	}
}

// Mount loads categories and the first page of foods
func (d *Dashboard) Mount(ctx context.Context) error {
	catErr := d.LoadCategories(ctx)
	foodsErr := d.LoadFoods(ctx)
	return errors.Join(catErr, foodsErr)
}

// SelectCategory toggles the category filter: selecting the selected
// category clears it, any other id replaces it.
func (d *Dashboard) SelectCategory(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.selected != nil && *d.selected == id {
		d.selected = nil
		return
	}
	d.selected = &id
}

// SelectedCategory returns the selected category id, if any
func (d *Dashboard) SelectedCategory() (int64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.selected == nil {
		return 0, false
	}
	return *d.selected, true
}

// SetSearch replaces the search text
func (d *Dashboard) SetSearch(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.search = text
}

func (d *Dashboard) Search() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.search
}

// SetTyping records whether the search input has focus. The category
// strip is hidden while typing.
func (d *Dashboard) SetTyping(typing bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.typing = typing
}

func (d *Dashboard) Typing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.typing
}

// Filter returns the foods query for the current selection and search text
func (d *Dashboard) Filter() api.FoodFilter {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filterLocked()
}

func (d *Dashboard) filterLocked() api.FoodFilter {
	filter := api.FoodFilter{Name: d.search}
	if d.selected != nil {
		id := *d.selected
		filter.Category = &id
	}
	return filter
}

// BeginFoodsFetch supersedes any fetch in flight and returns the new one
func (d *Dashboard) BeginFoodsFetch(parent context.Context) FoodsFetch {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	d.cancel = cancel
	d.seq++

	return FoodsFetch{Seq: d.seq, Filter: d.filterLocked(), ctx: ctx}
}

// FetchFoods performs the request of f. It does not touch screen state and
// may run on any goroutine.
func (d *Dashboard) FetchFoods(f FoodsFetch) ([]models.Food, error) {
	ctx := f.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return d.catalog.ListFoods(ctx, f.Filter)
}

// ApplyFoods stores the result of fetch seq. It reports false when the
// result was stale and dropped. On error the previous list is kept.
func (d *Dashboard) ApplyFoods(seq uint64, foods []models.Food, err error) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != d.seq {
		d.log.Debug("dropping stale foods response", "seq", seq, "latest", d.seq)
		return false
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	if err != nil {
		d.err = err
		d.log.Error("failed to load foods", "seq", seq, "error", err)
		return true
	}

	items := make([]FoodItem, 0, len(foods))
	for _, food := range foods {
		items = append(items, FoodItem{Food: food, FormattedPrice: d.format.Format(food.Price)})
	}
	d.foods = items
	d.err = nil
	return true
}

// LoadFoods fetches foods for the current filter and applies the result
// unless a newer fetch started meanwhile.
func (d *Dashboard) LoadFoods(ctx context.Context) error {
	fetch := d.BeginFoodsFetch(ctx)
	foods, err := d.FetchFoods(fetch)
	d.ApplyFoods(fetch.Seq, foods, err)
	return err
}

// LoadCategories fetches the category list
func (d *Dashboard) LoadCategories(ctx context.Context) error {
	categories, err := d.FetchCategories(ctx)
	d.ApplyCategories(categories, err)
	return err
}

// FetchCategories requests the category list without touching screen state
func (d *Dashboard) FetchCategories(ctx context.Context) ([]models.Category, error) {
	return d.catalog.ListCategories(ctx)
}

// ApplyCategories stores a categories result. On error the previous list is kept.
func (d *Dashboard) ApplyCategories(categories []models.Category, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err != nil {
		d.catErr = err
		d.log.Error("failed to load categories", "error", err)
		return
	}
	d.categories = categories
	d.catErr = nil
}

// Foods returns the displayed foods
func (d *Dashboard) Foods() []FoodItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]FoodItem(nil), d.foods...)
}

func (d *Dashboard) Categories() []models.Category {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.Category(nil), d.categories...)
}

// Err returns the load errors still standing. A foods error clears on the
// next good foods load, a categories error on the next good categories load.
func (d *Dashboard) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return errors.Join(d.err, d.catErr)
}

// Close cancels the fetch in flight
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
