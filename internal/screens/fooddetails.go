package screens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/api"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/shopspring/decimal"
)

// ConfirmationDelay is how long the order confirmation stays up before
// the screen navigates back
const ConfirmationDelay = 2 * time.Second

// Texts shown to the user
const (
	OrderFailedTitle   = "Deu ruim!"
	OrderFailedMessage = "Não conseguimos criar o pedido. Tente mais tarde :)"
	OrderConfirmedText = "Pedido confirmado!"
)

// ErrFoodNotLoaded is returned by actions that need the food first
var ErrFoodNotLoaded = errors.New("food not loaded")

// ErrFavoritePending is returned when a favorite toggle is already in flight
var ErrFavoritePending = errors.New("favorite toggle already in progress")

// ErrFavoriteUnknown is returned by a toggle issued before the favorite
// status has been looked up
var ErrFavoriteUnknown = errors.New("favorite status not checked yet")

// FoodAPI is the part of the API the food details screen uses
type FoodAPI interface {
	GetFood(ctx context.Context, id int64) (*models.Food, error)
	GetFavorite(ctx context.Context, foodID int64) (*models.Favorite, error)
	AddFavorite(ctx context.Context, fav models.Favorite) error
	RemoveFavorite(ctx context.Context, foodID int64) error
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
}

// FavoriteState tracks the last favorite toggle
type FavoriteState int

const (
	FavoriteConfirmed FavoriteState = iota
	FavoritePending
	FavoriteFailed
)

func (s FavoriteState) String() string {
	switch s {
	case FavoritePending:
		return "pending"
	case FavoriteFailed:
		return "failed"
	default:
		return "confirmed"
	}
}

// Alert is a blocking message the user has to dismiss
type Alert struct {
	Title   string
	Message string
}

// FavoriteToggle is one add or remove request started by BeginFavoriteToggle
type FavoriteToggle struct {
	Add      bool
	Favorite models.Favorite
}

// FoodDetails is the state of the food details screen. It is not safe for
// concurrent use; the Begin/Apply pairs let callers run requests elsewhere
// and hand results back to the owning goroutine.
type FoodDetails struct {
	api    FoodAPI
	format *money.Formatter
	log    *slog.Logger

	foodID   int64
	food     *models.Food
	extras   []models.Extra
	quantity int
	loadErr  error

	isFavorite      bool
	favoriteChecked bool
	favoriteState   FavoriteState
	favoriteErr   error
	checkErr      error

	orderCreated bool
	order        *models.Order
	alert        *Alert
}

// NewFoodDetails creates the screen for foodID
func NewFoodDetails(foodAPI FoodAPI, format *money.Formatter, log *slog.Logger, foodID int64) *FoodDetails {
	return &FoodDetails{
		api:      foodAPI,
		format:   format,
		log:      orDiscard(log).With("food_id", foodID),
		foodID:   foodID,
		quantity: 1,
	}
}

func (s *FoodDetails) FoodID() int64 { return s.foodID }

// Load fetches the food and then its favorite status
func (s *FoodDetails) Load(ctx context.Context) error {
	food, err := s.FetchFood(ctx)
	s.ApplyFood(food, err)
	if err != nil {
		return err
	}

	s.CheckFavorite(ctx)
	return nil
}

// FetchFood requests the food. It does not touch screen state.
func (s *FoodDetails) FetchFood(ctx context.Context) (*models.Food, error) {
	return s.api.GetFood(ctx, s.foodID)
}

// ApplyFood stores a loaded food. Extras start at zero whatever the server
// sent and the food quantity starts at one.
func (s *FoodDetails) ApplyFood(food *models.Food, err error) {
	if err != nil {
		s.loadErr = err
		s.log.Error("failed to load food", "error", err)
		return
	}

	s.food = food
	s.loadErr = nil
	s.quantity = 1
	s.extras = make([]models.Extra, len(food.Extras))
	for i, extra := range food.Extras {
		extra.Quantity = 0
		s.extras[i] = extra
	}
}

// CheckFavorite asks the API whether the food is a favorite
func (s *FoodDetails) CheckFavorite(ctx context.Context) {
	s.ApplyFavoriteCheck(s.FetchFavorite(ctx))
}

// FetchFavorite looks the favorite up. It does not touch screen state.
func (s *FoodDetails) FetchFavorite(ctx context.Context) error {
	_, err := s.api.GetFavorite(ctx, s.foodID)
	return err
}

// ApplyFavoriteCheck interprets a favorite lookup. Only success means
// favorite. A 404 is the normal "not a favorite" answer; any other failure
// is also shown as not favorite but kept in FavoriteCheckErr.
// A lookup landing while a toggle is pending is dropped, the toggle's
// answer is newer.
func (s *FoodDetails) ApplyFavoriteCheck(err error) {
	if s.favoriteState == FavoritePending {
		s.log.Debug("dropping favorite check during pending toggle")
		return
	}

	s.favoriteChecked = true
	switch {
	case err == nil:
		s.isFavorite = true
		s.checkErr = nil
	case errors.Is(err, api.ErrNotFound):
		s.isFavorite = false
		s.checkErr = nil
	default:
		s.isFavorite = false
		s.checkErr = err
		s.log.Warn("favorite check failed, showing as not favorite", "error", err)
	}
}

// Food returns the loaded food, or nil before it loads
func (s *FoodDetails) Food() *models.Food { return s.food }

// LoadErr returns the error of the last food load
func (s *FoodDetails) LoadErr() error { return s.loadErr }

// Extras returns the extras with their selected quantities
func (s *FoodDetails) Extras() []models.Extra {
	return append([]models.Extra(nil), s.extras...)
}

func (s *FoodDetails) Quantity() int { return s.quantity }

// IncrementExtra adds one unit of the extra. Unknown ids are ignored.
func (s *FoodDetails) IncrementExtra(id int64) {
	for i := range s.extras {
		if s.extras[i].ID == id {
			s.extras[i].Quantity++
			return
		}
	}
}

// DecrementExtra removes one unit of the extra, stopping at zero
func (s *FoodDetails) DecrementExtra(id int64) {
	for i := range s.extras {
		if s.extras[i].ID == id {
			if s.extras[i].Quantity > 0 {
				s.extras[i].Quantity--
			}
			return
		}
	}
}

// SetExtraQuantity sets an extra directly; negative values become zero
func (s *FoodDetails) SetExtraQuantity(id int64, quantity int) bool {
	if quantity < 0 {
		quantity = 0
	}
	for i := range s.extras {
		if s.extras[i].ID == id {
			s.extras[i].Quantity = quantity
			return true
		}
	}
	return false
}

func (s *FoodDetails) IncrementQuantity() { s.quantity++ }

// DecrementQuantity lowers the food quantity, never below one
func (s *FoodDetails) DecrementQuantity() {
	if s.quantity > 1 {
		s.quantity--
	}
}

// SetQuantity sets the food quantity; values below one become one
func (s *FoodDetails) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.quantity = quantity
}

// Total is the cart total, computed from the current price, extras and
// quantity on every call
func (s *FoodDetails) Total() decimal.Decimal {
	if s.food == nil {
		return decimal.Zero
	}
	return money.CartTotal(s.food.Price, s.extras, s.quantity)
}

// TotalText is Total formatted in the display currency
func (s *FoodDetails) TotalText() string {
	return s.format.Format(s.Total())
}

// FormattedPrice is the unit price of the food
func (s *FoodDetails) FormattedPrice() string {
	if s.food == nil {
		return ""
	}
	return s.format.Format(s.food.Price)
}

// FormatValue formats an amount in the display currency
func (s *FoodDetails) FormatValue(amount decimal.Decimal) string {
	return s.format.Format(amount)
}

func (s *FoodDetails) IsFavorite() bool { return s.isFavorite }

// FavoriteChecked reports whether the favorite lookup has been applied
func (s *FoodDetails) FavoriteChecked() bool { return s.favoriteChecked }

func (s *FoodDetails) FavoriteState() FavoriteState { return s.favoriteState }

// FavoriteErr returns the error of the last failed toggle
func (s *FoodDetails) FavoriteErr() error { return s.favoriteErr }

// FavoriteCheckErr returns the error of a favorite lookup that failed for
// a reason other than "not found"
func (s *FoodDetails) FavoriteCheckErr() error { return s.checkErr }

// FavoriteIcon names the icon for the current favorite value
func (s *FoodDetails) FavoriteIcon() string {
	if s.isFavorite {
		return "favorite"
	}
	return "favorite-border"
}

// BeginFavoriteToggle flips the favorite value and marks it pending. It
// refuses before the food and its favorite status are known, and while
// another toggle is pending.
func (s *FoodDetails) BeginFavoriteToggle() (FavoriteToggle, error) {
	if s.food == nil {
		return FavoriteToggle{}, ErrFoodNotLoaded
	}
	if !s.favoriteChecked {
		return FavoriteToggle{}, ErrFavoriteUnknown
	}
	if s.favoriteState == FavoritePending {
		return FavoriteToggle{}, ErrFavoritePending
	}

	toggle := FavoriteToggle{Add: !s.isFavorite, Favorite: models.NewFavorite(*s.food)}
	s.isFavorite = toggle.Add
	s.favoriteState = FavoritePending
	s.favoriteErr = nil
	return toggle, nil
}

// CommitFavoriteToggle sends the request of t. It does not touch screen state.
func (s *FoodDetails) CommitFavoriteToggle(ctx context.Context, t FavoriteToggle) error {
	if t.Add {
		return s.api.AddFavorite(ctx, t.Favorite)
	}
	return s.api.RemoveFavorite(ctx, t.Favorite.ID)
}

// FinishFavoriteToggle confirms t, or rolls the value back when err is set
func (s *FoodDetails) FinishFavoriteToggle(t FavoriteToggle, err error) {
	if err != nil {
		s.isFavorite = !t.Add
		s.favoriteState = FavoriteFailed
		s.favoriteErr = err
		s.log.Error("failed to toggle favorite", "add", t.Add, "error", err)
		return
	}

	s.isFavorite = t.Add
	s.favoriteState = FavoriteConfirmed
	s.favoriteErr = nil
}

// ToggleFavorite adds or removes the favorite and waits for the answer
func (s *FoodDetails) ToggleFavorite(ctx context.Context) error {
	toggle, err := s.BeginFavoriteToggle()
	if err != nil {
		return err
	}

	err = s.CommitFavoriteToggle(ctx, toggle)
	s.FinishFavoriteToggle(toggle, err)
	return err
}

// OrderDraft builds the order for the current selection
func (s *FoodDetails) OrderDraft() (models.Order, error) {
	if s.food == nil {
		return models.Order{}, ErrFoodNotLoaded
	}

	total := s.Total()
	return models.Order{
		ProductID:    s.food.ID,
		Name:         s.food.Name,
		Description:  s.food.Description,
		Price:        s.food.Price,
		Category:     s.food.Category,
		ThumbnailURL: s.food.ThumbnailURL,
		Extras:       s.Extras(),
		Quantity:     s.quantity,
		Total:        &total,
	}, nil
}

// PlaceOrder sends order. It does not touch screen state.
func (s *FoodDetails) PlaceOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	return s.api.CreateOrder(ctx, order)
}

// ApplyOrderResult records a submission. A failure raises a generic alert
// and leaves everything else as it was.
func (s *FoodDetails) ApplyOrderResult(order *models.Order, err error) {
	if err != nil {
		s.alert = &Alert{Title: OrderFailedTitle, Message: OrderFailedMessage}
		s.log.Error("failed to create order", "error", err)
		return
	}

	s.orderCreated = true
	s.order = order
	s.log.Info("order created", "order_id", order.ID)
}

// SubmitOrder places the order for the current selection
func (s *FoodDetails) SubmitOrder(ctx context.Context) error {
	draft, err := s.OrderDraft()
	if err != nil {
		return err
	}

	created, err := s.PlaceOrder(ctx, draft)
	s.ApplyOrderResult(created, err)
	if err != nil {
		return fmt.Errorf("failed to submit order: %w", err)
	}
	return nil
}

// OrderCreated reports whether an order was submitted successfully
func (s *FoodDetails) OrderCreated() bool { return s.orderCreated }

// Order returns the order as stored by the API after a successful submission
func (s *FoodDetails) Order() *models.Order { return s.order }

// Alert returns the pending alert, if any
func (s *FoodDetails) Alert() *Alert { return s.alert }

// DismissAlert clears the alert
func (s *FoodDetails) DismissAlert() { s.alert = nil }
