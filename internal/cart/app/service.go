// Package app maintains the authenticated user's cart. Every mutation round
// trips through the backend and the response replaces local state wholesale;
// no quantity, price or total is ever computed here.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/cart/domain"
	sessiondomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrBelowMinimum    = errors.New("quantity below minimum order quantity")
	ErrExceedsStock    = errors.New("quantity exceeds stock")
)

// Action identifies one kind of cart operation. Loading and error state is
// tracked per action so a failed add never stomps an in-progress load.
type Action string

const (
	ActionLoad    Action = "load"
	ActionAdd     Action = "add"
	ActionUpdate  Action = "update"
	ActionRemove  Action = "remove"
	ActionClear   Action = "clear"
	ActionSummary Action = "summary"
	ActionSaved   Action = "saved"
)

type Status struct {
	Loading bool
	Err     error
}

type Store struct {
	api     CartAPI
	session SessionSource
	log     *slog.Logger

	mu      sync.Mutex
	cart    *domain.Cart
	saved   []domain.SavedItem
	summary *domain.CartSummary
	status  map[Action]Status
}

func NewStore(api CartAPI, session SessionSource, log *slog.Logger) *Store {
	return &Store{
		api:     api,
		session: session,
		log:     log,
		status:  make(map[Action]Status),
	}
}

// Bind wires the store to session transitions: a login (including
// rehydration) loads the cart and saved items, a logout discards local state
// immediately rather than leaving it to go stale.
func (s *Store) Bind(ctx context.Context) {
	s.session.Subscribe(func(snap sessiondomain.Snapshot) {
		if !snap.Authenticated() {
			s.clearLocal()
			return
		}
		if err := s.refetchBoth(ctx, snap); err != nil {
			s.log.Warn("initial cart load failed", slog.Any("err", err))
		}
	})
}

func (s *Store) LoadCart(ctx context.Context) error {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}

	s.begin(ActionLoad)
	cart, err := s.api.Get(ctx, snap.AccessToken)
	if err != nil {
		s.finish(ActionLoad, err)
		return err
	}
	s.applyCart(snap, cart)
	s.finish(ActionLoad, nil)
	return nil
}

// AddToCart validates the quantity against the product's minimum order
// quantity and stock before any request is issued.
func (s *Store) AddToCart(ctx context.Context, product domain.ProductSummary, quantity int, opts domain.ItemOptions) error {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}
	if err := checkBounds(product, quantity); err != nil {
		return err
	}

	s.begin(ActionAdd)
	cart, err := s.api.AddItem(ctx, snap.AccessToken, product.ID, quantity, opts)
	if err != nil {
		s.finish(ActionAdd, err)
		return err
	}
	s.applyCart(snap, cart)
	s.finish(ActionAdd, nil)
	return nil
}

// UpdateCartItem changes a line's quantity. The bounds check needs the item's
// product summary, so it runs only when the item is in the locally loaded
// cart; without a prior LoadCart the backend is the sole enforcer.
func (s *Store) UpdateCartItem(ctx context.Context, itemID string, quantity int, opts domain.ItemOptions) error {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}
	if item, ok := s.findItem(itemID); ok {
		if err := checkBounds(item.Product, quantity); err != nil {
			return err
		}
	}

	s.begin(ActionUpdate)
	cart, err := s.api.UpdateItem(ctx, snap.AccessToken, itemID, quantity, opts)
	if err != nil {
		s.finish(ActionUpdate, err)
		return err
	}
	s.applyCart(snap, cart)
	s.finish(ActionUpdate, nil)
	return nil
}

func (s *Store) RemoveFromCart(ctx context.Context, itemID string) error {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}

	s.begin(ActionRemove)
	cart, err := s.api.RemoveItem(ctx, snap.AccessToken, itemID)
	if err != nil {
		s.finish(ActionRemove, err)
		return err
	}
	s.applyCart(snap, cart)
	s.finish(ActionRemove, nil)
	return nil
}

// ClearCart is best effort: a backend failure is logged, never surfaced as a
// blocking error.
func (s *Store) ClearCart(ctx context.Context) error {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}

	s.begin(ActionClear)
	if err := s.api.Clear(ctx, snap.AccessToken); err != nil {
		s.log.Warn("cart clear failed", slog.Any("err", err))
		s.finish(ActionClear, nil)
		return nil
	}
	if s.session.Snapshot().Epoch == snap.Epoch {
		s.mu.Lock()
		s.cart = nil
		s.mu.Unlock()
	}
	s.finish(ActionClear, nil)
	return nil
}

// SaveForLater moves a line out of the cart, then refetches both the cart and
// the saved list instead of diffing locally, so backend-side logic such as
// duplicate merging can never make the two collections diverge.
func (s *Store) SaveForLater(ctx context.Context, itemID string) error {
	return s.savedMutation(ctx, func(ctx context.Context, token string) error {
		return s.api.SaveForLater(ctx, token, itemID)
	})
}

func (s *Store) MoveToCart(ctx context.Context, savedItemID string) error {
	return s.savedMutation(ctx, func(ctx context.Context, token string) error {
		return s.api.MoveToCart(ctx, token, savedItemID)
	})
}

func (s *Store) RemoveSavedItem(ctx context.Context, savedItemID string) error {
	return s.savedMutation(ctx, func(ctx context.Context, token string) error {
		return s.api.RemoveSavedItem(ctx, token, savedItemID)
	})
}

func (s *Store) savedMutation(ctx context.Context, call func(ctx context.Context, token string) error) error {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}

	s.begin(ActionSaved)
	if err := call(ctx, snap.AccessToken); err != nil {
		s.finish(ActionSaved, err)
		return err
	}
	err := s.refetchBoth(ctx, snap)
	s.finish(ActionSaved, err)
	return err
}

func (s *Store) LoadCartSummary(ctx context.Context) error {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}

	s.begin(ActionSummary)
	sum, err := s.api.Summary(ctx, snap.AccessToken)
	if err != nil {
		s.finish(ActionSummary, err)
		return err
	}
	if s.session.Snapshot().Epoch == snap.Epoch {
		s.mu.Lock()
		s.summary = &sum
		s.mu.Unlock()
	}
	s.finish(ActionSummary, nil)
	return nil
}

func (s *Store) LoadSavedItems(ctx context.Context) error {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}

	s.begin(ActionSaved)
	saved, err := s.api.SavedItems(ctx, snap.AccessToken)
	if err != nil {
		s.finish(ActionSaved, err)
		return err
	}
	if s.session.Snapshot().Epoch == snap.Epoch {
		s.mu.Lock()
		s.saved = saved
		s.mu.Unlock()
	}
	s.finish(ActionSaved, nil)
	return nil
}

// Cart returns a copy of the current cart, or nil when none is loaded.
func (s *Store) Cart() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return nil
	}
	c := *s.cart
	c.Items = append([]domain.CartItem(nil), s.cart.Items...)
	return &c
}

func (s *Store) SavedItems() []domain.SavedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SavedItem(nil), s.saved...)
}

func (s *Store) Summary() *domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return nil
	}
	sum := *s.summary
	return &sum
}

func (s *Store) Status(action Action) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status[action]
}

// refetchBoth reloads cart and saved items concurrently and applies both, or
// neither if the session has moved on since snap was taken.
func (s *Store) refetchBoth(ctx context.Context, snap sessiondomain.Snapshot) error {
	var (
		cart  domain.Cart
		saved []domain.SavedItem
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cart, err = s.api.Get(ctx, snap.AccessToken)
		return err
	})
	g.Go(func() error {
		var err error
		saved, err = s.api.SavedItems(ctx, snap.AccessToken)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if s.session.Snapshot().Epoch != snap.Epoch {
		return nil
	}
	s.mu.Lock()
	s.cart = &cart
	s.saved = saved
	s.mu.Unlock()
	return nil
}

// applyCart installs the server's cart unless the response is stale: a
// session transition between issue and arrival means the response belongs to
// a session that no longer exists.
func (s *Store) applyCart(snap sessiondomain.Snapshot, cart domain.Cart) {
	if s.session.Snapshot().Epoch != snap.Epoch {
		s.log.Debug("dropping cart response from stale session")
		return
	}
	s.mu.Lock()
	s.cart = &cart
	s.mu.Unlock()
}

func (s *Store) clearLocal() {
	s.mu.Lock()
	s.cart = nil
	s.saved = nil
	s.summary = nil
	s.status = make(map[Action]Status)
	s.mu.Unlock()
}

func (s *Store) findItem(itemID string) (domain.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return domain.CartItem{}, false
	}
	for _, item := range s.cart.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return domain.CartItem{}, false
}

func checkBounds(p domain.ProductSummary, quantity int) error {
	min := p.MinOrderQuantity
	if min < 1 {
		min = 1
	}
	if quantity < min {
		return fmt.Errorf("%w: want at least %d, got %d", ErrBelowMinimum, min, quantity)
	}
	// Stock zero is sold out, not unknown: nothing can be added.
	if quantity > p.StockQuantity {
		return fmt.Errorf("%w: %d in stock, got %d", ErrExceedsStock, p.StockQuantity, quantity)
	}
	return nil
}

func (s *Store) begin(action Action) {
	s.mu.Lock()
	s.status[action] = Status{Loading: true}
	s.mu.Unlock()
}

func (s *Store) finish(action Action, err error) {
	s.mu.Lock()
	s.status[action] = Status{Err: err}
	s.mu.Unlock()
}
