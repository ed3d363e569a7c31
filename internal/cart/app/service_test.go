package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/cart/domain"
	sessiondomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
)

type fakeSession struct {
	snap sessiondomain.Snapshot
	subs []func(sessiondomain.Snapshot)
}

func (f *fakeSession) Snapshot() sessiondomain.Snapshot { return f.snap }

func (f *fakeSession) Subscribe(fn func(sessiondomain.Snapshot)) {
	f.subs = append(f.subs, fn)
}

func (f *fakeSession) login(token string) {
	f.snap = sessiondomain.Snapshot{
		User:        &sessiondomain.User{ID: "u1", Email: "a@b.com"},
		AccessToken: token,
		Epoch:       f.snap.Epoch + 1,
	}
	for _, fn := range f.subs {
		fn(f.snap)
	}
}

func (f *fakeSession) logout() {
	f.snap = sessiondomain.Snapshot{Epoch: f.snap.Epoch + 1}
	for _, fn := range f.subs {
		fn(f.snap)
	}
}

type fakeCartAPI struct {
	cart     domain.Cart
	saved    []domain.SavedItem
	addErr   error
	clearErr error

	// onGet runs before Get returns, so tests can change session state while
	// a response is "in flight".
	onGet func()

	getCalls     int
	addCalls     int
	updateCalls  int
	removeCalls  int
	clearCalls   int
	saveCalls    int
	savedCalls   int
	moveCalls    int
	rmSavedCalls int
}

func (f *fakeCartAPI) Get(ctx context.Context, token string) (domain.Cart, error) {
	f.getCalls++
	if f.onGet != nil {
		f.onGet()
	}
	return f.cart, nil
}

func (f *fakeCartAPI) AddItem(ctx context.Context, token, productID string, quantity int, opts domain.ItemOptions) (domain.Cart, error) {
	f.addCalls++
	if f.addErr != nil {
		return domain.Cart{}, f.addErr
	}
	return f.cart, nil
}

func (f *fakeCartAPI) UpdateItem(ctx context.Context, token, itemID string, quantity int, opts domain.ItemOptions) (domain.Cart, error) {
	f.updateCalls++
	return f.cart, nil
}

func (f *fakeCartAPI) RemoveItem(ctx context.Context, token, itemID string) (domain.Cart, error) {
	f.removeCalls++
	return f.cart, nil
}

func (f *fakeCartAPI) Clear(ctx context.Context, token string) error {
	f.clearCalls++
	return f.clearErr
}

func (f *fakeCartAPI) Summary(ctx context.Context, token string) (domain.CartSummary, error) {
	return domain.CartSummary{TotalItems: f.cart.TotalItems, TotalAmount: f.cart.TotalAmount}, nil
}

func (f *fakeCartAPI) SaveForLater(ctx context.Context, token, itemID string) error {
	f.saveCalls++
	return nil
}

func (f *fakeCartAPI) SavedItems(ctx context.Context, token string) ([]domain.SavedItem, error) {
	f.savedCalls++
	return f.saved, nil
}

func (f *fakeCartAPI) MoveToCart(ctx context.Context, token, savedItemID string) error {
	f.moveCalls++
	return nil
}

func (f *fakeCartAPI) RemoveSavedItem(ctx context.Context, token, savedItemID string) error {
	f.rmSavedCalls++
	return nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func cotton(minQty, stock int) domain.ProductSummary {
	return domain.ProductSummary{
		ID:               "p1",
		Name:             "Cotton Drill",
		Material:         "cotton",
		GSM:              240,
		MinOrderQuantity: minQty,
		StockQuantity:    stock,
	}
}

func TestAddToCart(t *testing.T) {
	t.Run("unauthenticated -> rejected with zero requests", func(t *testing.T) {
		api := &fakeCartAPI{}
		s := NewStore(api, &fakeSession{}, discard())
		err := s.AddToCart(context.Background(), cotton(1, 100), 5, domain.ItemOptions{})
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("err = %v", err)
		}
		if api.addCalls != 0 {
			t.Fatalf("add called %d times", api.addCalls)
		}
	})

	t.Run("below minimum order quantity -> rejected pre-flight", func(t *testing.T) {
		api := &fakeCartAPI{}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())
		err := s.AddToCart(context.Background(), cotton(10, 100), 5, domain.ItemOptions{})
		if !errors.Is(err, ErrBelowMinimum) {
			t.Fatalf("err = %v", err)
		}
		if api.addCalls != 0 {
			t.Fatalf("add called %d times", api.addCalls)
		}
	})

	t.Run("above stock -> rejected pre-flight", func(t *testing.T) {
		api := &fakeCartAPI{}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())
		err := s.AddToCart(context.Background(), cotton(1, 20), 25, domain.ItemOptions{})
		if !errors.Is(err, ErrExceedsStock) {
			t.Fatalf("err = %v", err)
		}
		if api.addCalls != 0 {
			t.Fatalf("add called %d times", api.addCalls)
		}
	})

	t.Run("sold out -> rejected pre-flight", func(t *testing.T) {
		api := &fakeCartAPI{}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())
		err := s.AddToCart(context.Background(), cotton(1, 0), 5, domain.ItemOptions{})
		if !errors.Is(err, ErrExceedsStock) {
			t.Fatalf("err = %v", err)
		}
		if api.addCalls != 0 {
			t.Fatalf("add called %d times", api.addCalls)
		}
	})

	t.Run("success adopts server totals verbatim", func(t *testing.T) {
		api := &fakeCartAPI{cart: domain.Cart{
			ID:                   "c1",
			Items:                []domain.CartItem{{ID: "i1", Quantity: 30}},
			TotalItems:           30,
			TotalAmount:          8700.50,
			TotalWholesaleAmount: 7950,
		}}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())

		if err := s.AddToCart(context.Background(), cotton(10, 100), 30, domain.ItemOptions{}); err != nil {
			t.Fatalf("AddToCart failed: %v", err)
		}
		got := s.Cart()
		if got == nil || got.TotalItems != 30 || got.TotalAmount != 8700.50 {
			t.Fatalf("cart = %+v", got)
		}
	})

	t.Run("failed add leaves load status and cart alone", func(t *testing.T) {
		api := &fakeCartAPI{cart: domain.Cart{ID: "c1", TotalItems: 2}}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())
		if err := s.LoadCart(context.Background()); err != nil {
			t.Fatalf("LoadCart failed: %v", err)
		}

		api.addErr = errors.New("out of stock")
		if err := s.AddToCart(context.Background(), cotton(1, 100), 5, domain.ItemOptions{}); err == nil {
			t.Fatal("expected error")
		}
		if st := s.Status(ActionAdd); st.Err == nil {
			t.Fatal("add status missing its error")
		}
		if st := s.Status(ActionLoad); st.Err != nil || st.Loading {
			t.Fatalf("load status disturbed: %+v", st)
		}
		if s.Cart() == nil || s.Cart().ID != "c1" {
			t.Fatal("cart disturbed by failed add")
		}
	})
}

func TestUpdateCartItem(t *testing.T) {
	t.Run("cached item -> bounds enforced pre-flight", func(t *testing.T) {
		api := &fakeCartAPI{cart: domain.Cart{
			ID:    "c1",
			Items: []domain.CartItem{{ID: "i1", Product: cotton(10, 50), Quantity: 20}},
		}}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())
		if err := s.LoadCart(context.Background()); err != nil {
			t.Fatalf("LoadCart failed: %v", err)
		}

		if err := s.UpdateCartItem(context.Background(), "i1", 5, domain.ItemOptions{}); !errors.Is(err, ErrBelowMinimum) {
			t.Fatalf("err = %v", err)
		}
		if err := s.UpdateCartItem(context.Background(), "i1", 60, domain.ItemOptions{}); !errors.Is(err, ErrExceedsStock) {
			t.Fatalf("err = %v", err)
		}
		if api.updateCalls != 0 {
			t.Fatalf("update called %d times", api.updateCalls)
		}
	})

	t.Run("uncached item -> backend decides", func(t *testing.T) {
		api := &fakeCartAPI{cart: domain.Cart{ID: "c1"}}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())

		if err := s.UpdateCartItem(context.Background(), "i9", 5, domain.ItemOptions{}); err != nil {
			t.Fatalf("UpdateCartItem failed: %v", err)
		}
		if api.updateCalls != 1 {
			t.Fatalf("update called %d times", api.updateCalls)
		}
	})
}

func TestSaveForLater(t *testing.T) {
	t.Run("success -> exactly two refetch reads, no local diffing", func(t *testing.T) {
		api := &fakeCartAPI{
			cart:  domain.Cart{ID: "c1", TotalItems: 1},
			saved: []domain.SavedItem{{ID: "s1"}},
		}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())

		if err := s.SaveForLater(context.Background(), "i1"); err != nil {
			t.Fatalf("SaveForLater failed: %v", err)
		}
		if api.saveCalls != 1 {
			t.Fatalf("save called %d times", api.saveCalls)
		}
		if api.getCalls != 1 || api.savedCalls != 1 {
			t.Fatalf("refetch calls = (cart %d, saved %d)", api.getCalls, api.savedCalls)
		}
		if got := s.SavedItems(); len(got) != 1 || got[0].ID != "s1" {
			t.Fatalf("saved = %+v", got)
		}
		if got := s.Cart(); got == nil || got.ID != "c1" {
			t.Fatalf("cart = %+v", got)
		}
	})

	t.Run("move to cart follows the same discipline", func(t *testing.T) {
		api := &fakeCartAPI{cart: domain.Cart{ID: "c1"}}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())

		if err := s.MoveToCart(context.Background(), "s1"); err != nil {
			t.Fatalf("MoveToCart failed: %v", err)
		}
		if api.moveCalls != 1 || api.getCalls != 1 || api.savedCalls != 1 {
			t.Fatalf("calls = (move %d, cart %d, saved %d)", api.moveCalls, api.getCalls, api.savedCalls)
		}
	})
}

func TestClearCart(t *testing.T) {
	t.Run("backend failure is swallowed, cart kept", func(t *testing.T) {
		api := &fakeCartAPI{cart: domain.Cart{ID: "c1"}}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())
		if err := s.LoadCart(context.Background()); err != nil {
			t.Fatalf("LoadCart failed: %v", err)
		}

		api.clearErr = errors.New("boom")
		if err := s.ClearCart(context.Background()); err != nil {
			t.Fatalf("best-effort clear returned error: %v", err)
		}
		if s.Cart() == nil {
			t.Fatal("cart dropped despite failed clear")
		}
	})

	t.Run("success empties local cart", func(t *testing.T) {
		api := &fakeCartAPI{cart: domain.Cart{ID: "c1"}}
		sess := &fakeSession{}
		sess.login("tok1")
		s := NewStore(api, sess, discard())
		if err := s.LoadCart(context.Background()); err != nil {
			t.Fatalf("LoadCart failed: %v", err)
		}

		if err := s.ClearCart(context.Background()); err != nil {
			t.Fatalf("ClearCart failed: %v", err)
		}
		if s.Cart() != nil {
			t.Fatal("cart still present after clear")
		}
	})
}

func TestSessionBinding(t *testing.T) {
	t.Run("login transition loads cart and saved items", func(t *testing.T) {
		api := &fakeCartAPI{cart: domain.Cart{ID: "c1"}, saved: []domain.SavedItem{{ID: "s1"}}}
		sess := &fakeSession{}
		s := NewStore(api, sess, discard())
		s.Bind(context.Background())

		sess.login("tok1")

		if api.getCalls != 1 || api.savedCalls != 1 {
			t.Fatalf("calls = (cart %d, saved %d)", api.getCalls, api.savedCalls)
		}
		if s.Cart() == nil || len(s.SavedItems()) != 1 {
			t.Fatal("state not loaded on login")
		}
	})

	t.Run("logout transition clears local state", func(t *testing.T) {
		api := &fakeCartAPI{cart: domain.Cart{ID: "c1"}}
		sess := &fakeSession{}
		s := NewStore(api, sess, discard())
		s.Bind(context.Background())

		sess.login("tok1")
		sess.logout()

		if s.Cart() != nil || len(s.SavedItems()) != 0 {
			t.Fatal("stale cart state observable after logout")
		}
	})

	t.Run("response from an ended session is dropped", func(t *testing.T) {
		sess := &fakeSession{}
		api := &fakeCartAPI{cart: domain.Cart{ID: "c1"}}
		// The session ends while the load response is in flight.
		api.onGet = func() { sess.snap = sessiondomain.Snapshot{Epoch: sess.snap.Epoch + 1} }
		sess.login("tok1")
		s := NewStore(api, sess, discard())

		if err := s.LoadCart(context.Background()); err != nil {
			t.Fatalf("LoadCart failed: %v", err)
		}
		if s.Cart() != nil {
			t.Fatal("stale response applied across session boundary")
		}
	})
}
