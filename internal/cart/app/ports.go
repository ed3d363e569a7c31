package app

import (
	"context"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/cart/domain"
	sessiondomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
)

// CartAPI is the backend's cart surface. Every mutation returns the full
// resulting cart; the server is the sole authority on quantities and totals.
type CartAPI interface {
	Get(ctx context.Context, token string) (domain.Cart, error)
	AddItem(ctx context.Context, token, productID string, quantity int, opts domain.ItemOptions) (domain.Cart, error)
	UpdateItem(ctx context.Context, token, itemID string, quantity int, opts domain.ItemOptions) (domain.Cart, error)
	RemoveItem(ctx context.Context, token, itemID string) (domain.Cart, error)
	Clear(ctx context.Context, token string) error
	Summary(ctx context.Context, token string) (domain.CartSummary, error)
	SaveForLater(ctx context.Context, token, itemID string) error
	SavedItems(ctx context.Context, token string) ([]domain.SavedItem, error)
	MoveToCart(ctx context.Context, token, savedItemID string) error
	RemoveSavedItem(ctx context.Context, token, savedItemID string) error
}

// SessionSource is the slice of the auth store the cart store depends on:
// a point-in-time snapshot per action, and transition notifications for the
// load-on-login / clear-on-logout behavior.
type SessionSource interface {
	Snapshot() sessiondomain.Snapshot
	Subscribe(fn func(sessiondomain.Snapshot))
}
