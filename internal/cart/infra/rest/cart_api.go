// Package rest adapts the backend's cart and saved-items endpoints to the
// cart store's CartAPI port.
package rest

import (
	"context"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/cart/domain"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/pkg/rest"
)

type CartAPI struct {
	client *rest.Client
}

func NewCartAPI(client *rest.Client) *CartAPI {
	return &CartAPI{client: client}
}

func (a *CartAPI) Get(ctx context.Context, token string) (domain.Cart, error) {
	var out domain.Cart
	if err := a.client.Get(ctx, "/cart/", token, &out); err != nil {
		return domain.Cart{}, err
	}
	return out, nil
}

type itemBody struct {
	ProductID           string `json:"product_id,omitempty"`
	ItemID              string `json:"item_id,omitempty"`
	Quantity            int    `json:"quantity"`
	PreferredColors     string `json:"preferred_colors,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// Mutations return the updated cart under a "cart" key.
type cartPayload struct {
	Cart domain.Cart `json:"cart"`
}

func (a *CartAPI) AddItem(ctx context.Context, token, productID string, quantity int, opts domain.ItemOptions) (domain.Cart, error) {
	body := itemBody{
		ProductID:           productID,
		Quantity:            quantity,
		PreferredColors:     opts.PreferredColors,
		SpecialInstructions: opts.SpecialInstructions,
	}
	var out cartPayload
	if err := a.client.Post(ctx, "/cart/add_item/", token, body, &out); err != nil {
		return domain.Cart{}, err
	}
	return out.Cart, nil
}

func (a *CartAPI) UpdateItem(ctx context.Context, token, itemID string, quantity int, opts domain.ItemOptions) (domain.Cart, error) {
	body := itemBody{
		ItemID:              itemID,
		Quantity:            quantity,
		PreferredColors:     opts.PreferredColors,
		SpecialInstructions: opts.SpecialInstructions,
	}
	var out cartPayload
	if err := a.client.Put(ctx, "/cart/update_item/", token, body, &out); err != nil {
		return domain.Cart{}, err
	}
	return out.Cart, nil
}

func (a *CartAPI) RemoveItem(ctx context.Context, token, itemID string) (domain.Cart, error) {
	body := itemBody{ItemID: itemID}
	var out cartPayload
	if err := a.client.Delete(ctx, "/cart/remove_item/", token, body, &out); err != nil {
		return domain.Cart{}, err
	}
	return out.Cart, nil
}

func (a *CartAPI) Clear(ctx context.Context, token string) error {
	return a.client.Delete(ctx, "/cart/clear/", token, nil, nil)
}

func (a *CartAPI) Summary(ctx context.Context, token string) (domain.CartSummary, error) {
	var out domain.CartSummary
	if err := a.client.Get(ctx, "/cart/summary/", token, &out); err != nil {
		return domain.CartSummary{}, err
	}
	return out, nil
}

func (a *CartAPI) SaveForLater(ctx context.Context, token, itemID string) error {
	return a.client.Post(ctx, "/cart/save_for_later/", token, itemBody{ItemID: itemID}, nil)
}

func (a *CartAPI) SavedItems(ctx context.Context, token string) ([]domain.SavedItem, error) {
	var out []domain.SavedItem
	if err := a.client.Get(ctx, "/saved-items/", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CartAPI) MoveToCart(ctx context.Context, token, savedItemID string) error {
	return a.client.Post(ctx, "/saved-items/"+savedItemID+"/move_to_cart/", token, nil, nil)
}

func (a *CartAPI) RemoveSavedItem(ctx context.Context, token, savedItemID string) error {
	return a.client.Delete(ctx, "/saved-items/"+savedItemID+"/", token, nil, nil)
}
