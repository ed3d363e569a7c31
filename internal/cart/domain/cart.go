package domain

import "time"

// ProductSummary is the slice of a product a cart line embeds: enough to
// render the line and to bound quantities client-side before a request is
// issued. Prices and stock are display copies; the backend recomputes
// everything on every mutation.
type ProductSummary struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Image            string  `json:"image"`
	Material         string  `json:"material"`
	GSM              int     `json:"gsm"`
	Color            string  `json:"color"`
	PricePerMeter    float64 `json:"price_per_meter"`
	WholesalePrice   float64 `json:"wholesale_price"`
	StockQuantity    int     `json:"stock_quantity"`
	MinOrderQuantity int     `json:"min_order_quantity"`
	Category         string  `json:"category"`
}

type CartItem struct {
	ID                  string         `json:"id"`
	Product             ProductSummary `json:"product"`
	Quantity            int            `json:"quantity"`
	UnitPrice           float64        `json:"unit_price"`
	WholesaleUnitPrice  float64        `json:"wholesale_unit_price"`
	TotalPrice          float64        `json:"total_price"`
	PreferredColors     string         `json:"preferred_colors,omitempty"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Cart is the single per-user container. All totals come from the backend;
// the client never recomputes them.
type Cart struct {
	ID                   string     `json:"id"`
	Items                []CartItem `json:"items"`
	TotalItems           int        `json:"total_items"`
	TotalAmount          float64    `json:"total_amount"`
	TotalWholesaleAmount float64    `json:"total_wholesale_amount"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// SavedItem is a cart line parked outside the active cart.
type SavedItem struct {
	ID                  string         `json:"id"`
	Product             ProductSummary `json:"product"`
	Quantity            int            `json:"quantity"`
	PreferredColors     string         `json:"preferred_colors,omitempty"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
}

type CartSummary struct {
	TotalItems           int     `json:"total_items"`
	TotalAmount          float64 `json:"total_amount"`
	TotalWholesaleAmount float64 `json:"total_wholesale_amount"`
}

// ItemOptions carries the free-text extras on a cart line.
type ItemOptions struct {
	PreferredColors     string
	SpecialInstructions string
}
