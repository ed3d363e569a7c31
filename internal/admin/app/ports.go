package app

import (
	"context"

	catalogdomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/domain"
	sessiondomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
)

// AdminAPI is the back-office write surface. The backend enforces staff
// authorization on every endpoint; the client-side staff check only avoids
// pointless round trips.
type AdminAPI interface {
	CreateProduct(ctx context.Context, token string, in ProductInput) (catalogdomain.Product, error)
	UpdateProduct(ctx context.Context, token, id string, in ProductInput) (catalogdomain.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	CreateCategory(ctx context.Context, token string, in CategoryInput) (catalogdomain.Category, error)
	UpdateCategory(ctx context.Context, token, id string, in CategoryInput) (catalogdomain.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error

	CreateBanner(ctx context.Context, token string, in BannerInput) (catalogdomain.HeroBanner, error)
	UpdateBanner(ctx context.Context, token, id string, in BannerInput) (catalogdomain.HeroBanner, error)
	DeleteBanner(ctx context.Context, token, id string) error

	CreateBlogPost(ctx context.Context, token string, in BlogPostInput) (catalogdomain.BlogPost, error)
	UpdateBlogPost(ctx context.Context, token, id string, in BlogPostInput) (catalogdomain.BlogPost, error)
	DeleteBlogPost(ctx context.Context, token, id string) error

	ListUsers(ctx context.Context, token string, page int) ([]sessiondomain.User, error)
	SetUserActive(ctx context.Context, token, id string, active bool) error
}

// SessionSource mirrors the cart store's dependency on the auth store.
type SessionSource interface {
	Snapshot() sessiondomain.Snapshot
}

type ProductInput struct {
	Name             string  `json:"name"`
	Slug             string  `json:"slug,omitempty"`
	Description      string  `json:"description,omitempty"`
	Image            string  `json:"image,omitempty"`
	Material         string  `json:"material"`
	GSM              int     `json:"gsm,omitempty"`
	Color            string  `json:"color,omitempty"`
	PricePerMeter    float64 `json:"price_per_meter"`
	WholesalePrice   float64 `json:"wholesale_price,omitempty"`
	StockQuantity    int     `json:"stock_quantity"`
	MinOrderQuantity int     `json:"min_order_quantity,omitempty"`
	Category         string  `json:"category"`
	IsFeatured       bool    `json:"is_featured,omitempty"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type BannerInput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image"`
	LinkURL  string `json:"link_url,omitempty"`
	Position int    `json:"position,omitempty"`
	Active   bool   `json:"active"`
}

type BlogPostInput struct {
	Title      string `json:"title"`
	Slug       string `json:"slug,omitempty"`
	Excerpt    string `json:"excerpt,omitempty"`
	Body       string `json:"body"`
	CoverImage string `json:"cover_image,omitempty"`
}
