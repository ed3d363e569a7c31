package domain

import "time"

// Product is the storefront projection of a fabric listing. Wholesale price
// is only populated when the backend decides the caller may see it.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	Image            string    `json:"image"`
	Material         string    `json:"material"`
	GSM              int       `json:"gsm"`
	Color            string    `json:"color"`
	PricePerMeter    float64   `json:"price_per_meter"`
	WholesalePrice   float64   `json:"wholesale_price"`
	CanSeePrices     bool      `json:"can_see_prices"`
	StockQuantity    int       `json:"stock_quantity"`
	MinOrderQuantity int       `json:"min_order_quantity"`
	Category         string    `json:"category"`
	IsFeatured       bool      `json:"is_featured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int    `json:"product_count"`
}

// FilterOptions is the metadata the product listing filters are built from.
type FilterOptions struct {
	Materials  []string `json:"materials"`
	Colors     []string `json:"colors"`
	Categories []string `json:"categories"`
	GSMRange   Range    `json:"gsm_range"`
	PriceRange Range    `json:"price_range"`
}

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type DashboardStats struct {
	TotalProducts   int `json:"total_products"`
	TotalCategories int `json:"total_categories"`
	TotalUsers      int `json:"total_users"`
	TotalOrders     int `json:"total_orders"`
}

type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body"`
	CoverImage  string    `json:"cover_image"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}

// HeroBanner is a homepage carousel slide, managed from the admin console.
type HeroBanner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	LinkURL  string `json:"link_url"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}
