package app

import (
	"context"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/domain"
)

// CatalogAPI is the backend's read-only reference data surface. None of it
// needs authentication.
type CatalogAPI interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Products(ctx context.Context, query ProductQuery) ([]domain.Product, error)
	Product(ctx context.Context, slug string) (domain.Product, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Latest(ctx context.Context) ([]domain.Product, error)
	FilterOptions(ctx context.Context) (domain.FilterOptions, error)
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
	BlogPosts(ctx context.Context) ([]domain.BlogPost, error)
	HeroBanners(ctx context.Context) ([]domain.HeroBanner, error)
}

// ProductQuery narrows a product listing. Zero values mean "no constraint".
type ProductQuery struct {
	Search   string
	Category string
	Material string
	Color    string
	GSMMin   int
	GSMMax   int
	PriceMin float64
	PriceMax float64
	Page     int
}
