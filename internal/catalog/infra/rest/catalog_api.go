// Package rest adapts the backend's public catalog endpoints to the catalog
// store's CatalogAPI port.
package rest

import (
	"context"
	"net/url"
	"strconv"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/app"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/domain"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/pkg/rest"
)

type CatalogAPI struct {
	client *rest.Client
}

func NewCatalogAPI(client *rest.Client) *CatalogAPI {
	return &CatalogAPI{client: client}
}

func (a *CatalogAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := a.client.Get(ctx, "/categories/", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CatalogAPI) Products(ctx context.Context, query app.ProductQuery) ([]domain.Product, error) {
	q := url.Values{}
	setStr := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	setStr("search", query.Search)
	setStr("category", query.Category)
	setStr("material", query.Material)
	setStr("color", query.Color)
	if query.GSMMin > 0 {
		q.Set("gsm_min", strconv.Itoa(query.GSMMin))
	}
	if query.GSMMax > 0 {
		q.Set("gsm_max", strconv.Itoa(query.GSMMax))
	}
	if query.PriceMin > 0 {
		q.Set("price_min", strconv.FormatFloat(query.PriceMin, 'f', -1, 64))
	}
	if query.PriceMax > 0 {
		q.Set("price_max", strconv.FormatFloat(query.PriceMax, 'f', -1, 64))
	}
	if query.Page > 1 {
		q.Set("page", strconv.Itoa(query.Page))
	}

	path := "/products/"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out []domain.Product
	if err := a.client.Get(ctx, path, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CatalogAPI) Product(ctx context.Context, slug string) (domain.Product, error) {
	var out domain.Product
	if err := a.client.Get(ctx, "/products/"+slug+"/", "", &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

func (a *CatalogAPI) Featured(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := a.client.Get(ctx, "/products/featured/", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CatalogAPI) Latest(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := a.client.Get(ctx, "/products/latest/", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CatalogAPI) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	var out domain.FilterOptions
	if err := a.client.Get(ctx, "/products/filter_options/", "", &out); err != nil {
		return domain.FilterOptions{}, err
	}
	return out, nil
}

func (a *CatalogAPI) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := a.client.Get(ctx, "/dashboard/stats/", "", &out); err != nil {
		return domain.DashboardStats{}, err
	}
	return out, nil
}

func (a *CatalogAPI) BlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	if err := a.client.Get(ctx, "/blog/posts/", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CatalogAPI) HeroBanners(ctx context.Context) ([]domain.HeroBanner, error) {
	var out []domain.HeroBanner
	if err := a.client.Get(ctx, "/hero-banners/", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}
