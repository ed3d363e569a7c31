// Package rest adapts the backend's staff-only write endpoints to the admin
// service's AdminAPI port.
package rest

import (
	"context"
	"strconv"

	adminapp "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/admin/app"
	catalogdomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/domain"
	sessiondomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/pkg/rest"
)

type AdminAPI struct {
	client *rest.Client
}

func NewAdminAPI(client *rest.Client) *AdminAPI {
	return &AdminAPI{client: client}
}

func (a *AdminAPI) CreateProduct(ctx context.Context, token string, in adminapp.ProductInput) (catalogdomain.Product, error) {
	var out catalogdomain.Product
	if err := a.client.Post(ctx, "/products/", token, in, &out); err != nil {
		return catalogdomain.Product{}, err
	}
	return out, nil
}

func (a *AdminAPI) UpdateProduct(ctx context.Context, token, id string, in adminapp.ProductInput) (catalogdomain.Product, error) {
	var out catalogdomain.Product
	if err := a.client.Put(ctx, "/products/"+id+"/", token, in, &out); err != nil {
		return catalogdomain.Product{}, err
	}
	return out, nil
}

func (a *AdminAPI) DeleteProduct(ctx context.Context, token, id string) error {
	return a.client.Delete(ctx, "/products/"+id+"/", token, nil, nil)
}

func (a *AdminAPI) CreateCategory(ctx context.Context, token string, in adminapp.CategoryInput) (catalogdomain.Category, error) {
	var out catalogdomain.Category
	if err := a.client.Post(ctx, "/categories/", token, in, &out); err != nil {
		return catalogdomain.Category{}, err
	}
	return out, nil
}

func (a *AdminAPI) UpdateCategory(ctx context.Context, token, id string, in adminapp.CategoryInput) (catalogdomain.Category, error) {
	var out catalogdomain.Category
	if err := a.client.Put(ctx, "/categories/"+id+"/", token, in, &out); err != nil {
		return catalogdomain.Category{}, err
	}
	return out, nil
}

func (a *AdminAPI) DeleteCategory(ctx context.Context, token, id string) error {
	return a.client.Delete(ctx, "/categories/"+id+"/", token, nil, nil)
}

func (a *AdminAPI) CreateBanner(ctx context.Context, token string, in adminapp.BannerInput) (catalogdomain.HeroBanner, error) {
	var out catalogdomain.HeroBanner
	if err := a.client.Post(ctx, "/hero-banners/", token, in, &out); err != nil {
		return catalogdomain.HeroBanner{}, err
	}
	return out, nil
}

func (a *AdminAPI) UpdateBanner(ctx context.Context, token, id string, in adminapp.BannerInput) (catalogdomain.HeroBanner, error) {
	var out catalogdomain.HeroBanner
	if err := a.client.Put(ctx, "/hero-banners/"+id+"/", token, in, &out); err != nil {
		return catalogdomain.HeroBanner{}, err
	}
	return out, nil
}

func (a *AdminAPI) DeleteBanner(ctx context.Context, token, id string) error {
	return a.client.Delete(ctx, "/hero-banners/"+id+"/", token, nil, nil)
}

func (a *AdminAPI) CreateBlogPost(ctx context.Context, token string, in adminapp.BlogPostInput) (catalogdomain.BlogPost, error) {
	var out catalogdomain.BlogPost
	if err := a.client.Post(ctx, "/blog/posts/", token, in, &out); err != nil {
		return catalogdomain.BlogPost{}, err
	}
	return out, nil
}

func (a *AdminAPI) UpdateBlogPost(ctx context.Context, token, id string, in adminapp.BlogPostInput) (catalogdomain.BlogPost, error) {
	var out catalogdomain.BlogPost
	if err := a.client.Put(ctx, "/blog/posts/"+id+"/", token, in, &out); err != nil {
		return catalogdomain.BlogPost{}, err
	}
	return out, nil
}

func (a *AdminAPI) DeleteBlogPost(ctx context.Context, token, id string) error {
	return a.client.Delete(ctx, "/blog/posts/"+id+"/", token, nil, nil)
}

func (a *AdminAPI) ListUsers(ctx context.Context, token string, page int) ([]sessiondomain.User, error) {
	var out []sessiondomain.User
	path := "/accounts/users/?page=" + strconv.Itoa(page)
	if err := a.client.Get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AdminAPI) SetUserActive(ctx context.Context, token, id string, active bool) error {
	body := map[string]bool{"is_active": active}
	return a.client.Put(ctx, "/accounts/users/"+id+"/", token, body, nil)
}
