// Package app is the admin console's client. The earlier web client issued
// these writes ad hoc from individual pages; here they all flow through the
// shared HTTP client and the session store's token so error handling and
// authorization never diverge from the rest of the application.
package app

import (
	"context"
	"errors"
	"strings"

	catalogdomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/domain"
	sessiondomain "github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrNotStaff        = errors.New("staff account required")
	ErrInvalidInput    = errors.New("invalid input")
)

type Service struct {
	api     AdminAPI
	session SessionSource
}

func NewService(api AdminAPI, session SessionSource) *Service {
	return &Service{api: api, session: session}
}

// token returns the staff access token or fails fast, before any network.
func (s *Service) token() (string, error) {
	snap := s.session.Snapshot()
	if !snap.Authenticated() {
		return "", ErrUnauthenticated
	}
	if !snap.User.IsStaff {
		return "", ErrNotStaff
	}
	return snap.AccessToken, nil
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (catalogdomain.Product, error) {
	token, err := s.token()
	if err != nil {
		return catalogdomain.Product{}, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" || in.PricePerMeter <= 0 {
		return catalogdomain.Product{}, ErrInvalidInput
	}
	return s.api.CreateProduct(ctx, token, in)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (catalogdomain.Product, error) {
	token, err := s.token()
	if err != nil {
		return catalogdomain.Product{}, err
	}
	return s.api.UpdateProduct(ctx, token, id, in)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	return s.api.DeleteProduct(ctx, token, id)
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (catalogdomain.Category, error) {
	token, err := s.token()
	if err != nil {
		return catalogdomain.Category{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return catalogdomain.Category{}, ErrInvalidInput
	}
	return s.api.CreateCategory(ctx, token, in)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, in CategoryInput) (catalogdomain.Category, error) {
	token, err := s.token()
	if err != nil {
		return catalogdomain.Category{}, err
	}
	return s.api.UpdateCategory(ctx, token, id, in)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	return s.api.DeleteCategory(ctx, token, id)
}

func (s *Service) CreateBanner(ctx context.Context, in BannerInput) (catalogdomain.HeroBanner, error) {
	token, err := s.token()
	if err != nil {
		return catalogdomain.HeroBanner{}, err
	}
	if strings.TrimSpace(in.Image) == "" {
		return catalogdomain.HeroBanner{}, ErrInvalidInput
	}
	return s.api.CreateBanner(ctx, token, in)
}

func (s *Service) UpdateBanner(ctx context.Context, id string, in BannerInput) (catalogdomain.HeroBanner, error) {
	token, err := s.token()
	if err != nil {
		return catalogdomain.HeroBanner{}, err
	}
	return s.api.UpdateBanner(ctx, token, id, in)
}

func (s *Service) DeleteBanner(ctx context.Context, id string) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	return s.api.DeleteBanner(ctx, token, id)
}

func (s *Service) CreateBlogPost(ctx context.Context, in BlogPostInput) (catalogdomain.BlogPost, error) {
	token, err := s.token()
	if err != nil {
		return catalogdomain.BlogPost{}, err
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return catalogdomain.BlogPost{}, ErrInvalidInput
	}
	return s.api.CreateBlogPost(ctx, token, in)
}

func (s *Service) UpdateBlogPost(ctx context.Context, id string, in BlogPostInput) (catalogdomain.BlogPost, error) {
	token, err := s.token()
	if err != nil {
		return catalogdomain.BlogPost{}, err
	}
	return s.api.UpdateBlogPost(ctx, token, id, in)
}

func (s *Service) DeleteBlogPost(ctx context.Context, id string) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	return s.api.DeleteBlogPost(ctx, token, id)
}

func (s *Service) ListUsers(ctx context.Context, page int) ([]sessiondomain.User, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return s.api.ListUsers(ctx, token, page)
}

func (s *Service) SetUserActive(ctx context.Context, id string, active bool) error {
	token, err := s.token()
	if err != nil {
		return err
	}
	return s.api.SetUserActive(ctx, token, id, active)
}
