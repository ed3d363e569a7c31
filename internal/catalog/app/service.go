// Package app caches read-only reference data shared across pages:
// categories, featured and latest products, filter metadata, dashboard stats,
// blog posts and hero banners. There is no invalidation policy; RefreshAll is
// the only way to pick up backend changes mid-session.
package app

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/domain"
)

// Kind identifies one cached collection, with independent loading/error
// state per kind.
type Kind string

const (
	KindCategories Kind = "categories"
	KindFeatured   Kind = "featured"
	KindLatest     Kind = "latest"
	KindFilters    Kind = "filters"
	KindStats      Kind = "stats"
	KindBlog       Kind = "blog"
	KindBanners    Kind = "banners"
)

type Status struct {
	Loading bool
	Err     error
}

type Store struct {
	api CatalogAPI
	log *slog.Logger

	mu         sync.Mutex
	categories []domain.Category
	featured   []domain.Product
	latest     []domain.Product
	filters    *domain.FilterOptions
	stats      *domain.DashboardStats
	blog       []domain.BlogPost
	banners    []domain.HeroBanner
	status     map[Kind]Status
}

func NewStore(api CatalogAPI, log *slog.Logger) *Store {
	return &Store{
		api:    api,
		log:    log,
		status: make(map[Kind]Status),
	}
}

func (s *Store) LoadCategories(ctx context.Context) error {
	return load(s, ctx, KindCategories, s.api.Categories, func(v []domain.Category) { s.categories = v })
}

func (s *Store) LoadFeatured(ctx context.Context) error {
	return load(s, ctx, KindFeatured, s.api.Featured, func(v []domain.Product) { s.featured = v })
}

func (s *Store) LoadLatest(ctx context.Context) error {
	return load(s, ctx, KindLatest, s.api.Latest, func(v []domain.Product) { s.latest = v })
}

func (s *Store) LoadFilterOptions(ctx context.Context) error {
	return load(s, ctx, KindFilters, s.api.FilterOptions, func(v domain.FilterOptions) { s.filters = &v })
}

func (s *Store) LoadDashboardStats(ctx context.Context) error {
	return load(s, ctx, KindStats, s.api.DashboardStats, func(v domain.DashboardStats) { s.stats = &v })
}

func (s *Store) LoadBlogPosts(ctx context.Context) error {
	return load(s, ctx, KindBlog, s.api.BlogPosts, func(v []domain.BlogPost) { s.blog = v })
}

func (s *Store) LoadHeroBanners(ctx context.Context) error {
	return load(s, ctx, KindBanners, s.api.HeroBanners, func(v []domain.HeroBanner) { s.banners = v })
}

// RefreshAll fires every load concurrently. Each kind keeps its own error
// and a failing feed does not cancel the others, so the group deliberately
// does not share a cancellation context.
func (s *Store) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.LoadCategories(ctx) })
	g.Go(func() error { return s.LoadFeatured(ctx) })
	g.Go(func() error { return s.LoadLatest(ctx) })
	g.Go(func() error { return s.LoadFilterOptions(ctx) })
	g.Go(func() error { return s.LoadDashboardStats(ctx) })
	g.Go(func() error { return s.LoadBlogPosts(ctx) })
	g.Go(func() error { return s.LoadHeroBanners(ctx) })

	if err := g.Wait(); err != nil {
		s.log.Warn("catalog refresh incomplete", slog.Any("err", err))
		return err
	}
	return nil
}

// SearchProducts queries the full listing endpoint. Results are page-local
// and deliberately not cached here.
func (s *Store) SearchProducts(ctx context.Context, query ProductQuery) ([]domain.Product, error) {
	return s.api.Products(ctx, query)
}

func (s *Store) Product(ctx context.Context, slug string) (domain.Product, error) {
	return s.api.Product(ctx, slug)
}

func (s *Store) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Category(nil), s.categories...)
}

func (s *Store) Featured() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.featured...)
}

func (s *Store) Latest() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.latest...)
}

func (s *Store) FilterOptions() *domain.FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters == nil {
		return nil
	}
	f := *s.filters
	return &f
}

func (s *Store) DashboardStats() *domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	st := *s.stats
	return &st
}

func (s *Store) BlogPosts() []domain.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.BlogPost(nil), s.blog...)
}

func (s *Store) HeroBanners() []domain.HeroBanner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.HeroBanner(nil), s.banners...)
}

func (s *Store) Status(kind Kind) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status[kind]
}

func load[T any](s *Store, ctx context.Context, kind Kind, fetch func(context.Context) (T, error), install func(T)) error {
	s.mu.Lock()
	s.status[kind] = Status{Loading: true}
	s.mu.Unlock()

	v, err := fetch(ctx)

	s.mu.Lock()
	if err == nil {
		install(v)
	}
	s.status[kind] = Status{Err: err}
	s.mu.Unlock()
	return err
}
