package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/catalog/domain"
)

type fakeCatalogAPI struct {
	categoriesErr error
	calls         atomic.Int32
}

func (f *fakeCatalogAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	f.calls.Add(1)
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return []domain.Category{{ID: "c1", Name: "Cotton", Slug: "cotton"}}, nil
}

func (f *fakeCatalogAPI) Products(ctx context.Context, query ProductQuery) ([]domain.Product, error) {
	f.calls.Add(1)
	return nil, nil
}

func (f *fakeCatalogAPI) Product(ctx context.Context, slug string) (domain.Product, error) {
	f.calls.Add(1)
	return domain.Product{Slug: slug}, nil
}

func (f *fakeCatalogAPI) Featured(ctx context.Context) ([]domain.Product, error) {
	f.calls.Add(1)
	return []domain.Product{{ID: "p1", Name: "Cotton Drill", IsFeatured: true}}, nil
}

func (f *fakeCatalogAPI) Latest(ctx context.Context) ([]domain.Product, error) {
	f.calls.Add(1)
	return []domain.Product{{ID: "p2", Name: "Linen Blend"}}, nil
}

func (f *fakeCatalogAPI) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	f.calls.Add(1)
	return domain.FilterOptions{Materials: []string{"cotton", "linen"}}, nil
}

func (f *fakeCatalogAPI) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	f.calls.Add(1)
	return domain.DashboardStats{TotalProducts: 42}, nil
}

func (f *fakeCatalogAPI) BlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	f.calls.Add(1)
	return []domain.BlogPost{{ID: "b1", Title: "Fabric care"}}, nil
}

func (f *fakeCatalogAPI) HeroBanners(ctx context.Context) ([]domain.HeroBanner, error) {
	f.calls.Add(1)
	return []domain.HeroBanner{{ID: "h1", Active: true}}, nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRefreshAll(t *testing.T) {
	t.Run("populates every collection", func(t *testing.T) {
		api := &fakeCatalogAPI{}
		s := NewStore(api, discard())
		if err := s.RefreshAll(context.Background()); err != nil {
			t.Fatalf("RefreshAll failed: %v", err)
		}

		if len(s.Categories()) != 1 || len(s.Featured()) != 1 || len(s.Latest()) != 1 {
			t.Fatal("product collections not populated")
		}
		if s.FilterOptions() == nil || s.DashboardStats() == nil {
			t.Fatal("metadata not populated")
		}
		if len(s.BlogPosts()) != 1 || len(s.HeroBanners()) != 1 {
			t.Fatal("content collections not populated")
		}
	})

	t.Run("one failing feed does not block the rest", func(t *testing.T) {
		api := &fakeCatalogAPI{categoriesErr: errors.New("boom")}
		s := NewStore(api, discard())
		if err := s.RefreshAll(context.Background()); err == nil {
			t.Fatal("expected aggregated error")
		}

		if st := s.Status(KindCategories); st.Err == nil {
			t.Fatal("categories status missing its error")
		}
		if st := s.Status(KindFeatured); st.Err != nil {
			t.Fatalf("featured status polluted: %v", st.Err)
		}
		if len(s.Featured()) != 1 {
			t.Fatal("featured not loaded despite categories failure")
		}
		if len(s.Categories()) != 0 {
			t.Fatal("failed load installed data")
		}
	})
}

func TestLoadIsolation(t *testing.T) {
	t.Run("reload replaces cached collection", func(t *testing.T) {
		api := &fakeCatalogAPI{}
		s := NewStore(api, discard())
		if err := s.LoadCategories(context.Background()); err != nil {
			t.Fatalf("LoadCategories failed: %v", err)
		}
		before := api.calls.Load()
		if err := s.LoadCategories(context.Background()); err != nil {
			t.Fatalf("second LoadCategories failed: %v", err)
		}
		if api.calls.Load() != before+1 {
			t.Fatal("reload did not hit the backend")
		}
		if len(s.Categories()) != 1 {
			t.Fatalf("categories = %+v", s.Categories())
		}
	})
}
