package storefront

import (
	"context"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/recommend"
	"github.com/arogyasagar/storefront/internal/storage"
)

func (s *Storefront) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Products()
}

func (s *Storefront) Product(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Product(id)
}

func (s *Storefront) SearchProducts(query, category string, max int) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.SearchProducts(query, category, max)
}

func (s *Storefront) AddProduct(ctx context.Context, p model.Product) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.AddProduct(p); err != nil {
		return model.Product{}, err
	}
	return p, s.save(ctx, storage.KeyProducts, s.catalog.Products())
}

func (s *Storefront) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.catalog.UpdateProduct(id, patch)
	if err != nil {
		return model.Product{}, err
	}
	return p, s.save(ctx, storage.KeyProducts, s.catalog.Products())
}

// DeleteProduct removes the product from the catalog only. Carts, wishlists
// and orders keep their own copies.
func (s *Storefront) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.DeleteProduct(id); err != nil {
		return err
	}
	return s.save(ctx, storage.KeyProducts, s.catalog.Products())
}

func (s *Storefront) Doctors() []model.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Doctors()
}

func (s *Storefront) Doctor(id string) (model.Doctor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Doctor(id)
}

func (s *Storefront) AddDoctor(ctx context.Context, d model.Doctor) (model.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.AddDoctor(d); err != nil {
		return model.Doctor{}, err
	}
	return d, s.save(ctx, storage.KeyDoctors, s.catalog.Doctors())
}

func (s *Storefront) UpdateDoctor(ctx context.Context, id string, patch model.DoctorPatch) (model.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.catalog.UpdateDoctor(id, patch)
	if err != nil {
		return model.Doctor{}, err
	}
	return d, s.save(ctx, storage.KeyDoctors, s.catalog.Doctors())
}

func (s *Storefront) DeleteDoctor(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.DeleteDoctor(id); err != nil {
		return err
	}
	return s.save(ctx, storage.KeyDoctors, s.catalog.Doctors())
}

func (s *Storefront) Therapies() []model.Therapy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Therapies()
}

// TrackView records a product page view.
func (s *Storefront) TrackView(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.catalog.Product(productID)
	if !ok {
		return errx.NotFound("product", productID)
	}
	return s.trackViewLocked(ctx, p)
}

func (s *Storefront) ViewHistory() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views.Counts()
}

func (s *Storefront) Recommendations() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return recommend.Select(s.catalog.Products(), s.views)
}
