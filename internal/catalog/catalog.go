// Package catalog holds the products, doctors and therapies the store offers.
// Deleting an entry never cascades: carts, wishlists and orders keep their
// own snapshots.
package catalog

import (
	"slices"
	"strings"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/validate"
)

type collection[T any] struct {
	items []T
	id    func(T) string
}

func (c *collection[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(it T) bool { return c.id(it) == id })
}

func (c *collection[T]) get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) add(resource string, it T) error {
	if c.index(c.id(it)) >= 0 {
		return errx.Conflict(resource, c.id(it))
	}
	c.items = append(c.items, it)
	return nil
}

func (c *collection[T]) remove(resource, id string) error {
	i := c.index(id)
	if i < 0 {
		return errx.NotFound(resource, id)
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

type Catalog struct {
	products  collection[model.Product]
	doctors   collection[model.Doctor]
	therapies []model.Therapy
}

func New(products []model.Product, doctors []model.Doctor, therapies []model.Therapy) *Catalog {
	c := &Catalog{
		products:  collection[model.Product]{id: func(p model.Product) string { return p.ID }},
		doctors:   collection[model.Doctor]{id: func(d model.Doctor) string { return d.ID }},
		therapies: slices.Clone(therapies),
	}
	for _, p := range products {
		c.products.items = append(c.products.items, p.Clone())
	}
	c.doctors.items = slices.Clone(doctors)
	return c
}

// Products returns the catalog in insertion order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, 0, len(c.products.items))
	for _, p := range c.products.items {
		out = append(out, p.Clone())
	}
	return out
}

func (c *Catalog) Product(id string) (model.Product, bool) {
	p, ok := c.products.get(id)
	if !ok {
		return model.Product{}, false
	}
	return p.Clone(), true
}

// AddProduct appends p. Ids must be unique.
func (c *Catalog) AddProduct(p model.Product) error {
	if err := validate.Product(p); err != nil {
		return err
	}
	return c.products.add("product", p.Clone())
}

// UpdateProduct merges patch into the product with the given id.
func (c *Catalog) UpdateProduct(id string, patch model.ProductPatch) (model.Product, error) {
	i := c.products.index(id)
	if i < 0 {
		return model.Product{}, errx.NotFound("product", id)
	}
	updated := c.products.items[i].Clone()
	patch.Apply(&updated)
	if err := validate.Product(updated); err != nil {
		return model.Product{}, err
	}
	c.products.items[i] = updated
	return updated.Clone(), nil
}

func (c *Catalog) DeleteProduct(id string) error {
	return c.products.remove("product", id)
}

// SearchProducts matches query against name, category and description,
// optionally restricted to one category. max <= 0 means no limit.
func (c *Catalog) SearchProducts(query, category string, max int) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []model.Product
	for _, p := range c.products.items {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!containsFold(p.Ingredients, q) &&
			!containsFold(p.Benefits, q) {
			continue
		}
		out = append(out, p.Clone())
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

func containsFold(values []string, q string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func (c *Catalog) Doctors() []model.Doctor {
	return slices.Clone(c.doctors.items)
}

func (c *Catalog) Doctor(id string) (model.Doctor, bool) {
	return c.doctors.get(id)
}

func (c *Catalog) AddDoctor(d model.Doctor) error {
	if err := validate.Doctor(d); err != nil {
		return err
	}
	return c.doctors.add("doctor", d)
}

func (c *Catalog) UpdateDoctor(id string, patch model.DoctorPatch) (model.Doctor, error) {
	i := c.doctors.index(id)
	if i < 0 {
		return model.Doctor{}, errx.NotFound("doctor", id)
	}
	updated := c.doctors.items[i]
	patch.Apply(&updated)
	if err := validate.Doctor(updated); err != nil {
		return model.Doctor{}, err
	}
	c.doctors.items[i] = updated
	return updated, nil
}

func (c *Catalog) DeleteDoctor(id string) error {
	return c.doctors.remove("doctor", id)
}

func (c *Catalog) Therapies() []model.Therapy {
	return slices.Clone(c.therapies)
}
