package reviews

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/validate"
)

// Board keeps user-submitted reviews, newest first.
type Board struct {
	custom []model.Review
	now    func() time.Time
}

func New(now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{now: now}
}

func (b *Board) Load(custom []model.Review) {
	b.custom = slices.Clone(custom)
}

// Add validates r, assigns id and date, and prepends it.
func (b *Board) Add(r model.Review) (model.Review, error) {
	if err := validate.Review(r); err != nil {
		return model.Review{}, err
	}
	r.ID = uuid.NewString()
	r.Date = b.now().UTC().Format(time.DateOnly)
	b.custom = slices.Insert(b.custom, 0, r)
	return r, nil
}

// ForProduct returns user reviews for the product followed by the seeded ones.
func (b *Board) ForProduct(p model.Product) []model.Review {
	var out []model.Review
	for _, r := range b.custom {
		if r.ProductID == p.ID {
			out = append(out, r)
		}
	}
	return append(out, p.ReviewsList...)
}

func (b *Board) Custom() []model.Review {
	return slices.Clone(b.custom)
}
