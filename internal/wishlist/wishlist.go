package wishlist

import (
	"slices"
	"time"

	"github.com/arogyasagar/storefront/internal/model"
)

// Wishlist is a set of saved products keyed by product id, in the order
// they were added.
type Wishlist struct {
	items []model.WishlistItem
	index map[string]struct{}
	now   func() time.Time
}

func New(now func() time.Time) *Wishlist {
	if now == nil {
		now = time.Now
	}
	return &Wishlist{index: make(map[string]struct{}), now: now}
}

func (w *Wishlist) Load(items []model.WishlistItem) {
	w.items = nil
	w.index = make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := w.index[it.ID]; dup {
			continue
		}
		w.items = append(w.items, it)
		w.index[it.ID] = struct{}{}
	}
}

// Toggle removes p when present, otherwise adds it. It reports whether p
// is in the wishlist afterwards.
func (w *Wishlist) Toggle(p model.Product) bool {
	if _, ok := w.index[p.ID]; ok {
		w.items = slices.DeleteFunc(w.items, func(it model.WishlistItem) bool { return it.ID == p.ID })
		delete(w.index, p.ID)
		return false
	}
	w.items = append(w.items, model.WishlistItem{Product: p.Clone(), DateAdded: w.now().UTC()})
	w.index[p.ID] = struct{}{}
	return true
}

func (w *Wishlist) Contains(productID string) bool {
	_, ok := w.index[productID]
	return ok
}

func (w *Wishlist) Items() []model.WishlistItem {
	out := make([]model.WishlistItem, len(w.items))
	for i, it := range w.items {
		out[i] = model.WishlistItem{Product: it.Product.Clone(), DateAdded: it.DateAdded}
	}
	return out
}

func (w *Wishlist) Len() int {
	return len(w.items)
}
