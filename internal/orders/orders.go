// Package orders keeps placed orders and drives their status state machine.
package orders

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/cart"
	"github.com/arogyasagar/storefront/internal/model"
)

const idPrefix = "ORD-"

// Book holds orders newest first. Orders are never deleted.
type Book struct {
	orders []model.Order
	now    func() time.Time
	lastID int64
}

func New(now func() time.Time) *Book {
	if now == nil {
		now = time.Now
	}
	return &Book{now: now}
}

// Load replaces the contents with previously persisted orders.
func (b *Book) Load(orders []model.Order) {
	b.orders = slices.Clone(orders)
	for _, o := range orders {
		if n, err := strconv.ParseInt(strings.TrimPrefix(o.ID, idPrefix), 10, 64); err == nil && n > b.lastID {
			b.lastID = n
		}
	}
}

// nextID is time based and strictly increasing within the book.
func (b *Book) nextID(at time.Time) string {
	ms := at.UnixMilli()
	if ms <= b.lastID {
		ms = b.lastID + 1
	}
	b.lastID = ms
	return fmt.Sprintf("%s%d", idPrefix, ms)
}

// Place snapshots lines into a new Processing order.
func (b *Book) Place(userID string, lines []model.CartLine, addr model.Address, paymentMethod string) (model.Order, error) {
	if len(lines) == 0 {
		return model.Order{}, errx.Validation("items", "Your cart is empty")
	}
	at := b.now()
	items := make([]model.CartLine, len(lines))
	for i, l := range lines {
		items[i] = model.CartLine{Product: l.Product.Clone(), Quantity: l.Quantity}
	}
	o := model.Order{
		ID:              b.nextID(at),
		UserID:          userID,
		Items:           items,
		Total:           cart.Total(items),
		Date:            at.UTC(),
		Status:          model.OrderProcessing,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
	}
	b.orders = slices.Insert(b.orders, 0, o)
	return cloneOrder(o), nil
}

// UpdateStatus moves an order along the state machine. Unknown ids and
// disallowed edges leave the book untouched.
func (b *Book) UpdateStatus(id string, status model.OrderStatus) (model.Order, error) {
	if !status.Valid() {
		return model.Order{}, errx.Validation("status", fmt.Sprintf("Unknown order status %q", status))
	}
	i := slices.IndexFunc(b.orders, func(o model.Order) bool { return o.ID == id })
	if i < 0 {
		return model.Order{}, errx.NotFound("order", id)
	}
	current := b.orders[i].Status
	if !current.CanTransitionTo(status) {
		return model.Order{}, errx.InvalidTransition("order", string(current), string(status))
	}
	b.orders[i].Status = status
	return cloneOrder(b.orders[i]), nil
}

func (b *Book) Get(id string) (model.Order, bool) {
	for _, o := range b.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return model.Order{}, false
}

func (b *Book) All() []model.Order {
	out := make([]model.Order, len(b.orders))
	for i, o := range b.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (b *Book) ForUser(userID string) []model.Order {
	var out []model.Order
	for _, o := range b.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

func (b *Book) Len() int {
	return len(b.orders)
}

func cloneOrder(o model.Order) model.Order {
	items := make([]model.CartLine, len(o.Items))
	for i, l := range o.Items {
		items[i] = model.CartLine{Product: l.Product.Clone(), Quantity: l.Quantity}
	}
	o.Items = items
	return o
}
