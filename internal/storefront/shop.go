package storefront

import (
	"context"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/storage"
	"github.com/arogyasagar/storefront/internal/validate"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

// CartView is the cart as shown to the shopper; Total is recomputed on every read.
type CartView struct {
	Lines []model.CartLine `json:"lines"`
	Total int              `json:"total"`
}

// AddToCart adds one unit of the product and counts it as a view.
func (s *Storefront) AddToCart(ctx context.Context, productID string) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.session.Require("add items to cart"); err != nil {
		return CartView{}, err
	}
	p, ok := s.catalog.Product(productID)
	if !ok {
		return CartView{}, errx.NotFound("product", productID)
	}
	qty := s.cart.Add(p)
	logx.Debug().Str("product_id", p.ID).Int("quantity", qty).Msg("added to cart")

	if err := s.trackViewLocked(ctx, p); err != nil {
		return s.cartViewLocked(), err
	}
	return s.cartViewLocked(), nil
}

// RemoveFromCart drops the whole line regardless of quantity.
func (s *Storefront) RemoveFromCart(productID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	return s.cartViewLocked()
}

func (s *Storefront) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *Storefront) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartViewLocked()
}

func (s *Storefront) cartViewLocked() CartView {
	return CartView{Lines: s.cart.Lines(), Total: s.cart.Total()}
}

// Checkout is what the shopper submits to place an order.
type Checkout struct {
	Address model.Address `json:"address"`
	Payment model.Payment `json:"payment"`
}

// PlaceOrder snapshots the cart into a new Processing order and empties the
// cart. The order never changes when the cart is refilled later.
func (s *Storefront) PlaceOrder(ctx context.Context, c Checkout) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.session.Require("place an order")
	if err != nil {
		return model.Order{}, err
	}
	if err := validate.Address(c.Address); err != nil {
		return model.Order{}, err
	}
	if err := validate.Payment(c.Payment); err != nil {
		return model.Order{}, err
	}

	order, err := s.orders.Place(user.Email, s.cart.Lines(), c.Address, string(c.Payment.Method))
	if err != nil {
		return model.Order{}, err
	}
	s.cart.Clear()
	logx.Info().Str("order_id", order.ID).Int("items", len(order.Items)).Int("total", order.Total).Msg("order placed")

	return order, s.save(ctx, storage.KeyOrders, s.orders.All())
}

func (s *Storefront) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, err := s.orders.UpdateStatus(id, status)
	if err != nil {
		return model.Order{}, err
	}
	logx.Info().Str("order_id", id).Str("status", string(status)).Msg("order status changed")
	return order, s.save(ctx, storage.KeyOrders, s.orders.All())
}

// Orders returns every order, newest first.
func (s *Storefront) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.All()
}

// MyOrders returns the signed-in user's orders.
func (s *Storefront) MyOrders() ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.session.Require("view your orders")
	if err != nil {
		return nil, err
	}
	return s.orders.ForUser(user.Email), nil
}

func (s *Storefront) Order(id string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders.Get(id)
	if !ok {
		return model.Order{}, errx.NotFound("order", id)
	}
	return o, nil
}

// ToggleWishlist saves or unsaves the product and reports whether it is now
// saved. Both directions count as a view.
func (s *Storefront) ToggleWishlist(ctx context.Context, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.Product(productID)
	if !ok {
		return false, errx.NotFound("product", productID)
	}
	saved := s.wishlist.Toggle(p)
	if err := s.save(ctx, storage.KeyWishlist, s.wishlist.Items()); err != nil {
		return saved, err
	}
	return saved, s.trackViewLocked(ctx, p)
}

func (s *Storefront) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

func (s *Storefront) Wishlist() []model.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Items()
}
