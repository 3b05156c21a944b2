// Package storefront composes the catalog, cart, orders, wishlist, session,
// clinic and assistant stores behind one lock and writes every mutation
// through to the key-value store.
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/arogyasagar/storefront/internal/appointments"
	"github.com/arogyasagar/storefront/internal/cart"
	"github.com/arogyasagar/storefront/internal/catalog"
	"github.com/arogyasagar/storefront/internal/chat"
	"github.com/arogyasagar/storefront/internal/history"
	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/orders"
	"github.com/arogyasagar/storefront/internal/reviews"
	"github.com/arogyasagar/storefront/internal/seed"
	"github.com/arogyasagar/storefront/internal/session"
	"github.com/arogyasagar/storefront/internal/storage"
	"github.com/arogyasagar/storefront/internal/wishlist"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

type Options struct {
	Store       storage.Store
	AdminEmail  string
	CatalogSeed uint64
	// Responder answers chat messages; nil selects chat.OfflineResponder.
	Responder chat.Responder
	Now       func() time.Time
}

// Storefront is safe for concurrent use. Chat round-trips run outside the
// lock so a slow model never blocks shopping.
type Storefront struct {
	mu    sync.Mutex
	store storage.Store
	now   func() time.Time

	catalog  *catalog.Catalog
	views    *history.ViewHistory
	cart     *cart.Cart
	orders   *orders.Book
	wishlist *wishlist.Wishlist
	session  *session.Session
	schedule *appointments.Schedule
	reviews  *reviews.Board
	chat     *chat.Manager
}

// New loads every store from opts.Store, seeding the catalog when nothing
// has been persisted yet.
func New(ctx context.Context, opts Options) (*Storefront, error) {
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Responder == nil {
		opts.Responder = chat.OfflineResponder{}
	}

	s := &Storefront{
		store:    opts.Store,
		now:      opts.Now,
		views:    history.New(),
		cart:     cart.New(),
		orders:   orders.New(opts.Now),
		wishlist: wishlist.New(opts.Now),
		session:  session.New(opts.AdminEmail),
		schedule: appointments.New(),
		reviews:  reviews.New(opts.Now),
		chat:     chat.NewManager(opts.Store, opts.Responder, opts.Now),
	}
	if err := s.load(ctx, opts.CatalogSeed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storefront) load(ctx context.Context, catalogSeed uint64) error {
	var (
		products  []model.Product
		doctors   []model.Doctor
		therapies []model.Therapy
	)
	seeded := map[string]any{}
	found, err := storage.LoadJSON(ctx, s.store, storage.KeyProducts, &products)
	if err != nil {
		return err
	}
	if !found {
		products = seed.Products(catalogSeed)
		seeded[storage.KeyProducts] = products
	}
	if found, err = storage.LoadJSON(ctx, s.store, storage.KeyDoctors, &doctors); err != nil {
		return err
	}
	if !found {
		doctors = seed.Doctors()
		seeded[storage.KeyDoctors] = doctors
	}
	if found, err = storage.LoadJSON(ctx, s.store, storage.KeyTherapies, &therapies); err != nil {
		return err
	}
	if !found {
		therapies = seed.Therapies()
		seeded[storage.KeyTherapies] = therapies
	}
	s.catalog = catalog.New(products, doctors, therapies)

	for key, v := range seeded {
		if err := storage.SaveJSON(ctx, s.store, key, v); err != nil {
			return err
		}
	}

	var placed []model.Order
	if _, err := storage.LoadJSON(ctx, s.store, storage.KeyOrders, &placed); err != nil {
		return err
	}
	s.orders.Load(placed)

	var saved []model.WishlistItem
	if _, err := storage.LoadJSON(ctx, s.store, storage.KeyWishlist, &saved); err != nil {
		return err
	}
	s.wishlist.Load(saved)

	if _, err := storage.LoadJSON(ctx, s.store, storage.KeyViewHistory, s.views); err != nil {
		return err
	}

	var booked []model.Appointment
	if _, err := storage.LoadJSON(ctx, s.store, storage.KeyAppointments, &booked); err != nil {
		return err
	}
	s.schedule.Load(booked)

	var custom []model.Review
	if _, err := storage.LoadJSON(ctx, s.store, storage.KeyCustomReviews, &custom); err != nil {
		return err
	}
	s.reviews.Load(custom)

	var user model.User
	ok, err := storage.LoadJSON(ctx, s.store, storage.KeyUser, &user)
	if err != nil {
		return err
	}
	if ok && user.Email != "" {
		s.session.Restore(user)
	}

	if err := s.chat.SwitchIdentity(ctx, s.session.Identity(), user.Name); err != nil {
		logx.Warn().Err(err).Msg("could not load chat transcript; starting fresh")
	}

	logx.Info().
		Int("products", len(products)).
		Int("doctors", len(doctors)).
		Int("orders", s.orders.Len()).
		Bool("signed_in", ok).
		Msg("storefront loaded")
	return nil
}

// save writes v under key. In-memory state is not rolled back on failure;
// the next successful write of the same key carries the change.
func (s *Storefront) save(ctx context.Context, key string, v any) error {
	if err := storage.SaveJSON(ctx, s.store, key, v); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("write-through failed")
		return err
	}
	return nil
}

// trackViewLocked records interest in p's category and persists the history.
func (s *Storefront) trackViewLocked(ctx context.Context, p model.Product) error {
	s.views.Track(p.Category)
	return s.save(ctx, storage.KeyViewHistory, s.views)
}
