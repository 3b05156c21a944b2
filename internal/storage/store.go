package storage

import (
	"context"
	"encoding/json"
	"fmt"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

// Logical keys under which the storefront persists its entities.
const (
	KeyProducts      = "products"
	KeyDoctors       = "doctors"
	KeyTherapies     = "therapies"
	KeyOrders        = "orders"
	KeyAppointments  = "appointments"
	KeyWishlist      = "wishlist"
	KeyCustomReviews = "customReviews"
	KeyViewHistory   = "viewHistory"
	KeyUser          = "user"
)

// ChatKey is the per-identity chat log key; an empty identity is the guest.
func ChatKey(identity string) string {
	if identity == "" {
		identity = "guest"
	}
	return "chat_" + identity
}

// Store is a string key-value store. Get reports whether the key exists.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes the value under key into dst. It returns false without
// touching dst when the key is absent.
func LoadJSON(ctx context.Context, s Store, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to decode stored value")
		return false, errx.Storage(fmt.Errorf("decode %s: %w", key, err))
	}
	return true, nil
}

// SaveJSON encodes v and writes it under key.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to encode value")
		return errx.Storage(fmt.Errorf("encode %s: %w", key, err))
	}
	return s.Set(ctx, key, string(b))
}
