package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
)

func TestAddAndList(t *testing.T) {
	b := New(func() time.Time { return time.Date(2026, 10, 15, 23, 0, 0, 0, time.UTC) })
	p := model.Product{ID: "1", ReviewsList: []model.Review{{ID: "seed", ProductID: "1", UserName: "Old", Rating: 4}}}

	first, err := b.Add(model.Review{ProductID: "1", UserName: "Asha", Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "2026-10-15", first.Date)

	second, err := b.Add(model.Review{ProductID: "1", UserName: "Ravi", Rating: 3})
	require.NoError(t, err)
	_, err = b.Add(model.Review{ProductID: "2", UserName: "Ravi", Rating: 3})
	require.NoError(t, err)

	list := b.ForProduct(p)
	require.Len(t, list, 3)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "seed", list[2].ID)
	assert.Len(t, b.Custom(), 3)
}

func TestAddInvalid(t *testing.T) {
	b := New(nil)
	_, err := b.Add(model.Review{ProductID: "1", UserName: "Asha", Rating: 6})
	assert.ErrorIs(t, err, errx.ErrValidation)
	assert.Empty(t, b.Custom())
}
