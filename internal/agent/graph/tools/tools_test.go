package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/eino/components/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogyasagar/storefront/internal/catalog"
	domain "github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/seed"
)

func newCatalog() *catalog.Catalog {
	return catalog.New(seed.Products(42), seed.Doctors(), seed.Therapies())
}

func invoke(t *testing.T, name string, args any, out any) error {
	t.Helper()
	ctx := context.Background()
	for _, bt := range GetQueryTools(newCatalog()) {
		info, err := bt.Info(ctx)
		require.NoError(t, err)
		if info.Name != name {
			continue
		}
		it, ok := bt.(tool.InvokableTool)
		require.True(t, ok)
		raw, err := json.Marshal(args)
		require.NoError(t, err)
		res, err := it.InvokableRun(ctx, string(raw))
		if err != nil {
			return err
		}
		require.NoError(t, json.Unmarshal([]byte(res), out))
		return nil
	}
	t.Fatalf("tool %s not registered", name)
	return nil
}

func TestToolInfos(t *testing.T) {
	infos, err := GetToolInfos(context.Background(), GetQueryTools(newCatalog()))
	require.NoError(t, err)

	var names []string
	for _, info := range infos {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{ToolSearchProduct, ToolGetProductDetails, ToolListDoctors}, names)
}

func TestSearchProduct(t *testing.T) {
	var out SearchProductOutput
	require.NoError(t, invoke(t, ToolSearchProduct, SearchProductInput{Query: "honey"}, &out))

	assert.Equal(t, DefaultMaxResults, out.Total)
	require.Len(t, out.Products, DefaultMaxResults)
	for _, p := range out.Products {
		assert.Equal(t, domain.CategoryOrganicHoney, p.Category)
	}
}

func TestSearchProductCategoryAndLimit(t *testing.T) {
	var out SearchProductOutput
	require.NoError(t, invoke(t, ToolSearchProduct, SearchProductInput{Category: domain.CategoryHerbalTeas, MaxResults: 100}, &out))

	assert.Equal(t, MaxResultsLimit, out.Total)
	for _, p := range out.Products {
		assert.Equal(t, domain.CategoryHerbalTeas, p.Category)
	}
}

func TestSearchProductNoMatches(t *testing.T) {
	var out SearchProductOutput
	require.NoError(t, invoke(t, ToolSearchProduct, SearchProductInput{Query: "smartphone"}, &out))
	assert.Zero(t, out.Total)
	assert.Empty(t, out.Products)
}

func TestSearchProductRequiresInput(t *testing.T) {
	var out SearchProductOutput
	assert.Error(t, invoke(t, ToolSearchProduct, SearchProductInput{Query: "  "}, &out))
}

func TestGetProductDetails(t *testing.T) {
	var out GetProductDetailsOutput
	require.NoError(t, invoke(t, ToolGetProductDetails, GetProductDetailsInput{ProductID: "1"}, &out))

	assert.True(t, out.Found)
	assert.Equal(t, "1", out.ID)
	assert.Equal(t, "/product/1", out.Link)
	assert.NotEmpty(t, out.Ingredients)
	assert.Equal(t, domain.CategoryImmunityEnergy, out.Category)
}

func TestGetProductDetailsMissing(t *testing.T) {
	var out GetProductDetailsOutput
	require.NoError(t, invoke(t, ToolGetProductDetails, GetProductDetailsInput{ProductID: "9999"}, &out))
	assert.False(t, out.Found)
	assert.Equal(t, "9999", out.ID)

	assert.Error(t, invoke(t, ToolGetProductDetails, GetProductDetailsInput{}, &out))
}

func TestListDoctors(t *testing.T) {
	var all ListDoctorsOutput
	require.NoError(t, invoke(t, ToolListDoctors, ListDoctorsInput{}, &all))
	assert.Equal(t, 6, all.Total)

	var available ListDoctorsOutput
	require.NoError(t, invoke(t, ToolListDoctors, ListDoctorsInput{AvailableOnly: true}, &available))
	assert.Equal(t, 5, available.Total)
	for _, d := range available.Doctors {
		assert.True(t, d.Available)
	}

	var skin ListDoctorsOutput
	require.NoError(t, invoke(t, ToolListDoctors, ListDoctorsInput{Specialty: "SKIN"}, &skin))
	require.Equal(t, 1, skin.Total)
	assert.Equal(t, "d2", skin.Doctors[0].ID)
}
