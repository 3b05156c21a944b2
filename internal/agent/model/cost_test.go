package model

import (
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"

	domain "github.com/arogyasagar/storefront/internal/model"
)

func TestComputeCost(t *testing.T) {
	p := ResolvePricing("gemini-2.5-flash")
	in, out, total := ComputeCost(&schema.TokenUsage{PromptTokens: 1_000_000, CompletionTokens: 200_000}, p)

	assert.InDelta(t, 0.30, in, 1e-9)
	assert.InDelta(t, 0.50, out, 1e-9)
	assert.InDelta(t, 0.80, total, 1e-9)
}

func TestComputeCostUnknownModel(t *testing.T) {
	_, _, total := ComputeCost(&schema.TokenUsage{PromptTokens: 500}, ResolvePricing("unknown"))
	assert.Zero(t, total)

	_, _, total = ComputeCost(nil, ResolvePricing("gemini-2.5-pro"))
	assert.Zero(t, total)
}

func TestResolvePricingVersionedNames(t *testing.T) {
	assert.Equal(t, Pricing{InputPerM: 0.30, OutputPerM: 2.50}, ResolvePricing("gemini-2.5-flash-001"))
	assert.Equal(t, Pricing{InputPerM: 0.10, OutputPerM: 0.40}, ResolvePricing("gemini-2.5-flash-lite-preview"))
	assert.Equal(t, Pricing{}, ResolvePricing("gemini-2.5-flashy"))
}

func TestSummarize(t *testing.T) {
	s := Summarize(domain.Product{ID: "7", Name: "Tulsi Honey", Category: "Organic Honey", Price: 420, Rating: 4.6, InStock: true, Benefits: []string{"Soothing"}})
	assert.Equal(t, ProductSummary{ID: "7", Name: "Tulsi Honey", Category: "Organic Honey", Price: 420, Rating: 4.6, InStock: true}, s)
}
