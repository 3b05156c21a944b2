package model

import (
	"strings"

	"github.com/cloudwego/eino/schema"
)

// Pricing is the USD cost per million tokens.
type Pricing struct {
	InputPerM  float64
	OutputPerM float64
}

var geminiPricing = map[string]Pricing{
	"gemini-2.5-flash":      {InputPerM: 0.30, OutputPerM: 2.50},
	"gemini-2.5-flash-lite": {InputPerM: 0.10, OutputPerM: 0.40},
	"gemini-2.5-pro":        {InputPerM: 1.25, OutputPerM: 10.00},
}

// ResolvePricing looks up the assistant model's price. Versioned names such
// as "gemini-2.5-flash-001" use the longest known family prefix; unknown
// models cost nothing.
func ResolvePricing(modelName string) Pricing {
	if p, ok := geminiPricing[modelName]; ok {
		return p
	}
	var best string
	for family := range geminiPricing {
		if strings.HasPrefix(modelName, family+"-") && len(family) > len(best) {
			best = family
		}
	}
	return geminiPricing[best]
}

// ComputeCost prices one model call's token usage.
func ComputeCost(usage *schema.TokenUsage, p Pricing) (inputCost, outputCost, total float64) {
	if usage == nil {
		return 0, 0, 0
	}
	inputCost = p.InputPerM * float64(usage.PromptTokens) / 1e6
	outputCost = p.OutputPerM * float64(usage.CompletionTokens) / 1e6
	return inputCost, outputCost, inputCost + outputCost
}
