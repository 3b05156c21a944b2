package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/arogyasagar/storefront/internal/agent/model"
	domain "github.com/arogyasagar/storefront/internal/model"
)

type SearchProductInput struct {
	Query      string `json:"query"`
	Category   string `json:"category,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

type SearchProductOutput struct {
	Products []model.ProductSummary `json:"products"`
	Total    int                    `json:"total"`
}

func createSearchProductTool(catalog model.Catalog) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSearchProduct,
			Desc: "Search the ArogyaSagar catalog of Ayurvedic products. Matches names, categories, descriptions, ingredients and benefits. Returns id, name, category, price in INR, rating and availability. Use it whenever the user describes a health concern or asks for a product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Keywords such as an herb, ingredient or concern. Examples: ashwagandha, sleep, joint pain, honey.",
					Required: true,
				},
				"category": {
					Type: "string",
					Desc: "Optional exact category filter. One of: " + strings.Join(domain.Categories, ", "),
				},
				"max_results": {
					Type: "number",
					Desc: fmt.Sprintf("Maximum number of products to return (default: %d, max: %d)", DefaultMaxResults, MaxResultsLimit),
				},
			}),
		},
		func(ctx context.Context, in *SearchProductInput) (*SearchProductOutput, error) {
			if strings.TrimSpace(in.Query) == "" && in.Category == "" {
				return nil, fmt.Errorf("query is required")
			}
			limit := in.MaxResults
			if limit <= 0 {
				limit = DefaultMaxResults
			}
			limit = min(limit, MaxResultsLimit)

			found := catalog.SearchProducts(in.Query, in.Category, limit)
			out := &SearchProductOutput{Products: make([]model.ProductSummary, 0, len(found))}
			for _, p := range found {
				out.Products = append(out.Products, model.Summarize(p))
			}
			out.Total = len(out.Products)
			return out, nil
		},
	)
}
