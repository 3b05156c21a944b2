package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/arogyasagar/storefront/internal/agent/model"
)

type GetProductDetailsInput struct {
	ProductID string `json:"product_id"`
}

type GetProductDetailsOutput struct {
	Found       bool     `json:"found"`
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       int      `json:"price,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Reviews     int      `json:"reviews,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	InStock     bool     `json:"in_stock"`
	Link        string   `json:"link,omitempty"`
}

func createGetProductDetailsTool(catalog model.Catalog) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetProductDetails,
			Desc: "Get full details of one product: description, benefits, ingredients, price, rating and stock. Use it before recommending a product so the answer is accurate.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     "string",
					Desc:     "Exact product id from search_product results (e.g. 1, 42).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*GetProductDetailsOutput, error) {
			if in.ProductID == "" {
				return nil, fmt.Errorf("product_id is required")
			}
			p, ok := catalog.Product(in.ProductID)
			if !ok {
				// Let the model recover instead of failing the whole turn.
				return &GetProductDetailsOutput{Found: false, ID: in.ProductID}, nil
			}
			return &GetProductDetailsOutput{
				Found:       true,
				ID:          p.ID,
				Name:        p.Name,
				Category:    p.Category,
				Description: p.Description,
				Price:       p.Price,
				Rating:      p.Rating,
				Reviews:     p.Reviews,
				Benefits:    p.Benefits,
				Ingredients: p.Ingredients,
				InStock:     p.InStock,
				Link:        "/product/" + p.ID,
			}, nil
		},
	)
}
