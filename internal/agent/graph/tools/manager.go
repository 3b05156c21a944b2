package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/arogyasagar/storefront/internal/agent/model"
)

const (
	ToolSearchProduct     = "search_product"
	ToolGetProductDetails = "get_product_details"
	ToolListDoctors       = "list_doctors"

	DefaultMaxResults = 5
	MaxResultsLimit   = 20
)

// GetQueryTools returns every tool the assistant may call, bound to catalog.
func GetQueryTools(catalog model.Catalog) []tool.BaseTool {
	return []tool.BaseTool{
		createSearchProductTool(catalog),
		createGetProductDetailsTool(catalog),
		createListDoctorsTool(catalog),
	}
}

func GetToolInfos(ctx context.Context, tools []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
