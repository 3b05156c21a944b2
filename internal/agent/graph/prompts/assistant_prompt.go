package prompts

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/arogyasagar/storefront/internal/agent/graph/tools"
	"github.com/arogyasagar/storefront/internal/agent/model"
	domain "github.com/arogyasagar/storefront/internal/model"
)

//go:embed template/assistant_prompt.txt
var coreSystemPrompt string

// RenderAssistantSystem renders the assistant system prompt and triggers prompt callbacks.
func RenderAssistantSystem(ctx context.Context, config model.AssistantPromptConfig, doctors []domain.Doctor) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(coreSystemPrompt),
	)
	vars := map[string]any{
		"AssistantName": config.AssistantName,
		"BusinessName":  config.BusinessName,
		"Categories":    strings.Join(domain.Categories, ", "),
		"Doctors":       doctors,
		"SearchTool":    tools.ToolSearchProduct,
		"DetailsTool":   tools.ToolGetProductDetails,
		"DoctorsTool":   tools.ToolListDoctors,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("assistant prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("assistant prompt render: empty result")
	}
	return msgs[0].Content, nil
}
