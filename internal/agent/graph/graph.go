package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/arogyasagar/storefront/internal/agent/graph/conversations"
	"github.com/arogyasagar/storefront/internal/agent/graph/nodes"
	"github.com/arogyasagar/storefront/internal/agent/graph/observers"
	"github.com/arogyasagar/storefront/internal/agent/graph/tools"
	"github.com/arogyasagar/storefront/internal/agent/model"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

// EmptyReply is returned when the model produced no text.
const EmptyReply = "Namaste. I am processing your request but could not generate a response."

// Config holds everything needed to compose the assistant graph end to end.
type Config struct {
	APIKey           string
	BaseURL          string
	ChatModel        model.ChatModelConfig
	Prompt           model.AssistantPromptConfig
	Conversation     model.ConversationConfig
	ConversationRepo model.ConversationRepository
	Catalog          model.Catalog
}

// GraphConfig holds the already-built collaborators of the graph.
type GraphConfig struct {
	ChatModels      *nodes.ChatModels
	MessagesManager *conversations.MessagesManager
	Catalog         model.Catalog
	PromptConfig    *model.AssistantPromptConfig
	ToolMaxCalls    int
}

type GraphBuilder struct {
	config *GraphConfig
	graph  *compose.Graph[model.QueryInput, *schema.Message]
}

// Runner executes the compiled graph. It answers chat messages and can
// forget a conversation's context after a failure.
type Runner struct {
	runnable compose.Runnable[model.QueryInput, *schema.Message]
	mm       *conversations.MessagesManager
}

func (r *Runner) Respond(ctx context.Context, conversationID, text string) (string, error) {
	out, err := r.runnable.Invoke(ctx, model.QueryInput{
		ConversationID: conversationID,
		Query:          text,
	}, compose.WithCallbacks(observers.NewAllCallbacks()))
	if err != nil {
		return "", err
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return EmptyReply, nil
	}
	if total, ok := out.Extra["usage_cost_total_usd"].(float64); ok {
		logx.Info().Str("conversation_id", conversationID).Float64("total_cost_usd", total).Msg("assistant replied")
	}
	return out.Content, nil
}

func (r *Runner) Reset(ctx context.Context, conversationID string) error {
	return r.mm.Reset(ctx, conversationID)
}

// BuildAssistantGraph creates the chat model and messages manager, builds
// the graph and returns a Runner.
func BuildAssistantGraph(ctx context.Context, cfg Config) (*Runner, error) {
	if cfg.ConversationRepo == nil {
		return nil, fmt.Errorf("conversation repo is nil")
	}

	cms, err := nodes.NewChatModels(ctx, nodes.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   &cfg.ChatModel,
	})
	if err != nil {
		return nil, err
	}

	mm := conversations.NewMessagesManager(cfg.ConversationRepo, cfg.Conversation)

	runnable, err := BuildGraph(ctx, &GraphConfig{
		ChatModels:      cms,
		MessagesManager: mm,
		Catalog:         cfg.Catalog,
		PromptConfig:    &cfg.Prompt,
		ToolMaxCalls:    cfg.Conversation.Tools.MaxCalls,
	})
	if err != nil {
		return nil, err
	}

	logx.Debug().Str("model", cms.ResponseModelName).Msg("Assistant graph built")
	return &Runner{runnable: runnable, mm: mm}, nil
}

// BuildGraph wires InputConverter -> ResponseChatModel -> (ToolExecutor -> ResponseChatModel)* -> END.
func BuildGraph(ctx context.Context, config *GraphConfig) (compose.Runnable[model.QueryInput, *schema.Message], error) {
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.ChatModels == nil || config.ChatModels.Response == nil {
		return nil, fmt.Errorf("chat models are not properly initialized")
	}
	if config.MessagesManager == nil {
		return nil, fmt.Errorf("messages manager is nil")
	}
	if config.Catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if config.PromptConfig == nil {
		return nil, fmt.Errorf("prompt config is nil")
	}

	builder := &GraphBuilder{
		config: config,
		graph: compose.NewGraph[model.QueryInput, *schema.Message](
			compose.WithGenLocalState(func(ctx context.Context) *model.AppState {
				return &model.AppState{}
			}),
		),
	}

	if err := builder.setupTools(ctx); err != nil {
		return nil, err
	}
	if err := builder.addNodes(); err != nil {
		return nil, err
	}
	if err := builder.addEdges(); err != nil {
		return nil, err
	}
	if err := builder.addBranches(); err != nil {
		return nil, err
	}
	return builder.compile(ctx)
}

func (b *GraphBuilder) setupTools(ctx context.Context) error {
	queryTools := tools.GetQueryTools(b.config.Catalog)
	toolInfos, err := tools.GetToolInfos(ctx, queryTools)
	if err != nil {
		logx.Error().Err(err).Msg("Failed to get tool infos")
		return fmt.Errorf("failed to get tool infos: %w", err)
	}

	if err := b.config.ChatModels.BindToolsToResponseModel(ctx, toolInfos); err != nil {
		return err
	}

	toolsNode, err := compose.NewToolNode(ctx, &compose.ToolsNodeConfig{
		Tools:                queryTools,
		ExecuteSequentially:  true,
		UnknownToolsHandler:  unknownTool,
		ToolArgumentsHandler: sanitizeArguments,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Failed to create tools node")
		return fmt.Errorf("failed to create tools node: %w", err)
	}

	return b.graph.AddToolsNode(nodes.NodeToolExecutor, toolsNode,
		compose.WithStatePreHandler(nodes.NewToolExecutorPreHandler(b.config.ToolMaxCalls)),
	)
}

// unknownTool answers hallucinated tool calls with a structured note the
// model can recover from.
func unknownTool(ctx context.Context, name, input string) (string, error) {
	logx.Warn().Str("tool_name", name).Str("arguments", input).Msg("Unknown tool call")
	return fmt.Sprintf("{\"error\":\"unknown_tool\",\"name\":%q,\"available\":[%q,%q,%q]}",
		name, tools.ToolSearchProduct, tools.ToolGetProductDetails, tools.ToolListDoctors), nil
}

// sanitizeArguments coerces loosely typed model arguments into the shapes
// the tools decode. It never fails; unparsable input is passed through.
func sanitizeArguments(ctx context.Context, name, arguments string) (string, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(arguments), &m); err != nil {
		return arguments, nil
	}

	switch name {
	case tools.ToolSearchProduct:
		coerceString(m, "query")
		if v, ok := m["category"].(string); ok {
			m["category"] = strings.TrimSpace(v)
		} else {
			delete(m, "category")
		}
		if v, ok := m["max_results"]; ok {
			switch vv := v.(type) {
			case float64:
				m["max_results"] = clampInt(int(vv), 1, tools.MaxResultsLimit)
			case string:
				if n, err := strconv.Atoi(strings.TrimSpace(vv)); err == nil {
					m["max_results"] = clampInt(n, 1, tools.MaxResultsLimit)
				} else {
					delete(m, "max_results")
				}
			default:
				delete(m, "max_results")
			}
		}
	case tools.ToolGetProductDetails:
		coerceString(m, "product_id")
	case tools.ToolListDoctors:
		coerceString(m, "specialty")
		if v, ok := m["available_only"].(string); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			m["available_only"] = err == nil && b
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return arguments, nil
	}
	return string(b), nil
}

func coerceString(m map[string]any, key string) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch vv := v.(type) {
	case string:
		m[key] = strings.TrimSpace(vv)
	case float64:
		m[key] = strconv.FormatFloat(vv, 'f', -1, 64)
	default:
		m[key] = strings.TrimSpace(fmt.Sprint(v))
	}
}

func (b *GraphBuilder) addNodes() error {
	if err := b.graph.AddLambdaNode(nodes.NodeInputConverter,
		nodes.NewInputConverterNode(b.config.MessagesManager, b.config.Catalog, b.config.PromptConfig),
		compose.WithStatePreHandler(nodes.NewInputConverterPreHandler()),
	); err != nil {
		return fmt.Errorf("add input converter: %w", err)
	}

	if err := b.graph.AddChatModelNode(nodes.NodeResponseChatModel,
		b.config.ChatModels.Response,
		compose.WithStatePreHandler(nodes.NewResponseChatModelPreHandler(b.config.ToolMaxCalls)),
		compose.WithStatePostHandler(nodes.NewResponseChatModelPostHandler(b.config.MessagesManager, b.config.ChatModels.ResponseModelName)),
	); err != nil {
		return fmt.Errorf("add response model: %w", err)
	}
	return nil
}

func (b *GraphBuilder) addEdges() error {
	edges := [][2]string{
		{compose.START, nodes.NodeInputConverter},
		{nodes.NodeInputConverter, nodes.NodeResponseChatModel},
		{nodes.NodeToolExecutor, nodes.NodeResponseChatModel},
	}
	for _, edge := range edges {
		if err := b.graph.AddEdge(edge[0], edge[1]); err != nil {
			return fmt.Errorf("add edge %s -> %s: %w", edge[0], edge[1], err)
		}
	}
	return nil
}

func (b *GraphBuilder) addBranches() error {
	decisionBranch := compose.NewGraphBranch(
		nodes.NewToolExecutorCondition(),
		map[string]bool{
			nodes.NodeToolExecutor: true,
			compose.END:            true,
		},
	)
	if err := b.graph.AddBranch(nodes.NodeResponseChatModel, decisionBranch); err != nil {
		logx.Error().Err(err).Msg("Error adding decision branch")
		return fmt.Errorf("error adding decision branch: %w", err)
	}
	return nil
}

func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[model.QueryInput, *schema.Message], error) {
	// Bound total steps so a model that keeps calling tools cannot loop forever.
	maxSteps := max(10+b.config.ToolMaxCalls*2, 20)

	runnable, err := b.graph.Compile(ctx, compose.WithMaxRunSteps(maxSteps))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}
	return runnable, nil
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
