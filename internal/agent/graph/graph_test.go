package graph

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arogyasagar/storefront/internal/agent/graph/conversations"
	"github.com/arogyasagar/storefront/internal/agent/graph/nodes"
	"github.com/arogyasagar/storefront/internal/agent/graph/tools"
	"github.com/arogyasagar/storefront/internal/agent/model"
	"github.com/arogyasagar/storefront/internal/agent/repo"
	"github.com/arogyasagar/storefront/internal/catalog"
	"github.com/arogyasagar/storefront/internal/seed"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

// scriptedModel replays canned replies and records what it was sent.
type scriptedModel struct {
	mu      sync.Mutex
	replies []*schema.Message
	err     error
	inputs  [][]*schema.Message
	tools   []*schema.ToolInfo
}

func (m *scriptedModel) Generate(_ context.Context, in []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, append([]*schema.Message(nil), in...))
	if m.err != nil {
		return nil, m.err
	}
	if len(m.replies) == 0 {
		return schema.AssistantMessage("", nil), nil
	}
	out := m.replies[0]
	m.replies = m.replies[1:]
	return out, nil
}

func (m *scriptedModel) Stream(context.Context, []*schema.Message, ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func (m *scriptedModel) BindTools(tools []*schema.ToolInfo) error {
	m.tools = tools
	return nil
}

func toolCall(name, args string) *schema.Message {
	return schema.AssistantMessage("", []schema.ToolCall{{
		Type:     "function",
		Function: schema.FunctionCall{Name: name, Arguments: args},
	}})
}

func newRunner(t *testing.T, m *scriptedModel, maxCalls int) (*Runner, model.ConversationRepository) {
	t.Helper()
	logx.Disable()
	ctx := context.Background()

	r := repo.NewMemoryConversationRepository()
	mm := conversations.NewMessagesManager(r, model.ConversationConfig{MaxTurns: 20})
	runnable, err := BuildGraph(ctx, &GraphConfig{
		ChatModels:      &nodes.ChatModels{Response: m, ResponseModelName: "gemini-2.5-flash"},
		MessagesManager: mm,
		Catalog:         catalog.New(seed.Products(42), seed.Doctors(), seed.Therapies()),
		PromptConfig:    &model.AssistantPromptConfig{AssistantName: "Veda", BusinessName: "ArogyaSagar"},
		ToolMaxCalls:    maxCalls,
	})
	require.NoError(t, err)
	return &Runner{runnable: runnable, mm: mm}, r
}

func lastMessage(msgs []*schema.Message) *schema.Message {
	return msgs[len(msgs)-1]
}

func TestRespondDirectAnswer(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{schema.AssistantMessage("Namaste! Drink warm water.", nil)}}
	runner, r := newRunner(t, m, 6)

	reply, err := runner.Respond(context.Background(), "guest", "I feel bloated")
	require.NoError(t, err)
	assert.Equal(t, "Namaste! Drink warm water.", reply)

	require.Len(t, m.tools, 3)
	require.Len(t, m.inputs, 1)
	first := m.inputs[0]
	assert.Equal(t, schema.System, first[0].Role)
	assert.Contains(t, first[0].Content, "Veda")
	assert.Contains(t, first[0].Content, "Dr. Aarav Sharma")
	assert.Equal(t, "I feel bloated", lastMessage(first).Content)

	h, err := r.LoadHistory(context.Background(), "guest")
	require.NoError(t, err)
	require.Len(t, h.Messages, 2)
	assert.Equal(t, schema.Assistant, h.Messages[1].Role)
}

func TestRespondWithToolCall(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		toolCall(tools.ToolSearchProduct, `{"query":" honey ","max_results":"3"}`),
		schema.AssistantMessage("Try **Wild Honey**. [View Product](/product/61)", nil),
	}}
	runner, r := newRunner(t, m, 6)

	reply, err := runner.Respond(context.Background(), "asha@example.com", "Something for my cough")
	require.NoError(t, err)
	assert.Contains(t, reply, "Wild Honey")

	require.Len(t, m.inputs, 2)
	toolMsg := lastMessage(m.inputs[1])
	assert.Equal(t, schema.Tool, toolMsg.Role)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)

	var out tools.SearchProductOutput
	require.NoError(t, json.Unmarshal([]byte(toolMsg.Content), &out))
	assert.Equal(t, 3, out.Total)

	// Only the user turn and the final answer are kept.
	n, err := r.GetMessageCount(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRespondUnknownTool(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		toolCall("buy_now", `{}`),
		schema.AssistantMessage("I can only help you browse.", nil),
	}}
	runner, _ := newRunner(t, m, 6)

	reply, err := runner.Respond(context.Background(), "guest", "Buy it")
	require.NoError(t, err)
	assert.Equal(t, "I can only help you browse.", reply)
	assert.Contains(t, lastMessage(m.inputs[1]).Content, "unknown_tool")
}

func TestRespondToolLimit(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		toolCall(tools.ToolListDoctors, `{}`),
		{Role: schema.Assistant, Content: "Please consult Dr. Aarav Sharma.", ToolCalls: []schema.ToolCall{{
			Type:     "function",
			Function: schema.FunctionCall{Name: tools.ToolListDoctors, Arguments: `{}`},
		}}},
	}}
	runner, _ := newRunner(t, m, 1)

	reply, err := runner.Respond(context.Background(), "guest", "I need a doctor")
	require.NoError(t, err)
	assert.Equal(t, "Please consult Dr. Aarav Sharma.", reply)

	require.Len(t, m.inputs, 2)
	notice := lastMessage(m.inputs[1])
	assert.Equal(t, schema.System, notice.Role)
	assert.Contains(t, notice.Content, "maximum tool call limit (1)")
}

func TestRespondEmptyReply(t *testing.T) {
	runner, _ := newRunner(t, &scriptedModel{}, 6)

	reply, err := runner.Respond(context.Background(), "guest", "Hello")
	require.NoError(t, err)
	assert.Equal(t, EmptyReply, reply)
}

func TestRespondErrorAndReset(t *testing.T) {
	m := &scriptedModel{err: errors.New("quota exceeded")}
	runner, r := newRunner(t, m, 6)
	ctx := context.Background()

	_, err := runner.Respond(ctx, "guest", "Hello")
	require.Error(t, err)

	n, err := r.GetMessageCount(ctx, "guest")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, runner.Reset(ctx, "guest"))
	n, err = r.GetMessageCount(ctx, "guest")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBuildGraphValidatesConfig(t *testing.T) {
	_, err := BuildGraph(context.Background(), nil)
	assert.Error(t, err)

	_, err = BuildGraph(context.Background(), &GraphConfig{ChatModels: &nodes.ChatModels{Response: &scriptedModel{}}})
	assert.Error(t, err)

	_, err = BuildAssistantGraph(context.Background(), Config{})
	assert.Error(t, err)
}

func TestSanitizeArguments(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		tool string
		in   string
		want string
	}{
		{"trims query and clamps string limit", tools.ToolSearchProduct, `{"query":"  tulsi ","max_results":"50"}`, `{"query":"tulsi","max_results":20}`},
		{"drops bad limit and non-string category", tools.ToolSearchProduct, `{"query":"tea","max_results":"many","category":7}`, `{"query":"tea"}`},
		{"raises low limit", tools.ToolSearchProduct, `{"query":"tea","max_results":0}`, `{"query":"tea","max_results":1}`},
		{"numeric product id", tools.ToolGetProductDetails, `{"product_id":42}`, `{"product_id":"42"}`},
		{"string boolean", tools.ToolListDoctors, `{"specialty":" skin ","available_only":"true"}`, `{"specialty":"skin","available_only":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sanitizeArguments(ctx, tc.tool, tc.in)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, got)
		})
	}

	got, err := sanitizeArguments(ctx, tools.ToolSearchProduct, "not json")
	require.NoError(t, err)
	assert.Equal(t, "not json", got)
}

func TestUnknownTool(t *testing.T) {
	logx.Disable()
	out, err := unknownTool(context.Background(), "buy_now", "{}")
	require.NoError(t, err)

	var payload struct {
		Error     string   `json:"error"`
		Name      string   `json:"name"`
		Available []string `json:"available"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "unknown_tool", payload.Error)
	assert.Equal(t, "buy_now", payload.Name)
	assert.Len(t, payload.Available, 3)
}
