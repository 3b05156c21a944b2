package model

import (
	"fmt"

	"github.com/cloudwego/eino/schema"
)

// DefaultMaxToolCalls applies when ConversationConfig.MaxToolCalls is unset.
const DefaultMaxToolCalls = 6

// ToolBudget normalises a configured tool call limit.
func ToolBudget(n int) int {
	if n <= 0 {
		return DefaultMaxToolCalls
	}
	return n
}

// AppState is the per-run state of the assistant graph, registered with
// compose.WithGenLocalState. Touch it only inside state handlers.
type AppState struct {
	ConversationID       string
	History              []*schema.Message
	ToolCallCount        int
	ToolCallLimitReached bool
	TotalCostUSD         float64

	toolCallIDs int
}

// BeginQuery clears the counters of the previous shopper question.
func (s *AppState) BeginQuery(conversationID string) {
	if s.ConversationID == "" {
		s.ConversationID = conversationID
	}
	s.ToolCallCount = 0
	s.ToolCallLimitReached = false
	s.TotalCostUSD = 0
	s.toolCallIDs = 0
}

// NoteToolCall counts one tool execution and reports whether it went past max.
func (s *AppState) NoteToolCall(max int) bool {
	s.ToolCallCount++
	if s.ToolCallCount > ToolBudget(max) {
		s.ToolCallLimitReached = true
		return true
	}
	return false
}

// ExhaustToolBudget reports true exactly once, on the first check after the
// count reaches max.
func (s *AppState) ExhaustToolBudget(max int) bool {
	if s.ToolCallLimitReached || s.ToolCallCount < ToolBudget(max) {
		return false
	}
	s.ToolCallLimitReached = true
	return true
}

// NextToolCallID names a tool call the provider left without an id.
func (s *AppState) NextToolCallID() string {
	s.toolCallIDs++
	return fmt.Sprintf("call_%d", s.toolCallIDs)
}

type QueryInput struct {
	ConversationID string `json:"conversation_id"`
	Query          string `json:"query"`
}
