package model

// ================ Config ================
type ConversationConfig struct {
	TTL      string `envconfig:"CONVERSATION_TTL" default:"30m"`
	MaxTurns int    `envconfig:"CONVERSATION_MAX_TURNS" default:"20"`
	Tools    struct {
		MaxCalls int `envconfig:"CONVERSATION_TOOL_MAX_CALLS" default:"6"`
	}
}

type ChatModelConfig struct {
	Model          string  `envconfig:"ASSISTANT_MODEL" default:"gemini-2.5-flash"`
	MaxTokens      int     `envconfig:"ASSISTANT_MAX_TOKENS" default:"2000"`
	Temperature    float32 `envconfig:"ASSISTANT_TEMPERATURE" default:"0.4"`
	ThinkingBudget int32   `envconfig:"ASSISTANT_THINKING_BUDGET" default:"1024"`
}

type AssistantPromptConfig struct {
	AssistantName string `envconfig:"PROMPT_ASSISTANT_NAME" default:"Veda"`
	BusinessName  string `envconfig:"PROMPT_BUSINESS_NAME" default:"ArogyaSagar"`
}
