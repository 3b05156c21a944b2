package observers

import (
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
)

func TestLastUserContent(t *testing.T) {
	msgs := []*schema.Message{
		schema.SystemMessage("You are Veda"),
		schema.UserMessage("  tulsi tea?  "),
		nil,
		schema.AssistantMessage("We have three.", nil),
	}
	assert.Equal(t, "tulsi tea?", lastUserContent(msgs))
	assert.Empty(t, lastUserContent(msgs[:1]))
	assert.Empty(t, lastUserContent(nil))
}

func TestNewAllCallbacks(t *testing.T) {
	assert.NotNil(t, NewAllCallbacks())
}
