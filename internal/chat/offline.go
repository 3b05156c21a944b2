package chat

import "context"

// OfflineReply is returned when no model API key is configured.
const OfflineReply = "I'm sorry, my connection to the Ayurvedic knowledge base (API Key) is missing."

// OfflineResponder answers every message with OfflineReply.
type OfflineResponder struct{}

func (OfflineResponder) Respond(context.Context, string, string) (string, error) {
	return OfflineReply, nil
}
