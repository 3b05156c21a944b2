// Package chat keeps the assistant transcript for the current identity and
// relays user messages to a Responder. Sends may overlap; each reply is
// matched to its originating message by id.
package chat

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/storage"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

const (
	WelcomeID    = "welcome"
	guestWelcome = "Namaste! I am Veda, your Ayurvedic health assistant. How can I help you heal today?"
	// MaxMessageLength bounds a single user message.
	MaxMessageLength = 4000
)

// Responder produces the assistant reply for text within a conversation.
type Responder interface {
	Respond(ctx context.Context, conversationID, text string) (string, error)
}

// Resetter is implemented by responders that keep conversation context
// which should be dropped after a failure.
type Resetter interface {
	Reset(ctx context.Context, conversationID string) error
}

type Manager struct {
	mu        sync.Mutex
	store     storage.Store
	responder Responder
	now       func() time.Time

	identity string
	messages []model.ChatMessage
	pending  int
}

func NewManager(store storage.Store, responder Responder, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{store: store, responder: responder, now: now}
}

// SetResponder replaces the responder used by subsequent sends.
func (m *Manager) SetResponder(r Responder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responder = r
}

// SwitchIdentity loads the transcript of identity (empty for guest). When
// nothing is stored a welcome message is shown, personalised with name.
func (m *Manager) SwitchIdentity(ctx context.Context, identity, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.identity = identity
	m.messages = nil

	var saved []model.ChatMessage
	found, err := storage.LoadJSON(ctx, m.store, storage.ChatKey(identity), &saved)
	if err != nil {
		m.messages = []model.ChatMessage{m.welcome(identity, name)}
		return err
	}
	if found && len(saved) > 0 {
		m.messages = saved
		return nil
	}
	m.messages = []model.ChatMessage{m.welcome(identity, name)}
	return nil
}

func (m *Manager) welcome(identity, name string) model.ChatMessage {
	text := guestWelcome
	if identity != "" {
		text = "Namaste " + name + "! I am Veda. How can I assist you today?"
	}
	return model.ChatMessage{
		ID:        WelcomeID,
		Role:      model.ChatRoleModel,
		Text:      text,
		Timestamp: m.now().UTC(),
		Status:    model.StatusRead,
	}
}

func (m *Manager) Messages() []model.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.messages)
}

// Typing reports whether any reply is still outstanding.
func (m *Manager) Typing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending > 0
}

// Send appends a user message, waits for the responder and appends the
// reply. On responder failure the user message is marked as error and an
// ExternalService error is returned; the transcript stays usable. A reply
// that arrives after the identity changed is dropped and its message is
// marked as error in the stored transcript it came from.
func (m *Manager) Send(ctx context.Context, text string) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, errx.Validation("text", "Message cannot be empty")
	}
	if len(text) > MaxMessageLength {
		return model.ChatMessage{}, errx.Validation("text", "Message is too long")
	}

	m.mu.Lock()
	identity := m.identity
	responder := m.responder
	userMsg := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.ChatRoleUser,
		Text:      text,
		Timestamp: m.now().UTC(),
		Status:    model.StatusSending,
	}
	m.messages = append(m.messages, userMsg)
	m.pending++
	m.persistLocked(ctx)
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.pending--
		m.mu.Unlock()
	}()

	m.setStatus(ctx, identity, userMsg.ID, model.StatusSent)

	conversationID := conversationKey(identity)
	reply, err := responder.Respond(ctx, conversationID, text)
	if err != nil {
		logx.Error().Err(err).Str("conversation_id", conversationID).Str("message_id", userMsg.ID).Msg("assistant failed to respond")
		m.setStatus(ctx, identity, userMsg.ID, model.StatusError)
		if r, ok := responder.(Resetter); ok {
			if rerr := r.Reset(ctx, conversationID); rerr != nil {
				logx.Warn().Err(rerr).Str("conversation_id", conversationID).Msg("failed to reset conversation")
			}
		}
		return model.ChatMessage{}, errx.ExternalService(err, "I am having trouble answering right now. Please try again.")
	}

	replyMsg := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.ChatRoleModel,
		Text:      reply,
		Timestamp: m.now().UTC(),
		Status:    model.StatusRead,
		ReplyTo:   userMsg.ID,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexLocked(identity, userMsg.ID)
	if i < 0 {
		logx.Warn().Str("message_id", userMsg.ID).Msg("transcript changed before reply arrived; dropping reply")
		m.markStoredLocked(ctx, identity, userMsg.ID, model.StatusError)
		return replyMsg, nil
	}
	m.messages[i].Status = model.StatusRead
	m.messages = append(m.messages, replyMsg)
	m.persistLocked(ctx)
	return replyMsg, nil
}

func (m *Manager) setStatus(ctx context.Context, identity, id string, status model.MessageStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexLocked(identity, id); i >= 0 {
		m.messages[i].Status = status
		m.persistLocked(ctx)
		return
	}
	m.markStoredLocked(ctx, identity, id, status)
}

// markStoredLocked sets the status of message id in the stored transcript of
// identity, which is no longer the one on screen.
func (m *Manager) markStoredLocked(ctx context.Context, identity, id string, status model.MessageStatus) {
	if identity == m.identity {
		return
	}
	key := storage.ChatKey(identity)
	var saved []model.ChatMessage
	found, err := storage.LoadJSON(ctx, m.store, key, &saved)
	if err != nil || !found {
		if err != nil {
			logx.Error().Err(err).Str("identity", identity).Msg("failed to load chat transcript")
		}
		return
	}
	i := slices.IndexFunc(saved, func(msg model.ChatMessage) bool { return msg.ID == id })
	if i < 0 || saved[i].Status == status {
		return
	}
	saved[i].Status = status
	if err := storage.SaveJSON(ctx, m.store, key, saved); err != nil {
		logx.Error().Err(err).Str("identity", identity).Msg("failed to persist chat transcript")
	}
}

// indexLocked finds id in the transcript, provided it still belongs to identity.
func (m *Manager) indexLocked(identity, id string) int {
	if m.identity != identity {
		return -1
	}
	return slices.IndexFunc(m.messages, func(msg model.ChatMessage) bool { return msg.ID == id })
}

func (m *Manager) persistLocked(ctx context.Context) {
	if len(m.messages) == 0 {
		return
	}
	if err := storage.SaveJSON(ctx, m.store, storage.ChatKey(m.identity), m.messages); err != nil {
		logx.Error().Err(err).Str("identity", m.identity).Msg("failed to persist chat transcript")
	}
}

func conversationKey(identity string) string {
	if identity == "" {
		return "guest"
	}
	return identity
}
