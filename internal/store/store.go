// Package store keeps the per-pair conversation logs in memory. It has no
// locking of its own: the router serializes every access.
package store

import (
	"github.com/numeshj/chatting-app/internal/models"
)

type conversation struct {
	a, b     int // participant ids, a < b
	messages []*models.Message
}

// Store maps canonical pair keys to append-mostly message logs. Conversations
// are created lazily on first message and dropped on delete-chat-for-all.
type Store struct {
	conversations map[string]*conversation
}

func New() *Store {
	return &Store{conversations: make(map[string]*conversation)}
}

// Append adds m to the log of its source/destination pair, creating the
// conversation if this is the first message between them.
func (s *Store) Append(m *models.Message) {
	a, b := m.Source.ID, m.Destination
	key := models.ConversationKey(a, b)
	conv, ok := s.conversations[key]
	if !ok {
		if b < a {
			a, b = b, a
		}
		conv = &conversation{a: a, b: b}
		s.conversations[key] = conv
	}
	conv.messages = append(conv.messages, m)
}

// Messages returns the live log for the pair, oldest first. The returned
// slice is owned by the store; callers mutate entries only under the
// router's write discipline.
func (s *Store) Messages(a, b int) []*models.Message {
	conv, ok := s.conversations[models.ConversationKey(a, b)]
	if !ok {
		return nil
	}
	return conv.messages
}

// Find locates a message by id within the pair's log.
func (s *Store) Find(a, b int, messageID string) *models.Message {
	for _, m := range s.Messages(a, b) {
		if m.ID == messageID {
			return m
		}
	}
	return nil
}

// DeleteConversation removes the entire log for the pair and reports whether
// one existed.
func (s *Store) DeleteConversation(a, b int) bool {
	key := models.ConversationKey(a, b)
	if _, ok := s.conversations[key]; !ok {
		return false
	}
	delete(s.conversations, key)
	return true
}
