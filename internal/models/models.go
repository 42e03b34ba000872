package models

import (
	"fmt"
	"time"
)

// Identity is a self-declared chat participant. Ids are not authenticated;
// uniqueness is only enforced while the identity is connected.
type Identity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DisplayName returns a placeholder name for an id that never authored a
// message in the log we are looking at.
func DisplayName(id int) string {
	return fmt.Sprintf("User%d", id)
}

// ConversationKey canonicalizes a pair of identity ids into the
// order-independent key of their shared message log.
func ConversationKey(a, b int) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

// Message is one entry in a conversation log. The server is the sole id and
// timestamp authority; clients never assign either.
type Message struct {
	ID          string     `json:"messageId"`
	Text        string     `json:"text"`
	Source      Identity   `json:"source"`
	Destination int        `json:"destination"`
	Time        time.Time  `json:"time"`
	Delivered   bool       `json:"delivered"`
	Read        bool       `json:"read"`
	Edited      bool       `json:"edited,omitempty"`
	TimeEdited  *time.Time `json:"timeEdited,omitempty"`
	Deleted     bool       `json:"deleted,omitempty"`
}

// MarkDelivered flips the message to delivered and reports whether this call
// performed the transition. Callers rely on the report to emit at most one
// delivered-status event per message. Tombstoned messages do not transition.
func (m *Message) MarkDelivered() bool {
	if m.Deleted || m.Delivered {
		return false
	}
	m.Delivered = true
	return true
}

// MarkRead flips the message to read, forcing delivered first so that read
// never holds without delivered. Reports whether the read state changed.
func (m *Message) MarkRead() bool {
	if m.Deleted || m.Read {
		return false
	}
	m.Delivered = true
	m.Read = true
	return true
}

// Edit replaces the text and stamps the edit time.
func (m *Message) Edit(text string, at time.Time) {
	m.Text = text
	m.Edited = true
	m.TimeEdited = &at
}

// Tombstone clears the content and marks the message deleted for all parties.
// The record stays in the log so ordering and counts are preserved.
func (m *Message) Tombstone() {
	m.Text = ""
	m.Deleted = true
}

// Summary is the derived chat-list entry for one conversation: the other
// party and the most recent message.
type Summary struct {
	With        Identity `json:"with"`
	LastMessage Message  `json:"lastMessage"`
}
