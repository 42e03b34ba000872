// Package protocol defines the wire format: one closed inbound envelope and
// one struct per outbound event kind. Frames are JSON text messages.
package protocol

// Intent kinds accepted from clients. Anything else is dropped.
const (
	IntentConnect       = "connect"
	IntentLookupUser    = "lookup-user"
	IntentGetMessages   = "get-messages"
	IntentMessage       = "message"
	IntentMarkRead      = "mark-read"
	IntentEditMessage   = "edit-message"
	IntentDeleteMessage = "delete-message"
	IntentDeleteChat    = "delete-chat"
	IntentTyping        = "typing"
	IntentTypingStop    = "typing-stop"
)

// Deletion scopes.
const (
	ScopeAll = "all"
	ScopeMe  = "me"
)

// Intent is the single inbound envelope. Type discriminates; only the fields
// belonging to that kind are read, the rest stay zero.
type Intent struct {
	Type        string `json:"type"`
	ID          int    `json:"id,omitempty"`          // connect, lookup-user
	Name        string `json:"name,omitempty"`        // connect
	WithID      int    `json:"withId,omitempty"`      // get-messages
	With        int    `json:"with,omitempty"`        // mark-read, edit/delete, delete-chat, typing
	Destination int    `json:"destination,omitempty"` // message
	Text        string `json:"text,omitempty"`        // message
	MessageID   string `json:"messageId,omitempty"`   // edit-message, delete-message
	NewText     string `json:"newText,omitempty"`     // edit-message
	Scope       string `json:"scope,omitempty"`       // delete-message, delete-chat
}
