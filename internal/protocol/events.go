package protocol

import (
	"time"

	"github.com/numeshj/chatting-app/internal/models"
)

// Event kinds pushed to clients.
const (
	EventConnectDone           = "connect-done"
	EventConnectError          = "connect-error"
	EventConversationSummaries = "conversation-summaries"
	EventUserInfo              = "user-info"
	EventMessages              = "messages"
	EventMessage               = "message"
	EventMessageStatus         = "message-status"
	EventMessageEdited         = "message-edited"
	EventMessageDeleted        = "message-deleted"
	EventMessageDeletedLocal   = "message-deleted-local"
	EventEditError             = "edit-error"
	EventDeleteError           = "delete-error"
	EventChatDeleted           = "chat-deleted"
	EventChatDeletedLocal      = "chat-deleted-local"
	EventSessionReplaced       = "session-replaced"
)

// Message status values.
const (
	StatusDelivered = "delivered"
	StatusRead      = "read"
)

type ConnectDone struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func NewConnectDone(id int, name string) ConnectDone {
	return ConnectDone{Type: EventConnectDone, ID: id, Name: name}
}

type ConnectError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewConnectError(message string) ConnectError {
	return ConnectError{Type: EventConnectError, Message: message}
}

type ConversationSummaries struct {
	Type          string           `json:"type"`
	Conversations []models.Summary `json:"conversations"`
}

func NewConversationSummaries(list []models.Summary) ConversationSummaries {
	return ConversationSummaries{Type: EventConversationSummaries, Conversations: list}
}

type UserInfo struct {
	Type   string `json:"type"`
	Exists bool   `json:"exists"`
	ID     int    `json:"id"`
	Name   string `json:"name,omitempty"`
}

func NewUserInfo(id int, name string) UserInfo {
	return UserInfo{Type: EventUserInfo, Exists: true, ID: id, Name: name}
}

func NewUserUnknown(id int) UserInfo {
	return UserInfo{Type: EventUserInfo, Exists: false, ID: id}
}

type Messages struct {
	Type     string            `json:"type"`
	Messages []*models.Message `json:"messages"`
}

func NewMessages(list []*models.Message) Messages {
	if list == nil {
		list = []*models.Message{}
	}
	return Messages{Type: EventMessages, Messages: list}
}

// MessageEvent is the canonical message copy, pushed to the destination on
// live delivery and always echoed back to the source. The embedded message is
// a value snapshot taken at push time.
type MessageEvent struct {
	Type string `json:"type"`
	models.Message
}

func NewMessageEvent(m models.Message) MessageEvent {
	return MessageEvent{Type: EventMessage, Message: m}
}

type MessageStatus struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
	With      int    `json:"with"`
}

func NewMessageStatus(messageID, status string, with int) MessageStatus {
	return MessageStatus{Type: EventMessageStatus, MessageID: messageID, Status: status, With: with}
}

type Typing struct {
	Type string `json:"type"`
	From int    `json:"from"`
}

// NewTyping forwards a typing or typing-stop signal; kind is the intent type
// passed through unchanged.
func NewTyping(kind string, from int) Typing {
	return Typing{Type: kind, From: from}
}

type MessageEdited struct {
	Type       string    `json:"type"`
	MessageID  string    `json:"messageId"`
	NewText    string    `json:"newText"`
	With       int       `json:"with"`
	TimeEdited time.Time `json:"timeEdited"`
}

func NewMessageEdited(messageID, newText string, with int, at time.Time) MessageEdited {
	return MessageEdited{Type: EventMessageEdited, MessageID: messageID, NewText: newText, With: with, TimeEdited: at}
}

type MessageDeleted struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId"`
	With      int    `json:"with"`
}

func NewMessageDeleted(messageID string, with int) MessageDeleted {
	return MessageDeleted{Type: EventMessageDeleted, MessageID: messageID, With: with}
}

type MessageDeletedLocal struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId"`
}

func NewMessageDeletedLocal(messageID string) MessageDeletedLocal {
	return MessageDeletedLocal{Type: EventMessageDeletedLocal, MessageID: messageID}
}

type EditError struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId"`
	Reason    string `json:"reason"`
}

func NewEditError(messageID, reason string) EditError {
	return EditError{Type: EventEditError, MessageID: messageID, Reason: reason}
}

type DeleteError struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId"`
	Reason    string `json:"reason"`
}

func NewDeleteError(messageID, reason string) DeleteError {
	return DeleteError{Type: EventDeleteError, MessageID: messageID, Reason: reason}
}

type ChatDeleted struct {
	Type string `json:"type"`
	With int    `json:"with"`
}

func NewChatDeleted(with int) ChatDeleted {
	return ChatDeleted{Type: EventChatDeleted, With: with}
}

type ChatDeletedLocal struct {
	Type string `json:"type"`
	With int    `json:"with"`
}

func NewChatDeletedLocal(with int) ChatDeletedLocal {
	return ChatDeletedLocal{Type: EventChatDeletedLocal, With: with}
}

type SessionReplaced struct {
	Type string `json:"type"`
}

func NewSessionReplaced() SessionReplaced {
	return SessionReplaced{Type: EventSessionReplaced}
}
